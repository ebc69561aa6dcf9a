package llm

import "context"

// Request is one completion call against the upstream AI gateway. Exactly one
// of the optional media fields is expected to be set at a time.
type Request struct {
	System      string
	Prompt      string
	ImageURL    string
	ImageBase64 string // raw base64 JPEG, without the data: prefix
	AudioBase64 string
	AudioFormat string // "webm", "mp3" or "wav"
	Model       string // overrides the provider default when non-empty
	Temperature float64
}

// Gateway is the upstream AI completion API. Implementations return the raw
// text content of the first choice; callers own prompt building and response
// parsing.
type Gateway interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}
