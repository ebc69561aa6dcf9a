package llm

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNoContent        = errors.New("no content in AI response")
	ErrAudioUnsupported = errors.New("audio input is not supported by this provider")
)

// GatewayError carries the HTTP status returned by the upstream AI gateway so
// handlers can pass rate-limit and credit-exhaustion errors through.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("AI gateway error: %d", e.StatusCode)
}

// StatusOf returns the upstream HTTP status behind err, or 0 when err is not
// a gateway error.
func StatusOf(err error) int {
	var gw *GatewayError
	if errors.As(err, &gw) {
		return gw.StatusCode
	}
	return 0
}

func IsRateLimited(err error) bool {
	return StatusOf(err) == http.StatusTooManyRequests
}

func IsOutOfCredits(err error) bool {
	return StatusOf(err) == http.StatusPaymentRequired
}
