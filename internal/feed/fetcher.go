package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/urielfortunato123-del/verdade-legal-br/internal/model"
)

// Some source servers reject requests without a browser-like User-Agent.
const userAgent = "Mozilla/5.0 (compatible; NewsBot/1.0)"

// Fetcher retrieves and parses a single RSS feed.
type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchSource retrieves one feed and returns its items. Any failure is
// returned to the caller, which treats the feed as empty for this request;
// there are no retries.
func (f *Fetcher) FetchSource(ctx context.Context, src Source) ([]model.NewsItem, error) {
	body, contentType, err := f.fetch(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	document, err := Normalize(src.Encoding, contentType, body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src.Name, err)
	}

	return ParseItems(document, src.Name)
}

func (f *Fetcher) fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml, */*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	return body, resp.Header.Get("Content-Type"), nil
}
