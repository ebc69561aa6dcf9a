package webpage

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	userAgent     = "Mozilla/5.0 (compatible; FactCheckBot/1.0)"
	maxContentLen = 8000
)

var client = &http.Client{Timeout: 30 * time.Second}

var whitespace = regexp.MustCompile(`\s+`)

// FetchText downloads a page and returns its visible text, capped at 8000
// characters, for use as fact-check input.
func FetchText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch URL: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()
	text := whitespace.ReplaceAllString(doc.Find("body").Text(), " ")
	text = strings.TrimSpace(text)

	runes := []rune(text)
	if len(runes) > maxContentLen {
		text = string(runes[:maxContentLen])
	}

	return text, nil
}
