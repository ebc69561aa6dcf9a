package model

import "time"

// NewsItem is one story pulled from an RSS feed. Items live only for the
// request that fetched them; nothing is cached or deduplicated across calls.
type NewsItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	PubDate     string `json:"pubDate"`
	Source      string `json:"source"`

	// PublishedAt is the parsed form of PubDate, used only for sorting.
	PublishedAt time.Time `json:"-"`
}
