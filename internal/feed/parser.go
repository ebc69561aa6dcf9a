package feed

import (
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/urielfortunato123-del/verdade-legal-br/internal/model"
)

const maxDescriptionLen = 200

var htmlTags = regexp.MustCompile(`<[^>]*>`)

// The handful of entities the configured sources actually emit inside
// descriptions. Anything beyond this table passes through untouched.
var htmlEntities = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&#39;", "'",
	"&#x27;", "'",
)

// ParseItems extracts the usable stories from a normalized feed document and
// attributes them to source. Items missing a title or a link are dropped
// silently.
func ParseItems(document string, source string) ([]model.NewsItem, error) {
	parsed, err := gofeed.NewParser().ParseString(document)
	if err != nil {
		return nil, err
	}

	items := make([]model.NewsItem, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		title := strings.TrimSpace(it.Title)
		link := strings.TrimSpace(it.Link)
		if title == "" || link == "" {
			continue
		}

		pubDate := strings.TrimSpace(it.Published)
		var publishedAt time.Time
		if it.PublishedParsed != nil {
			publishedAt = *it.PublishedParsed
		}
		if pubDate == "" {
			now := time.Now().UTC()
			pubDate = now.Format(time.RFC3339)
			publishedAt = now
		}

		items = append(items, model.NewsItem{
			Title:       title,
			Link:        link,
			Description: CleanDescription(it.Description),
			PubDate:     pubDate,
			Source:      source,
			PublishedAt: publishedAt,
		})
	}

	return items, nil
}

// CleanDescription strips embedded HTML markup, decodes the fixed entity
// table and caps the text at 200 characters.
func CleanDescription(description string) string {
	text := htmlTags.ReplaceAllString(description, "")
	text = htmlEntities.Replace(text)
	text = strings.ReplaceAll(text, "]]>", "")
	runes := []rune(strings.TrimSpace(text))
	if len(runes) > maxDescriptionLen {
		runes = runes[:maxDescriptionLen]
	}
	return strings.TrimSpace(string(runes))
}
