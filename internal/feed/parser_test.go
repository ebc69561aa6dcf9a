package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

const sampleFeed = `<?xml version="1.0"?>
<rss version="2.0">
<channel>
<title>Test Feed</title>
<item>
  <title>Primeira notícia</title>
  <link>https://example.com/1</link>
  <description><![CDATA[<p>Texto com &amp; marca&ccedil;&atilde;o</p>]]></description>
  <pubDate>Mon, 02 Jan 2006 15:04:05 -0300</pubDate>
</item>
<item>
  <title></title>
  <link>https://example.com/sem-titulo</link>
</item>
<item>
  <title>Sem link</title>
</item>
<item>
  <title>Sem data</title>
  <link>https://example.com/2</link>
</item>
</channel>
</rss>`

func TestParseItems_DropsIncompleteItems(t *testing.T) {
	items, err := ParseItems(sampleFeed, "Test Feed")

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(items))
	assert.Equal(t, "Primeira notícia", items[0].Title)
	assert.Equal(t, "Sem data", items[1].Title)
}

func TestParseItems_AttributesSource(t *testing.T) {
	items, err := ParseItems(sampleFeed, "G1")

	assert.Equal(t, nil, err)
	for _, it := range items {
		assert.Equal(t, "G1", it.Source)
	}
}

func TestParseItems_MissingPubDateDefaultsToNow(t *testing.T) {
	items, err := ParseItems(sampleFeed, "Test Feed")

	assert.Equal(t, nil, err)

	noDate := items[1]
	assert.NotEqual(t, "", noDate.PubDate)

	parsed, perr := time.Parse(time.RFC3339, noDate.PubDate)
	assert.Equal(t, nil, perr)
	assert.Equal(t, true, time.Since(parsed) < time.Minute)
}

func TestParseItems_InvalidXML(t *testing.T) {
	_, err := ParseItems("not a feed at all", "Test Feed")

	assert.NotEqual(t, nil, err)
}

func TestCleanDescription_StripsMarkup(t *testing.T) {
	got := CleanDescription(`<p>Um <b>texto</b> com &amp; e &nbsp;entidades&quot;</p>]]>`)

	assert.Equal(t, `Um texto com & e entidades"`, got)
}

func TestCleanDescription_CapsAt200Chars(t *testing.T) {
	long := strings.Repeat("ã", 250)

	got := CleanDescription(long)

	assert.Equal(t, 200, len([]rune(got)))
}

func TestCleanDescription_ShortTextUntouched(t *testing.T) {
	got := CleanDescription("  Notícia curta.  ")

	assert.Equal(t, "Notícia curta.", got)
}
