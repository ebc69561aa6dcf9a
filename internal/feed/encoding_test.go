package feed

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestDetectEncoding_SourceOverrideWins(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="UTF-8"?><rss></rss>`)

	enc := DetectEncoding("latin1", "application/rss+xml; charset=utf-8", body)

	assert.Equal(t, EncodingLatin1, enc)
}

func TestDetectEncoding_ContentTypeHeader(t *testing.T) {
	body := []byte(`<rss></rss>`)

	enc := DetectEncoding("", "text/xml; charset=ISO-8859-1", body)

	assert.Equal(t, EncodingLatin1, enc)
}

func TestDetectEncoding_XMLDeclaration(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="iso-8859-1"?><rss></rss>`)

	enc := DetectEncoding("", "application/rss+xml", body)

	assert.Equal(t, EncodingLatin1, enc)
}

func TestDetectEncoding_InvalidUTF8Fallback(t *testing.T) {
	// 0xE7 is "ç" in Latin-1 but not valid UTF-8 on its own.
	body := []byte("<rss><title>not\xedcia</title></rss>")

	enc := DetectEncoding("", "", body)

	assert.Equal(t, EncodingLatin1, enc)
}

func TestDetectEncoding_ValidUTF8Default(t *testing.T) {
	body := []byte(`<rss><title>notícia</title></rss>`)

	enc := DetectEncoding("", "", body)

	assert.Equal(t, EncodingUTF8, enc)
}

func TestNormalize_DecodesLatin1(t *testing.T) {
	// "São Paulo" with Latin-1 byte 0xE3 for "ã".
	body := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><rss><title>S\xe3o Paulo</title></rss>")

	text, err := Normalize("", "", body)

	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(text, "São Paulo"))
}

func TestNormalize_StripsDeclarationEncoding(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="ISO-8859-1"?><rss></rss>`)

	text, err := Normalize("", "", body)

	assert.Equal(t, nil, err)
	assert.Equal(t, false, strings.Contains(strings.ToLower(text), "encoding="))
	assert.Equal(t, true, strings.Contains(text, `<?xml version="1.0"?>`))
}

func TestNormalize_UTF8Passthrough(t *testing.T) {
	body := []byte(`<rss><title>eleição</title></rss>`)

	text, err := Normalize("", "", body)

	assert.Equal(t, nil, err)
	assert.Equal(t, string(body), text)
}
