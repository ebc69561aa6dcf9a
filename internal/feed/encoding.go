package feed

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding is the character encoding a feed response should be decoded with.
// Only UTF-8 and Latin-1 occur among the configured sources; anything else
// would come out garbled and is not handled.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingLatin1
)

var xmlDeclEncoding = regexp.MustCompile(`(?i)<\?xml[^>]*?encoding=["']([^"']+)["']`)

// DetectEncoding decides how raw feed bytes should be decoded. Precedence:
// per-source override, Content-Type header, the document's own XML
// declaration, then UTF-8 validity of the bytes themselves.
func DetectEncoding(override, contentType string, body []byte) Encoding {
	if isLatin1Name(override) {
		return EncodingLatin1
	}
	if isLatin1Name(contentType) {
		return EncodingLatin1
	}
	if m := xmlDeclEncoding.FindSubmatch(body); m != nil && isLatin1Name(string(m[1])) {
		return EncodingLatin1
	}
	if !utf8.Valid(body) {
		return EncodingLatin1
	}
	return EncodingUTF8
}

// Normalize decodes raw feed bytes into UTF-8 text. The encoding attribute is
// dropped from the XML declaration so the feed parser does not try to decode
// the already-converted text a second time.
func Normalize(override, contentType string, body []byte) (string, error) {
	text := string(body)
	if DetectEncoding(override, contentType, body) == EncodingLatin1 {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(body)
		if err != nil {
			return "", err
		}
		text = string(decoded)
	}
	return stripDeclEncoding(text), nil
}

func isLatin1Name(name string) bool {
	name = strings.ToLower(name)
	return strings.Contains(name, "iso-8859-1") ||
		strings.Contains(name, "latin1") ||
		strings.Contains(name, "latin-1")
}

var declEncodingAttr = regexp.MustCompile(`(?i)(<\?xml[^>]*?)\s+encoding=["'][^"']*["']`)

func stripDeclEncoding(text string) string {
	return declEncodingAttr.ReplaceAllString(text, "$1")
}
