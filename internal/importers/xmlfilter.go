package importers

import (
	"io"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// xmlCharFilter removes every rune that may not appear in an XML 1.0 document.
var xmlCharFilter = runes.Remove(runes.Predicate(func(r rune) bool {
	return !isXMLChar(r)
}))

func isXMLChar(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	default:
		return false
	}
}

// newXMLCharFilterReader wraps r so that invalid XML characters never reach the decoder.
func newXMLCharFilterReader(r io.Reader) io.Reader {
	return transform.NewReader(r, xmlCharFilter)
}
