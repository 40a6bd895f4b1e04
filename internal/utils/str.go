package utils

import (
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"
)

// slugPatterns holds the expressions Slug needs for one separator.
type slugPatterns struct {
	flipped    *regexp.Regexp
	invalid    *regexp.Regexp
	separators *regexp.Regexp
}

// slugPatternCache maps a separator to its *slugPatterns.
var slugPatternCache sync.Map

func slugPatternsFor(separator string) *slugPatterns {
	if cached, ok := slugPatternCache.Load(separator); ok {
		return cached.(*slugPatterns)
	}

	flip := "-"
	if separator == "-" {
		flip = "_"
	}
	quoted := regexp.QuoteMeta(separator)

	patterns := &slugPatterns{
		flipped:    regexp.MustCompile(`[` + regexp.QuoteMeta(flip) + `]+`),
		invalid:    regexp.MustCompile(`[^` + quoted + `\pL\pN\s]+`),
		separators: regexp.MustCompile(`[` + quoted + `\s]+`),
	}
	actual, _ := slugPatternCache.LoadOrStore(separator, patterns)
	return actual.(*slugPatterns)
}

// Slug generates a URL and filename friendly token from arbitrary text.
// The result only contains lowercase ASCII letters, digits and the separator.
func Slug(text string, separator string) string {
	patterns := slugPatternsFor(separator)

	text = strings.ReplaceAll(ToASCII(text), ".", separator)
	text = patterns.flipped.ReplaceAllString(text, separator)
	text = patterns.invalid.ReplaceAllString(strings.ToLower(text), "")
	text = patterns.separators.ReplaceAllString(text, separator)

	return strings.Trim(text, separator)
}

// ToASCII transliterates text to ASCII using the fixed conversion table.
// Non-ASCII characters without an entry are removed.
func ToASCII(text string) string {
	if isASCII(text) {
		return text
	}

	var builder strings.Builder
	builder.Grow(len(text))

	for _, r := range text {
		if r < utf8.RuneSelf {
			builder.WriteRune(r)
			continue
		}
		if replacement, ok := asciiTable[r]; ok {
			builder.WriteString(replacement)
		}
	}

	return builder.String()
}

// StartsWith reports whether text begins with a non-empty prefix.
func StartsWith(text, prefix string) bool {
	return prefix != "" && strings.HasPrefix(text, prefix)
}

// EndsWith reports whether text ends with suffix.
func EndsWith(text, suffix string) bool {
	return strings.HasSuffix(text, suffix)
}

// DeletePrefix removes prefix from text. Text is returned untouched when it
// does not start with prefix.
func DeletePrefix(text, prefix string) string {
	if !StartsWith(text, prefix) {
		return text
	}
	return text[len(prefix):]
}

// DeleteSuffix removes suffix from text. Text is returned untouched when it
// does not end with suffix.
func DeleteSuffix(text, suffix string) string {
	if suffix == "" || !EndsWith(text, suffix) {
		return text
	}
	return text[:len(text)-len(suffix)]
}

func isASCII(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
