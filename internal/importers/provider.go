package importers

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mrlokans/spress-import/internal/entities"
)

// Options carries provider specific settings, e.g. "file" or "delimiter_character".
type Options map[string]any

// Provider turns an external source into content items.
//
// Implementations:
//   - CSVProvider (csv.go) - delimited-text rows
//   - WXRProvider (wxr.go) - Wordpress eXtended RSS exports
//   - FeedProvider (feed.go) - RSS, Atom and JSON feeds
//   - StaticProvider (static.go) - a fixed list of entries
//
// The pipeline always calls SetUp, then Items, then TearDown.
type Provider interface {
	// SetUp validates options and prepares the provider.
	SetUp(options Options) error
	// Items returns every item of the source in source order.
	Items() ([]*entities.Item, error)
	// TearDown releases what SetUp acquired.
	TearDown() error
}

// String returns the string option at key, or def when it is absent.
func (o Options) String(key, def string) (string, error) {
	value, ok := o[key]
	if !ok || value == nil {
		return def, nil
	}
	s, ok := value.(string)
	if !ok {
		return "", newConfigError(key, "Expected string at \"%s\" option.", key)
	}
	return s, nil
}

// Bool returns the boolean option at key, or def when it is absent.
func (o Options) Bool(key string, def bool) (bool, error) {
	value, ok := o[key]
	if !ok || value == nil {
		return def, nil
	}
	b, ok := value.(bool)
	if !ok {
		return false, newConfigError(key, "Expected boolean at \"%s\" option.", key)
	}
	return b, nil
}

// Char returns the single character option at key. An empty value yields 0
// when allowEmpty is set.
func (o Options) Char(key string, def rune, allowEmpty bool) (rune, error) {
	value, ok := o[key]
	if !ok || value == nil {
		return def, nil
	}
	s, ok := value.(string)
	if ok && s == "" && allowEmpty {
		return 0, nil
	}
	if !ok || utf8.RuneCountInString(s) != 1 {
		return 0, newConfigError(key, "Expected a single character at \"%s\" option.", key)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// documentSource resolves the "content" and "file" options shared by the
// document based providers. Inline content wins over a file.
type documentSource struct {
	content    string
	hasContent bool
	file       string
}

func newDocumentSource(options Options) (documentSource, error) {
	var src documentSource

	if _, ok := options["content"]; ok {
		content, err := options.String("content", "")
		if err != nil {
			return src, err
		}
		src.content = content
		src.hasContent = true
		return src, nil
	}

	file, ok := options["file"].(string)
	if !ok || file == "" {
		return src, newConfigError("file", "Expected string at \"file\" option.")
	}
	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		return src, newConfigError("file", "File \"%s\" not found.", file)
	}
	src.file = file

	return src, nil
}

// open returns a reader over the document. The caller closes it.
func (s documentSource) open() (io.ReadCloser, error) {
	if s.hasContent {
		return io.NopCloser(strings.NewReader(s.content)), nil
	}
	f, err := os.Open(s.file)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.file, err)
	}
	return f, nil
}
