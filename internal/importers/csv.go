package importers

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/mrlokans/spress-import/internal/entities"
)

// Column positions of a CSV row.
const (
	csvColumnTitle = iota
	csvColumnPermalink
	csvColumnContent
	csvColumnPublishedAt
	csvColumnCategories
	csvColumnTags
	csvColumnMarkup
)

const defaultCSVMarkup = "md"

var repeatedSpaces = regexp.MustCompile(` {2,}`)

// CSVProvider builds posts from delimited-text rows with the columns
// title, permalink, content, published_at, categories, tags and markup.
// The last three are optional.
type CSVProvider struct {
	source         documentSource
	delimiter      rune
	enclosure      rune
	escape         rune
	termsDelimiter string
	header         bool
}

func NewCSVProvider() *CSVProvider {
	return &CSVProvider{}
}

// SetUp implements Provider. Recognized options: file, content,
// delimiter_character, enclosure_character, escape_character,
// terms_delimiter_character and not_header.
func (p *CSVProvider) SetUp(options Options) error {
	source, err := newDocumentSource(options)
	if err != nil {
		return err
	}

	delimiter, err := options.Char("delimiter_character", ',', false)
	if err != nil {
		return err
	}
	enclosure, err := options.Char("enclosure_character", '"', false)
	if err != nil {
		return err
	}
	escape, err := options.Char("escape_character", '\\', true)
	if err != nil {
		return err
	}
	termsDelimiter, err := options.Char("terms_delimiter_character", ';', false)
	if err != nil {
		return err
	}
	notHeader, err := options.Bool("not_header", false)
	if err != nil {
		return err
	}

	*p = CSVProvider{
		source:         source,
		delimiter:      delimiter,
		enclosure:      enclosure,
		escape:         escape,
		termsDelimiter: string(termsDelimiter),
		header:         !notHeader,
	}

	return nil
}

// Items implements Provider. The first invalid row aborts the call with a
// *RowError.
func (p *CSVProvider) Items() ([]*entities.Item, error) {
	in, err := p.source.open()
	if err != nil {
		return nil, err
	}
	defer in.Close()

	reader := newDelimitedReader(in, p.delimiter, p.enclosure, p.escape)

	var items []*entities.Item
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}

		line++
		if line == 1 && p.header {
			continue
		}

		item, err := p.resolveRow(record, line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (p *CSVProvider) TearDown() error {
	return nil
}

func (p *CSVProvider) resolveRow(record []string, line int) (*entities.Item, error) {
	rowError := func(column int, message string) error {
		return &RowError{Line: line, Column: column + 1, Message: message}
	}

	title := getCSVColumn(record, csvColumnTitle)
	if title == "" {
		return nil, rowError(csvColumnTitle, "title cannot be empty")
	}
	permalink := getCSVColumn(record, csvColumnPermalink)
	if permalink == "" {
		return nil, rowError(csvColumnPermalink, "permalink cannot be empty")
	}
	content := getCSVColumn(record, csvColumnContent)
	if content == "" {
		return nil, rowError(csvColumnContent, "content cannot be empty")
	}
	publishedAt := getCSVColumn(record, csvColumnPublishedAt)
	if publishedAt == "" {
		return nil, rowError(csvColumnPublishedAt, "published_at cannot be empty")
	}
	date, err := dateparse.ParseIn(publishedAt, time.UTC)
	if err != nil {
		return nil, rowError(csvColumnPublishedAt, "published_at is not a valid date")
	}

	item, err := entities.NewItem(entities.KindPost, permalink)
	if err != nil {
		return nil, rowError(csvColumnPermalink, "permalink is not a valid URL")
	}
	item.Title = title
	item.PublishedAt = &date
	item.SetText(content)

	if categories := p.splitTerms(getCSVColumn(record, csvColumnCategories)); len(categories) > 0 {
		item.Attributes.Set("categories", categories)
	}
	if tags := p.splitTerms(getCSVColumn(record, csvColumnTags)); len(tags) > 0 {
		item.Attributes.Set("tags", tags)
	}

	item.ContentExtension = defaultCSVMarkup
	if markup := getCSVColumn(record, csvColumnMarkup); markup != "" {
		item.ContentExtension = markup
	}

	return item, nil
}

func (p *CSVProvider) splitTerms(value string) []string {
	if value == "" {
		return nil
	}
	var terms []string
	for _, term := range strings.Split(value, p.termsDelimiter) {
		if term = strings.TrimSpace(term); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

// getCSVColumn returns the normalized value at idx, or "" for short rows.
func getCSVColumn(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return normalizeCSVValue(record[idx])
}

// normalizeCSVValue trims value and collapses runs of spaces.
func normalizeCSVValue(value string) string {
	return repeatedSpaces.ReplaceAllString(strings.TrimSpace(value), " ")
}

// Compile-time interface check
var _ Provider = (*CSVProvider)(nil)
