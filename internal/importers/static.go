package importers

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"

	"github.com/mrlokans/spress-import/internal/entities"
)

// StaticEntry describes one item served by a StaticProvider.
type StaticEntry struct {
	Kind      entities.Kind
	Permalink string
	Title     string
	Content   string
	// Data is the payload of resources. Content is used when it is nil.
	Data       []byte
	Date       string
	Attributes []entities.KeyValue
	// ContentExtension overrides the default "html" when set.
	ContentExtension string
	// SkipFetch keeps the payload of a resource instead of downloading it.
	SkipFetch bool
}

// StaticProvider serves a fixed list of entries. Entries without a kind or
// a permalink are ignored. Every Items call builds fresh items.
type StaticProvider struct {
	entries []StaticEntry
}

func NewStaticProvider(entries ...StaticEntry) *StaticProvider {
	return &StaticProvider{entries: entries}
}

func (p *StaticProvider) SetUp(Options) error {
	return nil
}

func (p *StaticProvider) Items() ([]*entities.Item, error) {
	items := make([]*entities.Item, 0, len(p.entries))

	for _, entry := range p.entries {
		if entry.Kind == "" || entry.Permalink == "" {
			continue
		}

		item, err := entities.NewItem(entry.Kind, entry.Permalink)
		if err != nil {
			return nil, err
		}

		item.Title = entry.Title
		if entry.Kind == entities.KindResource {
			data := entry.Data
			if data == nil && entry.Content != "" {
				data = []byte(entry.Content)
			}
			item.SetBytes(data)
			item.FetchPermalinkAsResource = !entry.SkipFetch
		} else {
			item.SetText(entry.Content)
		}

		if entry.Date != "" {
			date, err := dateparse.ParseIn(entry.Date, time.UTC)
			if err != nil {
				return nil, fmt.Errorf("invalid date %q for %s: %w", entry.Date, entry.Permalink, err)
			}
			item.PublishedAt = &date
		}
		if entry.ContentExtension != "" {
			item.ContentExtension = entry.ContentExtension
		}
		item.Attributes = entities.NewAttributes(entry.Attributes...)

		items = append(items, item)
	}

	return items, nil
}

func (p *StaticProvider) TearDown() error {
	return nil
}

var _ Provider = (*StaticProvider)(nil)
