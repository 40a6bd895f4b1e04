package importers

import (
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/mrlokans/spress-import/internal/entities"
)

// FeedProvider builds posts from an RSS, Atom or JSON feed.
type FeedProvider struct {
	source documentSource
	parser *gofeed.Parser
}

func NewFeedProvider() *FeedProvider {
	return &FeedProvider{parser: gofeed.NewParser()}
}

// SetUp implements Provider. Recognized options: file and content.
func (p *FeedProvider) SetUp(options Options) error {
	source, err := newDocumentSource(options)
	if err != nil {
		return err
	}
	p.source = source
	return nil
}

// Items implements Provider. Entries without a usable link fail the call.
func (p *FeedProvider) Items() ([]*entities.Item, error) {
	in, err := p.source.open()
	if err != nil {
		return nil, err
	}
	defer in.Close()

	feed, err := p.parser.Parse(newXMLCharFilterReader(in))
	if err != nil {
		return nil, &FormatError{Message: "This does not appear to be a RSS, Atom or JSON feed", Err: err}
	}

	items := make([]*entities.Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		item, err := convertFeedItem(entry)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (p *FeedProvider) TearDown() error {
	return nil
}

func convertFeedItem(entry *gofeed.Item) (*entities.Item, error) {
	item, err := entities.NewItem(entities.KindPost, strings.TrimSpace(entry.Link))
	if err != nil {
		return nil, &FormatError{Message: "Invalid link in feed entry", Err: err}
	}

	item.Title = strings.TrimSpace(entry.Title)

	body := entry.Content
	if body == "" {
		body = entry.Description
	}
	item.SetText(body)

	if entry.PublishedParsed != nil {
		published := entry.PublishedParsed.UTC()
		item.PublishedAt = &published
	} else if entry.UpdatedParsed != nil {
		updated := entry.UpdatedParsed.UTC()
		item.PublishedAt = &updated
	}

	if author := feedAuthor(entry); author != "" {
		item.Attributes.Set("author", author)
	}
	if len(entry.Categories) > 0 {
		item.Attributes.Set("categories", append([]string(nil), entry.Categories...))
	}

	return item, nil
}

func feedAuthor(entry *gofeed.Item) string {
	people := entry.Authors
	if len(people) == 0 && entry.Author != nil {
		people = []*gofeed.Person{entry.Author}
	}
	for _, person := range people {
		if person == nil {
			continue
		}
		if name := strings.TrimSpace(person.Name); name != "" {
			return name
		}
		if email := strings.TrimSpace(person.Email); email != "" {
			return email
		}
	}
	return ""
}

var _ Provider = (*FeedProvider)(nil)
