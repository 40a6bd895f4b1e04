package entities

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

type Kind string

const (
	KindPost     Kind = "post"
	KindPage     Kind = "page"
	KindResource Kind = "resource"
)

const DefaultContentExtension = "html"

var (
	ErrInvalidPermalink = errors.New("permalink must be an absolute URL")
	ErrUnknownKind      = errors.New("unknown item kind")
)

// Payload is the body of an item: TextPayload for posts and pages,
// BinaryPayload for resources.
type Payload interface {
	isPayload()
}

type TextPayload struct {
	Body string
}

type BinaryPayload struct {
	Data []byte
}

func (TextPayload) isPayload()   {}
func (BinaryPayload) isPayload() {}

// Item is a unit of imported content (post, page or resource) produced by a
// provider. The source permalink identifies the item during an import.
type Item struct {
	kind      Kind
	permalink string
	payload   Payload

	Title       string
	PublishedAt *time.Time
	Attributes  Attributes

	// ContentExtension names the markup of the body, e.g. "html" or "md".
	// Post and page files keep the .html extension regardless.
	ContentExtension string

	// FetchPermalinkAsResource makes the pipeline download resource items
	// from their permalink instead of using the payload.
	FetchPermalinkAsResource bool
}

// NewItem creates an item of the given kind. The permalink must be an
// absolute URL with a scheme and a host.
func NewItem(kind Kind, permalink string) (*Item, error) {
	switch kind {
	case KindPost, KindPage, KindResource:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	if err := ValidatePermalink(permalink); err != nil {
		return nil, err
	}

	item := &Item{
		kind:                     kind,
		permalink:                permalink,
		payload:                  TextPayload{},
		ContentExtension:         DefaultContentExtension,
		FetchPermalinkAsResource: true,
	}
	if kind == KindResource {
		item.payload = BinaryPayload{}
	}

	return item, nil
}

// ValidatePermalink checks that permalink is an absolute URL.
func ValidatePermalink(permalink string) error {
	if permalink == "" {
		return fmt.Errorf("%w: empty value", ErrInvalidPermalink)
	}

	u, err := url.Parse(permalink)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidPermalink, permalink)
	}

	return nil
}

func (i *Item) Kind() Kind {
	return i.kind
}

func (i *Item) Permalink() string {
	return i.permalink
}

func (i *Item) Payload() Payload {
	return i.payload
}

func (i *Item) SetText(body string) {
	i.payload = TextPayload{Body: body}
}

func (i *Item) SetBytes(data []byte) {
	i.payload = BinaryPayload{Data: data}
}

// Text returns the textual body, or an empty string for binary payloads.
func (i *Item) Text() string {
	if p, ok := i.payload.(TextPayload); ok {
		return p.Body
	}
	return ""
}

// Bytes returns the payload as raw bytes regardless of its variant.
func (i *Item) Bytes() []byte {
	switch p := i.payload.(type) {
	case BinaryPayload:
		return p.Data
	case TextPayload:
		return []byte(p.Body)
	default:
		return nil
	}
}

func (i *Item) String() string {
	return i.permalink
}
