package importers

import (
	"encoding/xml"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/mrlokans/spress-import/internal/entities"
)

const invalidWXRMessage = "This does not appear to be a WXR file, missing or invalid WXR version number."

// Namespace URIs used when a document does not declare the prefix itself.
var defaultWXRNamespaces = map[string]string{
	"wp":      "http://wordpress.org/export/1.1/",
	"excerpt": "http://wordpress.org/export/1.1/excerpt/",
	"content": "http://purl.org/rss/1.0/modules/content/",
	"dc":      "http://purl.org/dc/elements/1.1/",
}

var wxrVersionPattern = regexp.MustCompile(`^\d+\.\d+$`)

// wxrNamespaces maps prefixes to namespace URIs.
type wxrNamespaces map[string]string

func resolveWXRNamespaces(nodes ...*xmlNode) wxrNamespaces {
	ns := make(wxrNamespaces, len(defaultWXRNamespaces))
	for _, node := range nodes {
		if node == nil {
			continue
		}
		for _, a := range node.Attrs {
			if a.Name.Space == "xmlns" {
				ns[a.Name.Local] = a.Value
			}
		}
	}
	for prefix, uri := range defaultWXRNamespaces {
		if _, ok := ns[prefix]; !ok {
			ns[prefix] = uri
		}
	}
	return ns
}

// match accepts prefix:local. Undeclared prefixes are left untranslated by
// the decoder, so the bare prefix is accepted as well.
func (ns wxrNamespaces) match(prefix, local string) func(xml.Name) bool {
	uri := ns[prefix]
	return func(name xml.Name) bool {
		return name.Local == local && (name.Space == uri || name.Space == prefix)
	}
}

// WXRProvider reads Wordpress eXtended RSS exports. Posts become posts,
// attachments become resources and any other post type becomes a page.
type WXRProvider struct {
	source documentSource
}

func NewWXRProvider() *WXRProvider {
	return &WXRProvider{}
}

// SetUp implements Provider. Recognized options: file and content.
func (p *WXRProvider) SetUp(options Options) error {
	source, err := newDocumentSource(options)
	if err != nil {
		return err
	}
	p.source = source
	return nil
}

// Items implements Provider.
func (p *WXRProvider) Items() ([]*entities.Item, error) {
	in, err := p.source.open()
	if err != nil {
		return nil, err
	}
	defer in.Close()

	root, err := parseXMLTree(newXMLCharFilterReader(in))
	if err != nil {
		return nil, &FormatError{Message: "There was an error when reading this WXR file", Err: err}
	}
	if !plain("rss")(root.Name) {
		return nil, &FormatError{Message: invalidWXRMessage}
	}
	channel := root.child(plain("channel"))
	if channel == nil {
		return nil, &FormatError{Message: invalidWXRMessage}
	}

	ns := resolveWXRNamespaces(root, channel)

	version := strings.TrimSpace(channel.childText(ns.match("wp", "wxr_version")))
	if !wxrVersionPattern.MatchString(version) {
		return nil, &FormatError{Message: invalidWXRMessage}
	}

	var items []*entities.Item
	for _, node := range channel.children(plain("item")) {
		item, err := p.resolveItem(node, ns)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (p *WXRProvider) TearDown() error {
	return nil
}

func (p *WXRProvider) resolveItem(node *xmlNode, ns wxrNamespaces) (*entities.Item, error) {
	kind := wxrKind(strings.TrimSpace(node.childText(ns.match("wp", "post_type"))))

	// The link of an attachment is its HTML page, attachment_url is the file.
	permalink := strings.TrimSpace(node.childText(plain("link")))
	if kind == entities.KindResource {
		if attachment := strings.TrimSpace(node.childText(ns.match("wp", "attachment_url"))); attachment != "" {
			permalink = attachment
		}
	}

	item, err := entities.NewItem(kind, permalink)
	if err != nil {
		return nil, &FormatError{Message: "Invalid link in WXR item", Err: err}
	}

	item.Title = strings.TrimSpace(node.childText(plain("title")))
	if kind != entities.KindResource {
		item.SetText(node.childText(ns.match("content", "encoded")))
	}
	item.PublishedAt = wxrDate(node, ns)

	categories, tags := wxrTerms(node)
	item.Attributes.Set("author", strings.TrimSpace(node.childText(ns.match("dc", "creator"))))
	item.Attributes.Set("excerpt", node.childText(ns.match("excerpt", "encoded")))
	item.Attributes.Set("categories", categories)
	item.Attributes.Set("tags", tags)

	return item, nil
}

func wxrKind(postType string) entities.Kind {
	switch postType {
	case "post":
		return entities.KindPost
	case "attachment":
		return entities.KindResource
	default:
		return entities.KindPage
	}
}

// wxrDate reads post_date_gmt, falling back to post_date for drafts whose
// GMT date is zeroed. Unparseable dates yield nil.
func wxrDate(node *xmlNode, ns wxrNamespaces) *time.Time {
	for _, local := range []string{"post_date_gmt", "post_date"} {
		value := strings.TrimSpace(node.childText(ns.match("wp", local)))
		if value == "" || strings.HasPrefix(value, "0000-00-00") {
			continue
		}
		date, err := dateparse.ParseIn(value, time.UTC)
		if err != nil {
			return nil
		}
		return &date
	}
	return nil
}

// wxrTerms splits the category elements of an item into categories and
// tags. Both lists are non-nil.
func wxrTerms(node *xmlNode) (categories, tags []string) {
	categories, tags = []string{}, []string{}
	for _, c := range node.children(plain("category")) {
		term := strings.TrimSpace(c.Text)
		if term == "" {
			continue
		}
		if domain, _ := c.attr("domain"); domain == "post_tag" {
			tags = append(tags, term)
		} else {
			categories = append(categories, term)
		}
	}
	return categories, tags
}

var _ Provider = (*WXRProvider)(nil)
