package importers

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// xmlNode is an element of a parsed document. Text collects the character
// data of the element itself, CDATA sections included.
type xmlNode struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Text     string
	Children []*xmlNode
}

// parseXMLTree reads the whole document into memory and returns its root.
func parseXMLTree(r io.Reader) (*xmlNode, error) {
	decoder := xml.NewDecoder(r)
	decoder.Entity = xml.HTMLEntity

	var (
		root  *xmlNode
		stack []*xmlNode
		texts []*strings.Builder
	)

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			node := &xmlNode{Name: t.Name, Attrs: append([]xml.Attr(nil), t.Attr...)}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			} else if root == nil {
				root = node
			}
			stack = append(stack, node)
			texts = append(texts, &strings.Builder{})
		case xml.CharData:
			if len(texts) > 0 {
				texts[len(texts)-1].Write(t)
			}
		case xml.EndElement:
			last := len(stack) - 1
			stack[last].Text = texts[last].String()
			stack, texts = stack[:last], texts[:last]
		}
	}

	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}

	return root, nil
}

// child returns the first child matching match.
func (n *xmlNode) child(match func(xml.Name) bool) *xmlNode {
	for _, c := range n.Children {
		if match(c.Name) {
			return c
		}
	}
	return nil
}

func (n *xmlNode) children(match func(xml.Name) bool) []*xmlNode {
	var out []*xmlNode
	for _, c := range n.Children {
		if match(c.Name) {
			out = append(out, c)
		}
	}
	return out
}

// childText returns the text of the first child matching match, or "".
func (n *xmlNode) childText(match func(xml.Name) bool) string {
	if c := n.child(match); c != nil {
		return c.Text
	}
	return ""
}

// attr returns the value of the unqualified attribute local.
func (n *xmlNode) attr(local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Space == "" && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// plain matches an element without namespace.
func plain(local string) func(xml.Name) bool {
	return func(name xml.Name) bool {
		return name.Space == "" && name.Local == local
	}
}
