package exporters

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mrlokans/spress-import/internal/entities"
)

const frontMatterDelimiter = "---\n"

// MarshalFrontMatter serializes attributes as a block style YAML mapping.
// Keys keep the insertion order of attrs.
func MarshalFrontMatter(attrs entities.Attributes) ([]byte, error) {
	mapping := &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: make([]*yaml.Node, 0, 2*attrs.Len()),
	}

	for _, pair := range attrs.Pairs() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pair.Key}

		value := &yaml.Node{}
		if err := value.Encode(pair.Value); err != nil {
			return nil, fmt.Errorf("failed to encode attribute %q: %w", pair.Key, err)
		}

		mapping.Content = append(mapping.Content, key, value)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(mapping); err != nil {
		return nil, fmt.Errorf("failed to encode front matter: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode front matter: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderDocument builds a content file: a front matter block with attrs
// followed by body.
//
//	---
//	<yaml>
//
//	---
//	<body>
func RenderDocument(attrs entities.Attributes, body string) ([]byte, error) {
	frontMatter, err := MarshalFrontMatter(attrs)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(frontMatter) + len(body) + 2*len(frontMatterDelimiter) + 1)
	buf.WriteString(frontMatterDelimiter)
	buf.Write(frontMatter)
	buf.WriteString("\n")
	buf.WriteString(frontMatterDelimiter)
	buf.WriteString(body)

	return buf.Bytes(), nil
}
