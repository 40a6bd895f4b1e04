package exporters

import (
	"bytes"
	"strings"
	"testing"

	"github.com/adrg/frontmatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/spress-import/internal/entities"
)

func TestRenderDocument(t *testing.T) {
	t.Run("renders scalar attributes in insertion order", func(t *testing.T) {
		attrs := entities.NewAttributes(
			entities.KeyValue{Key: "permalink", Value: "/about"},
			entities.KeyValue{Key: "no_html_extension", Value: true},
		)

		content, err := RenderDocument(attrs, "")

		require.NoError(t, err)
		assert.Equal(t, "---\npermalink: /about\nno_html_extension: true\n\n---\n", string(content))
	})

	t.Run("keeps insertion order instead of sorting keys", func(t *testing.T) {
		attrs := entities.NewAttributes(
			entities.KeyValue{Key: "permalink", Value: "/posts/hello"},
			entities.KeyValue{Key: "no_html_extension", Value: true},
			entities.KeyValue{Key: "layout", Value: "default"},
			entities.KeyValue{Key: "title", Value: "Hello world"},
		)

		content, err := RenderDocument(attrs, "<p>Hi</p>")

		require.NoError(t, err)
		expected := "---\n" +
			"permalink: /posts/hello\n" +
			"no_html_extension: true\n" +
			"layout: default\n" +
			"title: Hello world\n" +
			"\n---\n" +
			"<p>Hi</p>"
		assert.Equal(t, expected, string(content))
	})

	t.Run("quotes values that would change type", func(t *testing.T) {
		attrs := entities.NewAttributes(entities.KeyValue{Key: "title", Value: "2016"})

		content, err := RenderDocument(attrs, "")

		require.NoError(t, err)
		assert.Contains(t, string(content), `title: "2016"`)
	})
}

func TestRenderDocument_RoundTrip(t *testing.T) {
	attrs := entities.NewAttributes(
		entities.KeyValue{Key: "author", Value: "Victor"},
		entities.KeyValue{Key: "excerpt", Value: "First line\nSecond line"},
		entities.KeyValue{Key: "categories", Value: []string{"news", "events"}},
		entities.KeyValue{Key: "tags", Value: []string{}},
		entities.KeyValue{Key: "permalink", Value: "/posts/hello-world"},
		entities.KeyValue{Key: "no_html_extension", Value: true},
		entities.KeyValue{Key: "layout", Value: "post"},
		entities.KeyValue{Key: "title", Value: "Hello: world"},
	)

	content, err := RenderDocument(attrs, "Body text\n")
	require.NoError(t, err)

	var parsed map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(content), &parsed)
	require.NoError(t, err)

	assert.Equal(t, "Body text", strings.TrimSpace(string(body)))
	assert.Equal(t, "Victor", parsed["author"])
	assert.Equal(t, "First line\nSecond line", parsed["excerpt"])
	assert.Equal(t, []any{"news", "events"}, parsed["categories"])
	assert.Empty(t, parsed["tags"])
	assert.Equal(t, "/posts/hello-world", parsed["permalink"])
	assert.Equal(t, true, parsed["no_html_extension"])
	assert.Equal(t, "post", parsed["layout"])
	assert.Equal(t, "Hello: world", parsed["title"])
	assert.Len(t, parsed, attrs.Len())
}
