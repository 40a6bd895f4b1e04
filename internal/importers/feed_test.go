package importers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/spress-import/internal/entities"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
<channel>
	<title>My blog</title>
	<link>http://myblog.com</link>
	<description>Posts</description>
	<item>
		<title>Hello world</title>
		<link>http://myblog.com/hello-world</link>
		<description>Summary</description>
		<content:encoded><![CDATA[<p>Full body</p>]]></content:encoded>
		<pubDate>Wed, 29 Jun 2016 10:00:00 +0000</pubDate>
		<category>news</category>
		<category>go</category>
	</item>
	<item>
		<title>Short</title>
		<link>http://myblog.com/short</link>
		<description>Only a description</description>
	</item>
</channel>
</rss>`

const sampleAtom = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<title>My blog</title>
	<id>urn:uuid:60a76c80-d399-11d9-b93C-0003939e0af6</id>
	<updated>2016-07-01T10:00:00Z</updated>
	<entry>
		<title>Atom entry</title>
		<link href="http://myblog.com/atom-entry"/>
		<id>urn:uuid:1225c695-cfb8-4ebb-aaaa-80da344efa6a</id>
		<updated>2016-07-01T10:00:00Z</updated>
		<author><name>Ana</name></author>
		<content type="html">&lt;p&gt;Atom body&lt;/p&gt;</content>
	</entry>
</feed>`

func feedItems(t *testing.T, content string) ([]*entities.Item, error) {
	t.Helper()

	provider := NewFeedProvider()
	require.NoError(t, provider.SetUp(Options{"content": content}))
	defer provider.TearDown()

	return provider.Items()
}

func TestFeedProvider_RSS(t *testing.T) {
	items, err := feedItems(t, sampleRSS)
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, entities.KindPost, first.Kind())
	assert.Equal(t, "Hello world", first.Title)
	assert.Equal(t, "http://myblog.com/hello-world", first.Permalink())
	assert.Equal(t, "<p>Full body</p>", first.Text())
	require.NotNil(t, first.PublishedAt)
	assert.True(t, time.Date(2016, 6, 29, 10, 0, 0, 0, time.UTC).Equal(*first.PublishedAt))
	categories, ok := first.Attributes.Get("categories")
	require.True(t, ok)
	assert.Equal(t, []string{"news", "go"}, categories)

	second := items[1]
	assert.Equal(t, "Only a description", second.Text())
	assert.Nil(t, second.PublishedAt)
	_, hasCategories := second.Attributes.Get("categories")
	assert.False(t, hasCategories)
}

func TestFeedProvider_Atom(t *testing.T) {
	items, err := feedItems(t, sampleAtom)
	require.NoError(t, err)
	require.Len(t, items, 1)

	entry := items[0]
	assert.Equal(t, "Atom entry", entry.Title)
	assert.Equal(t, "http://myblog.com/atom-entry", entry.Permalink())
	assert.Equal(t, "<p>Atom body</p>", entry.Text())
	require.NotNil(t, entry.PublishedAt)
	assert.True(t, time.Date(2016, 7, 1, 10, 0, 0, 0, time.UTC).Equal(*entry.PublishedAt))
	author, _ := entry.Attributes.Get("author")
	assert.Equal(t, "Ana", author)
}

func TestFeedProvider_Errors(t *testing.T) {
	t.Run("unknown format", func(t *testing.T) {
		_, err := feedItems(t, "just some text")

		var formatErr *FormatError
		assert.ErrorAs(t, err, &formatErr)
	})

	t.Run("entry without link", func(t *testing.T) {
		content := `<rss version="2.0"><channel><title>x</title><item><title>No link</title></item></channel></rss>`
		_, err := feedItems(t, content)

		assert.ErrorIs(t, err, entities.ErrInvalidPermalink)
	})
}
