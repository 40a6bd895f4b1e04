package importers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/spress-import/internal/entities"
)

func TestStaticProvider_Items(t *testing.T) {
	provider := NewStaticProvider(
		StaticEntry{Permalink: "http://x.com/no-kind"},
		StaticEntry{Kind: entities.KindPage},
		StaticEntry{
			Kind:       entities.KindPost,
			Permalink:  "http://x.com/posts/hello",
			Title:      "Hello",
			Content:    "Body",
			Date:       "2016-06-29",
			Attributes: []entities.KeyValue{{Key: "author", Value: "Ana"}},
		},
		StaticEntry{Kind: entities.KindResource, Permalink: "http://x.com/a.png", Content: "png"},
	)
	require.NoError(t, provider.SetUp(nil))

	items, err := provider.Items()
	require.NoError(t, err)
	require.Len(t, items, 2)

	post := items[0]
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "Body", post.Text())
	assert.Equal(t, time.Date(2016, 6, 29, 0, 0, 0, 0, time.UTC), *post.PublishedAt)
	assert.Len(t, post.Attributes.Pairs(), 1)
	assert.Equal(t, "author", post.Attributes.Pairs()[0].Key)

	resource := items[1]
	assert.Equal(t, []byte("png"), resource.Bytes())
	assert.True(t, resource.FetchPermalinkAsResource)

	assert.NoError(t, provider.TearDown())
}

func TestStaticProvider_FreshItemsPerCall(t *testing.T) {
	provider := NewStaticProvider(StaticEntry{Kind: entities.KindPage, Permalink: "http://x.com/about"})

	first, err := provider.Items()
	require.NoError(t, err)
	first[0].Title = "changed"
	first[0].Attributes.Set("x", 1)

	second, err := provider.Items()
	require.NoError(t, err)
	assert.Equal(t, "", second[0].Title)
	assert.Equal(t, 0, second[0].Attributes.Len())
}

func TestStaticProvider_InvalidEntries(t *testing.T) {
	_, err := NewStaticProvider(StaticEntry{Kind: entities.KindPage, Permalink: "about"}).Items()
	assert.ErrorIs(t, err, entities.ErrInvalidPermalink)

	_, err = NewStaticProvider(StaticEntry{Kind: entities.KindPost, Permalink: "http://x.com/a", Date: "2016-13-45"}).Items()
	assert.Error(t, err)
}
