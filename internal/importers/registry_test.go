package importers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	csv := NewCSVProvider()
	wxr := NewWXRProvider()
	registry := NewRegistry(map[string]Provider{"csv": csv})

	t.Run("get registered provider", func(t *testing.T) {
		provider, err := registry.Get("csv")
		require.NoError(t, err)
		assert.Same(t, csv, provider)
	})

	t.Run("add rejects duplicates", func(t *testing.T) {
		err := registry.Add("csv", wxr)

		assert.ErrorIs(t, err, ErrDuplicateProvider)
		assert.Equal(t, `A previous provider exists with the same name: "csv".`, err.Error())

		provider, _ := registry.Get("csv")
		assert.Same(t, csv, provider)
	})

	t.Run("add and set", func(t *testing.T) {
		require.NoError(t, registry.Add("wordpress", wxr))
		assert.True(t, registry.Has("wordpress"))

		registry.Set("csv", wxr)
		provider, _ := registry.Get("csv")
		assert.Same(t, wxr, provider)

		assert.Equal(t, []string{"csv", "wordpress"}, registry.Names())
		assert.Equal(t, 2, registry.Len())
	})

	t.Run("remove and clear", func(t *testing.T) {
		registry.Remove("csv")
		assert.False(t, registry.Has("csv"))

		_, err := registry.Get("csv")
		var notFound *ProviderNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "csv", notFound.Name)
		assert.Equal(t, `Provider with name: "csv" not found.`, err.Error())

		registry.Clear()
		assert.Equal(t, 0, registry.Len())
		assert.Empty(t, registry.Names())
	})
}

func TestNewRegistry_CopiesInput(t *testing.T) {
	providers := map[string]Provider{"csv": NewCSVProvider()}
	registry := NewRegistry(providers)

	providers["wordpress"] = NewWXRProvider()

	assert.False(t, registry.Has("wordpress"))
}
