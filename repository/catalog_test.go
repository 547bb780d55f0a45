package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "verbs.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeCatalog(t, `{
		"categories": [
			{
				"name": "work",
				"color": "#3498db",
				"matches": ["study"],
				"cards": [
					{"phrasal_verb": "carry out", "related_words": ["perform", "execute"]},
					{"phrasal_verb": "hand in", "related_words": ["submit"]}
				]
			},
			{
				"name": "travel",
				"color": "#2ecc71",
				"cards": [
					{"phrasal_verb": "set off", "related_words": ["depart"]}
				]
			}
		]
	}`)

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)

	assert.Equal(t, 3, catalog.Size())
	assert.Len(t, catalog.Categories, 2)
	assert.Equal(t, "work", catalog.Categories[0].Name)
	assert.Equal(t, []string{"study"}, catalog.Categories[0].Matches)
	assert.Nil(t, catalog.Categories[1].Matches)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestLoadCatalogMalformed(t *testing.T) {
	path := writeCatalog(t, `{"categories": [`)
	_, err := LoadCatalog(path)
	require.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestLoadCatalogEmpty(t *testing.T) {
	path := writeCatalog(t, `{"categories": []}`)
	_, err := LoadCatalog(path)
	require.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestLoadCatalogCardWithoutRelatedWords(t *testing.T) {
	path := writeCatalog(t, `{
		"categories": [
			{"name": "work", "color": "#fff", "cards": [{"phrasal_verb": "set up", "related_words": []}]}
		]
	}`)
	_, err := LoadCatalog(path)
	require.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestLoadCatalogShippedAsset(t *testing.T) {
	catalog, err := LoadCatalog("../data/verbs.json")
	require.NoError(t, err)
	assert.Greater(t, catalog.Size(), 0)
	for _, category := range catalog.Categories {
		assert.NotEmpty(t, category.Color, "category %q has no color", category.Name)
	}
}
