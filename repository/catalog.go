package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"verbcards/entities"
)

// ErrCatalogUnavailable marks every failure to produce a usable catalog.
// The server cannot build decks without one, so callers treat it as fatal.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// LoadCatalog reads the verbs catalog from path. The catalog is loaded once
// at process start and treated as read-only from then on.
func LoadCatalog(path string) (*entities.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrCatalogUnavailable, path, err)
	}

	var catalog entities.Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrCatalogUnavailable, path, err)
	}

	if len(catalog.Categories) == 0 {
		return nil, fmt.Errorf("%w: %s has no categories", ErrCatalogUnavailable, path)
	}
	for _, category := range catalog.Categories {
		if category.Name == "" {
			return nil, fmt.Errorf("%w: category without a name in %s", ErrCatalogUnavailable, path)
		}
		for _, card := range category.Cards {
			if card.PhrasalVerb == "" {
				return nil, fmt.Errorf("%w: card without a phrasal verb in category %q", ErrCatalogUnavailable, category.Name)
			}
			if len(card.RelatedWords) == 0 {
				return nil, fmt.Errorf("%w: card %q has no related words", ErrCatalogUnavailable, card.PhrasalVerb)
			}
		}
	}
	if catalog.Size() == 0 {
		return nil, fmt.Errorf("%w: %s has no cards", ErrCatalogUnavailable, path)
	}

	return &catalog, nil
}
