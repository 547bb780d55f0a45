package service

import "verbcards/entities"

// BuildDeck instantiates one card per catalog template and shuffles the
// result. Ids are assigned in category-major enumeration order before the
// shuffle, so they identify cards for the whole game regardless of where
// the shuffle puts them. The hint is drawn uniformly from the template's
// related words.
func BuildDeck(catalog *entities.Catalog) []entities.Card {
	deck := make([]entities.Card, 0, catalog.Size())
	for _, category := range catalog.Categories {
		for _, template := range category.Cards {
			deck = append(deck, entities.Card{
				ID:       len(deck),
				Word:     template.PhrasalVerb,
				Hint:     template.RelatedWords[randIntn(len(template.RelatedWords))],
				Category: category.Name,
				Color:    category.Color,
				Matches:  category.Matches,
			})
		}
	}

	randShuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}
