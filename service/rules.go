package service

import (
	"strings"

	"golang.org/x/exp/slices"

	"verbcards/entities"
)

// IsPlayable decides whether card may be placed on top. A nil top means the
// table pile is empty and the first move is unconstrained. Exactly one of
// the four match cases applies, depending on which side declares a match
// set; if it does not hold, the cards still match when their phrasal verbs
// share the leading word ("give up" on "give in"). Hints never matter.
func IsPlayable(card entities.Card, top *entities.Card) bool {
	if top == nil {
		return true
	}

	switch {
	case len(card.Matches) > 0 && len(top.Matches) > 0:
		for _, name := range card.Matches {
			if slices.Contains(top.Matches, name) {
				return true
			}
		}
	case len(card.Matches) > 0:
		if slices.Contains(card.Matches, top.Category) {
			return true
		}
	case len(top.Matches) > 0:
		if slices.Contains(top.Matches, card.Category) {
			return true
		}
	default:
		if card.Category == top.Category {
			return true
		}
	}

	return firstWord(card.Word) != "" && firstWord(card.Word) == firstWord(top.Word)
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
