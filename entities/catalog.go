package entities

// CardTemplate is a single entry of the static verbs catalog.
type CardTemplate struct {
	PhrasalVerb  string   `json:"phrasal_verb"`
	RelatedWords []string `json:"related_words"`
}

// Category groups templates that share a color and an optional
// cross-category match rule.
type Category struct {
	Name    string         `json:"name"`
	Color   string         `json:"color"`
	Matches []string       `json:"matches,omitempty"`
	Cards   []CardTemplate `json:"cards"`
}

// Catalog is loaded once at startup and never mutated afterwards.
type Catalog struct {
	Categories []Category `json:"categories"`
}

// Size returns the total number of card templates across all categories,
// which is also the size of every freshly built deck.
func (c *Catalog) Size() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Cards)
	}
	return n
}
