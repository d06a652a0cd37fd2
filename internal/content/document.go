// Package content builds and normalizes the JSON documents stored in
// lessons.content.
package content

import "github.com/hellenika/api/internal/reference"

// Document is the content of a freshly generated lesson.
type Document struct {
	Introduction      string             `json:"introduction"`
	Description       string             `json:"description"`
	Activities        []string           `json:"activities"`
	Words             []WordEntry        `json:"words"`
	Letters           []reference.Letter `json:"letters,omitempty"`
	ExampleSituations []string           `json:"example_situations"`
	Example           string             `json:"example,omitempty"`
	Benefits          string             `json:"benefits,omitempty"`
	Level             string             `json:"level,omitempty"`
}

// WordEntry always carries the three base fields. The optional fields are
// pointers so that an empty hint is still emitted while an absent one is not.
type WordEntry struct {
	Word              string  `json:"word"`
	Translation       string  `json:"translation"`
	Transliteration   string  `json:"transliteration"`
	Mnemonic          *string `json:"mnemonic,omitempty"`
	Context           *string `json:"context,omitempty"`
	Category          *string `json:"category,omitempty"`
	VisualHint        *string `json:"visual_hint,omitempty"`
	VisualizationText *string `json:"visualization_text,omitempty"`
	Difficulty        *int    `json:"difficulty,omitempty"`
}

func baseEntry(w reference.Word) WordEntry {
	return WordEntry{
		Word:            w.Word,
		Translation:     w.Translation,
		Transliteration: w.Transliteration,
	}
}

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}
