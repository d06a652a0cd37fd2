// Package reference holds the fixed linguistic datasets lessons are generated
// from. Values returned by Default are never mutated after construction.
package reference

// Lesson type tags.
const (
	LessonTypeAlphabet         = "alphabet"
	LessonTypeGreetings        = "greetings"
	LessonTypeSpacedRepetition = "spaced_repetition"
	LessonTypeMnemonics        = "mnemonics"
	LessonTypeContextual       = "contextual"
	LessonTypeVisual           = "visual"
)

// Word is a vocabulary record. LessonType tags the lesson the word is
// intended for; Context and Category are optional.
type Word struct {
	Word            string `json:"word"`
	Translation     string `json:"translation"`
	Transliteration string `json:"transliteration"`
	Context         string `json:"context,omitempty"`
	Category        string `json:"category,omitempty"`
	LessonType      string `json:"-"`
}

type Letter struct {
	Letter          string `json:"letter"`
	Name            string `json:"name"`
	Transliteration string `json:"transliteration"`
	Pronunciation   string `json:"pronunciation"`
	ExampleWord     string `json:"example_word"`
}

type Mnemonic struct {
	Word            string
	Translation     string
	Transliteration string
	Mnemonic        string
}

type VisualHint struct {
	Hint          string
	Visualization string
}

type Language struct {
	Code       string
	Name       string
	NativeName string
	Flag       string
	RTL        bool
}

// StarterPhrase is a standalone phrase created with its language. When
// LessonTitle is set the phrase is linked to that lesson once it exists.
type StarterPhrase struct {
	Text            string
	Transliteration string
	Translation     string
	Level           string
	Category        string
	LessonTitle     string
}

// Datasets bundles every reference table for one target language.
type Datasets struct {
	Alphabet   []Letter
	Greetings  []Word
	Mnemonics  []Mnemonic
	Vocabulary []Word
	Visuals    map[string]VisualHint
	Languages  []Language
	Phrases    map[string][]StarterPhrase
}

// Default returns the Greek datasets.
func Default() *Datasets {
	return &Datasets{
		Alphabet:   greekAlphabet(),
		Greetings:  greekGreetings(),
		Mnemonics:  greekMnemonics(),
		Vocabulary: greekVocabulary(),
		Visuals:    greekVisuals(),
		Languages:  supportedLanguages(),
		Phrases: map[string][]StarterPhrase{
			"el": greekStarterPhrases(),
		},
	}
}

// WordsFor returns the vocabulary partition tagged with lessonType, in
// dataset order.
func (d *Datasets) WordsFor(lessonType string) []Word {
	var out []Word
	for _, w := range d.Vocabulary {
		if w.LessonType == lessonType {
			out = append(out, w)
		}
	}
	return out
}

// Language returns the reference entry for a language code.
func (d *Datasets) Language(code string) (Language, bool) {
	for _, l := range d.Languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// MnemonicIndex maps word text to its mnemonic.
func (d *Datasets) MnemonicIndex() map[string]string {
	idx := make(map[string]string, len(d.Mnemonics))
	for _, m := range d.Mnemonics {
		idx[m.Word] = m.Mnemonic
	}
	return idx
}

// GreetingIndex maps greeting text to its reference record.
func (d *Datasets) GreetingIndex() map[string]Word {
	idx := make(map[string]Word, len(d.Greetings))
	for _, g := range d.Greetings {
		idx[g.Word] = g
	}
	return idx
}
