package content

import (
	"fmt"

	"github.com/hellenika/api/internal/reference"
)

const (
	// NoContext is emitted for contextual words whose source has no context.
	NoContext = "No context available"

	// DefaultDifficulty seeds every spaced repetition word.
	DefaultDifficulty = 1
)

// Generator assembles lesson content. It only reads the reference tables it
// was built with, so Generate is pure.
type Generator struct {
	alphabet  []reference.Letter
	greetings map[string]reference.Word
	mnemonics map[string]string
	visuals   map[string]reference.VisualHint
}

func NewGenerator(ds *reference.Datasets) *Generator {
	return &Generator{
		alphabet:  ds.Alphabet,
		greetings: ds.GreetingIndex(),
		mnemonics: ds.MnemonicIndex(),
		visuals:   ds.Visuals,
	}
}

// Generate builds the content document for lessonType. Unknown types yield
// an empty shell around the unchanged word list.
func (g *Generator) Generate(lessonType string, words []reference.Word, level string) Document {
	doc := Document{
		Activities:        []string{},
		Words:             make([]WordEntry, 0, len(words)),
		ExampleSituations: []string{},
		Level:             level,
	}

	switch lessonType {
	case reference.LessonTypeAlphabet:
		doc.Introduction = "Learn the Greek alphabet and pronunciation"
		doc.Description = "Master the building blocks of the Greek language by learning the alphabet and its sounds"
		doc.Activities = []string{
			"Listen and repeat each letter sound",
			"Practice writing the letters",
			"Match letters with their sounds",
			"Identify letters in common words",
		}
		doc.Letters = append([]reference.Letter(nil), g.alphabet...)

	case reference.LessonTypeGreetings:
		doc.Introduction = "Essential Greek greetings and farewells"
		doc.Description = "Learn common Greek expressions for greeting people and saying goodbye"
		doc.Activities = []string{
			"Practice pronunciation of each greeting",
			"Role-play greeting scenarios",
			"Match greetings with appropriate situations",
			"Complete dialogue exercises",
		}
		doc.ExampleSituations = []string{
			"Meeting someone for the first time",
			"Greeting a friend in the morning",
			"Saying goodbye after a meeting",
			"Wishing someone a good night",
		}
		for _, w := range words {
			entry := baseEntry(w)
			ctx, cat := w.Context, w.Category
			if ref, ok := g.greetings[w.Word]; ok {
				ctx, cat = ref.Context, ref.Category
			}
			entry.Context = strPtr(ctx)
			entry.Category = strPtr(cat)
			doc.Words = append(doc.Words, entry)
		}

	case reference.LessonTypeSpacedRepetition:
		doc.Introduction = "Spaced Repetition Practice"
		doc.Description = "Review and reinforce vocabulary using scientifically-proven spaced repetition techniques"
		doc.Activities = []string{
			"Review previously learned words",
			"Practice recall with flashcards",
			"Complete fill-in-the-blank exercises",
			"Test your memory with timed challenges",
		}
		for _, w := range words {
			entry := baseEntry(w)
			entry.Difficulty = intPtr(DefaultDifficulty)
			doc.Words = append(doc.Words, entry)
		}

	case reference.LessonTypeMnemonics:
		doc.Introduction = "Mnemonic devices are memory aids that help you remember words through associations."
		doc.Description = "Mnemonics are memory aids that help link new information to existing knowledge through vivid imagery, stories, or patterns. Each word below includes a mnemonic device to help you remember its meaning and pronunciation."
		doc.Activities = []string{
			"Create memorable associations",
			"Practice visualization techniques",
			"Connect words with similar sounds",
			"Build memory palaces",
		}
		doc.Example = `For the Greek word "νερό" (water), you might imagine a "narrow" stream of water to remember the pronunciation.`
		doc.Benefits = "Makes learning more engaging and can significantly improve recall by creating strong mental connections."
		for _, w := range words {
			entry := baseEntry(w)
			entry.Mnemonic = strPtr(g.mnemonicFor(w))
			doc.Words = append(doc.Words, entry)
		}

	case reference.LessonTypeContextual:
		doc.Introduction = "Learn Greek in Context"
		doc.Description = "Master Greek vocabulary by learning words in their natural context"
		doc.Activities = []string{
			"Study words in context",
			"Practice with real-life scenarios",
			"Complete contextual exercises",
			"Build sentences with new words",
		}
		for _, w := range words {
			entry := baseEntry(w)
			ctx := w.Context
			if ctx == "" {
				ctx = NoContext
			}
			entry.Context = strPtr(ctx)
			doc.Words = append(doc.Words, entry)
		}

	case reference.LessonTypeVisual:
		doc.Introduction = "Visual Learning Techniques"
		doc.Description = "Learn Greek vocabulary through visual associations and memory techniques"
		doc.Activities = []string{
			"Create visual associations",
			"Practice with image-based flashcards",
			"Draw and sketch word meanings",
			"Build visual memory palaces",
		}
		for _, w := range words {
			entry := baseEntry(w)
			hint := g.visuals[w.Word]
			entry.VisualHint = strPtr(hint.Hint)
			entry.VisualizationText = strPtr(hint.Visualization)
			doc.Words = append(doc.Words, entry)
		}

	default:
		for _, w := range words {
			entry := baseEntry(w)
			if w.Context != "" {
				entry.Context = strPtr(w.Context)
			}
			if w.Category != "" {
				entry.Category = strPtr(w.Category)
			}
			doc.Words = append(doc.Words, entry)
		}
	}

	return doc
}

// mnemonicFor never returns an empty string.
func (g *Generator) mnemonicFor(w reference.Word) string {
	if m, ok := g.mnemonics[w.Word]; ok && m != "" {
		return m
	}
	return fmt.Sprintf("Associate %s with %s", w.Transliteration, w.Translation)
}
