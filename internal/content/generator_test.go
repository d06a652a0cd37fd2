package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenika/api/internal/reference"
)

var allLessonTypes = []string{
	reference.LessonTypeAlphabet,
	reference.LessonTypeGreetings,
	reference.LessonTypeSpacedRepetition,
	reference.LessonTypeMnemonics,
	reference.LessonTypeContextual,
	reference.LessonTypeVisual,
	"unknown",
}

func newTestGenerator() (*Generator, *reference.Datasets) {
	ds := reference.Default()
	return NewGenerator(ds), ds
}

func TestGenerate_IsPure(t *testing.T) {
	g, ds := newTestGenerator()

	for _, lt := range allLessonTypes {
		t.Run(lt, func(t *testing.T) {
			words := ds.Vocabulary[20:60]
			first, err := json.Marshal(g.Generate(lt, words, "A1"))
			require.NoError(t, err)
			second, err := json.Marshal(g.Generate(lt, words, "A1"))
			require.NoError(t, err)

			assert.JSONEq(t, string(first), string(second))
		})
	}
}

func TestGenerate_Alphabet(t *testing.T) {
	g, ds := newTestGenerator()

	doc := g.Generate(reference.LessonTypeAlphabet, ds.Vocabulary[:5], "A1")

	assert.Len(t, doc.Letters, 24)
	assert.Empty(t, doc.Words)
	assert.Len(t, doc.Activities, 4)
	assert.Equal(t, "alpha", doc.Letters[0].Name)
}

func TestGenerate_AlphabetLettersAreCopied(t *testing.T) {
	g, ds := newTestGenerator()

	doc := g.Generate(reference.LessonTypeAlphabet, nil, "A1")
	doc.Letters[0].Name = "changed"

	assert.Equal(t, "alpha", ds.Alphabet[0].Name)
	assert.Equal(t, "alpha", g.Generate(reference.LessonTypeAlphabet, nil, "A1").Letters[0].Name)
}

func TestGenerate_SpacedRepetition(t *testing.T) {
	g, _ := newTestGenerator()

	doc := g.Generate(reference.LessonTypeSpacedRepetition, []reference.Word{
		{Word: "και", Translation: "and", Transliteration: "kai"},
	}, "A1")

	raw, err := json.Marshal(doc.Words)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"word":"και","translation":"and","transliteration":"kai","difficulty":1}]`, string(raw))
}

func TestGenerate_MnemonicsAlwaysHaveMnemonic(t *testing.T) {
	g, ds := newTestGenerator()
	words := ds.WordsFor(reference.LessonTypeMnemonics)

	doc := g.Generate(reference.LessonTypeMnemonics, words, "A1")

	require.Len(t, doc.Words, len(words))
	for _, w := range doc.Words {
		require.NotNil(t, w.Mnemonic, w.Word)
		assert.NotEmpty(t, *w.Mnemonic, w.Word)
	}
	assert.Equal(t, "Think of a CALm person saying 'Ah!' - they're feeling good (kala)", *doc.Words[0].Mnemonic)
}

func TestGenerate_MnemonicFallback(t *testing.T) {
	g, _ := newTestGenerator()

	doc := g.Generate(reference.LessonTypeMnemonics, []reference.Word{
		{Word: "σπίτι", Translation: "house", Transliteration: "spiti"},
	}, "A1")

	require.Len(t, doc.Words, 1)
	assert.Equal(t, "Associate spiti with house", *doc.Words[0].Mnemonic)
	assert.NotEmpty(t, doc.Example)
	assert.NotEmpty(t, doc.Benefits)
}

func TestGenerate_Contextual(t *testing.T) {
	g, _ := newTestGenerator()

	doc := g.Generate(reference.LessonTypeContextual, []reference.Word{
		{Word: "νερό", Translation: "water", Transliteration: "nero", Context: "At restaurants"},
		{Word: "τρένο", Translation: "train", Transliteration: "treno"},
	}, "A1")

	require.Len(t, doc.Words, 2)
	assert.Equal(t, "At restaurants", *doc.Words[0].Context)
	assert.Equal(t, NoContext, *doc.Words[1].Context)
}

func TestGenerate_VisualMissingHintsAreEmpty(t *testing.T) {
	g, _ := newTestGenerator()

	doc := g.Generate(reference.LessonTypeVisual, []reference.Word{
		{Word: "ήλιος", Translation: "sun", Transliteration: "ilios"},
		{Word: "γάτα", Translation: "cat", Transliteration: "gata"},
	}, "A1")

	require.Len(t, doc.Words, 2)
	assert.NotEmpty(t, *doc.Words[0].VisualHint)
	assert.NotEmpty(t, *doc.Words[0].VisualizationText)

	raw, err := json.Marshal(doc.Words[1])
	require.NoError(t, err)
	assert.JSONEq(t, `{"word":"γάτα","translation":"cat","transliteration":"gata","visual_hint":"","visualization_text":""}`, string(raw))
}

func TestGenerate_Greetings(t *testing.T) {
	g, ds := newTestGenerator()

	doc := g.Generate(reference.LessonTypeGreetings, ds.Greetings, "A1")

	require.Len(t, doc.Words, len(ds.Greetings))
	assert.Len(t, doc.ExampleSituations, 4)
	for _, w := range doc.Words {
		require.NotNil(t, w.Context)
		require.NotNil(t, w.Category)
		assert.NotEmpty(t, *w.Category)
	}
}

func TestGenerate_UnknownTypeKeepsWords(t *testing.T) {
	g, _ := newTestGenerator()
	words := []reference.Word{{Word: "και", Translation: "and", Transliteration: "kai"}}

	doc := g.Generate("popular_words", words, "A1")

	assert.Empty(t, doc.Introduction)
	assert.Empty(t, doc.Description)
	assert.Empty(t, doc.Activities)
	assert.Equal(t, []WordEntry{{Word: "και", Translation: "and", Transliteration: "kai"}}, doc.Words)
}

func TestGenerate_UnknownTypeKeepsContextAndCategory(t *testing.T) {
	g, _ := newTestGenerator()
	words := []reference.Word{
		{Word: "νερό", Translation: "water", Transliteration: "nero", Context: "At restaurants", Category: "food"},
		{Word: "και", Translation: "and", Transliteration: "kai"},
	}

	doc := g.Generate("popular_words", words, "A1")

	require.Len(t, doc.Words, 2)
	require.NotNil(t, doc.Words[0].Context)
	require.NotNil(t, doc.Words[0].Category)
	assert.Equal(t, "At restaurants", *doc.Words[0].Context)
	assert.Equal(t, "food", *doc.Words[0].Category)
	assert.Nil(t, doc.Words[1].Context)
	assert.Nil(t, doc.Words[1].Category)
}

func TestGenerate_EmptyWords(t *testing.T) {
	g, _ := newTestGenerator()

	doc := g.Generate(reference.LessonTypeContextual, nil, "A1")

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"words":[]`)
}
