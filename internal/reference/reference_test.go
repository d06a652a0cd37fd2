package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_AlphabetHasOneRowPerLetter(t *testing.T) {
	ds := Default()

	require.Len(t, ds.Alphabet, 24)
	assert.Equal(t, "Σ σ ς", ds.Alphabet[17].Letter)
}

func TestWordsFor_MatchesPositionalRanges(t *testing.T) {
	ds := Default()
	require.Len(t, ds.Vocabulary, 100)

	tests := []struct {
		lessonType string
		start, end int
	}{
		{LessonTypeSpacedRepetition, 0, 25},
		{LessonTypeMnemonics, 25, 50},
		{LessonTypeContextual, 50, 75},
		{LessonTypeVisual, 75, 100},
	}

	for _, tt := range tests {
		t.Run(tt.lessonType, func(t *testing.T) {
			assert.Equal(t, ds.Vocabulary[tt.start:tt.end], ds.WordsFor(tt.lessonType))
		})
	}
}

func TestWordsFor_UntaggedTypesAreEmpty(t *testing.T) {
	ds := Default()

	assert.Empty(t, ds.WordsFor(LessonTypeAlphabet))
	assert.Empty(t, ds.WordsFor(LessonTypeGreetings))
	assert.Empty(t, ds.WordsFor("unknown"))
}

func TestLanguage(t *testing.T) {
	ds := Default()

	el, ok := ds.Language("el")
	require.True(t, ok)
	assert.Equal(t, "Greek", el.Name)
	assert.Equal(t, "Ελληνικά", el.NativeName)
	assert.False(t, el.RTL)

	_, ok = ds.Language("xx")
	assert.False(t, ok)
}

func TestIndexes(t *testing.T) {
	ds := Default()

	mn := ds.MnemonicIndex()
	assert.Len(t, mn, len(ds.Mnemonics))
	assert.Contains(t, mn["καλά"], "kala")

	gr := ds.GreetingIndex()
	assert.Equal(t, "informal farewell", gr["αντίο"].Category)
}
