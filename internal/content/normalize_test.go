package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_ParsesObject(t *testing.T) {
	raw := []byte(`{"introduction":"intro","activities":["a"],"words":[{"word":"και","translation":"and","transliteration":"kai","difficulty":1}]}`)

	doc, malformed := Normalize(raw, NormalizeOptions{})

	assert.False(t, malformed)
	assert.Equal(t, "intro", doc["introduction"])
	assert.Equal(t, []any{"a"}, doc["activities"])
	assert.Equal(t, []WordEntry{{Word: "και", Translation: "and", Transliteration: "kai"}}, doc["words"])
}

func TestNormalize_ParsesStringEncodedObject(t *testing.T) {
	inner := `{"introduction":"intro","words":[]}`
	raw, err := json.Marshal(inner)
	require.NoError(t, err)

	doc, malformed := Normalize(raw, NormalizeOptions{})

	assert.False(t, malformed)
	assert.Equal(t, "intro", doc["introduction"])
}

func TestNormalize_UnparseableStringYieldsEmptyDocument(t *testing.T) {
	for name, raw := range map[string][]byte{
		"json string": []byte(`"not a document"`),
		"raw text":    []byte(`intro: hello`),
		"null":        []byte(`null`),
		"empty":       nil,
		"array":       []byte(`[1,2]`),
	} {
		t.Run(name, func(t *testing.T) {
			doc, malformed := Normalize(raw, NormalizeOptions{})

			assert.True(t, malformed)
			assert.Equal(t, "", doc["introduction"])
			assert.Equal(t, "", doc["description"])
			assert.Equal(t, []any{}, doc["activities"])
			assert.Equal(t, []WordEntry{}, doc["words"])
			assert.Equal(t, []any{}, doc["example_situations"])
		})
	}
}

func TestNormalize_ActivitiesNotAList(t *testing.T) {
	doc, _ := Normalize([]byte(`{"activities":"read"}`), NormalizeOptions{})
	assert.Equal(t, []any{}, doc["activities"])

	doc, _ = Normalize([]byte(`{}`), NormalizeOptions{})
	assert.Equal(t, []any{}, doc["activities"])
}

func TestNormalize_AliasesPracticeWords(t *testing.T) {
	raw := []byte(`{"practice_words":[{"word":"νερό","translation":"water","transliteration":"nero","context":"At restaurants","visual":"ignored"}]}`)

	doc, _ := Normalize(raw, NormalizeOptions{})

	ctx := "At restaurants"
	assert.Equal(t, []WordEntry{{Word: "νερό", Translation: "water", Transliteration: "nero", Context: &ctx}}, doc["words"])
	assert.NotContains(t, doc, "practice_words")
}

func TestNormalize_PracticeWordsDoNotOverrideWords(t *testing.T) {
	raw := []byte(`{"words":[{"word":"a"}],"practice_words":[{"word":"b"}]}`)

	doc, _ := Normalize(raw, NormalizeOptions{})

	assert.Equal(t, []WordEntry{{Word: "a"}}, doc["words"])
}

func TestNormalize_EmptyWordsFallBackToPracticeWords(t *testing.T) {
	for name, raw := range map[string][]byte{
		"empty list":   []byte(`{"words":[],"practice_words":[{"word":"νερό","translation":"water","transliteration":"nero"}]}`),
		"empty string": []byte(`{"words":"","practice_words":[{"word":"νερό","translation":"water","transliteration":"nero"}]}`),
		"null":         []byte(`{"words":null,"practice_words":[{"word":"νερό","translation":"water","transliteration":"nero"}]}`),
	} {
		t.Run(name, func(t *testing.T) {
			doc, _ := Normalize(raw, NormalizeOptions{})

			assert.Equal(t, []WordEntry{{Word: "νερό", Translation: "water", Transliteration: "nero"}}, doc["words"])
			assert.NotContains(t, doc, "practice_words")
		})
	}
}

func TestNormalize_FillsMissingBaseFields(t *testing.T) {
	raw := []byte(`{"words":[{"word":"καλά","mnemonic":"calm"},"γεια",{"translation":"only"}]}`)

	doc, _ := Normalize(raw, NormalizeOptions{})

	mnemonic := "calm"
	assert.Equal(t, []WordEntry{
		{Word: "καλά", Mnemonic: &mnemonic},
		{Word: "γεια"},
		{Translation: "only"},
	}, doc["words"])
}

func TestNormalize_LegacyWordString(t *testing.T) {
	doc, _ := Normalize([]byte(`{"words":"και:and;να:to;"}`), NormalizeOptions{})

	assert.Equal(t, []WordEntry{{Word: "και"}, {Word: "να"}}, doc["words"])
}

func TestNormalize_PhraseBackedIgnoresEmbeddedWords(t *testing.T) {
	raw := []byte(`{"introduction":"mn","words":[{"word":"embedded"}],"practice_words":[{"word":"legacy"}]}`)
	mnemonic := "Think of a TORnado"
	phrases := []WordEntry{{Word: "τώρα", Translation: "now", Transliteration: "tora", Mnemonic: &mnemonic}}

	doc, malformed := Normalize(raw, NormalizeOptions{PhraseBacked: true, PhraseWords: phrases})

	assert.False(t, malformed)
	assert.Equal(t, phrases, doc["words"])
	assert.NotContains(t, doc, "practice_words")
	assert.Equal(t, "mn", doc["introduction"])
}

func TestNormalize_PhraseBackedWithoutPhrases(t *testing.T) {
	doc, _ := Normalize([]byte(`{"words":[{"word":"embedded"}]}`), NormalizeOptions{PhraseBacked: true})

	assert.Equal(t, []WordEntry{}, doc["words"])
}
