package content

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Content is a normalized lesson document as served to clients.
type Content map[string]any

// NormalizeOptions selects where practice words come from.
type NormalizeOptions struct {
	// PhraseBacked discards embedded words and uses PhraseWords instead.
	PhraseBacked bool
	PhraseWords  []WordEntry
}

// EmptyContent is the document substituted for unreadable content.
func EmptyContent() Content {
	return Content{
		"introduction":       "",
		"description":        "",
		"activities":         []any{},
		"words":              []WordEntry{},
		"example_situations": []any{},
	}
}

// Normalize coerces stored lesson content into its canonical shape. The
// second return value reports whether the stored value could not be parsed
// and was replaced by EmptyContent.
func Normalize(raw []byte, opts NormalizeOptions) (Content, bool) {
	doc, ok := decode(raw)
	malformed := !ok
	if !ok {
		doc = EmptyContent()
	}

	if _, isList := doc["activities"].([]any); !isList {
		doc["activities"] = []any{}
	}

	if opts.PhraseBacked {
		words := opts.PhraseWords
		if words == nil {
			words = []WordEntry{}
		}
		doc["words"] = words
		delete(doc, "practice_words")
		return doc, malformed
	}

	if practice, ok := doc["practice_words"]; ok {
		if isEmptyWords(doc["words"]) {
			doc["words"] = practice
		}
		delete(doc, "practice_words")
	}
	doc["words"] = coerceWords(doc["words"])

	return doc, malformed
}

// decode accepts a JSON object, or a JSON string holding a JSON object.
// Bytes that are not JSON at all are treated as a raw string.
func decode(raw []byte) (Content, bool) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		v = string(raw)
	}

	if s, ok := v.(string); ok {
		var inner map[string]any
		if err := json.Unmarshal([]byte(s), &inner); err != nil || inner == nil {
			return nil, false
		}
		return Content(inner), true
	}

	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return nil, false
	}
	return Content(m), true
}

// isEmptyWords reports whether a stored words value carries nothing:
// absent, null, an empty list or an empty string.
func isEmptyWords(v any) bool {
	switch w := v.(type) {
	case nil:
		return true
	case []any:
		return len(w) == 0
	case string:
		return w == ""
	default:
		return false
	}
}

func coerceWords(v any) []WordEntry {
	switch words := v.(type) {
	case []WordEntry:
		return words
	case []any:
		out := make([]WordEntry, 0, len(words))
		for _, item := range words {
			out = append(out, coerceWord(item))
		}
		return out
	case string:
		return splitLegacyWords(words)
	default:
		return []WordEntry{}
	}
}

func coerceWord(item any) WordEntry {
	m, ok := item.(map[string]any)
	if !ok {
		return WordEntry{Word: stringify(item)}
	}

	entry := WordEntry{
		Word:            stringify(m["word"]),
		Translation:     stringify(m["translation"]),
		Transliteration: stringify(m["transliteration"]),
	}
	if v, ok := m["mnemonic"]; ok {
		entry.Mnemonic = strPtr(stringify(v))
	}
	if v, ok := m["context"]; ok {
		entry.Context = strPtr(stringify(v))
	}
	return entry
}

// splitLegacyWords reads the "word:explanation;word:explanation" format
// written by early revisions. Explanations are dropped.
func splitLegacyWords(s string) []WordEntry {
	out := []WordEntry{}
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		word, _, _ := strings.Cut(part, ":")
		out = append(out, WordEntry{Word: word})
	}
	return out
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
