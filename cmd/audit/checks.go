package main

import (
	"fmt"

	"github.com/hellenika/api/internal/content"
	"github.com/hellenika/api/internal/model"
	"github.com/hellenika/api/internal/reference"
	"github.com/hellenika/api/internal/service"
)

type Issue struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Details string `json:"details"`
}

// auditSet checks the lesson set as a whole: one row per canonical title.
func auditSet(lessons []model.Lesson) []Issue {
	var issues []Issue

	survivors, removed := service.PartitionDuplicates(lessons)
	for _, id := range removed {
		issues = append(issues, Issue{ID: id, Type: "DUPLICATE_OR_UNKNOWN", Details: "not the first row of a canonical title"})
	}

	present := make(map[string]bool, len(survivors))
	for _, l := range survivors {
		present[l.Title] = true
	}
	for _, cfg := range service.LessonConfigs {
		if !present[cfg.Title] {
			issues = append(issues, Issue{Title: cfg.Title, Type: "MISSING_LESSON", Details: "canonical lesson absent"})
		}
	}
	return issues
}

// auditLesson checks one stored lesson against its normalized detail.
func auditLesson(lesson model.Lesson, detail *service.LessonDetail) []Issue {
	var issues []Issue
	add := func(typ, details string) {
		issues = append(issues, Issue{ID: lesson.ID, Title: lesson.Title, Type: typ, Details: details})
	}

	if _, malformed := content.Normalize(lesson.Content, content.NormalizeOptions{}); malformed {
		add("MALFORMED_CONTENT", "stored content is not a JSON document")
	}

	words, _ := detail.Content["words"].([]content.WordEntry)
	if lesson.LessonType != reference.LessonTypeAlphabet && len(words) == 0 {
		add("EMPTY_WORDS", "lesson has no practice words")
	}

	for i, w := range words {
		if w.Word == "" {
			add("MISSING_WORD", fmt.Sprintf("word %d has no text", i))
		}
		if lesson.LessonType == reference.LessonTypeMnemonics && (w.Mnemonic == nil || *w.Mnemonic == "") {
			add("MISSING_MNEMONIC", fmt.Sprintf("%q has no mnemonic", w.Word))
		}
	}

	if lesson.LessonType == reference.LessonTypeMnemonics && !lesson.PhraseBacked() {
		add("UNVERSIONED_MNEMONICS", fmt.Sprintf("content_version %d keeps mnemonic words in content", lesson.ContentVersion))
	}
	return issues
}
