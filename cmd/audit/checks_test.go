package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"github.com/hellenika/api/internal/content"
	"github.com/hellenika/api/internal/model"
	"github.com/hellenika/api/internal/service"
)

func issueTypes(issues []Issue) []string {
	var out []string
	for _, i := range issues {
		out = append(out, i.Type)
	}
	return out
}

func TestAuditSet(t *testing.T) {
	var lessons []model.Lesson
	for i, cfg := range service.LessonConfigs[:5] {
		lessons = append(lessons, model.Lesson{ID: int64(i + 1), Title: cfg.Title})
	}
	lessons = append(lessons, model.Lesson{ID: 9, Title: "Greek Alphabet"})

	issues := auditSet(lessons)

	assert.ElementsMatch(t, []string{"DUPLICATE_OR_UNKNOWN", "MISSING_LESSON"}, issueTypes(issues))
}

func TestAuditLesson_CleanMnemonics(t *testing.T) {
	mnemonic := "Think of a TORnado"
	lesson := model.Lesson{
		ID:             4,
		LessonType:     "mnemonics",
		ContentVersion: model.ContentVersionPhrases,
		Content:        datatypes.JSON(`{"introduction":"x"}`),
	}
	detail := &service.LessonDetail{Content: content.Content{
		"words": []content.WordEntry{{Word: "τώρα", Mnemonic: &mnemonic}},
	}}

	assert.Empty(t, auditLesson(lesson, detail))
}

func TestAuditLesson_Problems(t *testing.T) {
	empty := ""
	lesson := model.Lesson{
		ID:             4,
		LessonType:     "mnemonics",
		ContentVersion: model.ContentVersionEmbedded,
		Content:        datatypes.JSON(`"broken"`),
	}
	detail := &service.LessonDetail{Content: content.Content{
		"words": []content.WordEntry{{Word: "", Mnemonic: &empty}},
	}}

	assert.ElementsMatch(t,
		[]string{"MALFORMED_CONTENT", "MISSING_WORD", "MISSING_MNEMONIC", "UNVERSIONED_MNEMONICS"},
		issueTypes(auditLesson(lesson, detail)))
}

func TestAuditLesson_EmptyWords(t *testing.T) {
	detail := &service.LessonDetail{Content: content.Content{"words": []content.WordEntry{}}}

	assert.Equal(t, []string{"EMPTY_WORDS"},
		issueTypes(auditLesson(model.Lesson{LessonType: "visual", Content: datatypes.JSON(`{}`)}, detail)))
	assert.Empty(t, auditLesson(model.Lesson{LessonType: "alphabet", Content: datatypes.JSON(`{}`)}, detail))
}
