package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenika/api/internal/model"
)

func TestPartitionDuplicates(t *testing.T) {
	lessons := []model.Lesson{
		{ID: 1, Title: "Greek Alphabet"},
		{ID: 2, Title: "Basic Greetings"},
		{ID: 3, Title: "Greek Alphabet"},
		{ID: 4, Title: "Verbs"},
		{ID: 5, Title: "Basic Greetings"},
	}

	survivors, removed := PartitionDuplicates(lessons)

	assert.Equal(t, []string{"Greek Alphabet", "Basic Greetings"}, titles(survivors))
	assert.Equal(t, int64(1), survivors[0].ID)
	assert.Equal(t, int64(2), survivors[1].ID)
	assert.Equal(t, []int64{3, 4, 5}, removed)
}

func TestPartitionDuplicates_Empty(t *testing.T) {
	survivors, removed := PartitionDuplicates(nil)
	assert.Empty(t, survivors)
	assert.Empty(t, removed)
}

func TestCleanup_ConvergesToOneLessonPerTitle(t *testing.T) {
	db := setupUnindexedDB(t)
	svc := newTestService(db)
	ctx := context.Background()
	lang := createGreek(t, db)

	original, err := svc.Initialize(ctx, lang.ID)
	require.NoError(t, err)

	// Simulate a racing second initialization and a stray lesson.
	dupe := model.Lesson{LanguageID: lang.ID, Title: "Mnemonic Devices for Greek", LessonType: "mnemonics"}
	require.NoError(t, db.Create(&dupe).Error)
	require.NoError(t, db.Create(&model.Phrase{Text: "x", LanguageID: lang.ID, LessonID: &dupe.ID}).Error)
	require.NoError(t, db.Create(&model.Lesson{LanguageID: lang.ID, Title: "Basic Greetings"}).Error)
	require.NoError(t, db.Create(&model.Lesson{LanguageID: lang.ID, Title: "Old Lesson"}).Error)

	survivors, err := svc.Cleanup(ctx, lang.ID)
	require.NoError(t, err)
	assert.Equal(t, canonicalOrder, titles(survivors))
	for i := range original {
		assert.Equal(t, original[i].ID, survivors[i].ID)
	}

	var lessons, orphaned int64
	require.NoError(t, db.Model(&model.Lesson{}).Count(&lessons).Error)
	require.NoError(t, db.Model(&model.Phrase{}).Where("lesson_id = ?", dupe.ID).Count(&orphaned).Error)
	assert.Equal(t, int64(6), lessons)
	assert.Zero(t, orphaned)

	again, err := svc.Cleanup(ctx, lang.ID)
	require.NoError(t, err)
	assert.Equal(t, titles(survivors), titles(again))
}

func TestCleanup_CreatesTitleIndex(t *testing.T) {
	db := setupUnindexedDB(t)
	svc := newTestService(db)
	lang := createGreek(t, db)

	require.NoError(t, db.Create(&model.Lesson{LanguageID: lang.ID, Title: "Greek Alphabet"}).Error)
	require.NoError(t, db.Create(&model.Lesson{LanguageID: lang.ID, Title: "Greek Alphabet"}).Error)

	_, err := svc.Cleanup(context.Background(), lang.ID)
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasIndex(&model.Lesson{}, "idx_lessons_language_title"))
	assert.Error(t, db.Create(&model.Lesson{LanguageID: lang.ID, Title: "Greek Alphabet"}).Error)
}

func TestCleanup_LeavesOtherLanguagesAlone(t *testing.T) {
	db := setupUnindexedDB(t)
	svc := newTestService(db)
	lang := createGreek(t, db)
	other := model.Language{Code: "fr", Name: "French"}
	require.NoError(t, db.Create(&other).Error)

	require.NoError(t, db.Create(&model.Lesson{LanguageID: other.ID, Title: "Greek Alphabet"}).Error)
	require.NoError(t, db.Create(&model.Lesson{LanguageID: other.ID, Title: "Greek Alphabet"}).Error)
	require.NoError(t, db.Create(&model.Lesson{LanguageID: lang.ID, Title: "Greek Alphabet"}).Error)

	survivors, err := svc.Cleanup(context.Background(), lang.ID)
	require.NoError(t, err)
	assert.Len(t, survivors, 1)

	var remaining int64
	require.NoError(t, db.Model(&model.Lesson{}).Where("language_id = ?", other.ID).Count(&remaining).Error)
	assert.Equal(t, int64(2), remaining)
}

func TestCleanup_UnknownLanguage(t *testing.T) {
	svc := newTestService(setupUnindexedDB(t))

	_, err := svc.Cleanup(context.Background(), 7)
	assert.ErrorIs(t, err, ErrLanguageNotFound)
}
