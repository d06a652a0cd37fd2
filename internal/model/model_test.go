package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestLesson_PhraseBacked(t *testing.T) {
	tests := []struct {
		name   string
		lesson Lesson
		backed bool
	}{
		{"legacy mnemonics", Lesson{LessonType: "mnemonics"}, true},
		{"legacy visual", Lesson{LessonType: "visual"}, false},
		{"embedded mnemonics", Lesson{LessonType: "mnemonics", ContentVersion: ContentVersionEmbedded}, false},
		{"phrase backed", Lesson{LessonType: "contextual", ContentVersion: ContentVersionPhrases}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.backed, tt.lesson.PhraseBacked())
		})
	}
}

func TestLesson_BeforeSaveSetsSlug(t *testing.T) {
	l := &Lesson{Title: "Mnemonic Devices for Greek"}

	assert.NoError(t, l.BeforeSave(nil))
	assert.Equal(t, "mnemonic-devices-for-greek", l.Slug)

	l.Title = "Renamed"
	assert.NoError(t, l.BeforeSave(nil))
	assert.Equal(t, "mnemonic-devices-for-greek", l.Slug)
}

func TestPhrase_Mnemonic(t *testing.T) {
	assert.Equal(t, "", (&Phrase{}).Mnemonic())
	assert.Equal(t, "", (&Phrase{ExtraData: datatypes.JSON(`not json`)}).Mnemonic())
	assert.Equal(t, "", (&Phrase{ExtraData: datatypes.JSON(`{"audio":"x"}`)}).Mnemonic())
	assert.Equal(t, "Think META", (&Phrase{ExtraData: datatypes.JSON(`{"mnemonic":"Think META"}`)}).Mnemonic())
}
