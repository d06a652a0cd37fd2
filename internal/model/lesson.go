package model

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hellenika/api/internal/reference"
)

// Content schema versions. Version 0 marks rows written before versioning.
const (
	ContentVersionLegacy   = 0
	ContentVersionEmbedded = 1
	ContentVersionPhrases  = 2
)

type Lesson struct {
	ID             int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	LanguageID     int64          `gorm:"not null;index" json:"language_id"`
	Title          string         `gorm:"not null;size:200;index" json:"title"`
	Slug           string         `gorm:"size:200" json:"slug"`
	Description    string         `gorm:"size:500" json:"description"`
	Level          string         `gorm:"size:10;index" json:"level"`
	Category       string         `gorm:"size:50;index" json:"category"`
	LessonType     string         `gorm:"size:50;index" json:"lesson_type"`
	Content        datatypes.JSON `json:"content,omitempty"`
	ContentVersion int            `gorm:"not null;default:0" json:"content_version"`
	Phrases        []Phrase       `gorm:"foreignKey:LessonID" json:"-"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (Lesson) TableName() string {
	return "lessons"
}

func (l *Lesson) BeforeSave(tx *gorm.DB) error {
	if l.Slug == "" && l.Title != "" {
		l.Slug = slug.Make(l.Title)
	}
	return nil
}

// PhraseBacked reports whether the lesson's practice words live in the
// phrases table rather than inside Content. Unversioned mnemonic lessons
// predate the split and are read the new way.
func (l *Lesson) PhraseBacked() bool {
	if l.ContentVersion == ContentVersionLegacy {
		return l.LessonType == reference.LessonTypeMnemonics
	}
	return l.ContentVersion >= ContentVersionPhrases
}
