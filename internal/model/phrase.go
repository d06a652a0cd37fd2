package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Phrase struct {
	ID              int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Text            string         `gorm:"type:text" json:"text"`
	Transliteration string         `gorm:"type:text" json:"transliteration"`
	Translation     string         `gorm:"type:text" json:"translation"`
	Level           string         `gorm:"size:10" json:"level"`
	Category        string         `gorm:"size:50" json:"category"`
	LanguageID      int64          `gorm:"not null;index" json:"language_id"`
	LessonID        *int64         `gorm:"index" json:"lesson_id"`
	AudioURL        *string        `gorm:"size:200" json:"audio_url,omitempty"`
	ExtraData       datatypes.JSON `json:"extra_data,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (Phrase) TableName() string {
	return "phrases"
}

// PhraseExtra is the known subset of Phrase.ExtraData.
type PhraseExtra struct {
	Mnemonic string `json:"mnemonic,omitempty"`
}

// Mnemonic returns extra_data.mnemonic, or "" when absent or unreadable.
func (p *Phrase) Mnemonic() string {
	if len(p.ExtraData) == 0 {
		return ""
	}
	var extra PhraseExtra
	if err := json.Unmarshal(p.ExtraData, &extra); err != nil {
		return ""
	}
	return extra.Mnemonic
}
