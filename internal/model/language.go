package model

import "time"

type Language struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Code       string    `gorm:"not null;uniqueIndex;size:2" json:"code"`
	Name       string    `gorm:"not null;size:50" json:"name"`
	NativeName string    `gorm:"size:50" json:"native_name"`
	Flag       string    `gorm:"size:10" json:"flag"`
	RTL        bool      `gorm:"column:rtl;default:false" json:"rtl"`
	Lessons    []Lesson  `gorm:"foreignKey:LanguageID" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Language) TableName() string {
	return "languages"
}
