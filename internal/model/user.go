package model

import "time"

// User and Progress back the learner-facing parts of the web app. The
// lesson service does not read them.
type User struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email          string    `gorm:"not null;uniqueIndex;size:255" json:"email"`
	Username       string    `gorm:"not null;uniqueIndex;size:100" json:"username"`
	HashedPassword string    `gorm:"size:255" json:"-"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

type Progress struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64      `gorm:"not null;index" json:"user_id"`
	LessonID    int64      `gorm:"not null;index" json:"lesson_id"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	Score       *int       `json:"score,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (Progress) TableName() string {
	return "progress"
}
