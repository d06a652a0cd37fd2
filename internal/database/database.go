package database

import (
	"fmt"
	"strings"

	"github.com/hellenika/api/internal/config"
	"github.com/hellenika/api/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const lessonTitleIndex = "idx_lessons_language_title"

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel(cfg.DBLogLevel)),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	return db, nil
}

// Dialector picks the gorm driver for a database URL. "sqlite://path" and
// "sqlite:path" open a SQLite file; postgres URLs and DSNs go to postgres.
func Dialector(url string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(url, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(url, "sqlite://")), nil
	case strings.HasPrefix(url, "sqlite:"):
		return sqlite.Open(strings.TrimPrefix(url, "sqlite:")), nil
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"), strings.Contains(url, "host="):
		return postgres.Open(url), nil
	case url == "":
		return nil, fmt.Errorf("database url is empty")
	default:
		return nil, fmt.Errorf("unsupported database url %q", url)
	}
}

func logLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Language{},
		&model.Lesson{},
		&model.Phrase{},
		&model.User{},
		&model.Progress{},
	)
	if err != nil {
		return err
	}

	if _, err := EnsureLessonTitleIndex(db); err != nil {
		return err
	}
	return nil
}

// EnsureLessonTitleIndex creates the unique (language_id, title) index when
// the lessons table holds no duplicate titles. It reports whether the index
// exists afterwards; duplicates are left for the cleanup routine.
func EnsureLessonTitleIndex(db *gorm.DB) (bool, error) {
	if db.Migrator().HasIndex(&model.Lesson{}, lessonTitleIndex) {
		return true, nil
	}

	var duplicates int64
	err := db.Raw(`SELECT COUNT(*) FROM (
		SELECT language_id, title FROM lessons
		GROUP BY language_id, title HAVING COUNT(*) > 1
	) d`).Scan(&duplicates).Error
	if err != nil {
		return false, fmt.Errorf("count duplicate lessons: %w", err)
	}
	if duplicates > 0 {
		return false, nil
	}

	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS " + lessonTitleIndex + " ON lessons(language_id, title)").Error; err != nil {
		return false, fmt.Errorf("create %s: %w", lessonTitleIndex, err)
	}
	return true, nil
}
