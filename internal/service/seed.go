package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hellenika/api/internal/content"
	"github.com/hellenika/api/internal/database"
	"github.com/hellenika/api/internal/model"
	"github.com/hellenika/api/internal/reference"
)

// Initialize creates every canonical lesson the language is missing. Lessons
// that already exist are returned unchanged. Each lesson is committed on its
// own, so a failure leaves earlier lessons in place.
func (s *LessonService) Initialize(ctx context.Context, languageID int64) ([]model.Lesson, error) {
	lang, err := s.languageByID(ctx, languageID)
	if err != nil {
		return nil, err
	}

	lessons := make([]model.Lesson, 0, len(LessonConfigs))
	for _, cfg := range LessonConfigs {
		lesson, created, err := s.seedLesson(ctx, lang, cfg)
		if err != nil {
			return nil, fmt.Errorf("seed %q: %w", cfg.Title, err)
		}
		if created {
			s.log.Info("lesson created", "language", lang.Code, "title", lesson.Title, "lesson_id", lesson.ID)
		} else {
			s.log.Debug("lesson already exists", "language", lang.Code, "title", lesson.Title, "lesson_id", lesson.ID)
		}
		lessons = append(lessons, *lesson)
	}
	return lessons, nil
}

// Reinitialize drops every lesson of the language, with the phrases attached
// to them, and seeds the canonical set again.
func (s *LessonService) Reinitialize(ctx context.Context, languageID int64) ([]model.Lesson, error) {
	lang, err := s.languageByID(ctx, languageID)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lessonIDs := tx.Model(&model.Lesson{}).Select("id").Where("language_id = ?", lang.ID)
		if err := tx.Where("lesson_id IN (?)", lessonIDs).Delete(&model.Phrase{}).Error; err != nil {
			return fmt.Errorf("delete phrases: %w", err)
		}
		res := tx.Where("language_id = ?", lang.ID).Delete(&model.Lesson{})
		if res.Error != nil {
			return fmt.Errorf("delete lessons: %w", res.Error)
		}
		s.log.Info("lessons deleted", "language", lang.Code, "count", res.RowsAffected)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reinitialize %q: %w", lang.Code, err)
	}

	return s.Initialize(ctx, lang.ID)
}

// InitializeLanguage creates the language from the reference table when it
// is missing, adds its standalone starter phrases and seeds its lessons. It
// returns every lesson of the language.
func (s *LessonService) InitializeLanguage(ctx context.Context, code string) ([]model.Lesson, error) {
	lang, err := s.ensureLanguage(ctx, code)
	if err != nil {
		return nil, err
	}

	for _, sp := range s.ds.Phrases[lang.Code] {
		if sp.LessonTitle != "" {
			continue
		}
		phrase := starterPhrase(lang.ID, nil, sp)
		err := s.db.WithContext(ctx).
			Where("language_id = ? AND text = ? AND lesson_id IS NULL", lang.ID, sp.Text).
			FirstOrCreate(&phrase).Error
		if err != nil {
			return nil, fmt.Errorf("create phrase %q: %w", sp.Text, err)
		}
	}

	if _, err := s.Initialize(ctx, lang.ID); err != nil {
		return nil, err
	}

	var lessons []model.Lesson
	if err := s.db.WithContext(ctx).Where("language_id = ?", lang.ID).Order("id").Find(&lessons).Error; err != nil {
		return nil, fmt.Errorf("list lessons for %q: %w", lang.Code, err)
	}
	return lessons, nil
}

func (s *LessonService) ensureLanguage(ctx context.Context, code string) (*model.Language, error) {
	lang, err := s.FindLanguage(ctx, code)
	if err == nil {
		return lang, nil
	}
	if !errors.Is(err, ErrLanguageNotFound) {
		return nil, err
	}

	ref, ok := s.ds.Language(code)
	if !ok {
		return nil, err
	}
	lang = &model.Language{
		Code:       ref.Code,
		Name:       ref.Name,
		NativeName: ref.NativeName,
		Flag:       ref.Flag,
		RTL:        ref.RTL,
	}
	if err := s.db.WithContext(ctx).Where("code = ?", ref.Code).FirstOrCreate(lang).Error; err != nil {
		return nil, fmt.Errorf("create language %q: %w", code, err)
	}
	s.log.Info("language created", "language", lang.Code, "language_id", lang.ID)
	return lang, nil
}

func (s *LessonService) languageByID(ctx context.Context, id int64) (*model.Language, error) {
	var lang model.Language
	err := s.db.WithContext(ctx).First(&lang, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("language %d: %w", id, ErrLanguageNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find language %d: %w", id, err)
	}
	return &lang, nil
}

// seedLesson finds the lesson titled cfg.Title or creates it together with
// its phrases. The boolean reports whether a row was created.
func (s *LessonService) seedLesson(ctx context.Context, lang *model.Language, cfg LessonConfig) (*model.Lesson, bool, error) {
	var lesson model.Lesson
	created := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("language_id = ? AND title = ?", lang.ID, cfg.Title).Order("id").First(&lesson).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		doc := s.gen.Generate(cfg.LessonType, s.wordsFor(cfg.LessonType), cfg.Level)
		raw, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode content: %w", err)
		}

		lesson = model.Lesson{
			LanguageID:     lang.ID,
			Title:          cfg.Title,
			Description:    cfg.Description,
			Level:          cfg.Level,
			Category:       cfg.Category,
			LessonType:     cfg.LessonType,
			Content:        datatypes.JSON(raw),
			ContentVersion: model.ContentVersionEmbedded,
		}
		if cfg.LessonType == reference.LessonTypeMnemonics {
			lesson.ContentVersion = model.ContentVersionPhrases
		}
		if err := tx.Create(&lesson).Error; err != nil {
			return err
		}

		phrases, err := s.lessonPhrases(lang, &lesson, cfg, doc)
		if err != nil {
			return err
		}
		if len(phrases) > 0 {
			if err := tx.Create(&phrases).Error; err != nil {
				return fmt.Errorf("create phrases: %w", err)
			}
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &lesson, created, nil
}

func (s *LessonService) wordsFor(lessonType string) []reference.Word {
	switch lessonType {
	case reference.LessonTypeAlphabet:
		return nil
	case reference.LessonTypeGreetings:
		return s.ds.Greetings
	default:
		return s.ds.WordsFor(lessonType)
	}
}

// lessonPhrases builds the phrase rows owned by a new lesson: one per word
// for phrase-backed lessons, plus the starter phrases assigned to its title.
func (s *LessonService) lessonPhrases(lang *model.Language, lesson *model.Lesson, cfg LessonConfig, doc content.Document) ([]model.Phrase, error) {
	var phrases []model.Phrase

	if lesson.PhraseBacked() {
		for _, w := range doc.Words {
			mnemonic := ""
			if w.Mnemonic != nil {
				mnemonic = *w.Mnemonic
			}
			extra, err := json.Marshal(model.PhraseExtra{Mnemonic: mnemonic})
			if err != nil {
				return nil, fmt.Errorf("encode phrase extra: %w", err)
			}
			phrases = append(phrases, model.Phrase{
				Text:            w.Word,
				Transliteration: w.Transliteration,
				Translation:     w.Translation,
				Level:           cfg.Level,
				Category:        cfg.Category,
				LanguageID:      lang.ID,
				LessonID:        &lesson.ID,
				ExtraData:       datatypes.JSON(extra),
			})
		}
	}

	for _, sp := range s.ds.Phrases[lang.Code] {
		if sp.LessonTitle == cfg.Title {
			phrases = append(phrases, starterPhrase(lang.ID, &lesson.ID, sp))
		}
	}
	return phrases, nil
}

func starterPhrase(languageID int64, lessonID *int64, sp reference.StarterPhrase) model.Phrase {
	return model.Phrase{
		Text:            sp.Text,
		Transliteration: sp.Transliteration,
		Translation:     sp.Translation,
		Level:           sp.Level,
		Category:        sp.Category,
		LanguageID:      languageID,
		LessonID:        lessonID,
	}
}

// Cleanup keeps the first row of each canonical title in the language and
// deletes later duplicates and lessons with other titles, along with their
// phrases. It returns the surviving lessons.
func (s *LessonService) Cleanup(ctx context.Context, languageID int64) ([]model.Lesson, error) {
	lang, err := s.languageByID(ctx, languageID)
	if err != nil {
		return nil, err
	}

	var lessons []model.Lesson
	if err := s.db.WithContext(ctx).Where("language_id = ?", lang.ID).Order("id").Find(&lessons).Error; err != nil {
		return nil, fmt.Errorf("load lessons for %q: %w", lang.Code, err)
	}

	survivors, removed := PartitionDuplicates(lessons)
	if len(removed) > 0 {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("lesson_id IN ?", removed).Delete(&model.Phrase{}).Error; err != nil {
				return fmt.Errorf("delete phrases: %w", err)
			}
			if err := tx.Where("id IN ?", removed).Delete(&model.Lesson{}).Error; err != nil {
				return fmt.Errorf("delete lessons: %w", err)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("cleanup %q: %w", lang.Code, err)
		}
	}
	s.log.Info("lesson cleanup finished", "language", lang.Code, "kept", len(survivors), "removed", len(removed))

	indexed, err := database.EnsureLessonTitleIndex(s.db.WithContext(ctx))
	if err != nil {
		s.log.Warn("could not create lesson title index", "error", err)
	} else if !indexed {
		s.log.Warn("lesson title index skipped, duplicates remain in other languages")
	}

	return survivors, nil
}

// PartitionDuplicates splits lessons, assumed to be in query order, into
// the first row of each canonical title and the ids of everything else.
func PartitionDuplicates(lessons []model.Lesson) ([]model.Lesson, []int64) {
	canonical := canonicalTitles()
	seen := make(map[string]bool, len(canonical))

	survivors := make([]model.Lesson, 0, len(canonical))
	var removed []int64
	for _, l := range lessons {
		if !canonical[l.Title] || seen[l.Title] {
			removed = append(removed, l.ID)
			continue
		}
		seen[l.Title] = true
		survivors = append(survivors, l)
	}
	return survivors, removed
}
