package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/hellenika/api/internal/content"
	"github.com/hellenika/api/internal/logger"
	"github.com/hellenika/api/internal/model"
	"github.com/hellenika/api/internal/reference"
)

var (
	ErrLanguageNotFound = errors.New("language not found")
	ErrLessonNotFound   = errors.New("lesson not found")
)

// LessonConfig describes one canonical lesson of a language.
type LessonConfig struct {
	Title       string
	Description string
	Level       string
	Category    string
	LessonType  string
}

// LessonConfigs is the ordered set of lessons every language is seeded with.
// Titles are the deduplication key within a language.
var LessonConfigs = []LessonConfig{
	{
		Title:       "Greek Alphabet",
		Description: "Learn the Greek alphabet and pronunciation",
		Level:       "A1",
		Category:    "Fundamentals",
		LessonType:  reference.LessonTypeAlphabet,
	},
	{
		Title:       "Basic Greetings",
		Description: "Essential Greek greetings and farewells",
		Level:       "A1",
		Category:    "Conversation",
		LessonType:  reference.LessonTypeGreetings,
	},
	{
		Title:       "Spaced Repetition Practice",
		Description: "Review and reinforce vocabulary using scientifically-proven spaced repetition techniques",
		Level:       "A1",
		Category:    "Memory Techniques",
		LessonType:  reference.LessonTypeSpacedRepetition,
	},
	{
		Title:       "Mnemonic Devices for Greek",
		Description: "Learn to create memorable associations for Greek vocabulary using mnemonic devices",
		Level:       "A1",
		Category:    "Memory Techniques",
		LessonType:  reference.LessonTypeMnemonics,
	},
	{
		Title:       "Contextual Learning",
		Description: "Master Greek vocabulary by learning words in real-life situations",
		Level:       "A1",
		Category:    "Vocabulary",
		LessonType:  reference.LessonTypeContextual,
	},
	{
		Title:       "Visual Association Learning",
		Description: "Master Greek vocabulary through powerful visual associations and memory techniques",
		Level:       "A1",
		Category:    "Memory Techniques",
		LessonType:  reference.LessonTypeVisual,
	},
}

func canonicalTitles() map[string]bool {
	titles := make(map[string]bool, len(LessonConfigs))
	for _, cfg := range LessonConfigs {
		titles[cfg.Title] = true
	}
	return titles
}

// LessonSummary is a lesson without its content document.
type LessonSummary struct {
	ID          int64     `json:"id"`
	LanguageID  int64     `json:"language_id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Level       string    `json:"level"`
	Category    string    `json:"category"`
	LessonType  string    `json:"lesson_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type LessonDetail struct {
	LessonSummary
	Content content.Content `json:"content"`
	Phrases []model.Phrase  `json:"phrases"`
}

func summarize(l *model.Lesson) LessonSummary {
	return LessonSummary{
		ID:          l.ID,
		LanguageID:  l.LanguageID,
		Title:       l.Title,
		Slug:        l.Slug,
		Description: l.Description,
		Level:       l.Level,
		Category:    l.Category,
		LessonType:  l.LessonType,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

type LessonService struct {
	db  *gorm.DB
	ds  *reference.Datasets
	gen *content.Generator
	log *logger.Logger
}

func NewLessonService(db *gorm.DB, ds *reference.Datasets, log *logger.Logger) *LessonService {
	return &LessonService{
		db:  db,
		ds:  ds,
		gen: content.NewGenerator(ds),
		log: log,
	}
}

func (s *LessonService) ListLanguages(ctx context.Context) ([]model.Language, error) {
	var languages []model.Language
	if err := s.db.WithContext(ctx).Order("id").Find(&languages).Error; err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	if languages == nil {
		languages = []model.Language{}
	}
	return languages, nil
}

// FindLanguage looks a language up by its two-letter code.
func (s *LessonService) FindLanguage(ctx context.Context, code string) (*model.Language, error) {
	var lang model.Language
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&lang).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("language %q: %w", code, ErrLanguageNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find language %q: %w", code, err)
	}
	return &lang, nil
}

func (s *LessonService) GetLessonsByLanguage(ctx context.Context, code string) ([]LessonSummary, error) {
	lang, err := s.FindLanguage(ctx, code)
	if err != nil {
		return nil, err
	}

	var lessons []model.Lesson
	err = s.db.WithContext(ctx).
		Omit("content").
		Where("language_id = ?", lang.ID).
		Order("id").
		Find(&lessons).Error
	if err != nil {
		return nil, fmt.Errorf("list lessons for %q: %w", code, err)
	}

	summaries := make([]LessonSummary, 0, len(lessons))
	for i := range lessons {
		summaries = append(summaries, summarize(&lessons[i]))
	}
	return summaries, nil
}

func (s *LessonService) GetLessonDetail(ctx context.Context, code string, lessonID int64) (*LessonDetail, error) {
	lang, err := s.FindLanguage(ctx, code)
	if err != nil {
		return nil, err
	}

	var lesson model.Lesson
	err = s.db.WithContext(ctx).
		Where("id = ? AND language_id = ?", lessonID, lang.ID).
		First(&lesson).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lesson %d in %q: %w", lessonID, code, ErrLessonNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find lesson %d: %w", lessonID, err)
	}

	var phrases []model.Phrase
	if err := s.db.WithContext(ctx).Where("lesson_id = ?", lesson.ID).Order("id").Find(&phrases).Error; err != nil {
		return nil, fmt.Errorf("load phrases for lesson %d: %w", lesson.ID, err)
	}
	if phrases == nil {
		phrases = []model.Phrase{}
	}

	opts := content.NormalizeOptions{PhraseBacked: lesson.PhraseBacked()}
	if opts.PhraseBacked {
		opts.PhraseWords = phraseWords(phrases)
	}
	doc, malformed := content.Normalize(lesson.Content, opts)
	if malformed {
		s.log.Warn("lesson content could not be parsed", "lesson_id", lesson.ID, "language", code)
	}

	return &LessonDetail{
		LessonSummary: summarize(&lesson),
		Content:       doc,
		Phrases:       phrases,
	}, nil
}

func phraseWords(phrases []model.Phrase) []content.WordEntry {
	words := make([]content.WordEntry, 0, len(phrases))
	for i := range phrases {
		mnemonic := phrases[i].Mnemonic()
		words = append(words, content.WordEntry{
			Word:            phrases[i].Text,
			Translation:     phrases[i].Translation,
			Transliteration: phrases[i].Transliteration,
			Mnemonic:        &mnemonic,
		})
	}
	return words
}
