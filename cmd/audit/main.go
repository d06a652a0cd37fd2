package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hellenika/api/internal/config"
	"github.com/hellenika/api/internal/database"
	"github.com/hellenika/api/internal/logger"
	"github.com/hellenika/api/internal/model"
	"github.com/hellenika/api/internal/reference"
	"github.com/hellenika/api/internal/service"
)

func main() {
	workers := flag.Int("workers", 4, "Number of parallel workers")
	language := flag.String("language", "el", "Language to audit")
	outputFile := flag.String("output", "audit_results.json", "Output file for results")
	flag.Parse()

	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	dialector, err := database.Dialector(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("invalid database url", "error", err)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}

	ctx := context.Background()
	svc := service.NewLessonService(db, reference.Default(), log)

	lang, err := svc.FindLanguage(ctx, *language)
	if err != nil {
		log.Fatal("failed to find language", "language", *language, "error", err)
	}

	var lessons []model.Lesson
	if err := db.Where("language_id = ?", lang.ID).Order("id ASC").Find(&lessons).Error; err != nil {
		log.Fatal("failed to load lessons", "error", err)
	}

	log.Info("auditing lessons", "language", lang.Code, "lessons", len(lessons), "workers", *workers)
	startTime := time.Now()

	issues := auditSet(lessons)
	issues = append(issues, runWorkers(ctx, svc, lang.Code, lessons, *workers)...)

	report := buildReport(lang.Code, len(lessons), issues, time.Since(startTime))
	fmt.Printf("\n=== Audit Complete ===\n")
	fmt.Printf("Total lessons: %d\n", len(lessons))
	fmt.Printf("Issues found: %d\n", len(issues))
	fmt.Printf("Time elapsed: %s\n", report.Summary.Elapsed)

	fmt.Printf("\n=== Issues by Type ===\n")
	for typ, typeIssues := range report.IssuesByType {
		fmt.Printf("%s: %d\n", typ, len(typeIssues))
	}

	if err := writeReport(*outputFile, report); err != nil {
		log.Error("failed to write audit report", "path", *outputFile, "error", err)
	} else {
		log.Info("audit report saved", "path", *outputFile)
	}

	if len(issues) > 0 {
		log.Sync()
		os.Exit(1)
	}
}

// runWorkers loads each lesson's detail on a pool of workers and audits it.
func runWorkers(ctx context.Context, svc *service.LessonService, code string, lessons []model.Lesson, workers int) []Issue {
	if workers < 1 {
		workers = 1
	}

	lessonChan := make(chan model.Lesson, workers*2)
	issueChan := make(chan Issue, 100)

	var processed int64
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for lesson := range lessonChan {
				detail, err := svc.GetLessonDetail(ctx, code, lesson.ID)
				if err != nil {
					issueChan <- Issue{ID: lesson.ID, Title: lesson.Title, Type: "LOAD_ERROR", Details: err.Error()}
				} else {
					for _, issue := range auditLesson(lesson, detail) {
						issueChan <- issue
					}
				}
				atomic.AddInt64(&processed, 1)
			}
		}()
	}

	var issues []Issue
	done := make(chan struct{})
	go func() {
		for issue := range issueChan {
			issues = append(issues, issue)
		}
		close(done)
	}()

	for _, lesson := range lessons {
		lessonChan <- lesson
	}
	close(lessonChan)
	wg.Wait()
	close(issueChan)
	<-done

	fmt.Printf("Processed %d lessons\n", atomic.LoadInt64(&processed))
	return issues
}
