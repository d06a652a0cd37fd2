package main

import (
	"context"
	"flag"
	"time"

	"github.com/hellenika/api/internal/config"
	"github.com/hellenika/api/internal/database"
	"github.com/hellenika/api/internal/logger"
	"github.com/hellenika/api/internal/model"
	"github.com/hellenika/api/internal/reference"
	"github.com/hellenika/api/internal/service"
)

func main() {
	language := flag.String("language", "el", "Language code to clean up")
	dryRun := flag.Bool("dry-run", false, "Show what would be deleted without deleting")
	flag.Parse()

	startTime := time.Now()
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}

	// Migrate runs before cleanup; the unique index is skipped while
	// duplicates exist and created by Cleanup afterwards.
	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to migrate database", "error", err)
	}

	ctx := context.Background()
	svc := service.NewLessonService(db, reference.Default(), log)

	lang, err := svc.FindLanguage(ctx, *language)
	if err != nil {
		log.Fatal("language lookup failed", "language", *language, "error", err)
	}

	if *dryRun {
		var lessons []model.Lesson
		if err := db.WithContext(ctx).Where("language_id = ?", lang.ID).Order("id").Find(&lessons).Error; err != nil {
			log.Fatal("failed to load lessons", "error", err)
		}
		survivors, removed := service.PartitionDuplicates(lessons)
		for _, l := range survivors {
			log.Info("[DRY RUN] keep", "id", l.ID, "title", l.Title)
		}
		for _, id := range removed {
			log.Info("[DRY RUN] delete", "id", id)
		}
		log.Info("[DRY RUN] no changes made", "keep", len(survivors), "delete", len(removed))
		return
	}

	survivors, err := svc.Cleanup(ctx, lang.ID)
	if err != nil {
		log.Fatal("cleanup failed", "error", err)
	}
	log.Info("cleanup complete", "language", lang.Code, "lessons", len(survivors), "elapsed", time.Since(startTime))
}
