package main

import (
	"context"
	"flag"
	"time"

	"github.com/hellenika/api/internal/config"
	"github.com/hellenika/api/internal/database"
	"github.com/hellenika/api/internal/logger"
	"github.com/hellenika/api/internal/reference"
	"github.com/hellenika/api/internal/service"
)

func main() {
	language := flag.String("language", "el", "Language code to create and seed")
	reinit := flag.Bool("reinit", false, "Delete the language's lessons before seeding")
	flag.Parse()

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

	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to migrate database", "error", err)
	}

	ctx := context.Background()
	startTime := time.Now()
	svc := service.NewLessonService(db, reference.Default(), log)

	lessons, err := svc.InitializeLanguage(ctx, *language)
	if err != nil {
		log.Fatal("seeding failed", "language", *language, "error", err)
	}

	if *reinit {
		lang, err := svc.FindLanguage(ctx, *language)
		if err != nil {
			log.Fatal("language lookup failed", "language", *language, "error", err)
		}
		lessons, err = svc.Reinitialize(ctx, lang.ID)
		if err != nil {
			log.Fatal("reinitialize failed", "language", *language, "error", err)
		}
	}

	for _, l := range lessons {
		log.Info("lesson", "id", l.ID, "title", l.Title, "type", l.LessonType, "content_version", l.ContentVersion)
	}
	log.Info("seeding complete", "language", *language, "lessons", len(lessons), "elapsed", time.Since(startTime))
}
