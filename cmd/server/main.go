package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hellenika/api/internal/cache"
	"github.com/hellenika/api/internal/config"
	"github.com/hellenika/api/internal/database"
	"github.com/hellenika/api/internal/handler"
	"github.com/hellenika/api/internal/logger"
	"github.com/hellenika/api/internal/reference"
	"github.com/hellenika/api/internal/service"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to migrate database", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Redis is optional; autocomplete falls back to the in-process index.
	var redisCache *cache.RedisCache
	if cfg.RedisURL != "" {
		redisCache, err = cache.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn("failed to connect to redis, continuing without it", "error", err)
			redisCache = nil
		} else {
			defer redisCache.Close()
		}
	}

	ds := reference.Default()
	lessons := service.NewLessonService(db, ds, log)
	autocomplete := cache.NewAutocomplete(redisCache, log)
	go loadVocabulary(ctx, autocomplete, ds, log)

	router := handler.NewRouter(db, lessons, autocomplete, log, handler.RouterConfig{
		CORSOrigins:    cfg.CORSOrigins,
		AdminJWTSecret: cfg.AdminJWTSecret,
	})
	if cfg.AdminJWTSecret == "" {
		log.Warn("ADMIN_JWT_SECRET is not set, lesson admin routes are open")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("API server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

// loadVocabulary indexes every reference word for autocomplete. Greetings
// are priority suggestions.
func loadVocabulary(ctx context.Context, autocomplete *cache.Autocomplete, ds *reference.Datasets, log *logger.Logger) {
	for _, lang := range ds.Languages {
		general := make([]string, 0, len(ds.Vocabulary)+len(ds.Mnemonics))
		for _, w := range ds.Vocabulary {
			general = append(general, w.Word)
		}
		for _, m := range ds.Mnemonics {
			general = append(general, m.Word)
		}
		priority := make([]string, 0, len(ds.Greetings))
		for _, g := range ds.Greetings {
			priority = append(priority, g.Word)
		}

		if err := autocomplete.Index(ctx, lang.Code, general, priority); err != nil {
			log.Warn("failed to index vocabulary in redis", "language", lang.Code, "error", err)
			continue
		}
		log.Info("vocabulary indexed", "language", lang.Code, "words", len(general), "priority", len(priority))
	}
}
