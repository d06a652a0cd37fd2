package handler

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/hellenika/api/internal/cache"
	"github.com/hellenika/api/internal/logger"
	"github.com/hellenika/api/internal/middleware"
	"github.com/hellenika/api/internal/service"
)

type RouterConfig struct {
	CORSOrigins    []string
	AdminJWTSecret string
}

// NewRouter wires every route of the lesson API.
func NewRouter(db *gorm.DB, lessons *service.LessonService, autocomplete *cache.Autocomplete, log *logger.Logger, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.MetricsMiddleware())

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	healthHandler := NewHealthHandler(db)
	languageHandler := NewLanguageHandler(lessons, autocomplete, log)
	lessonHandler := NewLessonHandler(lessons, log)
	admin := middleware.AdminMiddleware(cfg.AdminJWTSecret)

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/languages", languageHandler.List)
	r.GET("/languages/:code/words/suggest", languageHandler.Suggest)

	lessonsGroup := r.Group("/lessons")
	{
		lessonsGroup.POST("/initialize-greek", admin, lessonHandler.InitializeGreek)
		lessonsGroup.DELETE("/cleanup-duplicates", admin, lessonHandler.CleanupDuplicates)

		lessonsGroup.GET("/:code", lessonHandler.List)
		lessonsGroup.GET("/:code/:id", lessonHandler.Get)
		lessonsGroup.POST("/:code/initialize", admin, lessonHandler.Initialize)
		lessonsGroup.POST("/:code/reinitialize", admin, lessonHandler.Reinitialize)
	}

	return r
}
