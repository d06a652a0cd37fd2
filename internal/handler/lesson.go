package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hellenika/api/internal/logger"
	"github.com/hellenika/api/internal/middleware"
	"github.com/hellenika/api/internal/model"
	"github.com/hellenika/api/internal/service"
)

// DefaultLanguage is the language served by the fixed Greek routes.
const DefaultLanguage = "el"

type LessonHandler struct {
	lessons *service.LessonService
	log     *logger.Logger
}

func NewLessonHandler(lessons *service.LessonService, log *logger.Logger) *LessonHandler {
	return &LessonHandler{lessons: lessons, log: log}
}

// List returns lesson summaries for a language.
func (h *LessonHandler) List(c *gin.Context) {
	lessons, err := h.lessons.GetLessonsByLanguage(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lessons)
}

// Get returns one lesson with normalized content and its phrases.
func (h *LessonHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}

	detail, err := h.lessons.GetLessonDetail(c.Request.Context(), c.Param("code"), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *LessonHandler) Initialize(c *gin.Context) {
	h.runForLanguage(c, "initialize", c.Param("code"), h.lessons.Initialize)
}

func (h *LessonHandler) Reinitialize(c *gin.Context) {
	h.runForLanguage(c, "reinitialize", c.Param("code"), h.lessons.Reinitialize)
}

// CleanupDuplicates removes duplicate Greek lessons.
func (h *LessonHandler) CleanupDuplicates(c *gin.Context) {
	h.runForLanguage(c, "cleanup", DefaultLanguage, h.lessons.Cleanup)
}

// InitializeGreek creates the Greek language if needed and seeds it.
func (h *LessonHandler) InitializeGreek(c *gin.Context) {
	lessons, err := h.lessons.InitializeLanguage(c.Request.Context(), DefaultLanguage)
	middleware.RecordLessonAdmin("initialize_language", DefaultLanguage, len(lessons), err)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lessons)
}

type languageOperation func(ctx context.Context, languageID int64) ([]model.Lesson, error)

func (h *LessonHandler) runForLanguage(c *gin.Context, operation, code string, op languageOperation) {
	ctx := c.Request.Context()

	lang, err := h.lessons.FindLanguage(ctx, code)
	if err != nil {
		h.respondError(c, err)
		return
	}

	lessons, err := op(ctx, lang.ID)
	middleware.RecordLessonAdmin(operation, code, len(lessons), err)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lessons)
}

func (h *LessonHandler) respondError(c *gin.Context, err error) {
	respondError(c, h.log, err)
}

func respondError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrLanguageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrLessonNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		log.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
