package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hellenika/api/internal/cache"
	"github.com/hellenika/api/internal/logger"
	"github.com/hellenika/api/internal/middleware"
	"github.com/hellenika/api/internal/service"
)

const (
	defaultSuggestLimit = 8
	maxSuggestLimit     = 20
	prioritySuggestions = 3
)

type LanguageHandler struct {
	lessons      *service.LessonService
	autocomplete *cache.Autocomplete
	log          *logger.Logger
}

func NewLanguageHandler(lessons *service.LessonService, autocomplete *cache.Autocomplete, log *logger.Logger) *LanguageHandler {
	return &LanguageHandler{lessons: lessons, autocomplete: autocomplete, log: log}
}

func (h *LanguageHandler) List(c *gin.Context) {
	languages, err := h.lessons.ListLanguages(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, languages)
}

// Suggest returns vocabulary completions for the q prefix. Greetings are
// listed as priority suggestions.
func (h *LanguageHandler) Suggest(c *gin.Context) {
	code := c.Param("code")
	query := cache.NormalizeWord(c.Query("q"))

	limit := defaultSuggestLimit
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= maxSuggestLimit {
			limit = parsed
		}
	}

	if query == "" || h.autocomplete == nil {
		c.JSON(http.StatusOK, gin.H{"suggestions": cache.Suggestions{Priority: []string{}, General: []string{}}})
		return
	}

	if _, err := h.lessons.FindLanguage(c.Request.Context(), code); err != nil {
		respondError(c, h.log, err)
		return
	}

	middleware.RecordSuggest(code)
	suggestions := h.autocomplete.Suggest(c.Request.Context(), code, query, limit, prioritySuggestions)
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
