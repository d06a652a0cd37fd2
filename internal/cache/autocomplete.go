package cache

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/hellenika/api/internal/logger"
)

// Suggestions splits autocomplete results into priority words, shown first,
// and the remaining vocabulary.
type Suggestions struct {
	Priority []string `json:"priority"`
	General  []string `json:"general"`
}

type wordSet struct {
	general  []string
	priority []string
}

// Autocomplete serves prefix lookups over lesson vocabulary. Redis is used
// when configured; an in-process sorted index answers when it is absent or
// failing.
type Autocomplete struct {
	redis *RedisCache
	log   *logger.Logger

	mu    sync.RWMutex
	words map[string]*wordSet
}

func NewAutocomplete(redisCache *RedisCache, log *logger.Logger) *Autocomplete {
	return &Autocomplete{
		redis: redisCache,
		log:   log,
		words: make(map[string]*wordSet),
	}
}

// Index adds words for a language. Priority words are also part of the
// general set.
func (a *Autocomplete) Index(ctx context.Context, language string, general, priority []string) error {
	a.mu.Lock()
	set, ok := a.words[language]
	if !ok {
		set = &wordSet{}
		a.words[language] = set
	}
	set.general = mergeSorted(set.general, general)
	set.general = mergeSorted(set.general, priority)
	set.priority = mergeSorted(set.priority, priority)
	a.mu.Unlock()

	if a.redis == nil {
		return nil
	}
	if err := a.redis.AddWordsToAutocomplete(ctx, language, append(append([]string{}, general...), priority...)); err != nil {
		return err
	}
	return a.redis.AddPriorityWords(ctx, language, priority)
}

// Suggest returns at most limit words starting with prefix, priority words
// first and never repeated in the general list.
func (a *Autocomplete) Suggest(ctx context.Context, language, prefix string, limit int, priorityLimit int) Suggestions {
	priority := a.lookup(ctx, language, prefix, priorityLimit, true)
	if len(priority) > limit {
		priority = priority[:limit]
	}

	seen := make(map[string]bool, len(priority))
	for _, w := range priority {
		seen[w] = true
	}

	general := make([]string, 0, limit)
	for _, w := range a.lookup(ctx, language, prefix, limit+len(priority), false) {
		if len(general) >= limit-len(priority) {
			break
		}
		if !seen[w] {
			general = append(general, w)
		}
	}

	return Suggestions{Priority: priority, General: general}
}

func (a *Autocomplete) lookup(ctx context.Context, language, prefix string, limit int, priority bool) []string {
	if limit <= 0 {
		return []string{}
	}

	if a.redis != nil {
		var (
			words []string
			err   error
		)
		if priority {
			words, err = a.redis.GetPrioritySuggestions(ctx, language, prefix, limit)
		} else {
			words, err = a.redis.GetSuggestions(ctx, language, prefix, limit)
		}
		if err == nil {
			return words
		}
		a.log.Warn("redis suggest failed, using local index", "language", language, "error", err)
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	set, ok := a.words[language]
	if !ok {
		return []string{}
	}
	source := set.general
	if priority {
		source = set.priority
	}
	return prefixScan(source, NormalizeWord(prefix), limit)
}

func prefixScan(sorted []string, prefix string, limit int) []string {
	out := []string{}
	for i := sort.SearchStrings(sorted, prefix); i < len(sorted) && len(out) < limit; i++ {
		if !strings.HasPrefix(sorted[i], prefix) {
			break
		}
		out = append(out, sorted[i])
	}
	return out
}

func mergeSorted(existing, add []string) []string {
	seen := make(map[string]bool, len(existing)+len(add))
	out := make([]string, 0, len(existing)+len(add))
	for _, w := range existing {
		seen[w] = true
		out = append(out, w)
	}
	for _, w := range add {
		w = NormalizeWord(w)
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
