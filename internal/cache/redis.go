package cache

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Autocomplete members are stored in sorted sets with score 0 so that
// ZRANGEBYLEX walks them in byte order.
const (
	generalKeyPrefix  = "autocomplete:"
	priorityKeyPrefix = "autocomplete:priority:"
	lexMaxSuffix      = "\xff"
)

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(ctx context.Context, redisURL string) (*RedisCache, error) {
	// redis://host:port or redis://host:port/db
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisCache{client: client}, nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) AddWordsToAutocomplete(ctx context.Context, language string, words []string) error {
	return c.addMembers(ctx, generalKeyPrefix+language, words)
}

func (c *RedisCache) AddPriorityWords(ctx context.Context, language string, words []string) error {
	return c.addMembers(ctx, priorityKeyPrefix+language, words)
}

func (c *RedisCache) GetSuggestions(ctx context.Context, language, prefix string, limit int) ([]string, error) {
	return c.rangeByPrefix(ctx, generalKeyPrefix+language, prefix, limit)
}

func (c *RedisCache) GetPrioritySuggestions(ctx context.Context, language, prefix string, limit int) ([]string, error) {
	return c.rangeByPrefix(ctx, priorityKeyPrefix+language, prefix, limit)
}

func (c *RedisCache) addMembers(ctx context.Context, key string, words []string) error {
	members := autocompleteMembers(words)
	if len(members) == 0 {
		return nil
	}
	return c.client.ZAdd(ctx, key, members...).Err()
}

// autocompleteMembers normalizes words into sorted-set members, skipping
// blanks.
func autocompleteMembers(words []string) []redis.Z {
	members := make([]redis.Z, 0, len(words))
	for _, w := range words {
		if w = NormalizeWord(w); w == "" {
			continue
		}
		members = append(members, redis.Z{Score: 0, Member: w})
	}
	return members
}

func (c *RedisCache) rangeByPrefix(ctx context.Context, key, prefix string, limit int) ([]string, error) {
	prefix = NormalizeWord(prefix)
	return c.client.ZRangeByLex(ctx, key, &redis.ZRangeBy{
		Min:    "[" + prefix,
		Max:    "[" + prefix + lexMaxSuffix,
		Offset: 0,
		Count:  int64(limit),
	}).Result()
}

// NormalizeWord is the form words are indexed and looked up by.
func NormalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
