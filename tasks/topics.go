package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"
)

// TopicSource supplies the topics for a bulk run.
type TopicSource interface {
	Topics(ctx context.Context) ([]string, error)
}

type StaticTopics []string

func (s StaticTopics) Topics(context.Context) ([]string, error) {
	return append([]string(nil), s...), nil
}

// RedisTopics reads a Redis list, so the topic set can change without a
// redeploy. An empty list or a failed read falls back to Fallback when set.
type RedisTopics struct {
	Client   *redis.Client
	Key      string
	Fallback TopicSource
	Logger   *slog.Logger
}

func (r *RedisTopics) Topics(ctx context.Context) ([]string, error) {
	items, err := r.Client.LRange(ctx, r.Key, 0, -1).Result()
	if err != nil {
		if r.Fallback == nil {
			return nil, fmt.Errorf("read topics from redis key %s: %w", r.Key, err)
		}
		r.warn("Failed to read topics from redis, using configured topics", "error", err)
		return r.Fallback.Topics(ctx)
	}

	topics := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			topics = append(topics, item)
		}
	}

	if len(topics) == 0 && r.Fallback != nil {
		r.warn("Redis topic list is empty, using configured topics")
		return r.Fallback.Topics(ctx)
	}
	return topics, nil
}

func (r *RedisTopics) warn(msg string, args ...any) {
	if r.Logger != nil {
		r.Logger.Warn(msg, append([]any{"key", r.Key}, args...)...)
	}
}
