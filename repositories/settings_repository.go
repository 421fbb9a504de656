package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var ErrSettingNotFound = errors.New("setting not found")

// SettingsRepository stores which bracket model is active.
type SettingsRepository interface {
	GetModel(ctx context.Context) (string, error)
	SetModel(ctx context.Context, model string) error
}

const modelKey = "dominoes:settings:model"

type redisSettingsRepository struct {
	client *redis.Client
}

func NewRedisSettingsRepository(client *redis.Client) SettingsRepository {
	return &redisSettingsRepository{client: client}
}

// NewRedisClient parses a redis:// or rediss:// URL and verifies the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func (r *redisSettingsRepository) GetModel(ctx context.Context) (string, error) {
	val, err := r.client.Get(ctx, modelKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read model setting: %w", err)
	}
	return val, nil
}

func (r *redisSettingsRepository) SetModel(ctx context.Context, model string) error {
	if err := r.client.Set(ctx, modelKey, model, 0).Err(); err != nil {
		return fmt.Errorf("failed to store model setting: %w", err)
	}
	return nil
}
