package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"biomonitor/internal/models"

	"github.com/redis/go-redis/v9"
)

// snapshotTTL bounds how long an unsaved measurement survives. Matches the
// original behavior of the snapshot being dropped when the measurement
// context is left.
const snapshotTTL = 24 * time.Hour

type RedisSnapshotStore struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisSnapshotStore() (*RedisSnapshotStore, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	_, err = client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisSnapshotStore{
		client: client,
		ctx:    ctx,
	}, nil
}

func (s *RedisSnapshotStore) Close() error {
	return s.client.Close()
}

func snapshotKey(userID string) string {
	return fmt.Sprintf("vitals:snapshot:%s", userID)
}

// Get returns the user's snapshot, or a zero snapshot when none is stored.
func (s *RedisSnapshotStore) Get(userID string) (models.SimulatedVitals, error) {
	var vitals models.SimulatedVitals

	data, err := s.client.Get(s.ctx, snapshotKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return vitals, nil
		}
		return vitals, fmt.Errorf("failed to get snapshot from Redis: %w", err)
	}

	if err := json.Unmarshal([]byte(data), &vitals); err != nil {
		return vitals, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return vitals, nil
}

func (s *RedisSnapshotStore) Set(userID string, vitals models.SimulatedVitals) error {
	jsonData, err := json.Marshal(vitals)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	err = s.client.Set(s.ctx, snapshotKey(userID), jsonData, snapshotTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to store snapshot in Redis: %w", err)
	}
	return nil
}

func (s *RedisSnapshotStore) Clear(userID string) error {
	return s.client.Del(s.ctx, snapshotKey(userID)).Err()
}
