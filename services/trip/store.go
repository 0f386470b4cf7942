// File: services/trip/store.go
package trip

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"playday/models"
)

const sessionPrefix = "trip:sess:"

// ErrSessionNotFound is returned when no session exists for the given ID or
// it has expired.
var ErrSessionNotFound = errors.New("trip session not found")

// RedisSessionStore keeps trip sessions as JSON blobs in Redis with a TTL, so
// nothing outlives the planning session.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.TripSession, error) {
	key := sessionPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session models.TripSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, session *models.TripSession) error {
	key := sessionPrefix + session.ID
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	key := sessionPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}
