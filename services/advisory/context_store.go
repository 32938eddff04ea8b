package advisory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ContextStore keeps the rolling expert-chat transcript per request so the
// model sees prior turns.
type ContextStore interface {
	Load(ctx context.Context, requestID string) ([]ChatTurn, error)
	Save(ctx context.Context, requestID string, turns []ChatTurn) error
}

// ChatTurn is one exchange in the expert conversation.
type ChatTurn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// RedisContextStore stores transcripts in Redis with a TTL.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) key(requestID string) string {
	return "advisory:ctx:" + requestID
}

func (s *RedisContextStore) Load(ctx context.Context, requestID string) ([]ChatTurn, error) {
	raw, err := s.client.Get(ctx, s.key(requestID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load advisory context: %w", err)
	}

	var turns []ChatTurn
	if err := json.Unmarshal([]byte(raw), &turns); err != nil {
		return nil, fmt.Errorf("failed to decode advisory context: %w", err)
	}
	return turns, nil
}

func (s *RedisContextStore) Save(ctx context.Context, requestID string, turns []ChatTurn) error {
	raw, err := json.Marshal(turns)
	if err != nil {
		return fmt.Errorf("failed to encode advisory context: %w", err)
	}
	if err := s.client.Set(ctx, s.key(requestID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save advisory context: %w", err)
	}
	return nil
}
