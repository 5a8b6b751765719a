package session

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when no session exists for the given id.
var ErrNotFound = errors.New("session not found")

const keyPrefix = "session:"

// Payload is the server-side state of one browser session. The three fields
// are written together on login and removed together on logout; a partially
// populated payload never exists.
type Payload struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Store holds session payloads keyed by an opaque session id.
type Store interface {
	Create(ctx context.Context, p Payload) (string, error)
	Get(ctx context.Context, id string) (*Payload, error)
	Delete(ctx context.Context, id string) error
}

type redisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) Store {
	return &redisStore{rdb: rdb, ttl: ttl}
}

func (s *redisStore) Create(ctx context.Context, p Payload) (string, error) {
	id := uuid.NewString()
	raw, err := sonic.Marshal(p)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, keyPrefix+id, raw, s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *redisStore) Get(ctx context.Context, id string) (*Payload, error) {
	raw, err := s.rdb.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p := new(Payload)
	if err := sonic.Unmarshal(raw, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, keyPrefix+id).Err()
}
