package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/medichat/medichat-client/internal/domain"
)

const redisOpTimeout = 3 * time.Second

// RedisBackend persists the session in Redis, for setups where several
// terminals share one login. Keys live under a configurable prefix:
//
//	medichat:session:token
//	medichat:session:user
//	medichat:session:is_admin
type RedisBackend struct {
	client *redis.Client
	prefix string
}

// NewRedisBackend connects to Redis and verifies the connection
func NewRedisBackend(host, port string) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		ReadTimeout:  redisOpTimeout,
		WriteTimeout: redisOpTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisBackend{client: client, prefix: "medichat:session:"}, nil
}

// NewRedisBackendFromClient creates a backend from an existing client.
// This is useful for testing with miniredis.
func NewRedisBackendFromClient(client *redis.Client, prefix string) *RedisBackend {
	if prefix == "" {
		prefix = "medichat:session:"
	}
	return &RedisBackend{client: client, prefix: prefix}
}

func (b *RedisBackend) key(field string) string {
	return b.prefix + field
}

// Save writes all session fields, replacing any previous session
func (b *RedisBackend) Save(s domain.Session) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	userJSON := ""
	if s.User != nil {
		data, err := json.Marshal(s.User)
		if err != nil {
			return fmt.Errorf("encode user: %w", err)
		}
		userJSON = string(data)
	}

	pipe := b.client.TxPipeline()
	pipe.Set(ctx, b.key("token"), s.Token, 0)
	pipe.Set(ctx, b.key("user"), userJSON, 0)
	pipe.Set(ctx, b.key("is_admin"), fmt.Sprintf("%t", s.IsAdmin), 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load reads the persisted session; false when no token is stored
func (b *RedisBackend) Load() (domain.Session, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	token, err := b.client.Get(ctx, b.key("token")).Result()
	if err == redis.Nil || token == "" {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("load session: %w", err)
	}

	s := domain.Session{Token: token}

	if userJSON, err := b.client.Get(ctx, b.key("user")).Result(); err == nil && userJSON != "" {
		var user domain.User
		if err := json.Unmarshal([]byte(userJSON), &user); err == nil {
			s.User = &user
		}
	}

	if isAdmin, err := b.client.Get(ctx, b.key("is_admin")).Result(); err == nil {
		s.IsAdmin = isAdmin == "true"
	}

	return s, true, nil
}

// Clear removes all session keys
func (b *RedisBackend) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := b.client.Del(ctx, b.key("token"), b.key("user"), b.key("is_admin")).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (b *RedisBackend) Close() error {
	return b.client.Close()
}
