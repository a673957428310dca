package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"animal-registry/internal/ports/kv"
)

// redisKV es el subconjunto del cliente que usamos; permite fakes en tests.
type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type KVStore struct {
	client redisKV
	prefix string
}

func NewKVStore(client *redis.Client, prefix string) *KVStore {
	return newKVStore(client, prefix)
}

func newKVStore(client redisKV, prefix string) *KVStore {
	return &KVStore{
		client: client,
		prefix: strings.TrimSpace(prefix),
	}
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, kv.ErrNotFound
	}

	b, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, kv.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// Set escribe sin expiración: las colecciones no caducan.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("key required")
	}
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}
