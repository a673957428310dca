package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"animal-registry/internal/ports/kv"
)

type kvStore struct {
	mu    sync.RWMutex
	byKey map[string][]byte
}

// NewKVStore devuelve un store en memoria. Sirve para dev y tests: se pierde al reiniciar.
func NewKVStore() kv.Store {
	return &kvStore{
		byKey: make(map[string][]byte),
	}
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, kv.ErrNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byKey[key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	// copia para que el caller no mute lo guardado
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("key required")
	}

	v := make([]byte, len(value))
	copy(v, value)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byKey[key] = v
	return nil
}
