package kv

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("kv: key not found")

// Store es el backing store clave-valor donde cada colección vive serializada
// bajo una sola key. Set reemplaza el valor completo o falla dejando el anterior.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
