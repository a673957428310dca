// Package recordstore mantiene colecciones de registros en memoria sincronizadas
// con un kv.Store. Cada mutación reescribe la colección completa bajo su key;
// al abrir se rehidrata y cualquier valor ausente o ilegible se toma como vacío.
package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"animal-registry/internal/platform/logger"
	"animal-registry/internal/platform/metrics"
	"animal-registry/internal/ports/kv"
)

var (
	// ErrPersist indica que la escritura durable falló. El cambio en memoria se mantiene.
	ErrPersist = errors.New("persist failed")
	// ErrConflict: AppendUnique encontró un registro en conflicto y no agregó nada.
	ErrConflict = errors.New("conflicting record")
)

type Collection[T any] struct {
	mu    sync.RWMutex
	key   string
	store kv.Store
	log   logger.Logger
	items []T
}

// NewID genera ids opacos para cualquier tipo de registro.
func NewID() string {
	return uuid.NewString()
}

// Open construye la colección y la rehidrata desde store. Nunca falla: un backend
// caído o un JSON corrupto dejan la colección vacía y quedan en el log.
func Open[T any](ctx context.Context, store kv.Store, key string, log logger.Logger) *Collection[T] {
	if log == nil {
		log = logger.Nop()
	}
	c := &Collection[T]{
		key:   key,
		store: store,
		log:   log.With(map[string]any{"collection": key}),
	}
	c.load(ctx)
	return c
}

func (c *Collection[T]) load(ctx context.Context) {
	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			c.log.Warn("rehydrate failed, starting empty", map[string]any{"error": err})
		}
		return
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Warn("stored value unparsable, starting empty", map[string]any{"error": err})
		return
	}

	c.items = items
	c.log.Info("collection rehydrated", map[string]any{"count": len(items)})
}

func (c *Collection[T]) Key() string { return c.key }

// Append agrega al final y persiste la colección completa.
func (c *Collection[T]) Append(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, item)
	metrics.RecordsCreated.WithLabelValues(c.key).Inc()

	return c.persistLocked(ctx)
}

// AppendUnique agrega solo si ningún registro existente cumple conflicts.
// La verificación y el append ocurren bajo el mismo lock.
func (c *Collection[T]) AppendUnique(ctx context.Context, item T, conflicts func(existing T) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, it := range c.items {
		if conflicts(it) {
			return ErrConflict
		}
	}

	c.items = append(c.items, item)
	metrics.RecordsCreated.WithLabelValues(c.key).Inc()

	return c.persistLocked(ctx)
}

// Update reemplaza el contenido con lo que devuelva fn, que recibe una copia.
func (c *Collection[T]) Update(ctx context.Context, fn func(current []T) []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := make([]T, len(c.items))
	copy(current, c.items)

	c.items = fn(current)
	return c.persistLocked(ctx)
}

// Replace sustituye todo el contenido y persiste.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append([]T(nil), items...)
	return c.persistLocked(ctx)
}

func (c *Collection[T]) persistLocked(ctx context.Context) error {
	items := c.items
	if items == nil {
		items = []T{}
	}

	b, err := json.Marshal(items)
	if err == nil {
		err = c.store.Set(ctx, c.key, b)
	}
	if err != nil {
		metrics.PersistFailures.WithLabelValues(c.key).Inc()
		c.log.Warn("persist failed, keeping in-memory state", map[string]any{"error": err})
		return fmt.Errorf("%w (%s): %w", ErrPersist, c.key, err)
	}
	return nil
}

// List devuelve una copia en orden de inserción.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for _, it := range c.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, it := range c.items {
		if match(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
