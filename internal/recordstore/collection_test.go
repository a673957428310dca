package recordstore

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"animal-registry/internal/adapters/storage/memory"
	"animal-registry/internal/platform/logger"
	"animal-registry/internal/ports/kv"
)

type item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

// -------------------------
// Test store
// -------------------------

type flakyStore struct {
	inner  kv.Store
	getErr error
	setErr error
}

func (s *flakyStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.inner.Get(ctx, key)
}

func (s *flakyStore) Set(ctx context.Context, key string, value []byte) error {
	if s.setErr != nil {
		return s.setErr
	}
	return s.inner.Set(ctx, key, value)
}

// -------------------------
// Tests
// -------------------------

func TestCollection_RoundTrip_PreservesOrderAndFields(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKVStore()

	c := Open[item](ctx, store, "animals", logger.Nop())
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	want := []item{
		{ID: NewID(), Name: "Mimosa", Tags: []string{"leite"}, CreatedAt: now},
		{ID: NewID(), Name: "Estrela", CreatedAt: now.Add(time.Minute)},
		{ID: NewID(), Name: "Boneca", Tags: []string{}, CreatedAt: now.Add(2 * time.Minute)},
	}
	for _, it := range want {
		if err := c.Append(ctx, it); err != nil {
			t.Fatalf("Append error: %v", err)
		}
	}

	reloaded := Open[item](ctx, store, "animals", logger.Nop())
	if !reflect.DeepEqual(reloaded.List(), c.List()) {
		t.Fatalf("round-trip mismatch:\n got %#v\nwant %#v", reloaded.List(), c.List())
	}
	if reloaded.List()[0].Name != "Mimosa" || reloaded.Len() != 3 {
		t.Fatalf("unexpected order after reload: %#v", reloaded.List())
	}
}

func TestCollection_ListIsStable_AndACopy(t *testing.T) {
	ctx := context.Background()
	c := Open[item](ctx, memory.NewKVStore(), "animals", nil)
	_ = c.Append(ctx, item{ID: "1", Name: "A"})

	first := c.List()
	second := c.List()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected equal listings without mutation")
	}

	first[0].Name = "changed"
	if c.List()[0].Name != "A" {
		t.Fatalf("List must return a copy")
	}
}

func TestCollection_MissingKey_IsEmpty(t *testing.T) {
	c := Open[item](context.Background(), memory.NewKVStore(), "classifications", logger.Nop())
	if c.Len() != 0 {
		t.Fatalf("expected empty collection, got %d", c.Len())
	}
}

func TestCollection_Unparsable_DegradesToEmpty_AndWarns(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKVStore()
	_ = store.Set(ctx, "animals", []byte(`{not json`))

	core, logs := observer.New(zapcore.DebugLevel)
	c := Open[item](ctx, store, "animals", logger.NewWithCore(core))

	if c.Len() != 0 {
		t.Fatalf("expected empty collection for corrupt value")
	}
	if logs.FilterMessage("stored value unparsable, starting empty").Len() != 1 {
		t.Fatalf("expected warning about unparsable value")
	}

	// La colección sigue operativa y sobreescribe el valor corrupto.
	if err := c.Append(ctx, item{ID: "1"}); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if Open[item](ctx, store, "animals", nil).Len() != 1 {
		t.Fatalf("expected corrupt value replaced")
	}
}

func TestCollection_BackendReadError_DegradesToEmpty(t *testing.T) {
	store := &flakyStore{inner: memory.NewKVStore(), getErr: errors.New("timeout")}
	c := Open[item](context.Background(), store, "animals", logger.Nop())
	if c.Len() != 0 {
		t.Fatalf("expected empty collection when backend read fails")
	}
}

func TestCollection_PersistFailure_KeepsInMemory(t *testing.T) {
	ctx := context.Background()
	quota := errors.New("quota exceeded")
	store := &flakyStore{inner: memory.NewKVStore()}
	c := Open[item](ctx, store, "animals", logger.Nop())

	_ = c.Append(ctx, item{ID: "1"})

	store.setErr = quota
	err := c.Append(ctx, item{ID: "2"})
	if !errors.Is(err, ErrPersist) || !errors.Is(err, quota) {
		t.Fatalf("expected ErrPersist wrapping backend error, got %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("in-memory append must survive persist failure, got %d", c.Len())
	}

	// Lo durable sigue siendo lo último escrito con éxito.
	if got := Open[item](ctx, store.inner, "animals", nil).Len(); got != 1 {
		t.Fatalf("expected durable copy with 1 record, got %d", got)
	}
}

func TestCollection_ReplaceFindFilter(t *testing.T) {
	ctx := context.Background()
	c := Open[item](ctx, memory.NewKVStore(), "alerts", logger.Nop())

	if err := c.Replace(ctx, []item{{ID: "a", Name: "x"}, {ID: "b", Name: "y"}, {ID: "c", Name: "x"}}); err != nil {
		t.Fatalf("Replace error: %v", err)
	}

	got, ok := c.Find(func(it item) bool { return it.ID == "b" })
	if !ok || got.Name != "y" {
		t.Fatalf("Find returned %#v ok=%v", got, ok)
	}
	if _, ok := c.Find(func(it item) bool { return it.ID == "zzz" }); ok {
		t.Fatalf("expected miss")
	}

	xs := c.Filter(func(it item) bool { return it.Name == "x" })
	if len(xs) != 2 || xs[0].ID != "a" || xs[1].ID != "c" {
		t.Fatalf("unexpected filter result %#v", xs)
	}

	if err := c.Replace(ctx, nil); err != nil {
		t.Fatalf("Replace(nil) error: %v", err)
	}
	raw, _ := c.store.Get(ctx, "alerts")
	if string(raw) != `[]` {
		t.Fatalf("expected empty array persisted, got %s", raw)
	}
}

func TestCollection_AppendUnique(t *testing.T) {
	ctx := context.Background()
	c := Open[item](ctx, memory.NewKVStore(), "bovinos", logger.Nop())

	sameName := func(n string) func(item) bool {
		return func(it item) bool { return it.Name == n }
	}

	if err := c.AppendUnique(ctx, item{ID: "1", Name: "BR001"}, sameName("BR001")); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := c.AppendUnique(ctx, item{ID: "2", Name: "BR001"}, sameName("BR001")); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if err := c.AppendUnique(ctx, item{ID: "3", Name: "BR002"}, sameName("BR002")); err != nil {
		t.Fatalf("second append: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", c.Len())
	}
}

func TestCollection_Update_GetsCopy(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKVStore()
	c := Open[item](ctx, store, "alerts", logger.Nop())
	_ = c.Replace(ctx, []item{{ID: "a", Name: "manual"}, {ID: "b", Name: "sweep"}})

	err := c.Update(ctx, func(current []item) []item {
		current[0].Name = "mutated"
		return []item{{ID: "c", Name: "new"}}
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	got := c.List()
	if len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("unexpected content %#v", got)
	}

	reopened := Open[item](ctx, store, "alerts", logger.Nop())
	if !reflect.DeepEqual(reopened.List(), got) {
		t.Fatalf("update not persisted: %#v", reopened.List())
	}
}
