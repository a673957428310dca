package memory

import (
	"context"
	"errors"
	"testing"

	"animal-registry/internal/ports/kv"
)

func TestKVStore_GetMissing(t *testing.T) {
	s := NewKVStore()

	_, err := s.Get(context.Background(), "animals")
	if !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected kv.ErrNotFound, got %v", err)
	}
}

func TestKVStore_SetReplacesAndCopies(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore()

	in := []byte(`[{"id":"1"}]`)
	if err := s.Set(ctx, "animals", in); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	in[0] = 'X' // mutar el buffer original no debe afectar lo guardado

	got, err := s.Get(ctx, "animals")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if string(got) != `[{"id":"1"}]` {
		t.Fatalf("unexpected value %s", got)
	}

	if err := s.Set(ctx, "animals", []byte(`[]`)); err != nil {
		t.Fatalf("Set #2 error: %v", err)
	}
	got, _ = s.Get(ctx, "animals")
	if string(got) != `[]` {
		t.Fatalf("expected value replaced, got %s", got)
	}
}

func TestKVStore_RejectsBlankKey(t *testing.T) {
	if err := NewKVStore().Set(context.Background(), "  ", []byte("x")); err == nil {
		t.Fatalf("expected error for blank key")
	}
}

func TestKVStore_TrimsKeys(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore()

	if err := s.Set(ctx, " animals ", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	got, err := s.Get(ctx, "animals")
	if err != nil || string(got) != `[{"id":"1"}]` {
		t.Fatalf("expected same entry for trimmed key, got %s err=%v", got, err)
	}
	if _, err := s.Get(ctx, "  "); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected kv.ErrNotFound for blank key, got %v", err)
	}
}
