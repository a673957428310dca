package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"animal-registry/internal/ports/kv"
)

func TestKVStore_MockDeployment(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get existing", func(mt *mtest.T) {
		s := NewKVStore(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "animals"},
			{Key: "value", Value: `[{"id":"1"}]`},
			{Key: "updatedAt", Value: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		}))

		got, err := s.Get(context.Background(), "animals")
		if err != nil {
			t.Fatalf("Get error: %v", err)
		}
		if string(got) != `[{"id":"1"}]` {
			t.Fatalf("unexpected value %s", got)
		}
	})

	mt.Run("get missing", func(mt *mtest.T) {
		s := NewKVStore(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		if _, err := s.Get(context.Background(), "alerts"); !errors.Is(err, kv.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	mt.Run("set upserts", func(mt *mtest.T) {
		s := NewKVStore(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
		))

		if err := s.Set(context.Background(), "bovinos", []byte(`[]`)); err != nil {
			t.Fatalf("Set error: %v", err)
		}
	})

	mt.Run("set surfaces server errors", func(mt *mtest.T) {
		s := NewKVStore(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Name:    "InterruptedAtShutdown",
			Message: "shutting down",
		}))

		if err := s.Set(context.Background(), "bovinos", []byte(`[]`)); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestKVStore_BlankKey(t *testing.T) {
	s := NewKVStore(nil)

	if _, err := s.Get(context.Background(), "  "); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Set(context.Background(), "", []byte("x")); err == nil {
		t.Fatalf("expected error for blank key")
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close without client: %v", err)
	}
}
