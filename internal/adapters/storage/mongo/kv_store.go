package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"animal-registry/internal/ports/kv"
)

// entry es un documento por colección: _id = key.
type entry struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type KVStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	now    func() time.Time
}

// Connect abre el cliente, verifica con Ping y apunta a db/collection.
func Connect(ctx context.Context, uri, dbName, collName string) (*KVStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &KVStore{
		client: client,
		coll:   client.Database(dbName).Collection(collName),
		now:    time.Now,
	}, nil
}

// NewKVStore usa una colección ya abierta; Close no hace nada en ese caso.
func NewKVStore(coll *mongo.Collection) *KVStore {
	return &KVStore{coll: coll, now: time.Now}
}

func (s *KVStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, kv.ErrNotFound
	}

	var e entry
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, kv.ErrNotFound
		}
		return nil, err
	}
	return []byte(e.Value), nil
}

// Set reemplaza el documento completo (upsert); un documento por key mantiene la escritura atómica.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("key required")
	}

	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": key},
		entry{Key: key, Value: string(value), UpdatedAt: s.now().UTC()},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert %s: %w", key, err)
	}
	return nil
}
