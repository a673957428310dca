package storage

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"animal-registry/internal/adapters/storage/memory"
	mongokv "animal-registry/internal/adapters/storage/mongo"
	pg "animal-registry/internal/adapters/storage/postgres"
	rediskv "animal-registry/internal/adapters/storage/redis"
	"animal-registry/internal/adapters/storage/sqlite"
	"animal-registry/internal/config"
	"animal-registry/internal/ports/kv"
)

// CloseFunc libera la conexión del backend elegido.
type CloseFunc func(ctx context.Context) error

func noopClose(context.Context) error { return nil }

// Open elige el backing store según STORAGE_DRIVER.
func Open(ctx context.Context, cfg *config.Config) (kv.Store, CloseFunc, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return memory.NewKVStore(), noopClose, nil

	case config.DriverSQLite:
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func(context.Context) error { return s.Close() }, nil

	case config.DriverPostgres:
		s, err := pg.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres: %w", err)
		}
		return s, func(context.Context) error { return s.Close() }, nil

	case config.DriverRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return rediskv.NewKVStore(client, cfg.RedisPrefix), func(context.Context) error { return client.Close() }, nil

	case config.DriverMongo:
		connCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		s, err := mongokv.Connect(connCtx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
