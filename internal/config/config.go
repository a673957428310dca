package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Drivers de almacenamiento soportados para el backing store clave-valor.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMongo    = "mongo"
)

// Config centraliza la configuración del servicio.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	AppName   string `env:"APP_NAME" envDefault:"animal-registry"`

	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"animal-registry.db"`
	DatabaseDSN   string `env:"DB_DSN"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"animal-registry:"`

	MongoURI        string `env:"MONGO_URI"`
	MongoDatabase   string `env:"MONGO_DB" envDefault:"animal_registry"`
	MongoCollection string `env:"MONGO_COLLECTION" envDefault:"kv_entries"`

	AlertSweepCron          string `env:"ALERT_SWEEP_CRON" envDefault:"0 6 * * *"`
	VaccinationIntervalDays int    `env:"VACCINATION_INTERVAL_DAYS" envDefault:"180"`
}

// Load carga un .env opcional y después parsea el entorno.
// Si envFile viene vacío se intenta ".env" y se ignora si no existe.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("PORT must not be empty")
	}
	if c.VaccinationIntervalDays <= 0 {
		return errors.New("VACCINATION_INTERVAL_DAYS must be positive")
	}

	switch c.StorageDriver {
	case DriverMemory:
	case DriverSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return errors.New("SQLITE_PATH must be provided for sqlite driver")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.DatabaseDSN) == "" {
			return errors.New("DB_DSN must be provided for postgres driver")
		}
	case DriverRedis:
		if strings.TrimSpace(c.RedisAddr) == "" {
			return errors.New("REDIS_ADDR must be provided for redis driver")
		}
	case DriverMongo:
		if strings.TrimSpace(c.MongoURI) == "" {
			return errors.New("MONGO_URI must be provided for mongo driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	return nil
}

// VaccinationInterval expresa VACCINATION_INTERVAL_DAYS como duración.
func (c *Config) VaccinationInterval() time.Duration {
	return time.Duration(c.VaccinationIntervalDays) * 24 * time.Hour
}
