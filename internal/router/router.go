package router

import (
	"context"
	"net/http"
	"time"

	mem "animal-registry/internal/adapters/storage/memory"
	"animal-registry/internal/domain/animals"
	"animal-registry/internal/domain/bovinos"
	"animal-registry/internal/domain/classifications"
	"animal-registry/internal/domain/classifier"
	"animal-registry/internal/domain/dashboard"
	"animal-registry/internal/middleware"
	"animal-registry/internal/platform/logger"
	"animal-registry/internal/platform/metrics"
	"animal-registry/internal/ports/kv"
	"animal-registry/internal/recordstore"

	_ "animal-registry/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Services agrupa los servicios por módulo sobre un mismo kv.Store.
type Services struct {
	Animals         *animals.Service
	Classifications *classifications.Service
	Bovinos         *bovinos.Service
}

// NewServices rehidrata cada colección desde store.
func NewServices(ctx context.Context, store kv.Store, log logger.Logger, vaccinationInterval time.Duration) *Services {
	if log == nil {
		log = logger.Nop()
	}

	return &Services{
		Animals: animals.NewService(
			recordstore.Open[animals.Animal](ctx, store, animals.StorageKey, log),
		),
		Classifications: classifications.NewService(
			recordstore.Open[classifications.Record](ctx, store, classifications.StorageKey, log),
			classifier.New(classifier.DefaultRules()),
		),
		Bovinos: bovinos.NewService(
			recordstore.Open[bovinos.Bovino](ctx, store, bovinos.StorageKey, log),
			recordstore.Open[bovinos.Activity](ctx, store, bovinos.ActivitiesStorageKey, log),
			recordstore.Open[bovinos.Alert](ctx, store, bovinos.AlertsStorageKey, log),
			vaccinationInterval,
		),
	}
}

type Options struct {
	Logger logger.Logger // puede ser nil

	// Opcional: si viene, se usa tal cual. Si no, se arma sobre Store.
	Services *Services

	// Opcional: si no viene Services ni Store, in-memory.
	Store               kv.Store
	VaccinationInterval time.Duration
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	svcs := opts.Services
	if svcs == nil {
		store := opts.Store
		if store == nil {
			store = mem.NewKVStore()
		}
		svcs = NewServices(context.Background(), store, log, opts.VaccinationInterval)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	animals.RegisterRoutes(r, svcs.Animals)
	classifications.RegisterRoutes(r, svcs.Classifications)
	dashboard.RegisterRoutes(r, svcs.Animals, svcs.Classifications)
	bovinos.RegisterRoutes(r, svcs.Bovinos)

	return r
}
