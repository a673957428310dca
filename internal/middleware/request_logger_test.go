package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"animal-registry/internal/platform/logger"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(RequestLogger(logger.NewWithCore(core)))
	r.Get("/animals/{animalID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/animals/abc", nil))

	all := logs.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}

	ok := all[0].ContextMap()
	if all[0].Level != zapcore.InfoLevel || ok["status"] != int64(200) || ok["bytes"] != int64(2) {
		t.Fatalf("unexpected first entry %v %v", all[0].Level, ok)
	}
	if ok["request_id"] == "" {
		t.Fatalf("expected request_id")
	}

	miss := all[1].ContextMap()
	if all[1].Level != zapcore.WarnLevel || miss["route"] != "/animals/{animalID}" || miss["path"] != "/animals/abc" {
		t.Fatalf("unexpected second entry %v %v", all[1].Level, miss)
	}
}
