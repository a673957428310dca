package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"animal-registry/internal/domain/animals"
)

type fakeAnimals []animals.Animal

func (f fakeAnimals) List() []animals.Animal { return f }

type fakeCounter int

func (f fakeCounter) Count() int { return int(f) }

func TestCompute(t *testing.T) {
	a := fakeAnimals{
		{Species: "canino", Breed: "Labrador", Weight: 30},
		{Species: "canino", Breed: "Labrador", Weight: 20},
		{Species: "felino", Breed: "Persa", Weight: 4},
	}

	s := Compute(a, fakeCounter(5))
	if s.TotalAnimals != 3 || s.TotalBreeds != 2 || s.TotalClassifications != 5 {
		t.Fatalf("unexpected stats: %+v", s)
	}
	if s.Summary.BySpecies["canino"] != 2 {
		t.Fatalf("summary not filled: %+v", s.Summary)
	}
}

func TestStatsHandler_Empty(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, fakeAnimals{}, fakeCounter(0))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var s Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.TotalAnimals != 0 || s.TotalBreeds != 0 || s.TotalClassifications != 0 {
		t.Fatalf("expected zeros, got %+v", s)
	}
}
