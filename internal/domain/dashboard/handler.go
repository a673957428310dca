// Package dashboard expone los totales del app genérico.
package dashboard

import (
	"encoding/json"
	"net/http"

	"animal-registry/internal/domain/animals"
	"animal-registry/internal/domain/classifications"

	"github.com/go-chi/chi/v5"
)

type Stats struct {
	TotalAnimals         int             `json:"totalAnimals"`
	TotalBreeds          int             `json:"totalBreeds"`
	TotalClassifications int             `json:"totalClassifications"`
	Summary              animals.Summary `json:"summary"`
}

type AnimalLister interface {
	List() []animals.Animal
}

type ClassificationCounter interface {
	Count() int
}

var (
	_ AnimalLister          = (*animals.Service)(nil)
	_ ClassificationCounter = (*classifications.Service)(nil)
)

func Compute(a AnimalLister, c ClassificationCounter) Stats {
	summary := animals.Summarize(a.List())
	return Stats{
		TotalAnimals:         summary.Total,
		TotalBreeds:          summary.DistinctBreeds,
		TotalClassifications: c.Count(),
		Summary:              summary,
	}
}

func RegisterRoutes(r chi.Router, a AnimalLister, c ClassificationCounter) {
	r.Get("/stats", statsHandler(a, c))
}

// statsHandler godoc
// @Summary Estatísticas do cadastro
// @Tags dashboard
// @Produce json
// @Success 200 {object} Stats
// @Router /stats [get]
func statsHandler(a AnimalLister, c ClassificationCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(Compute(a, c))
	}
}
