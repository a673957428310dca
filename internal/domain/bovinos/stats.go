package bovinos

import (
	"math"
	"sort"
	"strings"
	"time"
)

const (
	DefaultGrowthMonths = 6
	MaxGrowthMonths     = 24

	unknownBreed = "SRD"
)

var monthLabels = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

type HerdStats struct {
	Total         int `json:"total"`
	Healthy       int `json:"saudaveis"`
	Reproduction  int `json:"reproducao"`
	AverageWeight int `json:"pesoMedio"` // kg, redondeado
}

type GrowthPoint struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type BreedCount struct {
	Breed string `json:"breed"`
	Count int    `json:"count"`
}

func ComputeStats(herd []Bovino) HerdStats {
	st := HerdStats{Total: len(herd)}
	var total float64
	for _, b := range herd {
		total += b.Weight
		switch b.Status {
		case StatusHealthy:
			st.Healthy++
		case StatusReproduction:
			st.Reproduction++
		}
	}
	if len(herd) > 0 {
		st.AverageWeight = int(math.Round(total / float64(len(herd))))
	}
	return st
}

// Growth devuelve, para cada uno de los últimos months meses (el actual incluido),
// cuántos bovinos estaban cadastrados al final de ese mes.
func Growth(herd []Bovino, now time.Time, months int) []GrowthPoint {
	if months <= 0 {
		months = DefaultGrowthMonths
	}
	if months > MaxGrowthMonths {
		months = MaxGrowthMonths
	}

	now = now.UTC()
	out := make([]GrowthPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)

		count := 0
		for _, b := range herd {
			if b.CreatedAt.Before(end) {
				count++
			}
		}
		out = append(out, GrowthPoint{Month: monthLabels[start.Month()-1], Count: count})
	}
	return out
}

// BreedDistribution cuenta por raça (vacía => "SRD"), mayor primero y luego por nombre.
func BreedDistribution(herd []Bovino) []BreedCount {
	counts := map[string]int{}
	for _, b := range herd {
		breed := strings.TrimSpace(b.Breed)
		if breed == "" {
			breed = unknownBreed
		}
		counts[breed]++
	}

	out := make([]BreedCount, 0, len(counts))
	for breed, n := range counts {
		out = append(out, BreedCount{Breed: breed, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Breed < out[j].Breed
	})
	return out
}

func (s *Service) Stats() HerdStats {
	return ComputeStats(s.bovinos.List())
}

func (s *Service) Growth(months int) []GrowthPoint {
	return Growth(s.bovinos.List(), s.now(), months)
}

func (s *Service) BreedDistribution() []BreedCount {
	return BreedDistribution(s.bovinos.List())
}
