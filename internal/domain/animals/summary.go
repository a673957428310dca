package animals

import "math"

// Summary son los agregados del rebaño/cadastro para el dashboard.
type Summary struct {
	Total           int                   `json:"total"`
	DistinctBreeds  int                   `json:"distinctBreeds"`
	AverageWeight   float64               `json:"averageWeight"`
	Vaccinated      int                   `json:"vaccinated"`
	BySpecies       map[string]int        `json:"bySpecies"`
	ByCategory      map[AgeCategory]int   `json:"byCategory"`
	ByBodyCondition map[BodyCondition]int `json:"byBodyCondition"`
}

// Summarize no filtra nada: raça vacía también cuenta como valor distinto.
func Summarize(items []Animal) Summary {
	s := Summary{
		Total:           len(items),
		BySpecies:       map[string]int{},
		ByCategory:      map[AgeCategory]int{},
		ByBodyCondition: map[BodyCondition]int{},
	}

	breeds := map[string]struct{}{}
	var totalWeight float64

	for _, a := range items {
		breeds[a.Breed] = struct{}{}
		totalWeight += a.Weight
		if a.IsVaccinated() {
			s.Vaccinated++
		}
		s.BySpecies[a.Species]++
		s.ByCategory[a.AgeCategory]++
		s.ByBodyCondition[a.BodyCondition]++
	}

	s.DistinctBreeds = len(breeds)
	if len(items) > 0 {
		s.AverageWeight = math.Round(totalWeight/float64(len(items))*100) / 100
	}
	return s
}
