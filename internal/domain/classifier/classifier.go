package classifier

import (
	"math"
	"sort"
	"strings"
)

const (
	// FallbackBreed es el resultado cuando ninguna raza alcanza MinConfidence.
	FallbackBreed      = "SRD (Sem Raça Definida)"
	FallbackConfidence = 75
	MinConfidence      = 50

	sizeWeight  = 3.0
	coatWeight  = 2.0
	colorWeight = 2.0

	alternativeThreshold = 0.3
	maxAlternatives      = 3
)

type Characteristics struct {
	Especie string `json:"especie"`
	Porte   string `json:"porte"`
	Pelo    string `json:"pelo"`
	Cor     string `json:"cor"`
}

type Match struct {
	Breed      string  `json:"breed"`
	Confidence int     `json:"confidence"`
	Score      float64 `json:"score"`
	MaxScore   float64 `json:"maxScore"`
}

type Result struct {
	Primary         Match           `json:"primary"`
	Alternatives    []Match         `json:"alternatives"`
	Characteristics Characteristics `json:"characteristics"`
}

func (r Result) IsFallback() bool {
	return r.Primary.Breed == FallbackBreed
}

type Classifier struct {
	rules Rules
}

// New copia la tabla para que nadie la mute por fuera.
func New(rules Rules) *Classifier {
	cp := make(Rules, 0, len(rules))
	for _, sr := range rules {
		breeds := make([]BreedRule, 0, len(sr.Breeds))
		for _, b := range sr.Breeds {
			breeds = append(breeds, BreedRule{
				Name:       b.Name,
				Porte:      append([]string(nil), b.Porte...),
				Pelo:       append([]string(nil), b.Pelo...),
				Cores:      append([]string(nil), b.Cores...),
				Confidence: b.Confidence,
			})
		}
		cp = append(cp, SpeciesRules{Species: sr.Species, Breeds: breeds})
	}
	return &Classifier{rules: cp}
}

// Species lista las especies con reglas, en orden de tabla.
func (c *Classifier) Species() []string {
	out := make([]string, 0, len(c.rules))
	for _, sr := range c.rules {
		out = append(out, sr.Species)
	}
	return out
}

func (c *Classifier) breedsFor(species string) []BreedRule {
	for _, sr := range c.rules {
		if sr.Species == species {
			return sr.Breeds
		}
	}
	return nil
}

// Classify puntúa cada raza de la especie y elige la de mayor porcentaje.
// Si no hay candidata o su confianza redondeada queda bajo MinConfidence,
// devuelve FallbackBreed con FallbackConfidence y sin alternativas.
// Characteristics vuelve tal cual llegó.
func (c *Classifier) Classify(in Characteristics) Result {
	color := strings.ToLower(in.Cor)

	var (
		best    *Match
		highest float64
		matches []Match
	)

	for _, b := range c.breedsFor(in.Especie) {
		score, maxScore := 0.0, 0.0

		maxScore += sizeWeight
		if contains(b.Porte, in.Porte) {
			score += sizeWeight
		}

		maxScore += coatWeight
		if contains(b.Pelo, in.Pelo) {
			score += coatWeight
		}

		maxScore += colorWeight
		score += MatchColor(color, b.Cores) * colorWeight

		pct := (score / maxScore) * b.Confidence
		m := Match{
			Breed:      b.Name,
			Confidence: toPercent(pct),
			Score:      score,
			MaxScore:   maxScore,
		}

		if pct > alternativeThreshold {
			matches = append(matches, m)
		}
		// estrictamente mayor: en empate queda la primera de la tabla
		if pct > highest {
			highest = pct
			picked := m
			best = &picked
		}
	}

	if best == nil || best.Confidence < MinConfidence {
		return Result{
			Primary:         Match{Breed: FallbackBreed, Confidence: FallbackConfidence},
			Alternatives:    []Match{},
			Characteristics: in,
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	if len(matches) > maxAlternatives {
		matches = matches[:maxAlternatives]
	}

	alts := make([]Match, 0, len(matches))
	for _, m := range matches {
		if m.Breed == best.Breed {
			continue
		}
		alts = append(alts, m)
	}

	return Result{
		Primary:         *best,
		Alternatives:    alts,
		Characteristics: in,
	}
}

// MatchColor devuelve 1 si la cor aparece dentro de alguna cor de la raza,
// 0.7 si coincide por sinónimo y 0 en otro caso.
func MatchColor(input string, breedColors []string) float64 {
	input = strings.ToLower(input)

	for _, color := range breedColors {
		if strings.Contains(strings.ToLower(color), input) {
			return 1
		}
	}

	for _, syn := range colorSynonyms {
		if !strings.Contains(input, syn.word) {
			continue
		}
		for _, color := range breedColors {
			lc := strings.ToLower(color)
			for _, alt := range syn.alternatives {
				if strings.Contains(lc, alt) {
					return 0.7
				}
			}
		}
	}

	return 0
}

func toPercent(p float64) int {
	v := int(math.Round(p * 100))
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
