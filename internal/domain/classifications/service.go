package classifications

import (
	"context"
	"errors"
	"strings"
	"time"

	"animal-registry/internal/domain/classifier"
	"animal-registry/internal/platform/metrics"
	"animal-registry/internal/recordstore"
)

var ErrInvalidInput = errors.New("invalid input")

const maxAlternatives = 3

type Service struct {
	records    *recordstore.Collection[Record]
	classifier *classifier.Classifier
	now        func() time.Time
}

func NewService(records *recordstore.Collection[Record], cls *classifier.Classifier) *Service {
	return &Service{
		records:    records,
		classifier: cls,
		now:        time.Now,
	}
}

// Classify exige los cuatro atributos; no guarda nada.
func (s *Service) Classify(in classifier.Characteristics) (classifier.Result, error) {
	if strings.TrimSpace(in.Especie) == "" || strings.TrimSpace(in.Porte) == "" ||
		strings.TrimSpace(in.Pelo) == "" || strings.TrimSpace(in.Cor) == "" {
		return classifier.Result{}, ErrInvalidInput
	}

	res := s.classifier.Classify(in)

	outcome := "match"
	if res.IsFallback() {
		outcome = "fallback"
	}
	metrics.ClassificationOutcomes.WithLabelValues(outcome).Inc()
	metrics.ClassificationConfidence.Observe(float64(res.Primary.Confidence))

	return res, nil
}

// Save guarda un resultado ya calculado. Igual que animals.Create, con ErrPersist
// el registro se devuelve y queda en memoria.
func (s *Service) Save(ctx context.Context, res classifier.Result) (Record, error) {
	if strings.TrimSpace(res.Primary.Breed) == "" {
		return Record{}, ErrInvalidInput
	}
	if res.Primary.Confidence < 0 || res.Primary.Confidence > 100 {
		return Record{}, ErrInvalidInput
	}
	if len(res.Alternatives) > maxAlternatives {
		return Record{}, ErrInvalidInput
	}

	alts := make([]classifier.Match, 0, len(res.Alternatives))
	for _, m := range res.Alternatives {
		if m.Breed == res.Primary.Breed {
			return Record{}, ErrInvalidInput
		}
		alts = append(alts, m)
	}

	rec := Record{
		ID:              recordstore.NewID(),
		Breed:           res.Primary.Breed,
		Confidence:      res.Primary.Confidence,
		Characteristics: res.Characteristics,
		Alternatives:    alts,
		CreatedAt:       s.now().UTC(),
	}

	if err := s.records.Append(ctx, rec); err != nil {
		return rec, err
	}
	return rec, nil
}

func (s *Service) List() []Record {
	return s.records.List()
}

func (s *Service) Count() int {
	return s.records.Len()
}

func (s *Service) Species() []string {
	return s.classifier.Species()
}
