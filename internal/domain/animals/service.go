package animals

import (
	"context"
	"errors"
	"strings"
	"time"

	"animal-registry/internal/recordstore"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	records *recordstore.Collection[Animal]
	now     func() time.Time
}

func NewService(records *recordstore.Collection[Animal]) *Service {
	return &Service{
		records: records,
		now:     time.Now,
	}
}

type CreateInput struct {
	Name       string
	Species    string
	Breed      string
	Sex        string
	Color      string
	Age        int
	Weight     float64
	Vaccinated string
	Owner      string
	Address    string
	Phone      string
	Notes      string
}

// Create solo exige nome y especie; los rangos de idade/peso/telefone los valida
// el caller con ValidateFields antes de llamar.
//
// Si la escritura durable falla devuelve el animal creado junto con un error que
// envuelve recordstore.ErrPersist: el registro ya quedó en memoria.
func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Animal{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Species) == "" {
		return Animal{}, ErrInvalidInput
	}

	species := strings.TrimSpace(in.Species)
	a := Animal{
		ID:            recordstore.NewID(),
		Name:          strings.TrimSpace(in.Name),
		Species:       species,
		Breed:         strings.TrimSpace(in.Breed),
		Sex:           strings.TrimSpace(in.Sex),
		Color:         strings.TrimSpace(in.Color),
		Age:           in.Age,
		Weight:        in.Weight,
		Vaccinated:    ParseVaccination(in.Vaccinated),
		Owner:         strings.TrimSpace(in.Owner),
		Address:       strings.TrimSpace(in.Address),
		Phone:         strings.TrimSpace(in.Phone),
		Notes:         strings.TrimSpace(in.Notes),
		BodyCondition: ClassifyBodyCondition(in.Weight, species),
		AgeCategory:   ClassifyAge(in.Age),
		CreatedAt:     s.now().UTC(),
	}

	if err := s.records.Append(ctx, a); err != nil {
		return a, err
	}
	return a, nil
}

// List devuelve todos en orden de inserción (copia).
func (s *Service) List() []Animal {
	return s.records.List()
}

type SearchFilter struct {
	Breed   string // substring sin distinguir mayúsculas
	Species string // igualdad exacta
}

// Search aplica solo los filtros no vacíos; filtro vacío => todos.
func (s *Service) Search(f SearchFilter) []Animal {
	breed := strings.ToLower(f.Breed)
	useBreed := strings.TrimSpace(f.Breed) != ""
	useSpecies := strings.TrimSpace(f.Species) != ""

	return s.records.Filter(func(a Animal) bool {
		if useBreed && !strings.Contains(strings.ToLower(a.Breed), breed) {
			return false
		}
		if useSpecies && a.Species != f.Species {
			return false
		}
		return true
	})
}

func (s *Service) GetByID(id string) (Animal, error) {
	id = strings.TrimSpace(id)
	a, ok := s.records.Find(func(a Animal) bool { return a.ID == id })
	if !ok || id == "" {
		return Animal{}, ErrNotFound
	}
	return a, nil
}
