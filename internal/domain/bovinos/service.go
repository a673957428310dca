package bovinos

import (
	"context"
	"errors"
	"strings"
	"time"

	"animal-registry/internal/domain/animals"
	"animal-registry/internal/recordstore"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrDuplicateTag = errors.New("brinco already registered")
)

// DefaultVaccinationInterval es el máximo entre vacunaciones antes de alertar.
const DefaultVaccinationInterval = 180 * 24 * time.Hour

type Service struct {
	bovinos    *recordstore.Collection[Bovino]
	activities *recordstore.Collection[Activity]
	alerts     *recordstore.Collection[Alert]

	vaccinationInterval time.Duration
	now                 func() time.Time
}

// NewService: vaccinationInterval <= 0 usa DefaultVaccinationInterval.
func NewService(
	bovinos *recordstore.Collection[Bovino],
	activities *recordstore.Collection[Activity],
	alerts *recordstore.Collection[Alert],
	vaccinationInterval time.Duration,
) *Service {
	if vaccinationInterval <= 0 {
		vaccinationInterval = DefaultVaccinationInterval
	}
	return &Service{
		bovinos:             bovinos,
		activities:          activities,
		alerts:              alerts,
		vaccinationInterval: vaccinationInterval,
		now:                 time.Now,
	}
}

type CreateInput struct {
	Name       string
	Tag        string
	Breed      string
	Sex        string
	Color      string
	Age        *int // nil => se calcula desde BirthDate si viene
	Weight     float64
	Vaccinated string
	Owner      string
	Address    string
	Phone      string
	Notes      string

	Status          Status
	Location        string
	LastVaccination *time.Time
	BirthDate       *time.Time
}

// Create exige nome y brinco; el brinco es único en el rebaño (ErrDuplicateTag).
// Una edad fuera de rango o un nacimiento futuro vuelven como *animals.ValidationError.
// Igual que animals.Create, con ErrPersist el bovino se devuelve y queda en memoria.
func (s *Service) Create(ctx context.Context, in CreateInput) (Bovino, error) {
	name := strings.TrimSpace(in.Name)
	tag := strings.TrimSpace(in.Tag)
	if name == "" || tag == "" {
		return Bovino{}, ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		status = StatusHealthy
	}
	if !status.Valid() {
		return Bovino{}, ErrInvalidInput
	}

	now := s.now().UTC()

	age, err := resolveAge(in, now)
	if err != nil {
		return Bovino{}, err
	}

	b := Bovino{
		Animal: animals.Animal{
			ID:            recordstore.NewID(),
			Name:          name,
			Species:       Species,
			Breed:         strings.TrimSpace(in.Breed),
			Sex:           strings.TrimSpace(in.Sex),
			Color:         strings.TrimSpace(in.Color),
			Age:           age,
			Weight:        in.Weight,
			Vaccinated:    animals.ParseVaccination(in.Vaccinated),
			Owner:         strings.TrimSpace(in.Owner),
			Address:       strings.TrimSpace(in.Address),
			Phone:         strings.TrimSpace(in.Phone),
			Notes:         strings.TrimSpace(in.Notes),
			BodyCondition: animals.ClassifyBodyCondition(in.Weight, Species),
			AgeCategory:   animals.ClassifyAge(age),
			CreatedAt:     now,
		},
		Tag:             tag,
		Status:          status,
		Location:        strings.TrimSpace(in.Location),
		LastVaccination: in.LastVaccination,
		BirthDate:       in.BirthDate,
	}
	if b.LastVaccination != nil {
		b.Vaccinated = animals.VaccinatedYes
	}

	err = s.bovinos.AppendUnique(ctx, b, func(existing Bovino) bool {
		return strings.EqualFold(existing.Tag, tag)
	})
	if errors.Is(err, recordstore.ErrConflict) {
		return Bovino{}, ErrDuplicateTag
	}
	if err != nil {
		return b, err
	}
	return b, nil
}

func (s *Service) List() []Bovino {
	return s.bovinos.List()
}

type SearchFilter struct {
	Breed  string
	Status Status
	Tag    string
}

// Search: raça y brinco por substring sin distinguir mayúsculas, status exacto.
func (s *Service) Search(f SearchFilter) []Bovino {
	breed := strings.ToLower(strings.TrimSpace(f.Breed))
	tag := strings.ToLower(strings.TrimSpace(f.Tag))

	return s.bovinos.Filter(func(b Bovino) bool {
		if breed != "" && !strings.Contains(strings.ToLower(b.Breed), breed) {
			return false
		}
		if tag != "" && !strings.Contains(strings.ToLower(b.Tag), tag) {
			return false
		}
		if f.Status != "" && b.Status != f.Status {
			return false
		}
		return true
	})
}

func (s *Service) GetByID(id string) (Bovino, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Bovino{}, ErrNotFound
	}
	b, ok := s.bovinos.Find(func(b Bovino) bool { return b.ID == id })
	if !ok {
		return Bovino{}, ErrNotFound
	}
	return b, nil
}

// resolveAge: idade explícita gana; si no, años cumplidos desde dataNascimento.
// Las dos vías pasan por animals.ValidateAge.
func resolveAge(in CreateInput, now time.Time) (int, error) {
	if in.Age != nil {
		return *in.Age, animals.ValidateAge(*in.Age)
	}
	if in.BirthDate == nil {
		return 0, nil
	}
	if in.BirthDate.After(now) {
		return 0, &animals.ValidationError{Field: "dataNascimento", Message: "Data de nascimento não pode ser futura."}
	}
	age := fullYears(*in.BirthDate, now)
	var ve *animals.ValidationError
	if err := animals.ValidateAge(age); errors.As(err, &ve) {
		return 0, &animals.ValidationError{Field: "dataNascimento", Message: ve.Message}
	}
	return age, nil
}

// fullYears cuenta años cumplidos entre birth y now (0 si birth es futuro).
func fullYears(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
