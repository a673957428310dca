package bovinos

import (
	"time"

	"animal-registry/internal/domain/animals"
)

const (
	StorageKey           = "bovinos"
	ActivitiesStorageKey = "activities"
	AlertsStorageKey     = "alerts"

	Species = "bovino"
)

type Status string

const (
	StatusHealthy      Status = "saudavel"
	StatusTreatment    Status = "tratamento"
	StatusReproduction Status = "reproducao"
	StatusObservation  Status = "observacao"
)

func (s Status) Valid() bool {
	switch s {
	case StatusHealthy, StatusTreatment, StatusReproduction, StatusObservation:
		return true
	}
	return false
}

// Bovino extiende el registro genérico con datos de manejo del rebaño.
// Especie siempre es "bovino".
type Bovino struct {
	animals.Animal

	Tag      string `json:"brinco"`
	Status   Status `json:"status"`
	Location string `json:"localizacao"`

	LastVaccination *time.Time `json:"dataUltimaVacinacao,omitempty"`
	BirthDate       *time.Time `json:"dataNascimento,omitempty"`
}

type ActivityType string

const (
	ActivityVaccination ActivityType = "vaccination"
	ActivityWeight      ActivityType = "weight"
	ActivityBirth       ActivityType = "birth"
	ActivityTreatment   ActivityType = "treatment"
	ActivityNote        ActivityType = "note"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityVaccination, ActivityWeight, ActivityBirth, ActivityTreatment, ActivityNote:
		return true
	}
	return false
}

type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	BovinoID    string       `json:"bovinoId,omitempty"`
	OccurredAt  time.Time    `json:"occurredAt"`
	RecordedAt  time.Time    `json:"recordedAt"`
}

type AlertType string

const (
	AlertWarning AlertType = "warning"
	AlertError   AlertType = "error"
	AlertInfo    AlertType = "info"
)

func (t AlertType) Valid() bool {
	return t == AlertWarning || t == AlertError || t == AlertInfo
}

type AlertSource string

const (
	AlertSourceManual AlertSource = "manual"
	AlertSourceSweep  AlertSource = "sweep"
)

type Alert struct {
	ID          string      `json:"id"`
	Type        AlertType   `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	BovinoID    string      `json:"bovinoId,omitempty"`
	Source      AlertSource `json:"source"`
	CreatedAt   time.Time   `json:"createdAt"`
}
