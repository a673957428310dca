package bovinos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"animal-registry/internal/domain/animals"
	"animal-registry/internal/recordstore"
)

const (
	titleVaccinationDue = "Vacinação pendente"
	titleUnderweight    = "Peso abaixo do esperado"
	titleInTreatment    = "Bovino em tratamento"
)

type AlertInput struct {
	Type        AlertType
	Title       string
	Description string
	BovinoID    string
}

// CreateAlert registra un alerta manual; la barrida nunca la borra.
func (s *Service) CreateAlert(ctx context.Context, in AlertInput) (Alert, error) {
	if !in.Type.Valid() {
		return Alert{}, ErrInvalidInput
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Alert{}, ErrInvalidInput
	}

	bovinoID := strings.TrimSpace(in.BovinoID)
	if bovinoID != "" {
		if _, err := s.GetByID(bovinoID); err != nil {
			return Alert{}, err
		}
	}

	a := Alert{
		ID:          recordstore.NewID(),
		Type:        in.Type,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		BovinoID:    bovinoID,
		Source:      AlertSourceManual,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.alerts.Append(ctx, a); err != nil {
		return a, err
	}
	return a, nil
}

// Alerts devuelve manuales y de barrida en orden de inserción.
func (s *Service) Alerts() []Alert {
	return s.alerts.List()
}

// RefreshAlerts recalcula las alertas de barrida sobre el rebaño actual y las
// reemplaza. Las manuales se mantienen delante, en su orden.
func (s *Service) RefreshAlerts(ctx context.Context) ([]Alert, error) {
	swept := SweepAlerts(s.bovinos.List(), s.now().UTC(), s.vaccinationInterval)

	err := s.alerts.Update(ctx, func(current []Alert) []Alert {
		out := make([]Alert, 0, len(current)+len(swept))
		for _, a := range current {
			if a.Source != AlertSourceSweep {
				out = append(out, a)
			}
		}
		return append(out, swept...)
	})
	return swept, err
}

// SweepAlerts aplica las reglas a cada bovino en orden de inserción:
// vacunación pendiente (warning), bajo peso (error) y en tratamiento (info).
//
// Sin fecha de última vacunación se alerta solo si el bovino no figura como vacunado.
func SweepAlerts(herd []Bovino, now time.Time, interval time.Duration) []Alert {
	out := make([]Alert, 0)

	add := func(b Bovino, t AlertType, title, desc string) {
		out = append(out, Alert{
			ID:          recordstore.NewID(),
			Type:        t,
			Title:       title,
			Description: desc,
			BovinoID:    b.ID,
			Source:      AlertSourceSweep,
			CreatedAt:   now,
		})
	}

	for _, b := range herd {
		label := fmt.Sprintf("Bovino %s", b.Tag)

		switch {
		case b.LastVaccination != nil:
			if since := now.Sub(*b.LastVaccination); since > interval {
				add(b, AlertWarning, titleVaccinationDue,
					fmt.Sprintf("%s - última vacinação há %d dias", label, int(since.Hours()/24)))
			}
		case !b.IsVaccinated():
			add(b, AlertWarning, titleVaccinationDue, label+" - sem registro de vacinação")
		}

		if b.BodyCondition == animals.ConditionUnderweight {
			add(b, AlertError, titleUnderweight, fmt.Sprintf("%s - %gkg", label, b.Weight))
		}

		if b.Status == StatusTreatment {
			add(b, AlertInfo, titleInTreatment, label+" - acompanhar evolução")
		}
	}
	return out
}
