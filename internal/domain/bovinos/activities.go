package bovinos

import (
	"context"
	"sort"
	"strings"
	"time"

	"animal-registry/internal/recordstore"
)

const (
	DefaultActivityLimit = 50
	MaxActivityLimit     = 200
)

type ActivityInput struct {
	Type        ActivityType
	Title       string
	Description string
	BovinoID    string
	OccurredAt  time.Time // zero => ahora
}

// RecordActivity registra un evento de manejo. Si trae BovinoID, el bovino debe existir.
func (s *Service) RecordActivity(ctx context.Context, in ActivityInput) (Activity, error) {
	if !in.Type.Valid() {
		return Activity{}, ErrInvalidInput
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Activity{}, ErrInvalidInput
	}

	bovinoID := strings.TrimSpace(in.BovinoID)
	if bovinoID != "" {
		if _, err := s.GetByID(bovinoID); err != nil {
			return Activity{}, err
		}
	}

	now := s.now().UTC()
	occurred := in.OccurredAt.UTC()
	if in.OccurredAt.IsZero() {
		occurred = now
	}

	a := Activity{
		ID:          recordstore.NewID(),
		Type:        in.Type,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		BovinoID:    bovinoID,
		OccurredAt:  occurred,
		RecordedAt:  now,
	}

	if err := s.activities.Append(ctx, a); err != nil {
		return a, err
	}
	return a, nil
}

// RecentActivities devuelve las más recientes primero (por OccurredAt; en empate,
// la registrada después va antes).
func (s *Service) RecentActivities(limit int) []Activity {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	if limit > MaxActivityLimit {
		limit = MaxActivityLimit
	}

	items := s.activities.List()
	// invertir primero para que el sort estable deje lo último registrado arriba
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].OccurredAt.After(items[j].OccurredAt)
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
