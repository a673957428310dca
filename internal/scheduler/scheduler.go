package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"animal-registry/internal/domain/bovinos"
	"animal-registry/internal/platform/logger"
	"animal-registry/internal/platform/metrics"
	"animal-registry/internal/recordstore"
)

const sweepTimeout = 2 * time.Minute

// AlertRefresher es lo que el scheduler necesita del servicio de bovinos.
type AlertRefresher interface {
	RefreshAlerts(ctx context.Context) ([]bovinos.Alert, error)
}

var _ AlertRefresher = (*bovinos.Service)(nil)

// Scheduler corre la barrida de alertas del rebaño según una expresión cron
// estándar de 5 campos.
type Scheduler struct {
	cron      *cron.Cron
	spec      string
	alerts    AlertRefresher
	log       logger.Logger
	entryID   cron.EntryID
	scheduled bool
}

func New(spec string, alerts AlertRefresher, log logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	return &Scheduler{
		cron:   cron.New(),
		spec:   spec,
		alerts: alerts,
		log:    log.With(map[string]any{"component": "scheduler"}),
	}
}

// Start programa la barrida y arranca el cron. Una expresión inválida no arranca nada.
func (s *Scheduler) Start() error {
	id, err := s.cron.AddFunc(s.spec, func() { _ = s.RunSweep() })
	if err != nil {
		return fmt.Errorf("schedule alert sweep %q: %w", s.spec, err)
	}
	s.entryID = id
	s.scheduled = true

	s.cron.Start()
	s.log.Info("scheduler started", map[string]any{"alert_sweep_cron": s.spec})
	return nil
}

// Stop espera a que termine una barrida en curso o a que venza ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	s.log.Info("stopping scheduler", nil)
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn("scheduler stop timed out", map[string]any{"error": ctx.Err()})
	}
}

// Next devuelve la próxima ejecución programada (zero si no arrancó).
func (s *Scheduler) Next() time.Time {
	if !s.scheduled {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Next
}

// RunSweep ejecuta una barrida ahora. Un ErrPersist no cuenta como fallo:
// las alertas quedan en memoria.
func (s *Scheduler) RunSweep() error {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	swept, err := s.alerts.RefreshAlerts(ctx)
	if err != nil && !errors.Is(err, recordstore.ErrPersist) {
		metrics.AlertSweeps.WithLabelValues("error").Inc()
		s.log.Error("alert sweep failed", map[string]any{"error": err})
		return err
	}

	metrics.AlertSweeps.WithLabelValues("ok").Inc()
	metrics.SweepAlerts.Set(float64(len(swept)))

	fields := map[string]any{"alerts": len(swept)}
	if err != nil {
		fields["error"] = err
		s.log.Warn("alert sweep done, not persisted", fields)
		return nil
	}
	s.log.Info("alert sweep done", fields)
	return nil
}
