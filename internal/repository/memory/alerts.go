package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/pkg/e"
)

// AlertStore is an in-memory service.AlertStore. Stored alerts are never
// mutated in place; transitions CAS a new copy into the alert's slot.
type AlertStore struct {
	alerts sync.Map // uuid.UUID -> *atomic.Pointer[models.Alert]
	now    func() time.Time
}

func NewAlertStore() *AlertStore {
	return &AlertStore{now: func() time.Time { return time.Now().UTC() }}
}

func (s *AlertStore) Create(_ context.Context, alert *models.Alert) error {
	if alert.Status != models.AlertCreated {
		return fmt.Errorf("memory.AlertStore: new alert must be created, got %s: %w", alert.Status, e.ErrInvalidTransition)
	}
	p := &atomic.Pointer[models.Alert]{}
	p.Store(cloneAlert(alert))
	if _, loaded := s.alerts.LoadOrStore(alert.ID, p); loaded {
		return fmt.Errorf("memory.AlertStore: alert %s: %w", alert.ID, e.ErrUniqueViolation)
	}
	return nil
}

func (s *AlertStore) slot(id uuid.UUID) (*atomic.Pointer[models.Alert], error) {
	v, ok := s.alerts.Load(id)
	if !ok {
		return nil, fmt.Errorf("memory.AlertStore: alert %s: %w", id, e.ErrNotFound)
	}
	return v.(*atomic.Pointer[models.Alert]), nil
}

func (s *AlertStore) Get(_ context.Context, id uuid.UUID) (*models.Alert, error) {
	p, err := s.slot(id)
	if err != nil {
		return nil, err
	}
	return cloneAlert(p.Load()), nil
}

// List returns alerts newest first, optionally filtered by status.
func (s *AlertStore) List(_ context.Context, status models.AlertStatus, page, pageSize int) ([]*models.Alert, error) {
	var all []*models.Alert
	s.alerts.Range(func(_, v any) bool {
		a := v.(*atomic.Pointer[models.Alert]).Load()
		if status == "" || a.Status == status {
			all = append(all, a)
		}
		return true
	})
	slices.SortFunc(all, func(a, b *models.Alert) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	offset := (page - 1) * pageSize
	if offset >= len(all) {
		return []*models.Alert{}, nil
	}
	end := min(offset+pageSize, len(all))

	out := make([]*models.Alert, 0, end-offset)
	for _, a := range all[offset:end] {
		out = append(out, cloneAlert(a))
	}
	return out, nil
}

func (s *AlertStore) update(id uuid.UUID, fn func(a *models.Alert) error) (*models.Alert, error) {
	p, err := s.slot(id)
	if err != nil {
		return nil, err
	}
	for {
		cur := p.Load()
		next := cloneAlert(cur)
		if err := fn(next); err != nil {
			return nil, err
		}
		next.Version = cur.Version + 1
		next.UpdatedAt = s.now()
		if p.CompareAndSwap(cur, next) {
			return cloneAlert(next), nil
		}
	}
}

func (s *AlertStore) RecordAssignment(_ context.Context, alertID, unitID uuid.UUID, stationID *uuid.UUID) (*models.Alert, error) {
	return s.update(alertID, func(a *models.Alert) error {
		if a.Status != models.AlertCreated {
			return fmt.Errorf("memory.AlertStore: alert %s is %s: %w", alertID, a.Status, e.ErrInvalidTransition)
		}
		a.Status = models.AlertAssigned
		a.AssignedUnitID = &unitID
		a.AssignedStationID = cloneID(stationID)
		return nil
	})
}

func (s *AlertStore) RevertAssignment(_ context.Context, alertID, unitID uuid.UUID) error {
	_, err := s.update(alertID, func(a *models.Alert) error {
		if a.Status != models.AlertAssigned || a.AssignedUnitID == nil || *a.AssignedUnitID != unitID {
			return fmt.Errorf("memory.AlertStore: alert %s is not assigned to %s: %w", alertID, unitID, e.ErrInvalidTransition)
		}
		a.Status = models.AlertCreated
		a.AssignedUnitID = nil
		a.AssignedStationID = nil
		return nil
	})
	return err
}

func (s *AlertStore) Transition(_ context.Context, alertID uuid.UUID, to models.AlertStatus) (*models.Alert, error) {
	return s.update(alertID, func(a *models.Alert) error {
		if to == models.AlertAssigned || !a.Status.CanTransition(to) {
			return fmt.Errorf("memory.AlertStore: alert %s: %s -> %s: %w", alertID, a.Status, to, e.ErrInvalidTransition)
		}
		a.Status = to
		return nil
	})
}

func cloneAlert(a *models.Alert) *models.Alert {
	c := *a
	c.ReporterID = cloneID(a.ReporterID)
	c.AssignedUnitID = cloneID(a.AssignedUnitID)
	c.AssignedStationID = cloneID(a.AssignedStationID)
	c.Metadata = a.Metadata.Clone()
	return &c
}
