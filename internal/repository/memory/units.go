package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/pkg/e"
)

// unitState is the claimable part of a unit. Values are immutable once
// published; every change swaps in a new pointer.
type unitState struct {
	status       models.UnitStatus
	currentAlert uuid.UUID // uuid.Nil when free
	version      int64
	stationID    *uuid.UUID
	capabilities models.Extensions
	updatedAt    time.Time
}

// unitLocation is written only by heartbeats, independently of unitState,
// so heartbeats and claims on the same unit never invalidate each other.
type unitLocation struct {
	lat, lon  float64
	heartbeat time.Time
}

type unitSlot struct {
	id        uuid.UUID
	deviceID  string
	createdAt time.Time
	state     atomic.Pointer[unitState]
	loc       atomic.Pointer[unitLocation]
}

// UnitRegistry is an in-memory service.UnitRegistry. Each unit is guarded
// only by compare-and-swap on its own state pointer.
type UnitRegistry struct {
	byID     sync.Map // uuid.UUID -> *unitSlot
	byDevice sync.Map // string -> *unitSlot
	now      func() time.Time
}

func NewUnitRegistry() *UnitRegistry {
	return &UnitRegistry{now: func() time.Time { return time.Now().UTC() }}
}

func (r *UnitRegistry) slot(id uuid.UUID) (*unitSlot, error) {
	v, ok := r.byID.Load(id)
	if !ok {
		return nil, e.Wrap("memory.UnitRegistry", e.ErrNotFound)
	}
	return v.(*unitSlot), nil
}

// slotForDevice returns the slot for deviceID, creating an available unit on
// first sight. LoadOrStore makes concurrent first heartbeats converge on one slot.
// A new slot is reachable by id before it is published by device, so a unit
// returned to any caller can always be looked up.
func (r *UnitRegistry) slotForDevice(deviceID string, id uuid.UUID, initial *unitState) (*unitSlot, bool, error) {
	if v, ok := r.byDevice.Load(deviceID); ok {
		return v.(*unitSlot), false, nil
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	fresh := &unitSlot{id: id, deviceID: deviceID, createdAt: r.now()}
	fresh.state.Store(initial)

	if v, taken := r.byID.LoadOrStore(id, fresh); taken {
		if other := v.(*unitSlot); other.deviceID == deviceID {
			return other, false, nil
		}
		if v, ok := r.byDevice.Load(deviceID); ok {
			return v.(*unitSlot), false, nil
		}
		return nil, false, fmt.Errorf("memory.UnitRegistry: unit id %s belongs to another device: %w", id, e.ErrConflict)
	}

	v, loaded := r.byDevice.LoadOrStore(deviceID, fresh)
	if loaded {
		r.byID.CompareAndDelete(id, fresh)
		return v.(*unitSlot), false, nil
	}
	return fresh, true, nil
}

// update applies fn to the current state with a CAS retry loop. fn returns
// the next state or an error that aborts without side effects.
func (r *UnitRegistry) update(s *unitSlot, fn func(cur *unitState) (*unitState, error)) (*unitState, error) {
	for {
		cur := s.state.Load()
		next, err := fn(cur)
		if err != nil {
			return nil, err
		}
		if next == cur {
			return cur, nil
		}
		next.version = cur.version + 1
		next.updatedAt = r.now()
		if s.state.CompareAndSwap(cur, next) {
			return next, nil
		}
	}
}

func (r *UnitRegistry) Register(_ context.Context, unit *models.Unit) error {
	status := unit.Status
	if status == "" || !status.Valid() || status.Engaged() {
		status = models.UnitAvailable
	}
	initial := &unitState{
		status:       status,
		version:      1,
		stationID:    cloneID(unit.StationID),
		capabilities: unit.Capabilities.Clone(),
		updatedAt:    r.now(),
	}

	s, created, err := r.slotForDevice(unit.DeviceID, unit.ID, initial)
	if err != nil {
		return err
	}
	if !created {
		_, err = r.update(s, func(cur *unitState) (*unitState, error) {
			next := *cur
			next.stationID = cloneID(unit.StationID)
			next.capabilities = unit.Capabilities.Clone()
			return &next, nil
		})
		if err != nil {
			return err
		}
	}
	if !unit.LastHeartbeat.IsZero() {
		s.loc.Store(&unitLocation{lat: unit.Latitude, lon: unit.Longitude, heartbeat: unit.LastHeartbeat})
	}

	*unit = *snapshot(s, s.state.Load())
	return nil
}

func (r *UnitRegistry) Get(_ context.Context, id uuid.UUID) (*models.Unit, error) {
	s, err := r.slot(id)
	if err != nil {
		return nil, err
	}
	return snapshot(s, s.state.Load()), nil
}

func (r *UnitRegistry) Claimable(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		v, ok := r.byID.Load(id)
		if !ok {
			continue
		}
		st := v.(*unitSlot).state.Load()
		if st.status == models.UnitAvailable && st.currentAlert == uuid.Nil {
			out[id] = true
		}
	}
	return out, nil
}

func (r *UnitRegistry) TryClaim(_ context.Context, unitID, alertID uuid.UUID) (*models.Unit, error) {
	s, err := r.slot(unitID)
	if err != nil {
		return nil, err
	}
	st, err := r.update(s, func(cur *unitState) (*unitState, error) {
		if cur.status != models.UnitAvailable || cur.currentAlert != uuid.Nil {
			return nil, fmt.Errorf("memory.UnitRegistry: unit %s is %s: %w", unitID, cur.status, e.ErrConflict)
		}
		next := *cur
		next.status = models.UnitOnCall
		next.currentAlert = alertID
		return &next, nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot(s, st), nil
}

func (r *UnitRegistry) Release(_ context.Context, unitID, expectedAlertID uuid.UUID) error {
	s, err := r.slot(unitID)
	if err != nil {
		return err
	}
	_, err = r.update(s, func(cur *unitState) (*unitState, error) {
		if cur.currentAlert == uuid.Nil || cur.currentAlert != expectedAlertID {
			return nil, fmt.Errorf("memory.UnitRegistry: unit %s does not hold alert %s: %w", unitID, expectedAlertID, e.ErrConflict)
		}
		next := *cur
		next.status = models.UnitAvailable
		next.currentAlert = uuid.Nil
		return &next, nil
	})
	return err
}

func (r *UnitRegistry) MarkBusy(_ context.Context, unitID, alertID uuid.UUID) error {
	s, err := r.slot(unitID)
	if err != nil {
		return err
	}
	_, err = r.update(s, func(cur *unitState) (*unitState, error) {
		if cur.currentAlert != alertID || !cur.status.Engaged() {
			return nil, fmt.Errorf("memory.UnitRegistry: unit %s does not hold alert %s: %w", unitID, alertID, e.ErrConflict)
		}
		if cur.status == models.UnitBusy {
			return cur, nil
		}
		next := *cur
		next.status = models.UnitBusy
		return &next, nil
	})
	return err
}

func (r *UnitRegistry) SetOffDuty(_ context.Context, unitID uuid.UUID, offDuty bool) error {
	s, err := r.slot(unitID)
	if err != nil {
		return err
	}
	from, to := models.UnitAvailable, models.UnitOffDuty
	if !offDuty {
		from, to = to, from
	}
	_, err = r.update(s, func(cur *unitState) (*unitState, error) {
		switch cur.status {
		case to:
			return cur, nil
		case from:
			next := *cur
			next.status = to
			return &next, nil
		}
		return nil, fmt.Errorf("memory.UnitRegistry: unit %s is %s: %w", unitID, cur.status, e.ErrConflict)
	})
	return err
}

func (r *UnitRegistry) UpdateHeartbeat(_ context.Context, hb models.Heartbeat) (*models.Unit, error) {
	s, _, err := r.slotForDevice(hb.DeviceID, uuid.Nil, &unitState{
		status:    models.UnitAvailable,
		version:   1,
		updatedAt: r.now(),
	})
	if err != nil {
		return nil, err
	}
	s.loc.Store(&unitLocation{lat: hb.Latitude, lon: hb.Longitude, heartbeat: hb.Timestamp})
	return snapshot(s, s.state.Load()), nil
}

// Positions lists every unit that has reported a location.
func (r *UnitRegistry) Positions(_ context.Context) ([]models.UnitPosition, error) {
	var out []models.UnitPosition
	r.byID.Range(func(_, v any) bool {
		s := v.(*unitSlot)
		loc := s.loc.Load()
		if loc == nil {
			return true
		}
		st := s.state.Load()
		out = append(out, models.UnitPosition{
			ID:            s.id,
			Latitude:      loc.lat,
			Longitude:     loc.lon,
			LastHeartbeat: loc.heartbeat,
			Status:        st.status,
			Capabilities:  st.capabilities,
		})
		return true
	})
	return out, nil
}

func snapshot(s *unitSlot, st *unitState) *models.Unit {
	u := &models.Unit{
		ID:           s.id,
		DeviceID:     s.deviceID,
		StationID:    cloneID(st.stationID),
		Capabilities: st.capabilities.Clone(),
		Status:       st.status,
		Version:      st.version,
		CreatedAt:    s.createdAt,
		UpdatedAt:    st.updatedAt,
	}
	if st.currentAlert != uuid.Nil {
		id := st.currentAlert
		u.CurrentAlertID = &id
	}
	if loc := s.loc.Load(); loc != nil {
		u.Latitude = loc.lat
		u.Longitude = loc.lon
		u.LastHeartbeat = loc.heartbeat
	}
	return u
}

func cloneID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
