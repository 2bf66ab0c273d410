package service

import (
	"context"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/internal/geo"
	"github.com/shenikar/emergency_dispatch/internal/models"
)

//go:generate mockgen -source=contracts.go -destination=mocks/mock_contracts.go -package=mocks

// UnitRegistry is the authoritative unit state. Every state change is a
// per-unit compare-and-set; operations on different units never contend.
type UnitRegistry interface {
	// Register upserts a unit by device id (station, capabilities).
	Register(ctx context.Context, unit *models.Unit) error
	Get(ctx context.Context, id uuid.UUID) (*models.Unit, error)
	// Claimable reports which of ids are currently available. It is a read
	// only pre-check; TryClaim stays the authority.
	Claimable(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error)
	// TryClaim moves an available unit to on_call for alertID.
	// Returns e.ErrConflict when the unit is not available.
	TryClaim(ctx context.Context, unitID, alertID uuid.UUID) (*models.Unit, error)
	// Release returns the unit to available if it holds expectedAlertID.
	Release(ctx context.Context, unitID, expectedAlertID uuid.UUID) error
	MarkBusy(ctx context.Context, unitID, alertID uuid.UUID) error
	SetOffDuty(ctx context.Context, unitID uuid.UUID, offDuty bool) error
	// UpdateHeartbeat upserts location fields by device id without touching status.
	UpdateHeartbeat(ctx context.Context, hb models.Heartbeat) (*models.Unit, error)
	Positions(ctx context.Context) ([]models.UnitPosition, error)
}

// AlertStore persists alerts and enforces their lifecycle.
type AlertStore interface {
	Create(ctx context.Context, alert *models.Alert) error
	Get(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	List(ctx context.Context, status models.AlertStatus, page, pageSize int) ([]*models.Alert, error)
	// RecordAssignment is allowed only from created.
	RecordAssignment(ctx context.Context, alertID, unitID uuid.UUID, stationID *uuid.UUID) (*models.Alert, error)
	// RevertAssignment undoes RecordAssignment for unitID; compensation only.
	RevertAssignment(ctx context.Context, alertID, unitID uuid.UUID) error
	// Transition applies accepted/resolved/cancelled.
	Transition(ctx context.Context, alertID uuid.UUID, to models.AlertStatus) (*models.Alert, error)
}

// AuditLog is append-only.
type AuditLog interface {
	Append(ctx context.Context, rec *models.AssignmentRecord) error
	// Query returns records with from <= recorded_at < to; zero bounds are open.
	Query(ctx context.Context, from, to time.Time) ([]*models.AssignmentRecord, error)
}

// StationStore is read-only reference data.
type StationStore interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Station, error)
	List(ctx context.Context) ([]*models.Station, error)
}

// LocationIndex answers radius queries over unit positions.
type LocationIndex interface {
	Query(center geo.Point, radiusMeters float64, opts geo.QueryOptions) iter.Seq[geo.Candidate]
	Rebuild(entries []geo.Entry)
	Len() int
	BuiltAt() time.Time
}

// Stores groups the storage backends the service runs on.
type Stores struct {
	Units    UnitRegistry
	Alerts   AlertStore
	Audit    AuditLog
	Stations StationStore
}
