package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/internal/geo"
	"github.com/shenikar/emergency_dispatch/pkg/e"
)

type AlertStatus string

const (
	AlertCreated   AlertStatus = "created"
	AlertAssigned  AlertStatus = "assigned"
	AlertAccepted  AlertStatus = "accepted"
	AlertResolved  AlertStatus = "resolved"
	AlertCancelled AlertStatus = "cancelled"
)

// alertTransitions lists, per target state, the states it may be entered from.
var alertTransitions = map[AlertStatus][]AlertStatus{
	AlertAssigned:  {AlertCreated},
	AlertAccepted:  {AlertAssigned},
	AlertResolved:  {AlertAssigned, AlertAccepted},
	AlertCancelled: {AlertCreated, AlertAssigned},
}

// IsTerminal reports whether no further transition is possible.
func (s AlertStatus) IsTerminal() bool {
	return s == AlertResolved || s == AlertCancelled
}

func (s AlertStatus) Valid() bool {
	switch s {
	case AlertCreated, AlertAssigned, AlertAccepted, AlertResolved, AlertCancelled:
		return true
	}
	return false
}

// CanTransition reports whether s -> to is a legal lifecycle step.
func (s AlertStatus) CanTransition(to AlertStatus) bool {
	for _, from := range alertTransitions[to] {
		if from == s {
			return true
		}
	}
	return false
}

// AllowedFrom returns the states a transition into to may start from.
func AllowedFrom(to AlertStatus) []AlertStatus {
	return alertTransitions[to]
}

// Alert is a reported incident awaiting or holding a responder.
type Alert struct {
	ID                uuid.UUID   `json:"id"`
	ReporterID        *uuid.UUID  `json:"reporter_id,omitempty"`
	Latitude          float64     `json:"latitude"`
	Longitude         float64     `json:"longitude"`
	Cell              geo.Cell    `json:"cell"`
	Category          string      `json:"category"`
	Status            AlertStatus `json:"status"`
	AssignedUnitID    *uuid.UUID  `json:"assigned_unit_id,omitempty"`
	AssignedStationID *uuid.UUID  `json:"assigned_station_id,omitempty"`
	Metadata          Extensions  `json:"metadata,omitempty"`
	Version           int64       `json:"version"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// Point returns the alert location.
func (a *Alert) Point() geo.Point {
	return geo.Point{Lat: a.Latitude, Lon: a.Longitude}
}

// NewAlert builds an alert in the created state. The spatial cell is derived
// here from the location, which is fixed for the life of the alert.
func NewAlert(reporterID *uuid.UUID, lat, lon float64, category string, metadata Extensions, now time.Time) (*Alert, error) {
	const op = "models.NewAlert"

	p := geo.Point{Lat: lat, Lon: lon}
	if !p.Valid() {
		return nil, fmt.Errorf("%s: coordinates (%f, %f): %w", op, lat, lon, e.ErrInvalidInput)
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, fmt.Errorf("%s: empty category: %w", op, e.ErrInvalidInput)
	}
	if err := metadata.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}

	return &Alert{
		ID:         uuid.New(),
		ReporterID: reporterID,
		Latitude:   lat,
		Longitude:  lon,
		Cell:       geo.CellOf(p, geo.DefaultCellDegrees),
		Category:   category,
		Status:     AlertCreated,
		Metadata:   metadata.Clone(),
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}
