package models

import (
	"time"

	"github.com/google/uuid"
)

type AssignmentOutcome string

const (
	OutcomeAssigned      AssignmentOutcome = "assigned"
	OutcomeClaimConflict AssignmentOutcome = "claim_conflict"
	OutcomeRolledBack    AssignmentOutcome = "rolled_back"
	OutcomeUnassigned    AssignmentOutcome = "unassigned"
)

// AssignmentRecord is one immutable audit entry.
type AssignmentRecord struct {
	Seq            int64             `json:"seq"`
	AlertID        uuid.UUID         `json:"alert_id"`
	UnitID         uuid.UUID         `json:"unit_id"`
	StationID      *uuid.UUID        `json:"station_id,omitempty"`
	DistanceMeters float64           `json:"distance_meters"`
	Outcome        AssignmentOutcome `json:"outcome"`
	RecordedAt     time.Time         `json:"recorded_at"`
}

type AssignStatus string

const (
	AssignStatusAssigned   AssignStatus = "assigned"
	AssignStatusUnassigned AssignStatus = "unassigned"
)

// AssignResult is the outcome of one dispatch attempt. Unassigned is a
// normal result: the alert stays created for a later retry.
type AssignResult struct {
	Status         AssignStatus `json:"status"`
	AlertID        uuid.UUID    `json:"alert_id"`
	UnitID         uuid.UUID    `json:"unit_id,omitempty"`
	StationID      *uuid.UUID   `json:"station_id,omitempty"`
	DistanceMeters float64      `json:"distance_meters,omitempty"`
	Attempts       int          `json:"attempts"`
}

// Assigned reports whether a unit was claimed.
func (r AssignResult) Assigned() bool {
	return r.Status == AssignStatusAssigned
}
