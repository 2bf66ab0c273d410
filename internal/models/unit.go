package models

import (
	"time"

	"github.com/google/uuid"
)

type UnitStatus string

const (
	UnitAvailable UnitStatus = "available"
	UnitOnCall    UnitStatus = "on_call"
	UnitBusy      UnitStatus = "busy"
	UnitOffDuty   UnitStatus = "off_duty"
)

// Engaged reports whether the unit holds an assignment.
func (s UnitStatus) Engaged() bool {
	return s == UnitOnCall || s == UnitBusy
}

func (s UnitStatus) Valid() bool {
	switch s {
	case UnitAvailable, UnitOnCall, UnitBusy, UnitOffDuty:
		return true
	}
	return false
}

// Unit is a mobile responder resource.
type Unit struct {
	ID             uuid.UUID  `json:"id"`
	DeviceID       string     `json:"device_id"`
	StationID      *uuid.UUID `json:"station_id,omitempty"`
	Capabilities   Extensions `json:"capabilities,omitempty"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	LastHeartbeat  time.Time  `json:"last_heartbeat"`
	Status         UnitStatus `json:"status"`
	CurrentAlertID *uuid.UUID `json:"current_alert_id,omitempty"`
	Version        int64      `json:"version"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Heartbeat is a location/liveness report from a unit's device.
type Heartbeat struct {
	DeviceID  string
	Latitude  float64
	Longitude float64
	Timestamp time.Time
}

// UnitPosition is the slice of unit state the location index is built from.
type UnitPosition struct {
	ID            uuid.UUID
	Latitude      float64
	Longitude     float64
	LastHeartbeat time.Time
	Status        UnitStatus
	Capabilities  Extensions
}
