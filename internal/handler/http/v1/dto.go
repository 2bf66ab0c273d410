package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateAlertRequest DTO для создания тревоги
// @Description DTO для создания тревоги
type CreateAlertRequest struct {
	ReporterID *uuid.UUID     `json:"reporter_id,omitempty"`
	Latitude   *float64       `json:"latitude" validate:"required,latitude"`
	Longitude  *float64       `json:"longitude" validate:"required,longitude"`
	Category   string         `json:"category" validate:"required,min=2,max=64"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// AlertResponse DTO для ответа с информацией о тревоге
// @Description DTO для ответа с информацией о тревоге
type AlertResponse struct {
	ID                uuid.UUID      `json:"id"`
	ReporterID        *uuid.UUID     `json:"reporter_id,omitempty"`
	Latitude          float64        `json:"latitude"`
	Longitude         float64        `json:"longitude"`
	Cell              string         `json:"cell"`
	Category          string         `json:"category"`
	Status            string         `json:"status"`
	AssignedUnitID    *uuid.UUID     `json:"assigned_unit_id,omitempty"`
	AssignedStationID *uuid.UUID     `json:"assigned_station_id,omitempty"`
	Metadata          map[string]any `json:"metadata,omitempty"`
	Version           int64          `json:"version"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// AssignRequest DTO для запуска назначения; все поля необязательны
// @Description DTO для запуска назначения
type AssignRequest struct {
	RadiusMeters  float64        `json:"radius_meters,omitempty" validate:"omitempty,gt=0,lte=200000"`
	MaxCandidates int            `json:"max_candidates,omitempty" validate:"omitempty,gt=0,lte=256"`
	Require       map[string]any `json:"require,omitempty"`
}

// AssignResponse DTO с результатом назначения
// @Description DTO с результатом назначения
type AssignResponse struct {
	Status         string     `json:"status" example:"assigned"`
	AlertID        uuid.UUID  `json:"alert_id"`
	UnitID         *uuid.UUID `json:"unit_id,omitempty"`
	StationID      *uuid.UUID `json:"station_id,omitempty"`
	DistanceMeters float64    `json:"distance_meters,omitempty"`
	Attempts       int        `json:"attempts"`
}

// RegisterUnitRequest DTO для регистрации подразделения
// @Description DTO для регистрации подразделения
type RegisterUnitRequest struct {
	DeviceID     string         `json:"device_id" validate:"required,max=128"`
	StationID    *uuid.UUID     `json:"station_id,omitempty"`
	Capabilities map[string]any `json:"capabilities,omitempty"`
}

// HeartbeatRequest DTO для обновления местоположения подразделения
// @Description DTO для обновления местоположения подразделения
type HeartbeatRequest struct {
	DeviceID  string     `json:"device_id" validate:"required,max=128"`
	Latitude  *float64   `json:"latitude" validate:"required,latitude"`
	Longitude *float64   `json:"longitude" validate:"required,longitude"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// ReleaseUnitRequest DTO для освобождения подразделения
// @Description DTO для освобождения подразделения
type ReleaseUnitRequest struct {
	AlertID string `json:"alert_id" validate:"required,uuid"`
}

// DutyRequest DTO для перевода подразделения на смену или со смены
// @Description DTO для перевода подразделения на смену или со смены
type DutyRequest struct {
	OffDuty *bool `json:"off_duty" validate:"required"`
}

// UnitResponse DTO для ответа с информацией о подразделении
// @Description DTO для ответа с информацией о подразделении
type UnitResponse struct {
	ID             uuid.UUID      `json:"id"`
	DeviceID       string         `json:"device_id"`
	StationID      *uuid.UUID     `json:"station_id,omitempty"`
	Capabilities   map[string]any `json:"capabilities,omitempty"`
	Latitude       float64        `json:"latitude"`
	Longitude      float64        `json:"longitude"`
	LastHeartbeat  *time.Time     `json:"last_heartbeat,omitempty"`
	Status         string         `json:"status"`
	CurrentAlertID *uuid.UUID     `json:"current_alert_id,omitempty"`
	Version        int64          `json:"version"`
}

// StationResponse DTO для ответа с информацией о станции
// @Description DTO для ответа с информацией о станции
type StationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Contact   string    `json:"contact,omitempty"`
}

// AssignmentRecordResponse DTO записи журнала назначений
// @Description DTO записи журнала назначений
type AssignmentRecordResponse struct {
	Seq            int64      `json:"seq"`
	AlertID        uuid.UUID  `json:"alert_id"`
	UnitID         *uuid.UUID `json:"unit_id,omitempty"`
	StationID      *uuid.UUID `json:"station_id,omitempty"`
	DistanceMeters float64    `json:"distance_meters"`
	Outcome        string     `json:"outcome"`
	RecordedAt     time.Time  `json:"recorded_at"`
}
