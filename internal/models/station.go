package models

import (
	"github.com/google/uuid"
)

// Station is static reference data owned by the registration service.
type Station struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Contact   string    `json:"contact,omitempty"`
}
