package memory

import (
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/service"
)

// NewStores wires a fresh in-memory backend. Stations are seeded once and
// treated as read-only afterwards.
func NewStores(stations ...models.Station) service.Stores {
	return service.Stores{
		Units:    NewUnitRegistry(),
		Alerts:   NewAlertStore(),
		Audit:    NewAuditLog(),
		Stations: NewStationStore(stations...),
	}
}
