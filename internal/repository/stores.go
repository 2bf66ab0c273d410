package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch/internal/service"
)

// NewStores собирает PostgreSQL реализации всех хранилищ сервиса
func NewStores(db *pgxpool.Pool) service.Stores {
	return service.Stores{
		Units:    NewUnitRepository(db),
		Alerts:   NewAlertRepository(db),
		Audit:    NewAuditRepository(db),
		Stations: NewStationRepository(db),
	}
}
