package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/pkg/e"
)

// StationRepository читает справочник станций; записью владеет сервис регистрации
type StationRepository struct {
	db *pgxpool.Pool
}

func NewStationRepository(db *pgxpool.Pool) *StationRepository {
	return &StationRepository{db: db}
}

func (r *StationRepository) Get(ctx context.Context, id uuid.UUID) (*models.Station, error) {
	const op = "repository.Station.Get"

	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude,
			contact
		FROM stations
		WHERE id = $1;
	`
	st := &models.Station{}
	err := r.db.QueryRow(ctx, query, id).Scan(&st.ID, &st.Name, &st.Latitude, &st.Longitude, &st.Contact)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return st, nil
}

func (r *StationRepository) List(ctx context.Context) ([]*models.Station, error) {
	const op = "repository.Station.List"

	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude,
			contact
		FROM stations
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	stations := make([]*models.Station, 0)
	for rows.Next() {
		st := &models.Station{}
		if err := rows.Scan(&st.ID, &st.Name, &st.Latitude, &st.Longitude, &st.Contact); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		stations = append(stations, st)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return stations, nil
}
