package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/pkg/e"
)

// AuditRepository пишет журнал назначений. Таблица защищена триггером от UPDATE и DELETE.
type AuditRepository struct {
	db *pgxpool.Pool
}

func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{db: db}
}

// Append добавляет запись; seq и recorded_at назначает база
func (r *AuditRepository) Append(ctx context.Context, rec *models.AssignmentRecord) error {
	const op = "repository.Audit.Append"

	query := `
		INSERT INTO assignment_log (alert_id, unit_id, station_id, distance_meters, outcome)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING seq, recorded_at;
	`
	err := r.db.QueryRow(ctx, query,
		rec.AlertID,
		rec.UnitID,
		rec.StationID,
		rec.DistanceMeters,
		string(rec.Outcome),
	).Scan(&rec.Seq, &rec.RecordedAt)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// Query возвращает записи из полуинтервала [from, to) по возрастанию seq; нулевые границы открыты
func (r *AuditRepository) Query(ctx context.Context, from, to time.Time) ([]*models.AssignmentRecord, error) {
	const op = "repository.Audit.Query"

	query := `
		SELECT seq, alert_id, unit_id, station_id, distance_meters, outcome, recorded_at
		FROM assignment_log
		WHERE ($1::timestamptz IS NULL OR recorded_at >= $1)
		  AND ($2::timestamptz IS NULL OR recorded_at < $2)
		ORDER BY seq;
	`
	rows, err := r.db.Query(ctx, query, nullableTime(from), nullableTime(to))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	records := make([]*models.AssignmentRecord, 0)
	for rows.Next() {
		rec := &models.AssignmentRecord{}
		err := rows.Scan(
			&rec.Seq,
			&rec.AlertID,
			&rec.UnitID,
			&rec.StationID,
			&rec.DistanceMeters,
			&rec.Outcome,
			&rec.RecordedAt,
		)
		if err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return records, nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
