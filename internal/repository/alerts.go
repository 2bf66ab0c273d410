package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch/internal/geo"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/pkg/e"
)

const alertColumns = `
	id,
	reporter_id,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	cell,
	category,
	status,
	assigned_unit_id,
	assigned_station_id,
	metadata,
	version,
	created_at,
	updated_at`

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{db: db}
}

func scanAlert(row pgx.Row) (*models.Alert, error) {
	var (
		alert models.Alert
		cell  string
	)
	err := row.Scan(
		&alert.ID,
		&alert.ReporterID,
		&alert.Latitude,
		&alert.Longitude,
		&cell,
		&alert.Category,
		&alert.Status,
		&alert.AssignedUnitID,
		&alert.AssignedStationID,
		&alert.Metadata,
		&alert.Version,
		&alert.CreatedAt,
		&alert.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if alert.Cell, err = geo.ParseCell(cell); err != nil {
		return nil, err
	}
	return &alert, nil
}

// Create сохраняет новый алерт в статусе created
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	const op = "repository.Alert.Create"

	if alert.Status != models.AlertCreated {
		return fmt.Errorf("%s: new alert must be created, got %s: %w", op, alert.Status, e.ErrInvalidTransition)
	}
	query := `
		INSERT INTO alerts (id, reporter_id, location, cell, category, status, metadata, version, created_at, updated_at)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db.Exec(ctx, query,
		alert.ID,
		alert.ReporterID,
		alert.Longitude,
		alert.Latitude,
		alert.Cell.String(),
		alert.Category,
		alert.Status,
		jsonObject(alert.Metadata),
		alert.Version,
		alert.CreatedAt,
		alert.UpdatedAt,
	)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *AlertRepository) Get(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	const op = "repository.Alert.Get"

	alert, err := scanAlert(r.db.QueryRow(ctx, `SELECT`+alertColumns+` FROM alerts WHERE id = $1`, id))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return alert, nil
}

// List возвращает алерты с пагинацией, новые первыми; пустой status отключает фильтр
func (r *AlertRepository) List(ctx context.Context, status models.AlertStatus, page, pageSize int) ([]*models.Alert, error) {
	const op = "repository.Alert.List"

	offset := (page - 1) * pageSize
	query := `SELECT` + alertColumns + `
		FROM alerts
		WHERE ($1::text = '' OR status = $1::text)
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, string(status), pageSize, offset)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return alerts, nil
}

// RecordAssignment закрепляет юнит за алертом; разрешено только из created
func (r *AlertRepository) RecordAssignment(ctx context.Context, alertID, unitID uuid.UUID, stationID *uuid.UUID) (*models.Alert, error) {
	const op = "repository.Alert.RecordAssignment"

	query := `
		UPDATE alerts SET
			status = 'assigned',
			assigned_unit_id = $2,
			assigned_station_id = $3,
			version = version + 1,
			updated_at = NOW()
		WHERE id = $1 AND status = 'created'
		RETURNING` + alertColumns

	alert, err := scanAlert(r.db.QueryRow(ctx, query, alertID, unitID, stationID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.transitionError(ctx, op, alertID, models.AlertAssigned)
	}
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return alert, nil
}

// RevertAssignment возвращает алерт в created; используется только для компенсации
func (r *AlertRepository) RevertAssignment(ctx context.Context, alertID, unitID uuid.UUID) error {
	const op = "repository.Alert.RevertAssignment"

	query := `
		UPDATE alerts SET
			status = 'created',
			assigned_unit_id = NULL,
			assigned_station_id = NULL,
			version = version + 1,
			updated_at = NOW()
		WHERE id = $1 AND status = 'assigned' AND assigned_unit_id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, alertID, unitID)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.transitionError(ctx, op, alertID, models.AlertCreated)
	}
	return nil
}

// Transition выполняет переход в accepted, resolved или cancelled
func (r *AlertRepository) Transition(ctx context.Context, alertID uuid.UUID, to models.AlertStatus) (*models.Alert, error) {
	const op = "repository.Alert.Transition"

	if to == models.AlertAssigned || len(models.AllowedFrom(to)) == 0 {
		return nil, fmt.Errorf("%s: alert %s: -> %s: %w", op, alertID, to, e.ErrInvalidTransition)
	}
	from := make([]string, 0, len(models.AllowedFrom(to)))
	for _, s := range models.AllowedFrom(to) {
		from = append(from, string(s))
	}

	query := `
		UPDATE alerts SET
			status = $2,
			version = version + 1,
			updated_at = NOW()
		WHERE id = $1 AND status = ANY($3)
		RETURNING` + alertColumns

	alert, err := scanAlert(r.db.QueryRow(ctx, query, alertID, string(to), from))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.transitionError(ctx, op, alertID, to)
	}
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return alert, nil
}

// transitionError отличает отсутствующий алерт от недопустимого перехода
func (r *AlertRepository) transitionError(ctx context.Context, op string, alertID uuid.UUID, to models.AlertStatus) error {
	var status models.AlertStatus
	err := r.db.QueryRow(ctx, `SELECT status FROM alerts WHERE id = $1`, alertID).Scan(&status)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	return fmt.Errorf("%s: alert %s: %s -> %s: %w", op, alertID, status, to, e.ErrInvalidTransition)
}
