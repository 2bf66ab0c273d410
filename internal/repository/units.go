package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/pkg/e"
)

const unitColumns = `
	id,
	device_id,
	station_id,
	capabilities,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	last_heartbeat,
	status,
	current_alert_id,
	version,
	created_at,
	updated_at`

// UnitRepository хранит состояние юнитов в PostgreSQL. Все переходы статуса
// выполняются одним условным UPDATE, поэтому захват юнита атомарен без явных блокировок.
type UnitRepository struct {
	db *pgxpool.Pool
}

func NewUnitRepository(db *pgxpool.Pool) *UnitRepository {
	return &UnitRepository{db: db}
}

func scanUnit(row pgx.Row) (*models.Unit, error) {
	var (
		unit      models.Unit
		lat, lon  *float64
		heartbeat *time.Time
	)
	err := row.Scan(
		&unit.ID,
		&unit.DeviceID,
		&unit.StationID,
		&unit.Capabilities,
		&lat,
		&lon,
		&heartbeat,
		&unit.Status,
		&unit.CurrentAlertID,
		&unit.Version,
		&unit.CreatedAt,
		&unit.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lat != nil && lon != nil {
		unit.Latitude, unit.Longitude = *lat, *lon
	}
	if heartbeat != nil {
		unit.LastHeartbeat = *heartbeat
	}
	return &unit, nil
}

// Register создает юнит или обновляет станцию и возможности существующего по device_id
func (r *UnitRepository) Register(ctx context.Context, unit *models.Unit) error {
	const op = "repository.Unit.Register"

	status := unit.Status
	if !status.Valid() || status.Engaged() {
		status = models.UnitAvailable
	}
	var (
		id        *uuid.UUID
		heartbeat *time.Time
	)
	if unit.ID != uuid.Nil {
		id = &unit.ID
	}
	if !unit.LastHeartbeat.IsZero() {
		heartbeat = &unit.LastHeartbeat
	}

	query := `
		INSERT INTO units (id, device_id, station_id, capabilities, status, location, last_heartbeat)
		VALUES (
			COALESCE($1::uuid, gen_random_uuid()),
			$2, $3, $4, $5,
			CASE WHEN $8::timestamptz IS NULL THEN NULL ELSE ST_SetSRID(ST_MakePoint($6, $7), 4326)::geography END,
			$8
		)
		ON CONFLICT (device_id) DO UPDATE SET
			station_id = EXCLUDED.station_id,
			capabilities = EXCLUDED.capabilities,
			location = COALESCE(EXCLUDED.location, units.location),
			last_heartbeat = COALESCE(EXCLUDED.last_heartbeat, units.last_heartbeat),
			version = units.version + 1,
			updated_at = NOW()
		RETURNING` + unitColumns

	saved, err := scanUnit(r.db.QueryRow(ctx, query,
		id,
		unit.DeviceID,
		unit.StationID,
		jsonObject(unit.Capabilities),
		status,
		unit.Longitude,
		unit.Latitude,
		heartbeat,
	))
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	*unit = *saved
	return nil
}

// Get возвращает юнит по его UUID
func (r *UnitRepository) Get(ctx context.Context, id uuid.UUID) (*models.Unit, error) {
	const op = "repository.Unit.Get"

	unit, err := scanUnit(r.db.QueryRow(ctx, `SELECT`+unitColumns+` FROM units WHERE id = $1`, id))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return unit, nil
}

// Claimable одним запросом отбирает из ids юниты, которые сейчас свободны
func (r *UnitRepository) Claimable(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	const op = "repository.Unit.Claimable"

	out := make(map[uuid.UUID]bool, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query := `
		SELECT id
		FROM units
		WHERE id = ANY($1) AND status = 'available' AND current_alert_id IS NULL;
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		out[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}

// TryClaim переводит свободный юнит в on_call. Условие WHERE и есть compare-and-set:
// из двух конкурирующих запросов строку обновит только один.
func (r *UnitRepository) TryClaim(ctx context.Context, unitID, alertID uuid.UUID) (*models.Unit, error) {
	const op = "repository.Unit.TryClaim"

	query := `
		UPDATE units SET
			status = 'on_call',
			current_alert_id = $2,
			version = version + 1,
			updated_at = NOW()
		WHERE id = $1 AND status = 'available' AND current_alert_id IS NULL
		RETURNING` + unitColumns

	unit, err := scanUnit(r.db.QueryRow(ctx, query, unitID, alertID))
	if err == nil {
		return unit, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		if _, _, stateErr := r.state(ctx, op, unitID); stateErr != nil {
			return nil, stateErr
		}
		return nil, fmt.Errorf("%s: unit %s is not available: %w", op, unitID, e.ErrConflict)
	}
	wrapped := e.WrapError(ctx, op, err)
	if errors.Is(wrapped, e.ErrUniqueViolation) {
		// другой юнит уже захвачен под этот алерт
		return nil, fmt.Errorf("%s: alert %s already holds a unit: %w", op, alertID, e.ErrInvalidState)
	}
	return nil, wrapped
}

// Release освобождает юнит, только если он все еще держит expectedAlertID
func (r *UnitRepository) Release(ctx context.Context, unitID, expectedAlertID uuid.UUID) error {
	const op = "repository.Unit.Release"

	query := `
		UPDATE units SET
			status = 'available',
			current_alert_id = NULL,
			version = version + 1,
			updated_at = NOW()
		WHERE id = $1 AND current_alert_id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, unitID, expectedAlertID)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, _, stateErr := r.state(ctx, op, unitID); stateErr != nil {
			return stateErr
		}
		return fmt.Errorf("%s: unit %s does not hold alert %s: %w", op, unitID, expectedAlertID, e.ErrConflict)
	}
	return nil
}

func (r *UnitRepository) MarkBusy(ctx context.Context, unitID, alertID uuid.UUID) error {
	const op = "repository.Unit.MarkBusy"

	query := `
		UPDATE units SET
			status = 'busy',
			version = version + 1,
			updated_at = NOW()
		WHERE id = $1 AND current_alert_id = $2 AND status = 'on_call';
	`
	cmdTag, err := r.db.Exec(ctx, query, unitID, alertID)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	if cmdTag.RowsAffected() > 0 {
		return nil
	}
	status, current, err := r.state(ctx, op, unitID)
	if err != nil {
		return err
	}
	if status == models.UnitBusy && current != nil && *current == alertID {
		return nil
	}
	return fmt.Errorf("%s: unit %s does not hold alert %s: %w", op, unitID, alertID, e.ErrConflict)
}

func (r *UnitRepository) SetOffDuty(ctx context.Context, unitID uuid.UUID, offDuty bool) error {
	const op = "repository.Unit.SetOffDuty"

	from, to := models.UnitAvailable, models.UnitOffDuty
	if !offDuty {
		from, to = to, from
	}
	query := `
		UPDATE units SET
			status = $3,
			version = version + 1,
			updated_at = NOW()
		WHERE id = $1 AND status = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, unitID, from, to)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	if cmdTag.RowsAffected() > 0 {
		return nil
	}
	status, _, err := r.state(ctx, op, unitID)
	if err != nil {
		return err
	}
	if status == to {
		return nil
	}
	return fmt.Errorf("%s: unit %s is %s: %w", op, unitID, status, e.ErrConflict)
}

// UpdateHeartbeat обновляет местоположение по device_id, при первом сигнале создает юнит.
// Статус и версия не меняются, поэтому heartbeat не мешает захвату.
func (r *UnitRepository) UpdateHeartbeat(ctx context.Context, hb models.Heartbeat) (*models.Unit, error) {
	const op = "repository.Unit.UpdateHeartbeat"

	query := `
		INSERT INTO units (device_id, location, last_heartbeat)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography, $4)
		ON CONFLICT (device_id) DO UPDATE SET
			location = EXCLUDED.location,
			last_heartbeat = EXCLUDED.last_heartbeat
		RETURNING` + unitColumns

	unit, err := scanUnit(r.db.QueryRow(ctx, query, hb.DeviceID, hb.Longitude, hb.Latitude, hb.Timestamp))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return unit, nil
}

// Positions возвращает все юниты с известным местоположением для построения индекса
func (r *UnitRepository) Positions(ctx context.Context) ([]models.UnitPosition, error) {
	const op = "repository.Unit.Positions"

	query := `
		SELECT
			id,
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude,
			last_heartbeat,
			status,
			capabilities
		FROM units
		WHERE location IS NOT NULL AND last_heartbeat IS NOT NULL;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	positions := make([]models.UnitPosition, 0)
	for rows.Next() {
		var p models.UnitPosition
		if err := rows.Scan(&p.ID, &p.Latitude, &p.Longitude, &p.LastHeartbeat, &p.Status, &p.Capabilities); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return positions, nil
}

// state читает текущий статус юнита, чтобы отличить "не найден" от конфликта
func (r *UnitRepository) state(ctx context.Context, op string, unitID uuid.UUID) (models.UnitStatus, *uuid.UUID, error) {
	var (
		status  models.UnitStatus
		current *uuid.UUID
	)
	err := r.db.QueryRow(ctx, `SELECT status, current_alert_id FROM units WHERE id = $1`, unitID).Scan(&status, &current)
	if err != nil {
		return "", nil, e.WrapError(ctx, op, err)
	}
	return status, current, nil
}

// jsonObject не дает записать SQL NULL в NOT NULL jsonb колонку
func jsonObject(x models.Extensions) models.Extensions {
	if x == nil {
		return models.Extensions{}
	}
	return x
}
