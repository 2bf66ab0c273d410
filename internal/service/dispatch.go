package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/internal/config"
	"github.com/shenikar/emergency_dispatch/internal/geo"
	"github.com/shenikar/emergency_dispatch/internal/metrics"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/webhook"
	"github.com/shenikar/emergency_dispatch/pkg/e"
	"github.com/sirupsen/logrus"
)

// AssignOptions tunes one assign call. Zero values fall back to configuration.
type AssignOptions struct {
	RadiusMeters  float64
	MaxCandidates int
	// Require restricts candidates to units whose capabilities match.
	Require map[string]any
}

//go:generate mockgen -source=dispatch.go -destination=mocks/mock_dispatch.go -package=mocks

// DispatchService определяет контракт бизнес-логики диспетчеризации
type DispatchService interface {
	CreateAlert(ctx context.Context, reporterID *uuid.UUID, lat, lon float64, category string, metadata models.Extensions) (*models.Alert, error)
	GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	ListAlerts(ctx context.Context, status models.AlertStatus, page, pageSize int) ([]*models.Alert, error)
	Assign(ctx context.Context, alertID uuid.UUID, opts AssignOptions) (models.AssignResult, error)
	AcceptAlert(ctx context.Context, alertID uuid.UUID) (*models.Alert, error)
	ResolveAlert(ctx context.Context, alertID uuid.UUID) (*models.Alert, error)
	CancelAlert(ctx context.Context, alertID uuid.UUID) (*models.Alert, error)

	RegisterUnit(ctx context.Context, unit *models.Unit) error
	GetUnit(ctx context.Context, id uuid.UUID) (*models.Unit, error)
	UpdateUnitLocation(ctx context.Context, hb models.Heartbeat) (*models.Unit, error)
	ReleaseUnit(ctx context.Context, unitID, alertID uuid.UUID) error
	SetUnitOffDuty(ctx context.Context, unitID uuid.UUID, offDuty bool) error

	GetStation(ctx context.Context, id uuid.UUID) (*models.Station, error)
	ListStations(ctx context.Context) ([]*models.Station, error)

	QueryAuditLog(ctx context.Context, from, to time.Time) ([]*models.AssignmentRecord, error)
}

type dispatchService struct {
	units     UnitRegistry
	alerts    AlertStore
	audit     AuditLog
	stations  StationStore
	index     LocationIndex
	publisher webhook.Publisher
	metrics   metrics.Recorder
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewDispatchService(stores Stores, index LocationIndex, publisher webhook.Publisher, recorder metrics.Recorder, logger *logrus.Logger, cfg *config.Config) DispatchService {
	if publisher == nil {
		publisher = webhook.NopPublisher{}
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &dispatchService{
		units:     stores.Units,
		alerts:    stores.Alerts,
		audit:     stores.Audit,
		stations:  stores.Stations,
		index:     index,
		publisher: publisher,
		metrics:   recorder,
		logger:    logger,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Assign finds the nearest eligible unit for a created alert and claims it.
//
// Candidates come from the index in distance order and are pre-checked against
// the registry in batches, so units claimed since the last index rebuild are
// skipped without using up the claim budget. Each remaining candidate gets one
// claim attempt; a lost claim moves straight to the next one. The first won
// claim is committed to the alert and the audit log; if either step fails the
// claim is undone before returning. Running out of candidates is not an error:
// the result is Unassigned and the alert stays created.
func (s *dispatchService) Assign(ctx context.Context, alertID uuid.UUID, opts AssignOptions) (models.AssignResult, error) {
	start := s.now()
	radius := opts.RadiusMeters
	if radius <= 0 {
		radius = s.cfg.DefaultRadiusMeters
	}
	limit := opts.MaxCandidates
	if limit <= 0 {
		limit = s.cfg.MaxCandidates
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":        "dispatch",
		"method":         "Assign",
		"alert_id":       alertID,
		"radius_meters":  radius,
		"max_candidates": limit,
	})
	log.Info("Attempting to assign a unit")

	result := models.AssignResult{Status: models.AssignStatusUnassigned, AlertID: alertID}

	alert, err := s.alerts.Get(ctx, alertID)
	if err != nil {
		log.WithError(err).Warn("Failed to load alert")
		return result, fmt.Errorf("service: could not load alert %s: %w", alertID, err)
	}
	if alert.Status != models.AlertCreated {
		log.WithField("status", alert.Status).Warn("Alert is not awaiting assignment")
		return result, fmt.Errorf("service: alert %s is %s: %w", alertID, alert.Status, e.ErrInvalidState)
	}

	var query geo.QueryOptions
	if len(opts.Require) > 0 {
		query.Filter = func(en geo.Entry) bool {
			return models.Extensions(en.Attrs).Matches(opts.Require)
		}
	}

	next, stop := iter.Pull(s.index.Query(alert.Point(), radius, query))
	defer stop()

	for result.Attempts < limit {
		batch := pullBatch(next, limit-result.Attempts)
		if len(batch) == 0 {
			break
		}

		claimable, err := s.units.Claimable(ctx, candidateIDs(batch))
		if err != nil {
			log.WithError(err).Error("Failed to check candidate availability")
			s.metrics.ObserveAssign("error", result.Attempts, s.now().Sub(start))
			return result, fmt.Errorf("service: could not check candidates: %w", err)
		}

		for _, cand := range batch {
			clog := log.WithFields(logrus.Fields{"unit_id": cand.ID, "distance_meters": cand.DistanceMeters})
			if !claimable[cand.ID] {
				clog.Debug("Indexed unit is no longer available, skipping")
				s.metrics.IncStaleCandidate()
				continue
			}
			result.Attempts++

			unit, err := s.units.TryClaim(ctx, cand.ID, alertID)
			if errors.Is(err, e.ErrConflict) || errors.Is(err, e.ErrNotFound) {
				clog.Debug("Candidate no longer claimable, trying next")
				s.metrics.IncClaimConflict()
				s.auditOptional(ctx, alertID, cand.ID, nil, cand.DistanceMeters, models.OutcomeClaimConflict)
				continue
			}
			if err != nil {
				clog.WithError(err).Error("Claim failed")
				s.metrics.ObserveAssign("error", result.Attempts, s.now().Sub(start))
				return result, fmt.Errorf("service: could not claim unit %s: %w", cand.ID, err)
			}

			if err := s.commit(ctx, alert, unit, cand.DistanceMeters); err != nil {
				clog.WithError(err).Warn("Assignment aborted, claim rolled back")
				s.metrics.ObserveAssign("error", result.Attempts, s.now().Sub(start))
				return result, err
			}

			result.Status = models.AssignStatusAssigned
			result.UnitID = unit.ID
			result.StationID = unit.StationID
			result.DistanceMeters = cand.DistanceMeters
			s.metrics.ObserveAssign(string(result.Status), result.Attempts, s.now().Sub(start))
			clog.WithField("attempts", result.Attempts).Info("Unit assigned successfully")

			s.notify(ctx, alert, result)
			return result, nil
		}
	}

	s.auditOptional(ctx, alertID, uuid.Nil, nil, 0, models.OutcomeUnassigned)
	s.metrics.ObserveAssign(string(result.Status), result.Attempts, s.now().Sub(start))
	log.WithField("attempts", result.Attempts).Info("No unit available within radius")
	return result, nil
}

// pullBatch takes up to n candidates from next.
func pullBatch(next func() (geo.Candidate, bool), n int) []geo.Candidate {
	batch := make([]geo.Candidate, 0, n)
	for len(batch) < n {
		c, ok := next()
		if !ok {
			break
		}
		batch = append(batch, c)
	}
	return batch
}

func candidateIDs(batch []geo.Candidate) []uuid.UUID {
	ids := make([]uuid.UUID, len(batch))
	for i, c := range batch {
		ids[i] = c.ID
	}
	return ids
}

// commit records the claimed unit on the alert and appends the audit entry.
// On failure the already applied steps are compensated in reverse order.
func (s *dispatchService) commit(ctx context.Context, alert *models.Alert, unit *models.Unit, distance float64) error {
	// Compensation must run even if the caller gave up.
	undoCtx := context.WithoutCancel(ctx)

	if _, err := s.alerts.RecordAssignment(ctx, alert.ID, unit.ID, unit.StationID); err != nil {
		s.rollbackClaim(undoCtx, unit.ID, alert.ID, "alert_update")
		s.auditOptional(undoCtx, alert.ID, unit.ID, unit.StationID, distance, models.OutcomeRolledBack)
		if errors.Is(err, e.ErrInvalidTransition) || errors.Is(err, e.ErrNotFound) {
			return fmt.Errorf("service: alert %s changed during assignment: %w", alert.ID, errors.Join(e.ErrInvalidState, err))
		}
		return fmt.Errorf("service: could not record assignment: %w", err)
	}

	rec := &models.AssignmentRecord{
		AlertID:        alert.ID,
		UnitID:         unit.ID,
		StationID:      unit.StationID,
		DistanceMeters: distance,
		Outcome:        models.OutcomeAssigned,
	}
	if err := s.audit.Append(ctx, rec); err != nil {
		if rerr := s.alerts.RevertAssignment(undoCtx, alert.ID, unit.ID); rerr != nil {
			s.logger.WithError(rerr).WithField("alert_id", alert.ID).Error("Failed to revert alert assignment")
		}
		s.rollbackClaim(undoCtx, unit.ID, alert.ID, "audit_append")
		return fmt.Errorf("service: could not append audit record: %w", err)
	}
	return nil
}

func (s *dispatchService) rollbackClaim(ctx context.Context, unitID, alertID uuid.UUID, reason string) {
	s.metrics.IncRollback(reason)
	if err := s.units.Release(ctx, unitID, alertID); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"unit_id":  unitID,
			"alert_id": alertID,
			"reason":   reason,
		}).Error("Failed to release claimed unit")
	}
}

// auditOptional records non-assignment outcomes when configured to.
func (s *dispatchService) auditOptional(ctx context.Context, alertID, unitID uuid.UUID, stationID *uuid.UUID, distance float64, outcome models.AssignmentOutcome) {
	if !s.cfg.AuditClaimConflicts {
		return
	}
	rec := &models.AssignmentRecord{
		AlertID:        alertID,
		UnitID:         unitID,
		StationID:      stationID,
		DistanceMeters: distance,
		Outcome:        outcome,
	}
	if err := s.audit.Append(ctx, rec); err != nil {
		s.logger.WithError(err).WithField("outcome", outcome).Warn("Failed to append audit record")
	}
}

func (s *dispatchService) notify(ctx context.Context, alert *models.Alert, result models.AssignResult) {
	event := webhook.AssignmentEvent{
		AlertID:        alert.ID,
		UnitID:         result.UnitID,
		StationID:      result.StationID,
		Category:       alert.Category,
		Latitude:       alert.Latitude,
		Longitude:      alert.Longitude,
		DistanceMeters: result.DistanceMeters,
		AssignedAt:     s.now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("alert_id", alert.ID).Warn("Failed to publish assignment event")
	}
}

// QueryAuditLog возвращает записи журнала назначений за интервал
func (s *dispatchService) QueryAuditLog(ctx context.Context, from, to time.Time) ([]*models.AssignmentRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "QueryAuditLog",
		"from":    from,
		"to":      to,
	})

	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, fmt.Errorf("service: audit range ends before it starts: %w", e.ErrInvalidInput)
	}

	records, err := s.audit.Query(ctx, from, to)
	if err != nil {
		log.WithError(err).Error("Failed to query audit log")
		return nil, fmt.Errorf("service: could not query audit log: %w", err)
	}
	log.WithField("count", len(records)).Debug("Audit log queried")
	return records, nil
}
