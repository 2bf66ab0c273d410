package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

// CreateAlert создает тревогу в статусе created
func (s *dispatchService) CreateAlert(ctx context.Context, reporterID *uuid.UUID, lat, lon float64, category string, metadata models.Extensions) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "dispatch",
		"method":   "CreateAlert",
		"category": category,
	})
	log.Info("Attempting to create a new alert")

	alert, err := models.NewAlert(reporterID, lat, lon, category, metadata, s.now())
	if err != nil {
		log.WithError(err).Warn("Rejected alert")
		return nil, fmt.Errorf("service: invalid alert: %w", err)
	}

	if err := s.alerts.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return nil, fmt.Errorf("service: could not create alert: %w", err)
	}

	log.WithField("alert_id", alert.ID).Info("Alert created successfully")
	return alert, nil
}

// GetAlert получает тревогу по ID
func (s *dispatchService) GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "dispatch",
		"method":   "GetAlert",
		"alert_id": id,
	})

	alert, err := s.alerts.Get(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get alert in repository")
		return nil, fmt.Errorf("service: could not get alert: %w", err)
	}
	return alert, nil
}

// ListAlerts возвращает список тревог с пагинацией
func (s *dispatchService) ListAlerts(ctx context.Context, status models.AlertStatus, page, pageSize int) ([]*models.Alert, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "dispatch",
		"method":    "ListAlerts",
		"status":    status,
		"page":      page,
		"page_size": pageSize,
	})

	alerts, err := s.alerts.List(ctx, status, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}

	log.WithField("count", len(alerts)).Debug("Alerts listed successfully")
	return alerts, nil
}

// AcceptAlert фиксирует подтверждение вызова подразделением: on_call -> busy
func (s *dispatchService) AcceptAlert(ctx context.Context, alertID uuid.UUID) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "dispatch",
		"method":   "AcceptAlert",
		"alert_id": alertID,
	})

	alert, err := s.alerts.Transition(ctx, alertID, models.AlertAccepted)
	if err != nil {
		log.WithError(err).Warn("Failed to accept alert")
		return nil, fmt.Errorf("service: could not accept alert: %w", err)
	}

	if alert.AssignedUnitID != nil {
		if err := s.units.MarkBusy(ctx, *alert.AssignedUnitID, alertID); err != nil {
			log.WithError(err).WithField("unit_id", *alert.AssignedUnitID).Error("Failed to mark unit busy")
		}
	}

	log.Info("Alert accepted")
	return alert, nil
}

// ResolveAlert закрывает тревогу и освобождает подразделение
func (s *dispatchService) ResolveAlert(ctx context.Context, alertID uuid.UUID) (*models.Alert, error) {
	return s.finish(ctx, alertID, models.AlertResolved, "ResolveAlert")
}

// CancelAlert отменяет тревогу и освобождает подразделение, если оно было назначено
func (s *dispatchService) CancelAlert(ctx context.Context, alertID uuid.UUID) (*models.Alert, error) {
	return s.finish(ctx, alertID, models.AlertCancelled, "CancelAlert")
}

func (s *dispatchService) finish(ctx context.Context, alertID uuid.UUID, to models.AlertStatus, method string) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "dispatch",
		"method":   method,
		"alert_id": alertID,
	})

	alert, err := s.alerts.Transition(ctx, alertID, to)
	if err != nil {
		log.WithError(err).Warn("Failed to close alert")
		return nil, fmt.Errorf("service: could not move alert to %s: %w", to, err)
	}

	if alert.AssignedUnitID != nil {
		unitID := *alert.AssignedUnitID
		if err := s.units.Release(context.WithoutCancel(ctx), unitID, alertID); err != nil {
			log.WithError(err).WithField("unit_id", unitID).Error("Failed to release unit after closing alert")
			return alert, fmt.Errorf("service: alert %s closed but unit %s not released: %w", alertID, unitID, err)
		}
	}

	log.WithField("status", alert.Status).Info("Alert closed")
	return alert, nil
}
