package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/internal/geo"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/pkg/e"
	"github.com/sirupsen/logrus"
)

// RegisterUnit регистрирует подразделение или обновляет его станцию и возможности
func (s *dispatchService) RegisterUnit(ctx context.Context, unit *models.Unit) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "dispatch",
		"method":    "RegisterUnit",
		"device_id": unit.DeviceID,
	})

	if unit.DeviceID == "" {
		return fmt.Errorf("service: unit device id is required: %w", e.ErrInvalidInput)
	}
	if err := unit.Capabilities.Validate(); err != nil {
		return fmt.Errorf("service: %v: %w", err, e.ErrInvalidInput)
	}
	if unit.StationID != nil {
		if _, err := s.stations.Get(ctx, *unit.StationID); err != nil {
			log.WithError(err).Warn("Unknown station for unit")
			return fmt.Errorf("service: station %s: %w", *unit.StationID, err)
		}
	}

	if err := s.units.Register(ctx, unit); err != nil {
		log.WithError(err).Error("Failed to register unit in repository")
		return fmt.Errorf("service: could not register unit: %w", err)
	}

	log.WithField("unit_id", unit.ID).Info("Unit registered")
	return nil
}

// GetUnit получает подразделение по ID
func (s *dispatchService) GetUnit(ctx context.Context, id uuid.UUID) (*models.Unit, error) {
	unit, err := s.units.Get(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("unit_id", id).Warn("Failed to get unit in repository")
		return nil, fmt.Errorf("service: could not get unit: %w", err)
	}
	return unit, nil
}

// UpdateUnitLocation принимает heartbeat от устройства; статус не меняется
func (s *dispatchService) UpdateUnitLocation(ctx context.Context, hb models.Heartbeat) (*models.Unit, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "dispatch",
		"method":    "UpdateUnitLocation",
		"device_id": hb.DeviceID,
	})

	if hb.DeviceID == "" {
		return nil, fmt.Errorf("service: device id is required: %w", e.ErrInvalidInput)
	}
	if !(geo.Point{Lat: hb.Latitude, Lon: hb.Longitude}).Valid() {
		return nil, fmt.Errorf("service: coordinates (%f, %f): %w", hb.Latitude, hb.Longitude, e.ErrInvalidInput)
	}
	if hb.Timestamp.IsZero() {
		hb.Timestamp = s.now()
	}

	unit, err := s.units.UpdateHeartbeat(ctx, hb)
	if err != nil {
		log.WithError(err).Error("Failed to store heartbeat")
		return nil, fmt.Errorf("service: could not update unit location: %w", err)
	}

	log.WithField("unit_id", unit.ID).Debug("Heartbeat stored")
	return unit, nil
}

// ReleaseUnit освобождает подразделение, если оно закреплено за alertID
func (s *dispatchService) ReleaseUnit(ctx context.Context, unitID, alertID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "dispatch",
		"method":   "ReleaseUnit",
		"unit_id":  unitID,
		"alert_id": alertID,
	})

	if err := s.units.Release(ctx, unitID, alertID); err != nil {
		log.WithError(err).Warn("Failed to release unit")
		if errors.Is(err, e.ErrConflict) {
			// the unit holds another alert or none
			return fmt.Errorf("service: could not release unit: %w", errors.Join(e.ErrInvalidState, err))
		}
		return fmt.Errorf("service: could not release unit: %w", err)
	}

	log.Info("Unit released")
	return nil
}

// SetUnitOffDuty переключает available <-> off_duty
func (s *dispatchService) SetUnitOffDuty(ctx context.Context, unitID uuid.UUID, offDuty bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "dispatch",
		"method":   "SetUnitOffDuty",
		"unit_id":  unitID,
		"off_duty": offDuty,
	})

	if err := s.units.SetOffDuty(ctx, unitID, offDuty); err != nil {
		log.WithError(err).Warn("Failed to change duty status")
		return fmt.Errorf("service: could not change duty status: %w", err)
	}
	log.Info("Duty status changed")
	return nil
}

// GetStation получает станцию по ID
func (s *dispatchService) GetStation(ctx context.Context, id uuid.UUID) (*models.Station, error) {
	station, err := s.stations.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get station: %w", err)
	}
	return station, nil
}

// ListStations возвращает все станции
func (s *dispatchService) ListStations(ctx context.Context) ([]*models.Station, error) {
	stations, err := s.stations.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list stations")
		return nil, fmt.Errorf("service: could not list stations: %w", err)
	}
	return stations, nil
}
