package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/emergency_dispatch/internal/geo"
	"github.com/shenikar/emergency_dispatch/internal/metrics"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

// IndexRefresher periodically rebuilds the location index from the registry.
// Queries can therefore see positions and availability up to one interval old;
// a stale "available" entry only costs one failed claim.
type IndexRefresher struct {
	units    UnitRegistry
	index    LocationIndex
	metrics  metrics.Recorder
	logger   *logrus.Logger
	interval time.Duration
	ttl      time.Duration
	now      func() time.Time
}

func NewIndexRefresher(units UnitRegistry, index LocationIndex, recorder metrics.Recorder, logger *logrus.Logger, interval, heartbeatTTL time.Duration) *IndexRefresher {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &IndexRefresher{
		units:    units,
		index:    index,
		metrics:  recorder,
		logger:   logger,
		interval: interval,
		ttl:      heartbeatTTL,
		now:      time.Now,
	}
}

// Refresh rebuilds the index once. Only available units with a heartbeat
// newer than the TTL are indexed.
func (r *IndexRefresher) Refresh(ctx context.Context) error {
	positions, err := r.units.Positions(ctx)
	if err != nil {
		return fmt.Errorf("service: could not load unit positions: %w", err)
	}

	cutoff := time.Time{}
	if r.ttl > 0 {
		cutoff = r.now().Add(-r.ttl)
	}

	entries := make([]geo.Entry, 0, len(positions))
	for _, p := range positions {
		if p.Status != models.UnitAvailable {
			continue
		}
		if !cutoff.IsZero() && p.LastHeartbeat.Before(cutoff) {
			continue
		}
		entries = append(entries, geo.Entry{
			ID:    p.ID,
			Point: geo.Point{Lat: p.Latitude, Lon: p.Longitude},
			Attrs: p.Capabilities,
		})
	}

	r.index.Rebuild(entries)
	r.metrics.SetIndexSize(r.index.Len())
	r.metrics.SetIndexBuiltAt(r.index.BuiltAt())
	return nil
}

// Start refreshes immediately and then every interval until ctx is done.
func (r *IndexRefresher) Start(ctx context.Context) {
	r.logger.WithField("interval", r.interval).Info("Starting location index refresher...")
	if err := r.Refresh(ctx); err != nil {
		r.logger.WithError(err).Error("Initial location index build failed")
	}

	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				r.logger.Info("Stopping location index refresher.")
				return
			case <-ticker.C:
				if err := r.Refresh(ctx); err != nil {
					r.logger.WithError(err).Error("Location index refresh failed")
				}
			}
		}
	}()
}
