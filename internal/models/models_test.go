package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/internal/geo"
	"github.com/shenikar/emergency_dispatch/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlert(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	reporter := uuid.New()

	alert, err := NewAlert(&reporter, 12.9710, 77.5940, " fire ", Extensions{"floor": 3}, now)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, alert.ID)
	assert.Equal(t, AlertCreated, alert.Status)
	assert.Equal(t, "fire", alert.Category)
	assert.Equal(t, geo.CellOf(geo.Point{Lat: 12.9710, Lon: 77.5940}, geo.DefaultCellDegrees), alert.Cell)
	assert.Equal(t, now, alert.CreatedAt)
	assert.Nil(t, alert.AssignedUnitID)
	assert.Equal(t, &reporter, alert.ReporterID)
}

func TestNewAlert_Anonymous(t *testing.T) {
	alert, err := NewAlert(nil, 0, 0, "medical", nil, time.Now())
	require.NoError(t, err)
	assert.Nil(t, alert.ReporterID)
}

func TestNewAlert_Invalid(t *testing.T) {
	_, err := NewAlert(nil, 91, 0, "fire", nil, time.Now())
	assert.ErrorIs(t, err, e.ErrInvalidInput)

	_, err = NewAlert(nil, 0, 0, "  ", nil, time.Now())
	assert.ErrorIs(t, err, e.ErrInvalidInput)

	_, err = NewAlert(nil, 0, 0, "fire", Extensions{"nested": map[string]any{"a": 1}}, time.Now())
	assert.ErrorIs(t, err, e.ErrInvalidInput)
}

func TestAlertStatus_Transitions(t *testing.T) {
	tests := []struct {
		from, to AlertStatus
		ok       bool
	}{
		{AlertCreated, AlertAssigned, true},
		{AlertCreated, AlertCancelled, true},
		{AlertCreated, AlertAccepted, false},
		{AlertCreated, AlertResolved, false},
		{AlertAssigned, AlertAccepted, true},
		{AlertAssigned, AlertResolved, true},
		{AlertAssigned, AlertCancelled, true},
		{AlertAssigned, AlertAssigned, false},
		{AlertAccepted, AlertResolved, true},
		{AlertAccepted, AlertCancelled, false},
		{AlertResolved, AlertCancelled, false},
		{AlertCancelled, AlertAssigned, false},
		{AlertCancelled, AlertCreated, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.from.CanTransition(tt.to), "%s -> %s", tt.from, tt.to)
	}

	assert.True(t, AlertResolved.IsTerminal())
	assert.True(t, AlertCancelled.IsTerminal())
	assert.False(t, AlertAccepted.IsTerminal())
}

func TestExtensions_Matches(t *testing.T) {
	caps := Extensions{"medical": true, "seats": 4, "kind": "ambulance"}

	assert.True(t, caps.Matches(nil))
	assert.True(t, caps.Matches(map[string]any{"medical": true}))
	assert.True(t, caps.Matches(map[string]any{"seats": 4.0}))
	assert.False(t, caps.Matches(map[string]any{"armed": true}))
	assert.False(t, caps.Matches(map[string]any{"kind": "patrol"}))
	assert.False(t, caps.Matches(map[string]any{"seats": "4"}))
}

func TestUnitStatus_Engaged(t *testing.T) {
	assert.True(t, UnitOnCall.Engaged())
	assert.True(t, UnitBusy.Engaged())
	assert.False(t, UnitAvailable.Engaged())
	assert.False(t, UnitOffDuty.Engaged())
	assert.False(t, UnitStatus("unknown").Valid())
}
