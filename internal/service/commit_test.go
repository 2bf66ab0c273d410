package service_test

import (
	"context"
	"errors"
	"iter"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/internal/geo"
	"github.com/shenikar/emergency_dispatch/internal/metrics"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/service"
	"github.com/shenikar/emergency_dispatch/internal/service/mocks"
	"github.com/shenikar/emergency_dispatch/internal/webhook"
	"github.com/shenikar/emergency_dispatch/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockedStores struct {
	units    *mocks.MockUnitRegistry
	alerts   *mocks.MockAlertStore
	audit    *mocks.MockAuditLog
	stations *mocks.MockStationStore
	index    *mocks.MockLocationIndex
}

// newMockedService собирает сервис поверх моков хранилищ
func newMockedService(t *testing.T) (service.DispatchService, *mockedStores) {
	ctrl := gomock.NewController(t)
	m := &mockedStores{
		units:    mocks.NewMockUnitRegistry(ctrl),
		alerts:   mocks.NewMockAlertStore(ctrl),
		audit:    mocks.NewMockAuditLog(ctrl),
		stations: mocks.NewMockStationStore(ctrl),
		index:    mocks.NewMockLocationIndex(ctrl),
	}
	stores := service.Stores{Units: m.units, Alerts: m.alerts, Audit: m.audit, Stations: m.stations}
	svc := service.NewDispatchService(stores, m.index, webhook.NopPublisher{}, metrics.Nop{}, testLogger(), testConfig())
	return svc, m
}

func createdAlert(t *testing.T) *models.Alert {
	t.Helper()
	alert, err := models.NewAlert(nil, 12.9710, 77.5940, "fire", nil, time.Now())
	require.NoError(t, err)
	return alert
}

func TestAssign_AuditFailureRevertsEverything(t *testing.T) {
	svc, m := newMockedService(t)
	ctx := context.Background()
	alert := createdAlert(t)
	unitID := uuid.New()
	auditErr := errors.New("disk full")

	gomock.InOrder(
		m.alerts.EXPECT().Get(ctx, alert.ID).Return(alert, nil),
		m.index.EXPECT().Query(alert.Point(), 10000.0, gomock.Any()).
			Return(slices.Values([]geo.Candidate{{ID: unitID, DistanceMeters: 42}})),
		m.units.EXPECT().Claimable(ctx, []uuid.UUID{unitID}).Return(map[uuid.UUID]bool{unitID: true}, nil),
		m.units.EXPECT().TryClaim(ctx, unitID, alert.ID).
			Return(&models.Unit{ID: unitID, Status: models.UnitOnCall}, nil),
		m.alerts.EXPECT().RecordAssignment(ctx, alert.ID, unitID, nil).
			Return(&models.Alert{ID: alert.ID, Status: models.AlertAssigned}, nil),
		m.audit.EXPECT().Append(ctx, gomock.Any()).Return(auditErr),
		m.alerts.EXPECT().RevertAssignment(gomock.Any(), alert.ID, unitID).Return(nil),
		m.units.EXPECT().Release(gomock.Any(), unitID, alert.ID).Return(nil),
	)

	result, err := svc.Assign(ctx, alert.ID, service.AssignOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, auditErr)
	assert.False(t, result.Assigned())
}

func TestAssign_AlertChangedReleasesClaim(t *testing.T) {
	svc, m := newMockedService(t)
	ctx := context.Background()
	alert := createdAlert(t)
	unitID := uuid.New()

	gomock.InOrder(
		m.alerts.EXPECT().Get(ctx, alert.ID).Return(alert, nil),
		m.index.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(slices.Values([]geo.Candidate{{ID: unitID, DistanceMeters: 42}})),
		m.units.EXPECT().Claimable(ctx, []uuid.UUID{unitID}).Return(map[uuid.UUID]bool{unitID: true}, nil),
		m.units.EXPECT().TryClaim(ctx, unitID, alert.ID).
			Return(&models.Unit{ID: unitID, Status: models.UnitOnCall}, nil),
		m.alerts.EXPECT().RecordAssignment(ctx, alert.ID, unitID, nil).
			Return(nil, e.Wrap("memory.AlertStore", e.ErrInvalidTransition)),
		m.units.EXPECT().Release(gomock.Any(), unitID, alert.ID).Return(nil),
	)

	_, err := svc.Assign(ctx, alert.ID, service.AssignOptions{})

	assert.ErrorIs(t, err, e.ErrInvalidState)
}

func TestAssign_CancelledContextStillCompensates(t *testing.T) {
	svc, m := newMockedService(t)
	ctx, cancel := context.WithCancel(context.Background())
	alert := createdAlert(t)
	unitID := uuid.New()

	m.alerts.EXPECT().Get(gomock.Any(), alert.ID).Return(alert, nil)
	m.index.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(slices.Values([]geo.Candidate{{ID: unitID}}))
	m.units.EXPECT().Claimable(gomock.Any(), []uuid.UUID{unitID}).Return(map[uuid.UUID]bool{unitID: true}, nil)
	m.units.EXPECT().TryClaim(gomock.Any(), unitID, alert.ID).
		DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID) (*models.Unit, error) {
			cancel()
			return &models.Unit{ID: unitID, Status: models.UnitOnCall}, nil
		})
	m.alerts.EXPECT().RecordAssignment(gomock.Any(), alert.ID, unitID, nil).
		DoAndReturn(func(ctx context.Context, _, _ uuid.UUID, _ *uuid.UUID) (*models.Alert, error) {
			return nil, e.WrapError(ctx, "test", ctx.Err())
		})
	m.units.EXPECT().Release(gomock.Any(), unitID, alert.ID).
		DoAndReturn(func(ctx context.Context, _, _ uuid.UUID) error {
			assert.NoError(t, ctx.Err(), "release must not inherit cancellation")
			return nil
		})

	_, err := svc.Assign(ctx, alert.ID, service.AssignOptions{})

	assert.ErrorIs(t, err, e.ErrCanceled)
}

func TestAssign_ClaimStorageErrorStops(t *testing.T) {
	svc, m := newMockedService(t)
	ctx := context.Background()
	alert := createdAlert(t)
	first, second := uuid.New(), uuid.New()

	m.alerts.EXPECT().Get(ctx, alert.ID).Return(alert, nil)
	m.index.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(slices.Values([]geo.Candidate{{ID: first}, {ID: second}}))
	m.units.EXPECT().Claimable(ctx, []uuid.UUID{first, second}).
		Return(map[uuid.UUID]bool{first: true, second: true}, nil)
	m.units.EXPECT().TryClaim(ctx, first, alert.ID).Return(nil, e.Wrap("pg", e.ErrInternal))

	_, err := svc.Assign(ctx, alert.ID, service.AssignOptions{})

	assert.ErrorIs(t, err, e.ErrInternal)
}

func TestAssign_PassesRadiusToIndex(t *testing.T) {
	svc, m := newMockedService(t)
	ctx := context.Background()
	alert := createdAlert(t)

	m.alerts.EXPECT().Get(ctx, alert.ID).Return(alert, nil)
	m.index.EXPECT().Query(alert.Point(), 750.0, gomock.Any()).
		DoAndReturn(func(_ geo.Point, _ float64, opts geo.QueryOptions) iter.Seq[geo.Candidate] {
			// Лимит применяется к попыткам захвата, а не к выдаче индекса.
			assert.Zero(t, opts.Limit)
			assert.Nil(t, opts.Filter)
			return slices.Values([]geo.Candidate(nil))
		})

	result, err := svc.Assign(ctx, alert.ID, service.AssignOptions{RadiusMeters: 750, MaxCandidates: 4})

	require.NoError(t, err)
	assert.Equal(t, models.AssignStatusUnassigned, result.Status)
	assert.Zero(t, result.Attempts)
}

func TestAssign_StaleCandidatesDoNotUseClaimBudget(t *testing.T) {
	svc, m := newMockedService(t)
	ctx := context.Background()
	alert := createdAlert(t)
	stale, free, spare := uuid.New(), uuid.New(), uuid.New()

	gomock.InOrder(
		m.alerts.EXPECT().Get(ctx, alert.ID).Return(alert, nil),
		m.index.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(slices.Values([]geo.Candidate{
				{ID: stale, DistanceMeters: 10},
				{ID: free, DistanceMeters: 20},
				{ID: spare, DistanceMeters: 30},
			})),
		m.units.EXPECT().Claimable(ctx, []uuid.UUID{stale}).Return(map[uuid.UUID]bool{}, nil),
		m.units.EXPECT().Claimable(ctx, []uuid.UUID{free}).Return(map[uuid.UUID]bool{free: true}, nil),
		m.units.EXPECT().TryClaim(ctx, free, alert.ID).
			Return(&models.Unit{ID: free, Status: models.UnitOnCall}, nil),
		m.alerts.EXPECT().RecordAssignment(ctx, alert.ID, free, nil).
			Return(&models.Alert{ID: alert.ID, Status: models.AlertAssigned}, nil),
		m.audit.EXPECT().Append(ctx, gomock.Any()).Return(nil),
	)

	result, err := svc.Assign(ctx, alert.ID, service.AssignOptions{MaxCandidates: 1})

	require.NoError(t, err)
	require.True(t, result.Assigned())
	assert.Equal(t, free, result.UnitID)
	assert.Equal(t, 1, result.Attempts)
	assert.InDelta(t, 20, result.DistanceMeters, 1e-9)
}

func TestAssign_MaxCandidatesBoundsClaimAttempts(t *testing.T) {
	svc, m := newMockedService(t)
	ctx := context.Background()
	alert := createdAlert(t)
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	cands := make([]geo.Candidate, len(ids))
	all := make(map[uuid.UUID]bool, len(ids))
	for i, id := range ids {
		cands[i] = geo.Candidate{ID: id, DistanceMeters: float64(i + 1)}
		all[id] = true
	}

	m.alerts.EXPECT().Get(ctx, alert.ID).Return(alert, nil)
	m.index.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Return(slices.Values(cands))
	m.units.EXPECT().Claimable(ctx, ids[:3]).Return(all, nil)
	for _, id := range ids[:3] {
		// Claimable was true, but another dispatcher won the race.
		m.units.EXPECT().TryClaim(ctx, id, alert.ID).Return(nil, e.Wrap("memory.UnitRegistry", e.ErrConflict))
	}

	result, err := svc.Assign(ctx, alert.ID, service.AssignOptions{MaxCandidates: 3})

	require.NoError(t, err)
	assert.False(t, result.Assigned())
	assert.Equal(t, 3, result.Attempts)
}

func TestAssign_AvailabilityCheckErrorStops(t *testing.T) {
	svc, m := newMockedService(t)
	ctx := context.Background()
	alert := createdAlert(t)
	unitID := uuid.New()

	m.alerts.EXPECT().Get(ctx, alert.ID).Return(alert, nil)
	m.index.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(slices.Values([]geo.Candidate{{ID: unitID}}))
	m.units.EXPECT().Claimable(ctx, []uuid.UUID{unitID}).Return(nil, e.Wrap("pg", e.ErrInternal))

	result, err := svc.Assign(ctx, alert.ID, service.AssignOptions{})

	assert.ErrorIs(t, err, e.ErrInternal)
	assert.Zero(t, result.Attempts)
}

func TestAcceptAlert_MarksUnitBusy(t *testing.T) {
	svc, m := newMockedService(t)
	ctx := context.Background()
	alertID, unitID := uuid.New(), uuid.New()

	m.alerts.EXPECT().Transition(ctx, alertID, models.AlertAccepted).
		Return(&models.Alert{ID: alertID, Status: models.AlertAccepted, AssignedUnitID: &unitID}, nil)
	m.units.EXPECT().MarkBusy(ctx, unitID, alertID).Return(nil)

	alert, err := svc.AcceptAlert(ctx, alertID)

	require.NoError(t, err)
	assert.Equal(t, models.AlertAccepted, alert.Status)
}

func TestResolveAlert_ReleaseFailureIsReported(t *testing.T) {
	svc, m := newMockedService(t)
	ctx := context.Background()
	alertID, unitID := uuid.New(), uuid.New()

	m.alerts.EXPECT().Transition(ctx, alertID, models.AlertResolved).
		Return(&models.Alert{ID: alertID, Status: models.AlertResolved, AssignedUnitID: &unitID}, nil)
	m.units.EXPECT().Release(gomock.Any(), unitID, alertID).Return(e.ErrConflict)

	alert, err := svc.ResolveAlert(ctx, alertID)

	assert.ErrorIs(t, err, e.ErrConflict)
	require.NotNil(t, alert)
	assert.Equal(t, models.AlertResolved, alert.Status)
}
