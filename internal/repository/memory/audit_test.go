package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLog_AppendAndQuery(t *testing.T) {
	ctx := context.Background()
	l := NewAuditLog()
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	l.now = func() time.Time { return clock }

	var recs []*models.AssignmentRecord
	for i := range 4 {
		clock = base.Add(time.Duration(i) * time.Minute)
		rec := &models.AssignmentRecord{AlertID: uuid.New(), UnitID: uuid.New(), DistanceMeters: float64(i), Outcome: models.OutcomeAssigned}
		require.NoError(t, l.Append(ctx, rec))
		recs = append(recs, rec)
	}

	for i, rec := range recs {
		assert.Equal(t, int64(i+1), rec.Seq)
	}

	all, err := l.Query(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	window, err := l.Query(ctx, base.Add(time.Minute), base.Add(3*time.Minute))
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, int64(2), window[0].Seq)
	assert.Equal(t, int64(3), window[1].Seq)

	// Returned records are copies.
	window[0].Outcome = models.OutcomeRolledBack
	again, _ := l.Query(ctx, base.Add(time.Minute), base.Add(2*time.Minute))
	require.Len(t, again, 1)
	assert.Equal(t, models.OutcomeAssigned, again[0].Outcome)
}

func TestAuditLog_TimestampsNeverGoBackwards(t *testing.T) {
	ctx := context.Background()
	l := NewAuditLog()
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	l.now = func() time.Time { return base }
	first := &models.AssignmentRecord{AlertID: uuid.New()}
	require.NoError(t, l.Append(ctx, first))

	l.now = func() time.Time { return base.Add(-time.Hour) }
	second := &models.AssignmentRecord{AlertID: uuid.New()}
	require.NoError(t, l.Append(ctx, second))

	assert.Equal(t, first.RecordedAt, second.RecordedAt)
	assert.Greater(t, second.Seq, first.Seq)
}
