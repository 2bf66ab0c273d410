package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shenikar/emergency_dispatch/internal/models"
)

// AuditLog is an append-only in-memory service.AuditLog. Sequence numbers
// and timestamps are assigned under one lock, so both are monotonic.
type AuditLog struct {
	mu      sync.RWMutex
	records []models.AssignmentRecord
	now     func() time.Time
}

func NewAuditLog() *AuditLog {
	return &AuditLog{now: func() time.Time { return time.Now().UTC() }}
}

func (l *AuditLog) Append(_ context.Context, rec *models.AssignmentRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := l.now()
	if n := len(l.records); n > 0 && ts.Before(l.records[n-1].RecordedAt) {
		ts = l.records[n-1].RecordedAt
	}
	rec.Seq = int64(len(l.records) + 1)
	rec.RecordedAt = ts

	stored := *rec
	stored.StationID = cloneID(rec.StationID)
	l.records = append(l.records, stored)
	return nil
}

func (l *AuditLog) Query(_ context.Context, from, to time.Time) ([]*models.AssignmentRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	lo := 0
	if !from.IsZero() {
		lo = sort.Search(len(l.records), func(i int) bool { return !l.records[i].RecordedAt.Before(from) })
	}
	hi := len(l.records)
	if !to.IsZero() {
		hi = sort.Search(len(l.records), func(i int) bool { return !l.records[i].RecordedAt.Before(to) })
	}

	out := make([]*models.AssignmentRecord, 0, max(hi-lo, 0))
	for i := lo; i < hi; i++ {
		rec := l.records[i]
		rec.StationID = cloneID(rec.StationID)
		out = append(out, &rec)
	}
	return out, nil
}
