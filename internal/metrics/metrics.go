package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder receives dispatch observations.
type Recorder interface {
	ObserveAssign(status string, attempts int, elapsed time.Duration)
	IncClaimConflict()
	IncStaleCandidate()
	IncRollback(reason string)
	SetIndexSize(n int)
	SetIndexBuiltAt(t time.Time)
}

// Nop discards every observation.
type Nop struct{}

func (Nop) ObserveAssign(string, int, time.Duration) {}
func (Nop) IncClaimConflict()                        {}
func (Nop) IncStaleCandidate()                       {}
func (Nop) IncRollback(string)                       {}
func (Nop) SetIndexSize(int)                         {}
func (Nop) SetIndexBuiltAt(time.Time)                {}

// PromRecorder records dispatch metrics in Prometheus collectors.
type PromRecorder struct {
	assigns   *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	attempts  prometheus.Histogram
	conflicts prometheus.Counter
	stale     prometheus.Counter
	rollbacks *prometheus.CounterVec
	indexSize prometheus.Gauge
	indexAt   prometheus.Gauge
}

// NewPromRecorder registers dispatch metrics on reg, or on the default
// registerer when reg is nil. Collectors that are already registered are reused.
func NewPromRecorder(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &PromRecorder{
		assigns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dispatch_assign_total",
			Help: "Total number of assign calls by outcome",
		}, []string{"status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dispatch_assign_duration_seconds",
			Help:    "Wall time of assign calls",
			Buckets: prometheus.DefBuckets,
		}, []string{"status"}),
		attempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dispatch_assign_claim_attempts",
			Help:    "Claim attempts per assign call",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
		}),
		conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dispatch_claim_conflicts_total",
			Help: "Claims lost to a concurrent assignment",
		}),
		stale: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dispatch_stale_candidates_total",
			Help: "Index candidates skipped because the unit was no longer available",
		}),
		rollbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dispatch_rollbacks_total",
			Help: "Claims rolled back after a failed commit step",
		}, []string{"reason"}),
		indexSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dispatch_location_index_units",
			Help: "Units present in the current location index snapshot",
		}),
		// time() - dispatch_location_index_built_timestamp_seconds is the index age
		indexAt: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dispatch_location_index_built_timestamp_seconds",
			Help: "Unix time the current location index snapshot was built",
		}),
	}

	var err error
	if r.assigns, err = register(reg, r.assigns); err != nil {
		return nil, err
	}
	if r.latency, err = register(reg, r.latency); err != nil {
		return nil, err
	}
	if r.attempts, err = register(reg, r.attempts); err != nil {
		return nil, err
	}
	if r.conflicts, err = register(reg, r.conflicts); err != nil {
		return nil, err
	}
	if r.stale, err = register(reg, r.stale); err != nil {
		return nil, err
	}
	if r.rollbacks, err = register(reg, r.rollbacks); err != nil {
		return nil, err
	}
	if r.indexSize, err = register(reg, r.indexSize); err != nil {
		return nil, err
	}
	if r.indexAt, err = register(reg, r.indexAt); err != nil {
		return nil, err
	}
	return r, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (r *PromRecorder) ObserveAssign(status string, attempts int, elapsed time.Duration) {
	r.assigns.WithLabelValues(status).Inc()
	r.latency.WithLabelValues(status).Observe(elapsed.Seconds())
	r.attempts.Observe(float64(attempts))
}

func (r *PromRecorder) IncClaimConflict() {
	r.conflicts.Inc()
}

func (r *PromRecorder) IncStaleCandidate() {
	r.stale.Inc()
}

func (r *PromRecorder) IncRollback(reason string) {
	r.rollbacks.WithLabelValues(reason).Inc()
}

func (r *PromRecorder) SetIndexSize(n int) {
	r.indexSize.Set(float64(n))
}

func (r *PromRecorder) SetIndexBuiltAt(t time.Time) {
	if t.IsZero() {
		return
	}
	r.indexAt.Set(float64(t.Unix()) + float64(t.Nanosecond())/1e9)
}
