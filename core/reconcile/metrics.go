package reconcile

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Action labels of the entity counters.
const (
	ActionCreate    = "create"
	ActionModify    = "modify"
	ActionUnchanged = "unchanged"
	ActionDelete    = "delete"
)

// Metrics holds the reconciliation collectors.
type Metrics struct {
	PlannedEntities *prometheus.CounterVec
	AppliedEntities *prometheus.CounterVec
	ApplyFailures   prometheus.Counter
	LockContention  prometheus.Counter
	ApplyDuration   prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		PlannedEntities: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hogger_planned_entities_total",
			Help: "Cumulative number of entities planned, by action and entity type.",
		}, []string{"action", "type"}),
		AppliedEntities: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hogger_applied_entities_total",
			Help: "Cumulative number of entities committed, by action and entity type.",
		}, []string{"action", "type"}),
		ApplyFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "hogger_apply_failures_total",
			Help: "Cumulative number of applies rolled back.",
		}),
		LockContention: f.NewCounter(prometheus.CounterOpts{
			Name: "hogger_lock_contention_total",
			Help: "Cumulative number of runs refused because the lock was held.",
		}),
		ApplyDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "hogger_apply_duration_seconds",
			Help:    "Duration of staging and committing a plan.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) observe(vec *prometheus.CounterVec, registry *Registry, plan *Plan) {
	if m == nil {
		return
	}
	for action, part := range map[string]State{
		ActionCreate:    plan.Created,
		ActionModify:    plan.Modified,
		ActionUnchanged: plan.Unchanged,
		ActionDelete:    plan.Deleted,
	} {
		if vec == m.AppliedEntities && action == ActionUnchanged {
			continue
		}
		for _, code := range part.Codes() {
			name := "unknown"
			if typ, ok := registry.Lookup(code); ok {
				name = typ.Name()
			}
			vec.WithLabelValues(action, name).Add(float64(len(part[code])))
		}
	}
}
