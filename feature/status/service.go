package status

import (
	"context"
	"fmt"

	"hogger/core/codec"
	"hogger/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Source produces the desired entities a preview is computed against.
type Source func(ctx context.Context) ([]reconcile.Entity, error)

const planCacheKey = "plan"

// LockReport is the state of the reconciliation lock.
type LockReport struct {
	Locked bool `json:"locked"`
	// Bootstrapped is false until the first run creates the bookkeeping tables.
	Bootstrapped bool `json:"bootstrapped"`
}

// ModifiedEntry is one modified entity and its differing fields.
type ModifiedEntry struct {
	Entity  string                  `json:"entity"`
	Changes map[string]codec.Change `json:"changes"`
}

// PlanReport is the JSON form of a plan.
type PlanReport struct {
	Summary   reconcile.Summary `json:"summary"`
	Created   []string          `json:"created"`
	Modified  []ModifiedEntry   `json:"modified"`
	Unchanged []string          `json:"unchanged"`
	Deleted   []string          `json:"deleted"`
}

// Service computes status reports.
type Service struct {
	db       *gorm.DB
	registry *reconcile.Registry
	source   Source
	cache    *reconcile.PreviewCache
	metrics  *reconcile.Metrics
	logger   *zap.Logger
}

// NewService creates a new status service. metrics may be nil.
func NewService(db *gorm.DB, registry *reconcile.Registry, source Source, cache *reconcile.PreviewCache, metrics *reconcile.Metrics, logger *zap.Logger) *Service {
	return &Service{
		db:       db,
		registry: registry,
		source:   source,
		cache:    cache,
		metrics:  metrics,
		logger:   logger,
	}
}

// Lock reports the lock state.
func (s *Service) Lock(ctx context.Context) (*LockReport, error) {
	if !reconcile.HasSchema(s.db) {
		return &LockReport{}, nil
	}
	locked, err := reconcile.NewLock(s.db).IsLocked(ctx)
	if err != nil {
		return nil, err
	}
	return &LockReport{Locked: locked, Bootstrapped: true}, nil
}

// Schema checks the tables of every registered type.
func (s *Service) Schema(ctx context.Context) (*reconcile.SchemaReport, error) {
	return reconcile.CheckSchema(s.db.WithContext(ctx), s.registry)
}

// Plan returns the preview of applying the source, from cache when fresh.
func (s *Service) Plan(ctx context.Context, refresh bool) (*PlanReport, error) {
	if refresh {
		s.cache.Invalidate()
	}
	plan, err := s.cache.Get(ctx, planCacheKey, s.preview)
	if err != nil {
		return nil, err
	}
	return NewPlanReport(s.registry, plan), nil
}

func (s *Service) preview(ctx context.Context) (*reconcile.Plan, error) {
	desired, err := s.source(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifests: %w", err)
	}
	var opts []reconcile.Option
	if s.metrics != nil {
		opts = append(opts, reconcile.WithMetrics(s.metrics))
	}
	return reconcile.New(s.db, s.registry, s.logger, opts...).Preview(ctx, desired)
}

// NewPlanReport flattens plan into sorted Type.identifier lists.
func NewPlanReport(registry *reconcile.Registry, plan *reconcile.Plan) *PlanReport {
	r := &PlanReport{
		Summary:   plan.Summary(),
		Created:   []string{},
		Modified:  []ModifiedEntry{},
		Unchanged: []string{},
		Deleted:   []string{},
	}
	name := func(code int) string {
		if typ, ok := registry.Lookup(code); ok {
			return typ.Name()
		}
		return fmt.Sprintf("Type%d", code)
	}
	list := func(part reconcile.State) []string {
		out := []string{}
		for _, code := range part.Codes() {
			for _, id := range part.Identifiers(code) {
				out = append(out, name(code)+"."+id)
			}
		}
		return out
	}

	r.Created = list(plan.Created)
	r.Unchanged = list(plan.Unchanged)
	r.Deleted = list(plan.Deleted)
	for _, code := range plan.Modified.Codes() {
		for _, id := range plan.Modified.Identifiers(code) {
			r.Modified = append(r.Modified, ModifiedEntry{
				Entity:  name(code) + "." + id,
				Changes: plan.Changes[code][id],
			})
		}
	}
	return r
}
