package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hogger/core/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Reconciler sequences one reconciliation run: lock, read actual state, diff
// against the desired state, stage, commit, unlock.
//
//	r := reconcile.New(db, registry, log)
//	if err := r.Begin(ctx); err != nil { ... }
//	defer r.Close(ctx)
//	plan, err := r.Plan(ctx, desired)
//	// review plan
//	err = r.Apply(ctx, plan)
//
// A Reconciler is not safe for concurrent use.
type Reconciler struct {
	db         *gorm.DB
	registry   *Registry
	logger     *zap.Logger
	metrics    *Metrics
	lock       *Lock
	identities *IdentityStore
	snapshots  *SnapshotReader

	runID string
	held  bool
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithMetrics records run outcomes in m.
func WithMetrics(m *Metrics) Option {
	return func(r *Reconciler) { r.metrics = m }
}

// New creates a Reconciler over db.
func New(db *gorm.DB, registry *Registry, log *zap.Logger, opts ...Option) *Reconciler {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Reconciler{
		db:         db,
		registry:   registry,
		logger:     log,
		lock:       NewLock(db),
		identities: NewIdentityStore(db),
		snapshots:  NewSnapshotReader(db, registry, log),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunID returns the id of the current run, or "" before Begin.
func (r *Reconciler) RunID() string { return r.runID }

// Lock returns the lock manager.
func (r *Reconciler) Lock() *Lock { return r.lock }

// Begin bootstraps the bookkeeping tables and takes the lock. It fails with
// ErrLocked, without reading any state, when another run holds it.
func (r *Reconciler) Begin(ctx context.Context) error {
	if err := EnsureSchema(ctx, r.db); err != nil {
		return err
	}

	locked, err := r.lock.IsLocked(ctx)
	if err != nil {
		return err
	}
	if locked {
		if r.metrics != nil {
			r.metrics.LockContention.Inc()
		}
		return ErrLocked
	}

	if err := r.lock.Acquire(ctx); err != nil {
		return err
	}
	r.held = true
	r.logger, r.runID = logger.WithRunID(r.logger)
	r.logger.Info("Acquired reconciliation lock")
	return nil
}

// Close releases the lock if this run holds it.
func (r *Reconciler) Close(ctx context.Context) error {
	if !r.held {
		return nil
	}
	if err := r.lock.Release(ctx); err != nil {
		return err
	}
	r.held = false
	r.logger.Info("Released reconciliation lock")
	return nil
}

// Plan diffs desired against the stored state. Begin must have been called.
func (r *Reconciler) Plan(ctx context.Context, desired []Entity) (*Plan, error) {
	if !r.held {
		return nil, ErrNotBegun
	}
	return r.plan(ctx, desired)
}

// Preview diffs desired against the stored state without taking the lock or
// creating tables. Without bookkeeping tables the actual state is empty.
func (r *Reconciler) Preview(ctx context.Context, desired []Entity) (*Plan, error) {
	return r.plan(ctx, desired)
}

// Stage returns the statements Apply would commit, without committing them.
// Storage keys of created entities are assigned as a side effect.
func (r *Reconciler) Stage(ctx context.Context, plan *Plan) (inserts, deletes []Statement, err error) {
	return NewExecutor(r.db, r.registry, NewAllocator(r.db), r.logger).Stage(ctx, plan)
}

// Apply stages and commits plan atomically. Begin must have been called.
func (r *Reconciler) Apply(ctx context.Context, plan *Plan) error {
	if !r.held {
		return ErrNotBegun
	}
	if plan.Empty() {
		r.logger.Info("Nothing to apply")
		return nil
	}

	start := time.Now()
	executor := NewExecutor(r.db, r.registry, NewAllocator(r.db), r.logger)
	inserts, deletes, err := executor.Stage(ctx, plan)
	if err != nil {
		r.failed(err)
		return fmt.Errorf("failed to stage plan: %w", err)
	}
	if err := executor.Commit(ctx, inserts, deletes); err != nil {
		r.failed(err)
		return err
	}

	if r.metrics != nil {
		r.metrics.ApplyDuration.Observe(time.Since(start).Seconds())
		r.metrics.observe(r.metrics.AppliedEntities, r.registry, plan)
	}
	s := plan.Summary()
	r.logger.Info("Applied plan",
		zap.Int("created", s.Created),
		zap.Int("modified", s.Modified),
		zap.Int("deleted", s.Deleted),
		zap.Int("statements", len(inserts)+len(deletes)),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func (r *Reconciler) plan(ctx context.Context, desired []Entity) (*Plan, error) {
	want, err := r.registry.BuildState(desired)
	if err != nil {
		return nil, err
	}

	have := State{}
	if HasSchema(r.db) {
		records, err := r.identities.List(ctx)
		if err != nil {
			return nil, err
		}
		if have, err = r.snapshots.Actual(ctx, records); err != nil {
			return nil, err
		}
	}

	plan, err := Diff(r.registry, want, have)
	if err != nil {
		return nil, err
	}
	if r.metrics != nil {
		r.metrics.observe(r.metrics.PlannedEntities, r.registry, plan)
	}
	s := plan.Summary()
	r.logger.Debug("Computed plan",
		zap.Int("desired", want.Len()),
		zap.Int("actual", have.Len()),
		zap.Int("created", s.Created),
		zap.Int("modified", s.Modified),
		zap.Int("unchanged", s.Unchanged),
		zap.Int("deleted", s.Deleted))
	return plan, nil
}

func (r *Reconciler) failed(err error) {
	if r.metrics != nil {
		r.metrics.ApplyFailures.Inc()
	}
	fields := []zap.Field{zap.Error(err)}
	var applyErr *ApplyError
	if errors.As(err, &applyErr) {
		fields = append(fields,
			zap.String("entity", applyErr.Statement.Subject),
			zap.String("table", applyErr.Statement.Table))
	}
	r.logger.Error("Apply rolled back", fields...)
}
