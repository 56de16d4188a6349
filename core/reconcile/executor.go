package reconcile

import (
	"context"
	"fmt"

	"hogger/core/codec"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ApplyError reports the statement whose execution failed during a commit.
// The transaction has been rolled back when it is returned.
type ApplyError struct {
	Statement Statement
	Err       error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("apply failed at %s: %v", e.Statement, e.Err)
}

func (e *ApplyError) Unwrap() error { return e.Err }

// Executor turns a plan into statements and commits them.
// It is the only component writing to managed tables.
type Executor struct {
	db        *gorm.DB
	registry  *Registry
	allocator *Allocator
	logger    *zap.Logger
}

// NewExecutor creates an Executor. The allocator must be fresh for the run.
func NewExecutor(db *gorm.DB, registry *Registry, allocator *Allocator, logger *zap.Logger) *Executor {
	return &Executor{db: db, registry: registry, allocator: allocator, logger: logger}
}

// claims tracks storage keys per table while a plan is staged.
type claims struct {
	freed   map[string]map[int]bool
	claimed map[string]map[int]string
}

func (c *claims) free(table string, key int) {
	if c.freed[table] == nil {
		c.freed[table] = make(map[int]bool)
	}
	c.freed[table][key] = true
}

// Stage builds the statements applying plan. Sentinel storage keys of created
// entities are filled from the allocator, which is why Stage runs after the
// plan has been reviewed and immediately before Commit.
//
// A pinned key (non-sentinel) is authoritative. It must not be held by another
// row unless the plan deletes or replaces that row, and no two entities may
// pin the same key.
func (x *Executor) Stage(ctx context.Context, plan *Plan) (inserts, deletes []Statement, err error) {
	c := &claims{
		freed:   make(map[string]map[int]bool),
		claimed: make(map[string]map[int]string),
	}

	for _, code := range plan.Deleted.Codes() {
		typ, err := x.lookup(code)
		if err != nil {
			return nil, nil, err
		}
		for _, id := range plan.Deleted.Identifiers(code) {
			e := plan.Deleted[code][id]
			subject := subjectOf(typ, id)
			deletes = append(deletes,
				rowDelete(typ, e.StorageKey(), subject),
				identityDelete(code, id, subject))
			c.free(typ.Table(), e.StorageKey())
		}
	}

	for _, code := range plan.Modified.Codes() {
		typ, err := x.lookup(code)
		if err != nil {
			return nil, nil, err
		}
		for _, id := range plan.Modified.Identifiers(code) {
			old, ok := plan.Replaced.Get(code, id)
			if !ok {
				return nil, nil, fmt.Errorf("modified %s has no replaced entity", subjectOf(typ, id))
			}
			deletes = append(deletes, rowDelete(typ, old.StorageKey(), subjectOf(typ, id)))
			c.free(typ.Table(), old.StorageKey())
		}
	}

	// Pinned keys first so allocation never hands one of them out.
	for _, part := range []State{plan.Modified, plan.Created} {
		for _, code := range part.Codes() {
			typ, err := x.lookup(code)
			if err != nil {
				return nil, nil, err
			}
			for _, id := range part.Identifiers(code) {
				if key := part[code][id].StorageKey(); key > 0 {
					if err := x.claim(ctx, c, typ, key, subjectOf(typ, id)); err != nil {
						return nil, nil, err
					}
				}
			}
		}
	}

	for _, code := range plan.Created.Codes() {
		typ, err := x.lookup(code)
		if err != nil {
			return nil, nil, err
		}
		for _, id := range plan.Created.Identifiers(code) {
			e := plan.Created[code][id]
			if e.StorageKey() > 0 {
				continue
			}
			key, err := x.allocator.Next(ctx, typ.Table(), typ.KeyColumn())
			if err != nil {
				return nil, nil, err
			}
			e.SetStorageKey(key)
			x.logger.Debug("Allocated storage key",
				zap.String("entity", subjectOf(typ, id)),
				zap.Int("storage_key", key))
		}
	}

	for _, part := range []State{plan.Modified, plan.Created} {
		for _, code := range part.Codes() {
			typ, err := x.lookup(code)
			if err != nil {
				return nil, nil, err
			}
			for _, id := range part.Identifiers(code) {
				e := part[code][id]
				subject := subjectOf(typ, id)
				row, err := typ.Encode(e)
				if err != nil {
					return nil, nil, fmt.Errorf("failed to encode %s: %w", subject, err)
				}
				inserts = append(inserts,
					Statement{Kind: KindInsert, Table: typ.Table(), Values: row, Subject: subject},
					identityUpsert(code, id, e.StorageKey(), subject))
			}
		}
	}

	return inserts, deletes, nil
}

func (x *Executor) claim(ctx context.Context, c *claims, typ EntityType, key int, subject string) error {
	table := typ.Table()
	if owner, dup := c.claimed[table][key]; dup {
		return fmt.Errorf("%w: %s and %s both pin %s.%s = %d",
			ErrKeyCollision, owner, subject, table, typ.KeyColumn(), key)
	}
	if !c.freed[table][key] {
		taken, err := x.allocator.InUse(ctx, table, typ.KeyColumn(), key)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: %s pins %s.%s = %d which is held by an unmanaged or kept row",
				ErrKeyCollision, subject, table, typ.KeyColumn(), key)
		}
	}
	if c.claimed[table] == nil {
		c.claimed[table] = make(map[int]string)
	}
	c.claimed[table][key] = subject
	return x.allocator.Reserve(ctx, table, typ.KeyColumn(), key)
}

// Commit executes deletes and then inserts in one transaction. Any failure
// rolls the whole transaction back and is returned as *ApplyError.
func (x *Executor) Commit(ctx context.Context, inserts, deletes []Statement) error {
	return x.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, group := range [][]Statement{deletes, inserts} {
			for _, stmt := range group {
				if err := stmt.exec(tx); err != nil {
					return &ApplyError{Statement: stmt, Err: err}
				}
				x.logger.Debug("Executed statement", zap.Stringer("statement", stmt))
			}
		}
		return nil
	})
}

func (x *Executor) lookup(code int) (EntityType, error) {
	typ, ok := x.registry.Lookup(code)
	if !ok {
		return nil, fmt.Errorf("%w: type code %d", ErrUnregisteredType, code)
	}
	return typ, nil
}

func subjectOf(typ EntityType, identifier string) string {
	return typ.Name() + "." + identifier
}

func rowDelete(typ EntityType, key int, subject string) Statement {
	return Statement{
		Kind:    KindDelete,
		Table:   typ.Table(),
		Where:   codec.Row{typ.KeyColumn(): key},
		Subject: subject,
	}
}

func identityDelete(code int, identifier, subject string) Statement {
	return Statement{
		Kind:    KindDelete,
		Table:   IdentityRecord{}.TableName(),
		Where:   codec.Row{"type_code": code, "identifier": identifier},
		Subject: subject,
	}
}

func identityUpsert(code int, identifier string, key int, subject string) Statement {
	return Statement{
		Kind:     KindUpsert,
		Table:    IdentityRecord{}.TableName(),
		Values:   codec.Row{"type_code": code, "identifier": identifier, "storage_key": key},
		Conflict: []string{"type_code", "identifier"},
		Subject:  subject,
	}
}
