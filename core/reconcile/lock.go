package reconcile

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockKey is the lock row guarding reconciliation runs.
const lockKey = "locked"

// Lock is the persisted flag that keeps two reconciliation runs from
// overlapping. It has no lease: a crashed run leaves it held until released
// by hand (`hogger lock release`).
type Lock struct {
	db *gorm.DB
}

// NewLock creates a Lock on db.
func NewLock(db *gorm.DB) *Lock {
	return &Lock{db: db}
}

// IsLocked reports whether the lock is held. A missing row reads as unlocked.
func (l *Lock) IsLocked(ctx context.Context) (bool, error) {
	var rec LockRecord
	err := l.db.WithContext(ctx).Where("k = ?", lockKey).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read lock: %w", err)
	}
	return rec.V, nil
}

// Acquire marks the lock held. Acquiring a held lock is not an error.
func (l *Lock) Acquire(ctx context.Context) error {
	return l.set(ctx, true)
}

// Release marks the lock free.
func (l *Lock) Release(ctx context.Context) error {
	return l.set(ctx, false)
}

func (l *Lock) set(ctx context.Context, held bool) error {
	err := l.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "k"}},
			DoUpdates: clause.AssignmentColumns([]string{"v"}),
		}).
		Create(&LockRecord{K: lockKey, V: held}).Error
	if err != nil {
		return fmt.Errorf("failed to set lock to %t: %w", held, err)
	}
	return nil
}
