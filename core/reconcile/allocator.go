package reconcile

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Allocator hands out the smallest unused non-negative keys of one column.
// Used keys are loaded once; keys handed out or reserved during the run are
// never handed out again, including keys freed by deletes in the same run.
type Allocator struct {
	db     *gorm.DB
	used   map[string]map[int]struct{}
	cursor map[string]int
}

// NewAllocator creates an Allocator reading from db.
func NewAllocator(db *gorm.DB) *Allocator {
	return &Allocator{
		db:     db,
		used:   make(map[string]map[int]struct{}),
		cursor: make(map[string]int),
	}
}

// Next returns the smallest non-negative key of table.column that is neither
// stored nor already handed out, and marks it used.
func (a *Allocator) Next(ctx context.Context, table, column string) (int, error) {
	used, err := a.load(ctx, table, column)
	if err != nil {
		return 0, err
	}
	slot := slotKey(table, column)
	key := a.cursor[slot]
	for {
		if _, taken := used[key]; !taken {
			break
		}
		key++
	}
	used[key] = struct{}{}
	a.cursor[slot] = key + 1
	return key, nil
}

// InUse reports whether key is stored or already handed out.
func (a *Allocator) InUse(ctx context.Context, table, column string, key int) (bool, error) {
	used, err := a.load(ctx, table, column)
	if err != nil {
		return false, err
	}
	_, taken := used[key]
	return taken, nil
}

// Reserve marks key used so Next skips it.
func (a *Allocator) Reserve(ctx context.Context, table, column string, key int) error {
	used, err := a.load(ctx, table, column)
	if err != nil {
		return err
	}
	used[key] = struct{}{}
	return nil
}

// Reset drops every loaded key set.
func (a *Allocator) Reset() {
	a.used = make(map[string]map[int]struct{})
	a.cursor = make(map[string]int)
}

func (a *Allocator) load(ctx context.Context, table, column string) (map[int]struct{}, error) {
	slot := slotKey(table, column)
	if used, ok := a.used[slot]; ok {
		return used, nil
	}

	var keys []int
	if err := a.db.WithContext(ctx).Table(table).Pluck(column, &keys).Error; err != nil {
		return nil, fmt.Errorf("failed to load keys of %s.%s: %w", table, column, err)
	}
	used := make(map[int]struct{}, len(keys))
	for _, k := range keys {
		used[k] = struct{}{}
	}
	a.used[slot] = used
	return used, nil
}

func slotKey(table, column string) string {
	return table + "." + column
}
