package reconcile

import (
	"context"
	"fmt"
	"strings"

	"hogger/core/codec"
	"hogger/core/database"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SnapshotReader materializes the actual state of managed entities from the
// identity table and their backing rows.
type SnapshotReader struct {
	db       *gorm.DB
	registry *Registry
	logger   *zap.Logger
}

// NewSnapshotReader creates a SnapshotReader.
func NewSnapshotReader(db *gorm.DB, registry *Registry, logger *zap.Logger) *SnapshotReader {
	return &SnapshotReader{db: db, registry: registry, logger: logger}
}

// Load reads the row behind one managed entity. Exactly one row must match
// the storage key; anything else is an integrity violation.
func (r *SnapshotReader) Load(ctx context.Context, code int, identifier string, key int) (Entity, error) {
	typ, ok := r.registry.Lookup(code)
	if !ok {
		return nil, fmt.Errorf("%w: type code %d", ErrUnregisteredType, code)
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?",
		quoteColumns(typ.Columns()), quote(typ.Table()), quote(typ.KeyColumn()))
	rows, err := database.QueryRows(ctx, r.db, query, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s %q: %w", typ.Name(), identifier, err)
	}
	if len(rows) != 1 {
		return nil, fmt.Errorf("%w: %s %q expects one row in %s with %s = %d, found %d",
			ErrIntegrity, typ.Name(), identifier, typ.Table(), typ.KeyColumn(), key, len(rows))
	}
	return typ.Load(identifier, codec.Row(rows[0]))
}

// Actual builds the actual state from identity records. Records of type codes
// this build does not know are skipped with a warning and left untouched.
func (r *SnapshotReader) Actual(ctx context.Context, records []IdentityRecord) (State, error) {
	state := State{}
	for _, rec := range records {
		if _, ok := r.registry.Lookup(rec.TypeCode); !ok {
			r.logger.Warn("Skipping identity of unknown type code",
				zap.Int("type_code", rec.TypeCode),
				zap.String("identifier", rec.Identifier),
				zap.Int("storage_key", rec.StorageKey))
			continue
		}
		e, err := r.Load(ctx, rec.TypeCode, rec.Identifier, rec.StorageKey)
		if err != nil {
			return nil, err
		}
		state.put(rec.TypeCode, rec.Identifier, e)
	}
	return state, nil
}

func quote(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func quoteColumns(cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = quote(c)
	}
	return strings.Join(quoted, ", ")
}
