package reconcile

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IdentityRecord ties a human identifier to the storage key of a managed entity.
// It is the authoritative list of the entities this tool manages.
type IdentityRecord struct {
	TypeCode   int    `gorm:"column:type_code;primaryKey;autoIncrement:false" json:"type_code"`
	Identifier string `gorm:"column:identifier;primaryKey;size:128" json:"identifier"`
	StorageKey int    `gorm:"column:storage_key;not null" json:"storage_key"`
}

// TableName returns the identity table name.
func (IdentityRecord) TableName() string {
	return "hogger_identity"
}

// LockRecord is a persisted lock flag keyed by name.
type LockRecord struct {
	K string `gorm:"column:k;primaryKey;size:32"`
	V bool   `gorm:"column:v;not null"`
}

// TableName returns the lock table name.
func (LockRecord) TableName() string {
	return "hogger_lock"
}

// EnsureSchema creates the identity and lock tables when missing and seeds
// the lock row unlocked. An existing lock row is left as is.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&IdentityRecord{}, &LockRecord{}); err != nil {
		return fmt.Errorf("failed to migrate bookkeeping tables: %w", err)
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&LockRecord{K: lockKey, V: false}).Error
	if err != nil {
		return fmt.Errorf("failed to seed lock: %w", err)
	}
	return nil
}

// HasSchema reports whether the identity table exists.
func HasSchema(db *gorm.DB) bool {
	return db.Migrator().HasTable(&IdentityRecord{})
}

// IdentityStore reads the identity table. Writes go through the Executor so
// they share the apply transaction.
type IdentityStore struct {
	db *gorm.DB
}

// NewIdentityStore creates an IdentityStore.
func NewIdentityStore(db *gorm.DB) *IdentityStore {
	return &IdentityStore{db: db}
}

// List returns every identity record ordered by type code and identifier.
func (s *IdentityStore) List(ctx context.Context) ([]IdentityRecord, error) {
	var records []IdentityRecord
	err := s.db.WithContext(ctx).
		Order("type_code").
		Order("identifier").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list identity records: %w", err)
	}
	return records, nil
}
