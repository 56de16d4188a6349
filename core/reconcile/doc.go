// Package reconcile reconciles a desired set of entities with what is stored
// in the world database.
//
// Entities are tracked by a human identifier, unique within their entity type,
// rather than by storage key. The identity table maps every managed
// (type code, identifier) to the primary key of its backing row, and is the
// only record of which rows this tool owns. Rows not listed there are never
// read, modified or deleted.
//
// # Components
//
//   - Registry: type code to EntityType. Built once at startup and passed along.
//   - Schema: generic EntityType driven by a codec.Table.
//   - IdentityStore and Lock: the two bookkeeping tables.
//   - SnapshotReader: materializes the actual state from identity records.
//   - Diff: partitions desired and actual into created, modified, unchanged
//     and deleted, recording the per-field changes of modified entities.
//   - Allocator: smallest unused keys for entities without a pinned key.
//   - Executor: stages and commits the statements of a plan in one transaction.
//   - Reconciler: runs the above under the lock.
//
// # Storage keys
//
// A storage key <= 0 means "unassigned". A desired entity with an unassigned
// key inherits the key of the actual entity it matches; a created one gets the
// next free key at staging. A positive key is authoritative and fails staging
// with ErrKeyCollision when held by a row the plan does not free.
//
// The lock has no lease. A run that crashes leaves it held until released
// manually.
package reconcile
