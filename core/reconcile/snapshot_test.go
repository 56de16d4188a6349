package reconcile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSnapshotReader_Load(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	insertGizmo(t, db, 17, "Martin Fury", 3)
	reader := NewSnapshotReader(db, testRegistry(t), zap.NewNop())

	e, err := reader.Load(ctx, gizmoCode, "Martin Fury", 17)
	require.NoError(t, err)
	assert.Equal(t, &gizmo{ID: 17, Name: "Martin Fury", DisplayID: 3}, e)

	_, err = reader.Load(ctx, gizmoCode, "Ghost", 99)
	assert.ErrorIs(t, err, ErrIntegrity)
	assert.ErrorContains(t, err, "found 0")

	_, err = reader.Load(ctx, 99, "x", 1)
	assert.ErrorIs(t, err, ErrUnregisteredType)
}

func TestSnapshotReader_Actual(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	insertGizmo(t, db, 1, "a", 10)
	insertGizmo(t, db, 2, "b", 20)

	core, logs := observer.New(zapcore.WarnLevel)
	reader := NewSnapshotReader(db, testRegistry(t), zap.New(core))

	state, err := reader.Actual(ctx, []IdentityRecord{
		{TypeCode: gizmoCode, Identifier: "a", StorageKey: 1},
		{TypeCode: gizmoCode, Identifier: "b", StorageKey: 2},
		{TypeCode: 42, Identifier: "future", StorageKey: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{gizmoCode}, state.Codes())
	assert.Equal(t, []string{"a", "b"}, state.Identifiers(gizmoCode))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Skipping identity of unknown type code", entry.Message)
	assert.Equal(t, int64(42), entry.ContextMap()["type_code"])
}

func TestSnapshotReader_Actual_IntegrityFailure(t *testing.T) {
	db := openDB(t)
	reader := NewSnapshotReader(db, testRegistry(t), zap.NewNop())

	_, err := reader.Actual(context.Background(), []IdentityRecord{
		{TypeCode: gizmoCode, Identifier: "a", StorageKey: 1},
	})
	assert.ErrorIs(t, err, ErrIntegrity)
}

func TestIdentityStore_List(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	require.NoError(t, EnsureSchema(ctx, db))
	insertIdentity(t, db, gizmoCode, "b", 2)
	insertIdentity(t, db, 1, "z", 9)
	insertIdentity(t, db, gizmoCode, "a", 1)

	records, err := NewIdentityStore(db).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []IdentityRecord{
		{TypeCode: 1, Identifier: "z", StorageKey: 9},
		{TypeCode: gizmoCode, Identifier: "a", StorageKey: 1},
		{TypeCode: gizmoCode, Identifier: "b", StorageKey: 2},
	}, records)
}
