package reconcile

import (
	"context"
	"errors"
	"testing"

	"hogger/core/codec"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newExecutor(t *testing.T, db *gorm.DB) *Executor {
	t.Helper()
	return NewExecutor(db, testRegistry(t), NewAllocator(db), zap.NewNop())
}

func planOf(t *testing.T, desired, actual State) *Plan {
	t.Helper()
	plan, err := Diff(testRegistry(t), desired, actual)
	require.NoError(t, err)
	return plan
}

func TestExecutor_Stage(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	insertGizmo(t, db, 0, "changed", 9)
	insertGizmo(t, db, 1, "gone", 4)
	insertGizmo(t, db, 3, "unmanaged", 0)

	plan := planOf(t,
		stateOf(t, newGizmo("new", 1), newGizmo("changed", 2)),
		stateOf(t,
			&gizmo{ID: 0, Name: "changed", DisplayID: 9},
			&gizmo{ID: 1, Name: "gone", DisplayID: 4},
		),
	)

	inserts, deletes, err := newExecutor(t, db).Stage(ctx, plan)
	require.NoError(t, err)

	assert.Equal(t, []Statement{
		{Kind: KindDelete, Table: "gizmo", Where: codec.Row{"entry": 1}, Subject: "Gizmo.gone"},
		{Kind: KindDelete, Table: "hogger_identity", Where: codec.Row{"type_code": gizmoCode, "identifier": "gone"}, Subject: "Gizmo.gone"},
		{Kind: KindDelete, Table: "gizmo", Where: codec.Row{"entry": 0}, Subject: "Gizmo.changed"},
	}, deletes)

	require.Len(t, inserts, 4)
	assert.Equal(t, codec.Row{"entry": 0, "name": "changed", "displayid": 2}, inserts[0].Values)
	assert.Equal(t, KindUpsert, inserts[1].Kind)
	assert.Equal(t, []string{"type_code", "identifier"}, inserts[1].Conflict)

	// Freed key 1 is not reused within the run; 2 is the first never-used key.
	assert.Equal(t, codec.Row{"entry": 2, "name": "new", "displayid": 1}, inserts[2].Values)
	assert.Equal(t, codec.Row{"type_code": gizmoCode, "identifier": "new", "storage_key": 2}, inserts[3].Values)
	assert.Equal(t, 2, plan.Created[gizmoCode]["new"].StorageKey())
}

func TestExecutor_Stage_KeyCollision(t *testing.T) {
	ctx := context.Background()

	t.Run("Pinned Key Held By Unmanaged Row", func(t *testing.T) {
		db := openDB(t)
		insertGizmo(t, db, 5, "unmanaged", 0)
		plan := planOf(t, stateOf(t, &gizmo{ID: 5, Name: "new"}), State{})

		_, _, err := newExecutor(t, db).Stage(ctx, plan)
		assert.ErrorIs(t, err, ErrKeyCollision)
		assert.ErrorContains(t, err, "Gizmo.new pins gizmo.entry = 5")
	})

	t.Run("Two Entities Pin One Key", func(t *testing.T) {
		db := openDB(t)
		plan := planOf(t, stateOf(t, &gizmo{ID: 5, Name: "a"}, &gizmo{ID: 5, Name: "b"}), State{})

		_, _, err := newExecutor(t, db).Stage(ctx, plan)
		assert.ErrorIs(t, err, ErrKeyCollision)
		assert.ErrorContains(t, err, "Gizmo.a and Gizmo.b both pin")
	})

	t.Run("Key Freed By Delete", func(t *testing.T) {
		db := openDB(t)
		insertGizmo(t, db, 5, "old", 0)
		plan := planOf(t,
			stateOf(t, &gizmo{ID: 5, Name: "new"}),
			stateOf(t, &gizmo{ID: 5, Name: "old"}),
		)

		inserts, deletes, err := newExecutor(t, db).Stage(ctx, plan)
		require.NoError(t, err)
		assert.Len(t, deletes, 2)
		assert.Len(t, inserts, 2)
	})

	t.Run("Repinned Key Held By Kept Row", func(t *testing.T) {
		db := openDB(t)
		insertGizmo(t, db, 1, "a", 0)
		insertGizmo(t, db, 2, "b", 0)
		plan := planOf(t,
			stateOf(t, &gizmo{ID: 2, Name: "a"}, newGizmo("b", 0)),
			stateOf(t, &gizmo{ID: 1, Name: "a"}, &gizmo{ID: 2, Name: "b"}),
		)

		_, _, err := newExecutor(t, db).Stage(ctx, plan)
		assert.ErrorIs(t, err, ErrKeyCollision)
	})
}

func TestExecutor_Stage_EncodeError(t *testing.T) {
	r := NewRegistry()
	schema := &Schema[gizmo, *gizmo]{
		TypeName:  "Gizmo",
		TableName: "gizmo",
		Key:       "entry",
		Codec: codec.NewTable(
			codec.Bind("id", codec.IntColumn("entry"), func(g *gizmo) *int { return &g.ID }),
			codec.Bind("price", codec.New([]string{"price"},
				func(codec.Row) (int, error) { return 0, nil },
				func(int) (codec.Row, error) { return nil, errors.New("cannot be represented") },
			), func(g *gizmo) *int { return &g.DisplayID }),
		),
	}
	require.NoError(t, r.Register(gizmoCode, schema))

	db := openDB(t)
	plan, err := Diff(r, stateOf(t, newGizmo("a", 1)), State{})
	require.NoError(t, err)

	_, _, err = NewExecutor(db, r, NewAllocator(db), zap.NewNop()).Stage(context.Background(), plan)
	assert.ErrorContains(t, err, "failed to encode Gizmo.a")
	assert.ErrorContains(t, err, "cannot be represented")
}

func TestExecutor_Commit(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	require.NoError(t, EnsureSchema(ctx, db))
	insertGizmo(t, db, 1, "gone", 0)
	insertIdentity(t, db, gizmoCode, "gone", 1)

	plan := planOf(t, stateOf(t, newGizmo("new", 8)), stateOf(t, &gizmo{ID: 1, Name: "gone"}))
	x := newExecutor(t, db)
	inserts, deletes, err := x.Stage(ctx, plan)
	require.NoError(t, err)
	require.NoError(t, x.Commit(ctx, inserts, deletes))

	records, err := NewIdentityStore(db).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []IdentityRecord{{TypeCode: gizmoCode, Identifier: "new", StorageKey: 0}}, records)

	var names []string
	require.NoError(t, db.Table("gizmo").Order("entry").Pluck("name", &names).Error)
	assert.Equal(t, []string{"new"}, names)
}

func TestExecutor_Commit_RollsBack(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	require.NoError(t, EnsureSchema(ctx, db))
	insertGizmo(t, db, 1, "gone", 0)
	insertGizmo(t, db, 2, "taken", 0)

	deletes := []Statement{{Kind: KindDelete, Table: "gizmo", Where: codec.Row{"entry": 1}, Subject: "Gizmo.gone"}}
	inserts := []Statement{{Kind: KindInsert, Table: "gizmo", Values: codec.Row{"entry": 2, "name": "dup", "displayid": 0}, Subject: "Gizmo.dup"}}

	err := newExecutor(t, db).Commit(ctx, inserts, deletes)
	var applyErr *ApplyError
	require.ErrorAs(t, err, &applyErr)
	assert.Equal(t, "Gizmo.dup", applyErr.Statement.Subject)

	var count int64
	require.NoError(t, db.Table("gizmo").Count(&count).Error)
	assert.Equal(t, int64(2), count, "the delete is rolled back")
}

func TestExecutor_Commit_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	deletes := []Statement{{Kind: KindDelete, Table: "item_template", Where: codec.Row{"entry": 17}, Subject: "Item.Martin Fury"}}
	inserts := []Statement{
		{Kind: KindInsert, Table: "item_template", Values: codec.Row{"entry": 17, "name": "Martin Fury"}, Subject: "Item.Martin Fury"},
		identityUpsert(1, "Martin Fury", 17, "Item.Martin Fury"),
	}

	t.Run("Commit", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `item_template` WHERE `entry` = ?").
			WithArgs(17).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO `item_template` .+").
			WillReturnResult(sqlmock.NewResult(17, 1))
		mock.ExpectExec("INSERT INTO `hogger_identity` .+ ON DUPLICATE KEY UPDATE `storage_key`=VALUES\\(`storage_key`\\)").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, NewExecutor(db, NewRegistry(), NewAllocator(db), zap.NewNop()).Commit(context.Background(), inserts, deletes))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `item_template` WHERE `entry` = ?").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO `item_template` .+").
			WillReturnError(errors.New("Duplicate entry '17' for key 'PRIMARY'"))
		mock.ExpectRollback()

		err := NewExecutor(db, NewRegistry(), NewAllocator(db), zap.NewNop()).Commit(context.Background(), inserts, deletes)
		var applyErr *ApplyError
		require.ErrorAs(t, err, &applyErr)
		assert.Equal(t, "item_template", applyErr.Statement.Table)
		assert.ErrorContains(t, err, "Duplicate entry")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStatement_String(t *testing.T) {
	del := Statement{Kind: KindDelete, Table: "gizmo", Where: codec.Row{"entry": 1, "a": 2}, Subject: "Gizmo.x"}
	assert.Equal(t, "delete from gizmo where a = 2 and entry = 1 (Gizmo.x)", del.String())

	ins := Statement{Kind: KindInsert, Table: "gizmo", Values: codec.Row{"entry": 1}, Subject: "Gizmo.x"}
	assert.Equal(t, "insert into gizmo 1 columns (Gizmo.x)", ins.String())
}
