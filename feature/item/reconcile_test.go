package item

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"hogger/core/codec"
	"hogger/core/database"
	"hogger/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func openWorld(t *testing.T) (*gorm.DB, *reconcile.Registry) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	var cols []string
	for _, col := range Schema().Columns() {
		switch col {
		case "entry":
			cols = append(cols, "entry INTEGER PRIMARY KEY")
		case "name", "description", "ScriptName":
			cols = append(cols, fmt.Sprintf("%s TEXT NOT NULL DEFAULT ''", col))
		default:
			cols = append(cols, fmt.Sprintf("%s NUMERIC NOT NULL DEFAULT 0", col))
		}
	}
	require.NoError(t, db.Exec(fmt.Sprintf("CREATE TABLE %s (%s)", Table, strings.Join(cols, ", "))).Error)

	registry := reconcile.NewRegistry()
	require.NoError(t, Register(registry))
	return db, registry
}

func runPlan(t *testing.T, db *gorm.DB, registry *reconcile.Registry, apply bool, desired ...reconcile.Entity) *reconcile.Plan {
	t.Helper()
	ctx := context.Background()
	r := reconcile.New(db, registry, zap.NewNop())
	require.NoError(t, r.Begin(ctx))
	defer func() { require.NoError(t, r.Close(ctx)) }()

	plan, err := r.Plan(ctx, desired)
	require.NoError(t, err)
	if apply {
		require.NoError(t, r.Apply(ctx, plan))
	}
	return plan
}

func fury() *Item {
	w := NewWeapon(TwoHandedSword)
	w.Name = "Martin Fury"
	w.Tag = "gm"
	w.Quality = Epic
	w.BuyPrice = codec.Money{Gold: 12, Silver: 50}
	w.SellPrice = codec.Money{Gold: 1, Silver: 2, Copper: 3}
	w.Duration = codec.Duration{Hours: 2}
	w.Flags = codec.Flags[Flag]{NoPickup, HasText}
	w.FlagsExtra = codec.Flags[FlagExtra]{HordeOnly}
	w.Requires.Classes = codec.Flags[PlayerClass]{Warrior, Paladin}
	w.Requires.Level = 60
	w.Stats = Stats{Strength: 20, Stamina: 15}
	w.Sockets = Sockets{Red: 1, Blue: 2, Bonus: 3312}
	w.RandomStat = RandomStat{ID: 5, WithSuffix: true}
	w.Damage = Damage{Min1: 1.1, Max1: 3.3, Type1: Physical, Min2: 5, Max2: 10.7, Type2: Shadow}
	w.Spells = []Spell{
		{ID: 18803, Trigger: ChanceOnHit, ProcsPerMinute: 1.7, Cooldown: -1, CategoryCooldown: -1},
		{ID: 23, Trigger: Use, Cooldown: 30000, CategoryCooldown: -1},
	}
	w.Normalize()
	return w
}

func TestItem_ReconcileIsIdempotent(t *testing.T) {
	db, registry := openWorld(t)

	plan := runPlan(t, db, registry, true, fury())
	assert.Equal(t, reconcile.Summary{Created: 1}, plan.Summary())

	plan = runPlan(t, db, registry, true, fury())
	assert.Equal(t, reconcile.Summary{Unchanged: 1}, plan.Summary())

	changed := fury()
	changed.SellPrice = codec.Money{Gold: 2}
	plan = runPlan(t, db, registry, false, changed)
	assert.Equal(t, reconcile.Summary{Modified: 1}, plan.Summary())

	records, err := reconcile.NewIdentityStore(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Martin Fury#gm", records[0].Identifier)
}

func TestItem_NameWithSeparatorKeepsIdentity(t *testing.T) {
	db, registry := openWorld(t)
	ctx := context.Background()
	require.NoError(t, reconcile.EnsureSchema(ctx, db))

	stored := New()
	stored.ID = 40
	stored.Name = "Item #5"
	row, err := Schema().Encode(stored)
	require.NoError(t, err)
	require.NoError(t, db.Table(Table).Create(map[string]any(row)).Error)
	require.NoError(t, db.Create(&reconcile.IdentityRecord{TypeCode: TypeCode, Identifier: "Item #5", StorageKey: 40}).Error)

	desired := New()
	desired.Name = "Item #5"
	plan := runPlan(t, db, registry, false, desired)
	assert.Equal(t, reconcile.Summary{Unchanged: 1}, plan.Summary())
}
