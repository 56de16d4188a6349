package reconcile

import (
	"testing"

	"hogger/core/codec"
	"hogger/core/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const gizmoCode = 7

type gizmo struct {
	ID        int
	Name      string
	DisplayID int
}

func (g *gizmo) Identifier() string     { return g.Name }
func (g *gizmo) StorageKey() int        { return g.ID }
func (g *gizmo) SetStorageKey(key int) { g.ID = key }

func gizmoSchema() *Schema[gizmo, *gizmo] {
	return &Schema[gizmo, *gizmo]{
		TypeName:  "Gizmo",
		TableName: "gizmo",
		Key:       "entry",
		Codec: codec.NewTable(
			codec.Bind("id", codec.IntColumn("entry"), func(g *gizmo) *int { return &g.ID }),
			codec.Bind("name", codec.StringColumn("name"), func(g *gizmo) *string { return &g.Name }),
			codec.Bind("displayId", codec.IntColumn("displayid"), func(g *gizmo) *int { return &g.DisplayID }),
		),
	}
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, r.Register(gizmoCode, gizmoSchema()))
	return r
}

func newGizmo(name string, display int) *gizmo {
	return &gizmo{ID: UnassignedKey, Name: name, DisplayID: display}
}

// openDB returns an in-memory database holding an empty gizmo table and the
// bookkeeping tables.
func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, db.Exec("CREATE TABLE gizmo (entry INTEGER PRIMARY KEY, name TEXT NOT NULL, displayid INTEGER NOT NULL DEFAULT 0)").Error)
	return db
}

func insertGizmo(t *testing.T, db *gorm.DB, key int, name string, display int) {
	t.Helper()
	require.NoError(t, db.Exec("INSERT INTO gizmo (entry, name, displayid) VALUES (?, ?, ?)", key, name, display).Error)
}

func insertIdentity(t *testing.T, db *gorm.DB, code int, identifier string, key int) {
	t.Helper()
	require.NoError(t, db.Create(&IdentityRecord{TypeCode: code, Identifier: identifier, StorageKey: key}).Error)
}
