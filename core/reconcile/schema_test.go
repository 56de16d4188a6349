package reconcile

import (
	"testing"

	"hogger/core/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSchema(t *testing.T) {
	t.Run("Matched", func(t *testing.T) {
		report, err := CheckSchema(openDB(t), testRegistry(t))
		require.NoError(t, err)
		assert.True(t, report.Matched)
		assert.Equal(t, TableReport{Type: "Gizmo", MissingColumns: []string{}, Status: "ok"}, report.Tables["gizmo"])
	})

	t.Run("MissingColumn", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
		require.NoError(t, err)
		t.Cleanup(func() { _ = database.Close(db) })
		require.NoError(t, db.Exec("CREATE TABLE gizmo (entry INTEGER PRIMARY KEY, name TEXT)").Error)

		report, err := CheckSchema(db, testRegistry(t))
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Equal(t, []string{"displayid"}, report.Tables["gizmo"].MissingColumns)
		assert.Equal(t, "error", report.Tables["gizmo"].Status)
	})

	t.Run("MissingTable", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
		require.NoError(t, err)
		t.Cleanup(func() { _ = database.Close(db) })

		report, err := CheckSchema(db, testRegistry(t))
		require.NoError(t, err)
		assert.Equal(t, []string{"entry", "name", "displayid"}, report.Tables["gizmo"].MissingColumns)
	})

	t.Run("NilDB", func(t *testing.T) {
		_, err := CheckSchema(nil, testRegistry(t))
		assert.Error(t, err)
	})
}
