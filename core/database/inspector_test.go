package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE item_template (entry INTEGER PRIMARY KEY, name TEXT, BuyPrice INTEGER)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "item_template")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "integer", colMap["entry"])
	assert.Equal(t, "text", colMap["name"])
	assert.Equal(t, "integer", colMap["buyprice"])

	// PRAGMA table_info returns nothing for an unknown table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE item_template (entry INTEGER PRIMARY KEY, name TEXT)").Error)

	missing, err := MissingColumns(db, "item_template", []string{"entry", "Name", "displayid"})
	require.NoError(t, err)
	assert.Equal(t, []string{"displayid"}, missing)

	missing, err = MissingColumns(db, "nope", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, missing)
}
