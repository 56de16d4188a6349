package reconcile

import (
	"fmt"

	"hogger/core/database"

	"gorm.io/gorm"
)

// TableReport is the schema check result of one managed table.
type TableReport struct {
	Type           string   `json:"type"`
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
}

// SchemaReport compares the tables of every registered type with the
// columns their codec tables read and write.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
}

// CheckSchema inspects the live table of every type in registry. A missing
// table reports every column as missing.
func CheckSchema(db *gorm.DB, registry *Registry) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{Matched: true, Tables: make(map[string]TableReport)}
	for _, code := range registry.Codes() {
		typ, _ := registry.Lookup(code)
		missing, err := database.MissingColumns(db, typ.Table(), typ.Columns())
		if err != nil {
			return nil, fmt.Errorf("failed to inspect %s: %w", typ.Table(), err)
		}
		tbl := TableReport{Type: typ.Name(), MissingColumns: missing, Status: "ok"}
		if len(missing) > 0 {
			tbl.Status = "error"
			report.Matched = false
		}
		report.Tables[typ.Table()] = tbl
	}
	return report, nil
}
