package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"hogger/core/codec"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatementKind is the kind of write a Statement performs.
type StatementKind string

const (
	KindInsert StatementKind = "insert"
	KindDelete StatementKind = "delete"
	KindUpsert StatementKind = "upsert"
)

// Statement is one staged write of an apply.
type Statement struct {
	Kind StatementKind `json:"kind"`
	// Table is the target table.
	Table string `json:"table"`
	// Values are the columns to write (insert, upsert).
	Values codec.Row `json:"values,omitempty"`
	// Where selects the rows to delete.
	Where codec.Row `json:"where,omitempty"`
	// Conflict lists the unique columns an upsert conflicts on.
	Conflict []string `json:"conflict,omitempty"`
	// Subject names the entity the statement belongs to, as Type.identifier.
	Subject string `json:"subject"`
}

func (s Statement) String() string {
	switch s.Kind {
	case KindDelete:
		return fmt.Sprintf("delete from %s where %s (%s)", s.Table, formatRow(s.Where), s.Subject)
	default:
		return fmt.Sprintf("%s into %s %d columns (%s)", s.Kind, s.Table, len(s.Values), s.Subject)
	}
}

func (s Statement) exec(tx *gorm.DB) error {
	switch s.Kind {
	case KindInsert:
		return tx.Table(s.Table).Create(map[string]any(s.Values)).Error
	case KindDelete:
		if len(s.Where) == 0 {
			return fmt.Errorf("refusing unconditional delete from %s", s.Table)
		}
		cols := sortedColumns(s.Where)
		conds := make([]string, len(cols))
		args := make([]any, len(cols))
		for i, col := range cols {
			conds[i] = quote(col) + " = ?"
			args[i] = s.Where[col]
		}
		query := fmt.Sprintf("DELETE FROM %s WHERE %s", quote(s.Table), strings.Join(conds, " AND "))
		return tx.Exec(query, args...).Error
	case KindUpsert:
		conflict := make([]clause.Column, len(s.Conflict))
		isKey := make(map[string]bool, len(s.Conflict))
		for i, col := range s.Conflict {
			conflict[i] = clause.Column{Name: col}
			isKey[col] = true
		}
		var update []string
		for _, col := range sortedColumns(s.Values) {
			if !isKey[col] {
				update = append(update, col)
			}
		}
		return tx.Table(s.Table).
			Clauses(clause.OnConflict{Columns: conflict, DoUpdates: clause.AssignmentColumns(update)}).
			Create(map[string]any(s.Values)).Error
	default:
		return fmt.Errorf("unknown statement kind %q", s.Kind)
	}
}

func sortedColumns(row codec.Row) []string {
	cols := make([]string, 0, len(row))
	for col := range row {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

func formatRow(row codec.Row) string {
	parts := make([]string, 0, len(row))
	for _, col := range sortedColumns(row) {
		parts = append(parts, fmt.Sprintf("%s = %v", col, row[col]))
	}
	return strings.Join(parts, " and ")
}
