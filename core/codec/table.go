package codec

import (
	"fmt"
	"reflect"
)

// Change is the desired and actual value of one differing field.
type Change struct {
	Desired any `json:"desired"`
	Actual  any `json:"actual"`
}

// Field binds a codec to one field of entity type E.
type Field[E any] struct {
	// Name is the field name reported in plans and errors.
	Name string
	// Columns lists the storage columns behind the field.
	Columns []string
	// Value returns the decoded field value used for comparisons.
	Value func(e *E) any
	// Decode reads the field from row into e.
	Decode func(row Row, e *E) error
	// Encode writes the field of e as columns. Nil for read-only fields.
	Encode func(e *E) (Row, error)
}

// Bind creates a read-write field whose value lives at ref(e).
func Bind[E, V any](name string, c Codec[V], ref func(*E) *V) Field[E] {
	return Field[E]{
		Name:    name,
		Columns: c.Columns(),
		Value:   func(e *E) any { return *ref(e) },
		Decode: func(row Row, e *E) error {
			v, err := c.Decode(row)
			if err != nil {
				return withField(name, err)
			}
			*ref(e) = v
			return nil
		},
		Encode: func(e *E) (Row, error) {
			row, err := c.Encode(*ref(e))
			return row, withField(name, err)
		},
	}
}

// ReadOnly creates a field that is decoded and compared but never written.
func ReadOnly[E, V any](name string, c Codec[V], ref func(*E) *V) Field[E] {
	f := Bind(name, c, ref)
	f.Encode = nil
	return f
}

// Table is the ordered codec table of an entity type.
type Table[E any] struct {
	fields  []Field[E]
	columns []string
}

// NewTable builds a table. It panics when two fields share a name or two
// writable fields share a column, both being programming errors.
func NewTable[E any](fields ...Field[E]) *Table[E] {
	t := &Table[E]{fields: fields}
	names := make(map[string]struct{}, len(fields))
	seen := make(map[string]struct{})
	written := make(map[string]string)
	for _, f := range fields {
		if _, dup := names[f.Name]; dup {
			panic(fmt.Sprintf("codec: field %q declared twice", f.Name))
		}
		names[f.Name] = struct{}{}
		for _, col := range f.Columns {
			if f.Encode != nil {
				if other, dup := written[col]; dup {
					panic(fmt.Sprintf("codec: column %q written by %q and %q", col, other, f.Name))
				}
				written[col] = f.Name
			}
			if _, ok := seen[col]; !ok {
				seen[col] = struct{}{}
				t.columns = append(t.columns, col)
			}
		}
	}
	return t
}

// Fields returns the fields in declaration order.
func (t *Table[E]) Fields() []Field[E] {
	return t.fields
}

// Columns returns every column any field reads, in declaration order.
func (t *Table[E]) Columns() []string {
	return t.columns
}

// Decode runs every field's decode rule over row into e.
func (t *Table[E]) Decode(row Row, e *E) error {
	for _, f := range t.fields {
		if err := f.Decode(row, e); err != nil {
			return err
		}
	}
	return nil
}

// Encode runs every writable field's encode rule and merges the columns.
func (t *Table[E]) Encode(e *E) (Row, error) {
	row := Row{}
	for _, f := range t.fields {
		if f.Encode == nil {
			continue
		}
		cols, err := f.Encode(e)
		if err != nil {
			return nil, err
		}
		if err := row.Merge(cols); err != nil {
			return nil, withField(f.Name, err)
		}
	}
	return row, nil
}

// Diff compares desired and actual field by field on decoded values and
// returns the fields that differ, or nil when none do.
func (t *Table[E]) Diff(desired, actual *E) map[string]Change {
	var changes map[string]Change
	for _, f := range t.fields {
		dv, av := f.Value(desired), f.Value(actual)
		if reflect.DeepEqual(dv, av) {
			continue
		}
		if changes == nil {
			changes = make(map[string]Change)
		}
		changes[f.Name] = Change{Desired: dv, Actual: av}
	}
	return changes
}
