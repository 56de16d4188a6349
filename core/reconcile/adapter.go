package reconcile

import (
	"fmt"

	"hogger/core/codec"
)

// EntityType describes how one kind of entity is stored. Each entity type
// owns one table and is registered under a stable type code.
type EntityType interface {
	// Name returns the type name used in manifests and reports (e.g. "Item").
	Name() string
	// Table returns the backing table.
	Table() string
	// KeyColumn returns the table's numeric primary key column.
	KeyColumn() string
	// Columns returns every column the codec table reads.
	Columns() []string
	// Owns reports whether e is a value of this type.
	Owns(e Entity) bool
	// Load decodes row into an entity tracked under identifier.
	Load(identifier string, row codec.Row) (Entity, error)
	// Encode converts e into the row to insert.
	Encode(e Entity) (codec.Row, error)
	// Diff returns the fields whose decoded values differ, or nil.
	Diff(desired, actual Entity) map[string]codec.Change
}

// Schema is the EntityType of a struct type E whose pointer implements
// Entity, driven by a codec table. The key column must be one of the codec
// table's columns so that Encode writes the storage key.
type Schema[E any, P interface {
	*E
	Entity
}] struct {
	TypeName  string
	TableName string
	Key       string
	Codec     *codec.Table[E]
}

func (s *Schema[E, P]) Name() string      { return s.TypeName }
func (s *Schema[E, P]) Table() string     { return s.TableName }
func (s *Schema[E, P]) KeyColumn() string { return s.Key }
func (s *Schema[E, P]) Columns() []string { return s.Codec.Columns() }

func (s *Schema[E, P]) Owns(e Entity) bool {
	_, ok := e.(P)
	return ok
}

func (s *Schema[E, P]) Load(identifier string, row codec.Row) (Entity, error) {
	e := new(E)
	if err := s.Codec.Decode(row, e); err != nil {
		return nil, fmt.Errorf("failed to decode %s %q: %w", s.TypeName, identifier, err)
	}
	p := P(e)
	key, err := row.Int(s.Key)
	if err != nil {
		return nil, err
	}
	p.SetStorageKey(key)
	if setter, ok := any(p).(IdentifierSetter); ok {
		setter.SetIdentifier(identifier)
	}
	return p, nil
}

func (s *Schema[E, P]) Encode(e Entity) (codec.Row, error) {
	p, err := s.cast(e)
	if err != nil {
		return nil, err
	}
	return s.Codec.Encode((*E)(p))
}

func (s *Schema[E, P]) Diff(desired, actual Entity) map[string]codec.Change {
	d, derr := s.cast(desired)
	a, aerr := s.cast(actual)
	if derr != nil || aerr != nil {
		return map[string]codec.Change{"type": {Desired: fmt.Sprintf("%T", desired), Actual: fmt.Sprintf("%T", actual)}}
	}
	return s.Codec.Diff((*E)(d), (*E)(a))
}

func (s *Schema[E, P]) cast(e Entity) (P, error) {
	p, ok := e.(P)
	if !ok {
		return nil, fmt.Errorf("%s cannot handle %T", s.TypeName, e)
	}
	return p, nil
}
