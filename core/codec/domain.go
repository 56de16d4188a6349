package codec

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Domain is the set of named values of a symbolic integer type.
type Domain[T ~int] struct {
	typeName string
	names    map[T]string
	values   map[string]T
	order    []T
}

// NewDomain builds a Domain from a value to name table.
// It panics when two values share a name.
func NewDomain[T ~int](typeName string, names map[T]string) *Domain[T] {
	d := &Domain[T]{
		typeName: typeName,
		names:    make(map[T]string, len(names)),
		values:   make(map[string]T, len(names)),
	}
	for v, name := range names {
		if _, dup := d.values[name]; dup {
			panic(fmt.Sprintf("codec: %s declares %q twice", typeName, name))
		}
		d.names[v] = name
		d.values[name] = v
		d.order = append(d.order, v)
	}
	sort.Slice(d.order, func(i, j int) bool { return d.order[i] < d.order[j] })
	return d
}

// TypeName returns the name of the symbolic type.
func (d *Domain[T]) TypeName() string {
	return d.typeName
}

// Values returns the named values in ascending order.
func (d *Domain[T]) Values() []T {
	return append([]T(nil), d.order...)
}

// Names returns the symbolic names in ascending value order.
func (d *Domain[T]) Names() []string {
	names := make([]string, len(d.order))
	for i, v := range d.order {
		names[i] = d.names[v]
	}
	return names
}

// Name returns the symbolic name of v.
func (d *Domain[T]) Name(v T) (string, bool) {
	name, ok := d.names[v]
	return name, ok
}

// Known reports whether v has a symbolic name.
func (d *Domain[T]) Known(v T) bool {
	_, ok := d.names[v]
	return ok
}

// Format returns the symbolic name of v, or its decimal form when v is a raw
// value outside the domain.
func (d *Domain[T]) Format(v T) string {
	if name, ok := d.names[v]; ok {
		return name
	}
	return strconv.Itoa(int(v))
}

// Parse resolves a symbolic name or an integer literal.
// Integers outside the domain are kept as raw values so that codes added to
// the database out of band still round-trip.
func (d *Domain[T]) Parse(s string) (T, error) {
	s = strings.TrimSpace(s)
	if v, ok := d.values[s]; ok {
		return v, nil
	}
	if i, err := strconv.Atoi(s); err == nil {
		return T(i), nil
	}
	names := d.Names()
	return 0, &Error{
		Value:      s,
		Reason:     "invalid " + d.typeName,
		Expected:   names,
		Suggestion: Suggest(s, names),
	}
}

// Symbolic is an integer type whose values come from a Domain.
type Symbolic[T ~int] interface {
	~int
	Domain() *Domain[T]
}

// DomainOf returns the Domain of T.
func DomainOf[T Symbolic[T]]() *Domain[T] {
	var zero T
	return zero.Domain()
}

// UnmarshalSymbol decodes a YAML scalar holding a name or an integer into out.
func UnmarshalSymbol[T Symbolic[T]](node *yaml.Node, out *T) error {
	if node.Kind != yaml.ScalarNode {
		return &Error{Value: node.Value, Reason: fmt.Sprintf("line %d: %s must be a scalar", node.Line, DomainOf[T]().TypeName())}
	}
	v, err := DomainOf[T]().Parse(node.Value)
	if err != nil {
		return err
	}
	*out = v
	return nil
}

// MarshalSymbol encodes v as its name, or as an integer when it has none.
func MarshalSymbol[T Symbolic[T]](v T) (any, error) {
	if name, ok := DomainOf[T]().Name(v); ok {
		return name, nil
	}
	return int(v), nil
}
