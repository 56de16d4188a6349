package codec

import (
	"fmt"
	"math/bits"
	"strings"

	"gopkg.in/yaml.v3"
)

// NoFlags is the storage sentinel for an explicitly empty flag set.
const NoFlags = -1

// Flags is a set of bit flags of a symbolic type. A normalized set is sorted,
// holds single bits only and is nil when empty, so two sets with the same
// bits compare equal with reflect.DeepEqual.
type Flags[T Symbolic[T]] []T

// FlagsOf expands a 32-bit mask. Named bits decode to their symbol, other set
// bits are kept as raw single-bit values. NoFlags decodes to the empty set.
func FlagsOf[T Symbolic[T]](mask int) Flags[T] {
	if mask == NoFlags {
		return nil
	}
	m := uint32(mask)
	var out Flags[T]
	for m != 0 {
		bit := uint32(1) << bits.TrailingZeros32(m)
		out = append(out, T(bit))
		m &^= bit
	}
	return out
}

// Mask folds the set back into a bit mask.
func (f Flags[T]) Mask() int {
	var m uint32
	for _, v := range f {
		m |= uint32(v)
	}
	return int(m)
}

// SignedMask is Mask reinterpreted as a signed 32-bit value.
func (f Flags[T]) SignedMask() int {
	return int(int32(uint32(f.Mask())))
}

// Has reports whether every bit of v is set.
func (f Flags[T]) Has(v T) bool {
	m := uint32(f.Mask())
	return m&uint32(v) == uint32(v)
}

// Normalize returns the canonical form of f.
func (f Flags[T]) Normalize() Flags[T] {
	return FlagsOf[T](f.Mask())
}

// Unknown returns the bits of f that have no symbolic name.
func (f Flags[T]) Unknown() []int {
	d := DomainOf[T]()
	var raw []int
	for _, v := range f.Normalize() {
		if !d.Known(v) {
			raw = append(raw, int(v))
		}
	}
	return raw
}

func (f Flags[T]) String() string {
	if len(f) == 0 {
		return "[]"
	}
	d := DomainOf[T]()
	parts := make([]string, len(f))
	for i, v := range f {
		parts[i] = d.Format(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// UnmarshalYAML accepts a sequence (or a single scalar) of flag names and
// integers. Integers are raw bit values; -1 contributes nothing.
func (f *Flags[T]) UnmarshalYAML(node *yaml.Node) error {
	items := []*yaml.Node{node}
	switch node.Kind {
	case yaml.SequenceNode:
		items = node.Content
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*f = nil
			return nil
		}
	default:
		return &Error{Reason: fmt.Sprintf("line %d: %s flags must be a list", node.Line, DomainOf[T]().TypeName())}
	}

	d := DomainOf[T]()
	var mask uint32
	for _, item := range items {
		if item.Kind != yaml.ScalarNode {
			return &Error{Reason: fmt.Sprintf("line %d: %s flag must be a scalar", item.Line, d.TypeName())}
		}
		v, err := d.Parse(item.Value)
		if err != nil {
			return err
		}
		if v == NoFlags {
			continue
		}
		if v < 0 || int(v) > int(^uint32(0)) {
			return &Error{Value: item.Value, Reason: "flag value out of range for " + d.TypeName()}
		}
		mask |= uint32(v)
	}
	*f = FlagsOf[T](int(mask))
	return nil
}

// MarshalYAML emits names for known bits and integers for the rest.
func (f Flags[T]) MarshalYAML() (any, error) {
	out := make([]any, 0, len(f))
	for _, v := range f {
		sym, _ := MarshalSymbol(v)
		out = append(out, sym)
	}
	return out, nil
}
