package codec

import (
	"fmt"

	"hogger/core/utils"
)

// Group collapses a fixed family of numbered column sets ("slot i") into a
// variable-length list.
//
// Decode walks the slots in order and stops at the first slot whose presence
// column is zero: populated slots after an empty one are ignored. Encode
// always writes every slot, zero-filling the unused ones. The mapping is
// therefore lossy for rows with gaps; a row {1, 2, 0, 4, 5} reads back as
// {1, 2} and is rewritten as {1, 2, 0, 0, 0}.
type Group[V any] struct {
	// Slots is the number of column sets in the table.
	Slots int
	// Presence is the fmt template (one %d, 1-based) of the column that marks
	// a slot as used when non-zero.
	Presence string
	// Slot returns the codec of slot i.
	Slot func(i int) Codec[V]
}

func (g Group[V]) presence(i int) string {
	return fmt.Sprintf(g.Presence, i)
}

// Columns lists the columns of every slot.
func (g Group[V]) Columns() []string {
	var cols []string
	for i := 1; i <= g.Slots; i++ {
		cols = append(cols, g.Slot(i).Columns()...)
	}
	return cols
}

// Decode returns the leading used slots. No used slot decodes to nil.
func (g Group[V]) Decode(row Row) ([]V, error) {
	var out []V
	for i := 1; i <= g.Slots; i++ {
		p, err := row.Int(g.presence(i))
		if err != nil {
			return nil, err
		}
		if p == 0 {
			break
		}
		v, err := g.Slot(i).Decode(row)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Encode writes vs into the leading slots and zero-fills the rest.
// More values than slots, or a value whose presence column would be zero,
// cannot be stored and fail.
func (g Group[V]) Encode(vs []V) (Row, error) {
	if len(vs) > g.Slots {
		return nil, &Error{Value: len(vs), Reason: fmt.Sprintf("at most %d entries can be stored", g.Slots)}
	}
	row := Row{}
	for i := 1; i <= g.Slots; i++ {
		slot := g.Slot(i)
		if i > len(vs) {
			for _, col := range slot.Columns() {
				row[col] = 0
			}
			continue
		}
		encoded, err := slot.Encode(vs[i-1])
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		if utils.ToInt(encoded[g.presence(i)]) == 0 {
			return nil, &Error{Value: vs[i-1], Reason: fmt.Sprintf("entry %d would be stored as an empty slot", i)}
		}
		if err := row.Merge(encoded); err != nil {
			return nil, err
		}
	}
	return row, nil
}
