package codec

// Codec translates a value to and from one or more storage columns.
// Implementations are pure: Decode and Encode touch nothing but their input.
type Codec[V any] interface {
	// Columns lists every column Decode reads and Encode writes.
	Columns() []string
	Decode(row Row) (V, error)
	Encode(v V) (Row, error)
}

type funcCodec[V any] struct {
	columns []string
	decode  func(Row) (V, error)
	encode  func(V) (Row, error)
}

// New builds a Codec from a pair of functions.
func New[V any](columns []string, decode func(Row) (V, error), encode func(V) (Row, error)) Codec[V] {
	return &funcCodec[V]{columns: columns, decode: decode, encode: encode}
}

func (c *funcCodec[V]) Columns() []string         { return c.columns }
func (c *funcCodec[V]) Decode(row Row) (V, error) { return c.decode(row) }
func (c *funcCodec[V]) Encode(v V) (Row, error)   { return c.encode(v) }

// IntColumn maps an int to col unchanged.
func IntColumn(col string) Codec[int] {
	return New([]string{col},
		func(row Row) (int, error) { return row.Int(col) },
		func(v int) (Row, error) { return Row{col: v}, nil },
	)
}

// FloatColumn maps a single precision FLOAT column. Values are compared at
// float32 precision so that stored and desired values round the same way.
func FloatColumn(col string) Codec[float32] {
	return New([]string{col},
		func(row Row) (float32, error) {
			f, err := row.Float(col)
			return float32(f), err
		},
		func(v float32) (Row, error) { return Row{col: v}, nil },
	)
}

// StringColumn maps a string to col unchanged.
func StringColumn(col string) Codec[string] {
	return New([]string{col},
		func(row Row) (string, error) { return row.String(col) },
		func(v string) (Row, error) { return Row{col: v}, nil },
	)
}

// EnumColumn stores a symbolic value as its integer. Integers outside the
// domain decode as raw values instead of failing.
func EnumColumn[T Symbolic[T]](col string) Codec[T] {
	return New([]string{col},
		func(row Row) (T, error) {
			i, err := row.Int(col)
			return T(i), err
		},
		func(v T) (Row, error) { return Row{col: int(v)}, nil },
	)
}

// FlagColumn stores a flag set as a bit mask. The mask NoFlags decodes to the
// empty set; the empty set encodes to 0.
func FlagColumn[T Symbolic[T]](col string) Codec[Flags[T]] {
	return New([]string{col},
		func(row Row) (Flags[T], error) {
			mask, err := row.Int(col)
			if err != nil {
				return nil, err
			}
			return FlagsOf[T](mask), nil
		},
		func(f Flags[T]) (Row, error) { return Row{col: f.Mask()}, nil },
	)
}

// SignedFlagColumn is FlagColumn for a signed 32-bit column: a set with bit 31
// encodes as a negative value.
func SignedFlagColumn[T Symbolic[T]](col string) Codec[Flags[T]] {
	c := FlagColumn[T](col)
	return New(c.Columns(), c.Decode,
		func(f Flags[T]) (Row, error) { return Row{col: f.SignedMask()}, nil },
	)
}
