// Package codec translates between typed entity fields and the flat,
// denormalized rows of the world database.
//
// # Codecs
//
// A Codec[V] is a pure decode/encode pair over a Row (column name to raw
// driver value). The package ships the column shapes found in world tables:
//
//   - IntColumn, StringColumn: direct one-column mapping.
//   - EnumColumn: a Symbolic integer. Unknown integers decode as raw values.
//   - FlagColumn: a bit mask expanded into Flags. -1 (NoFlags) means empty.
//   - MoneyColumn: a copper total split into gold/silver/copper.
//   - DurationColumn: seconds or milliseconds split into components.
//   - Group: a fixed family of numbered slots collapsed into a list. Decoding
//     stops at the first empty slot; encoding zero-fills. See Group for the
//     resulting loss of gapped rows.
//
// Composite codecs that cannot represent a value (a negative price, more
// entries than slots) fail with *Error instead of truncating.
//
// # Tables
//
// A Table[E] is the ordered list of Fields of an entity type E, each built
// with Bind from a codec and an accessor:
//
//	var items = codec.NewTable(
//	    codec.Bind("name", codec.StringColumn("name"), func(i *Item) *string { return &i.Name }),
//	    codec.Bind("quality", codec.EnumColumn[Quality]("Quality"), func(i *Item) *Quality { return &i.Quality }),
//	)
//
// Table.Diff compares decoded values, so a differing raw encoding of the same
// symbolic value never reports a change.
//
// # Symbols
//
// Enumerations and flags are integer types implementing Symbolic, backed by
// a Domain. Parsing accepts a name or an integer; an unknown name yields an
// *Error carrying the accepted names and, when one is close enough, a
// "did you mean" suggestion.
//
// # Identifiers
//
// JoinIdentifier and SplitIdentifier build and split "display#tag" human
// identifiers, splitting on the last separator. An empty tag leaves the display
// value as is, and tags may not contain the separator.
package codec
