package codec

import (
	"errors"
	"fmt"
	"strings"
)

// Error describes a value a codec could not decode, parse or encode.
type Error struct {
	// Field is the entity field the value belongs to, if known.
	Field string
	// Value is the offending input.
	Value any
	// Reason explains what is wrong with Value.
	Reason string
	// Expected lists the symbolic values accepted, for enum and flag fields.
	Expected []string
	// Suggestion is the closest entry of Expected, if any is close enough.
	Suggestion string
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Field != "" {
		fmt.Fprintf(&b, "field %q: ", e.Field)
	}
	b.WriteString(e.Reason)
	if e.Value != nil {
		fmt.Fprintf(&b, " (got %v)", e.Value)
	}
	if len(e.Expected) > 0 {
		fmt.Fprintf(&b, "; valid values are %s, or an integer", strings.Join(e.Expected, ", "))
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "; did you mean %q?", e.Suggestion)
	}
	return b.String()
}

// withField attributes err to field. Codec errors that already name a field
// are returned untouched.
func withField(field string, err error) error {
	if err == nil {
		return nil
	}
	var ce *Error
	if errors.As(err, &ce) {
		if ce.Field != "" {
			return err
		}
		named := *ce
		named.Field = field
		return &named
	}
	return &Error{Field: field, Reason: err.Error()}
}
