package codec

import (
	"fmt"

	"hogger/core/utils"
)

// Row is a flat storage row keyed by column name.
type Row map[string]any

// Int reads column col as an integer.
func (r Row) Int(col string) (int, error) {
	v, ok := r[col]
	if !ok {
		return 0, fmt.Errorf("column %q missing from row", col)
	}
	i, err := utils.ParseInt(v)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", col, err)
	}
	return i, nil
}

// Float reads column col as a float. NULL reads as 0.
func (r Row) Float(col string) (float64, error) {
	v, ok := r[col]
	if !ok {
		return 0, fmt.Errorf("column %q missing from row", col)
	}
	return utils.ToFloat(v), nil
}

// String reads column col as a string. NULL reads as "".
func (r Row) String(col string) (string, error) {
	v, ok := r[col]
	if !ok {
		return "", fmt.Errorf("column %q missing from row", col)
	}
	return utils.ToString(v), nil
}

// Merge copies the columns of other into r. A column present in both is an error.
func (r Row) Merge(other Row) error {
	for col, v := range other {
		if _, ok := r[col]; ok {
			return fmt.Errorf("column %q written twice", col)
		}
		r[col] = v
	}
	return nil
}
