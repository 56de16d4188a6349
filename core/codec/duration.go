package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	milliPerSecond = 1000
	milliPerMinute = 60 * milliPerSecond
	milliPerHour   = 60 * milliPerMinute
	milliPerDay    = 24 * milliPerHour
)

// Unit is the resolution a duration column is stored in.
type Unit int

const (
	Seconds Unit = iota
	Milliseconds
)

// Duration is a span of time split into calendar-like components.
type Duration struct {
	Days    int `yaml:"days"`
	Hours   int `yaml:"hours"`
	Minutes int `yaml:"minutes"`
	Seconds int `yaml:"seconds"`
	Milli   int `yaml:"milli"`
}

// DurationFromMilliseconds splits ms into components with floor arithmetic.
func DurationFromMilliseconds(ms int) Duration {
	var d Duration
	d.Days = floorDiv(ms, milliPerDay)
	ms = floorMod(ms, milliPerDay)
	d.Hours = ms / milliPerHour
	ms %= milliPerHour
	d.Minutes = ms / milliPerMinute
	ms %= milliPerMinute
	d.Seconds = ms / milliPerSecond
	d.Milli = ms % milliPerSecond
	return d
}

// DurationFromSeconds splits s seconds into components.
func DurationFromSeconds(s int) Duration {
	return DurationFromMilliseconds(s * milliPerSecond)
}

// TotalMilliseconds returns the span in milliseconds.
func (d Duration) TotalMilliseconds() int {
	return d.Days*milliPerDay + d.Hours*milliPerHour + d.Minutes*milliPerMinute + d.Seconds*milliPerSecond + d.Milli
}

// TotalSeconds returns the span in whole seconds, dropping milliseconds.
func (d Duration) TotalSeconds() int {
	return floorDiv(d.TotalMilliseconds(), milliPerSecond)
}

// Normalize carries overflowing components into the larger units.
func (d Duration) Normalize() Duration {
	return DurationFromMilliseconds(d.TotalMilliseconds())
}

func (d Duration) String() string {
	return fmt.Sprintf("%dd%02dh%02dm%02d.%03ds", d.Days, d.Hours, d.Minutes, d.Seconds, d.Milli)
}

// UnmarshalYAML accepts a number of seconds or a component mapping.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s int
		if err := node.Decode(&s); err != nil {
			return &Error{Value: node.Value, Reason: "duration must be a number of seconds or a days/hours/minutes/seconds/milli mapping"}
		}
		*d = DurationFromSeconds(s)
		return nil
	}
	type plain Duration
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*d = Duration(p).Normalize()
	return nil
}

// DurationColumn stores a Duration in col at the given resolution.
// Encoding a negative span, or a sub-second span into a Seconds column, fails.
func DurationColumn(col string, unit Unit) Codec[Duration] {
	return New([]string{col},
		func(row Row) (Duration, error) {
			n, err := row.Int(col)
			if err != nil {
				return Duration{}, err
			}
			if unit == Milliseconds {
				return DurationFromMilliseconds(n), nil
			}
			return DurationFromSeconds(n), nil
		},
		func(d Duration) (Row, error) {
			ms := d.TotalMilliseconds()
			if ms < 0 {
				return nil, &Error{Value: d, Reason: "duration cannot be negative"}
			}
			if unit == Milliseconds {
				return Row{col: ms}, nil
			}
			if ms%milliPerSecond != 0 {
				return nil, &Error{Value: d, Reason: "column " + col + " stores whole seconds"}
			}
			return Row{col: ms / milliPerSecond}, nil
		},
	)
}
