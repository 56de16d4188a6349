// Package utils converts raw SQL driver values. Drivers disagree on the Go
// type of a column value (int64, []byte, float64, string); the helpers here
// coerce them so codecs can read any driver's rows.
package utils
