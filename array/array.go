package array

import (
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Array is an owned, fixed-length sequence of float64 values.
//
// The length is set at construction and never changes; sorting only
// reorders elements. A nil *Array represents an absent array and is a
// legal no-op argument to every method.
type Array struct {
	// Values is the backing buffer. Non-nil (possibly empty) for any
	// Array returned by New.
	Values []float64
}

// New creates an Array of exactly size elements, each drawn uniformly
// from the configured half-open range (default [0, 100)).
//
// A negative size returns ErrNegativeSize. New never returns a
// partially filled array: on any error the result is nil.
func New(size int, opts ...Option) (*Array, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, ErrNegativeSize
	}

	a := &Array{Values: make([]float64, size)}
	if size == 0 {
		return a, nil
	}

	unit := make([]float64, size)
	for i := range unit {
		unit[i] = cfg.rng.Float64()
	}
	vecmath.ScaleBlock(a.Values, unit, cfg.max-cfg.min)
	if cfg.min != 0 {
		for i := range unit {
			unit[i] = cfg.min
		}
		vecmath.AddBlockInPlace(a.Values, unit)
	}

	return a, nil
}

// FromValues wraps an existing slice in an Array without copying.
// The Array takes ownership of the slice.
func FromValues(values []float64) *Array {
	return &Array{Values: values}
}

// Len returns the number of elements, or 0 for an absent array.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Values)
}

// Sort reorders the elements in place by numeric value. The sort is not
// stable; equal values keep no particular relative order. NaN values
// follow the standard library's Float64Slice ordering (treated as
// smaller than every other value).
//
// Sorting an absent array (nil receiver or nil buffer) is a no-op.
func (a *Array) Sort(order Order) {
	if a == nil || a.Values == nil {
		return
	}
	if order == Descending {
		sortDescending(a.Values)
		return
	}
	sortAscending(a.Values)
}

// String renders the array as a comma-separated bracketed list with
// each value formatted to two decimal places. An empty or absent array
// renders as "[]".
func (a *Array) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	if a != nil {
		for i, v := range a.Values {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(v, 'f', 2, 64))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// Format writes the String representation to w.
func (a *Array) Format(w io.Writer) error {
	_, err := io.WriteString(w, a.String())
	return err
}
