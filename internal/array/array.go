// Package array implements the dialect's dynamic array: rectangular,
// multi-dimensional storage addressed by a vector of indices, where each
// dimension may declare an arbitrary lower bound rather than always
// starting at 0.
package array

import (
	"fmt"
	"strings"

	"github.com/dws-sandbox/basicscript/internal/values"
)

// Dynamic is a multi-dimensional array of Variant elements. It satisfies
// values.Array so a Dynamic can be stored directly inside a
// values.ArrayValue.
type Dynamic struct {
	lower    []int
	sizes    []int
	elements []values.Value
}

// New allocates a Dynamic with the given dimension sizes; every dimension's
// lower bound defaults to 0, matching `Dim a(n)`'s declared-size form.
func New(sizes ...int) *Dynamic {
	lower := make([]int, len(sizes))
	return NewBounded(lower, sizes)
}

// NewBounded allocates a Dynamic from explicit per-dimension lower bounds
// and sizes (element counts, not upper-bound indices). len(lower) must
// equal len(sizes).
func NewBounded(lower, sizes []int) *Dynamic {
	total := 1
	for _, n := range sizes {
		if n < 0 {
			n = 0
		}
		total *= n
	}
	if len(sizes) == 0 {
		total = 0
	}
	d := &Dynamic{
		lower:    append([]int(nil), lower...),
		sizes:    append([]int(nil), sizes...),
		elements: make([]values.Value, total),
	}
	for i := range d.elements {
		d.elements[i] = values.Empty
	}
	return d
}

// Type satisfies values.Value.
func (d *Dynamic) Type() string { return "Array" }

// String satisfies values.Value, rendering the array as a parenthesized
// element list (as the dialect's default string coercion of an array
// produces when concatenated).
func (d *Dynamic) String() string {
	parts := make([]string, len(d.elements))
	for i, e := range d.elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Dims returns the element count of each dimension, in declaration order.
func (d *Dynamic) Dims() []int { return append([]int(nil), d.sizes...) }

// LowerBound returns the declared lower bound of the given 0-based
// dimension index, as LBound(arr, dim) reports (dim there is 1-based; the
// evaluator subtracts 1 before calling this).
func (d *Dynamic) LowerBound(dim int) int {
	if dim < 0 || dim >= len(d.lower) {
		return 0
	}
	return d.lower[dim]
}

// UpperBound returns the declared upper bound of the given 0-based
// dimension index, as UBound(arr, dim) reports.
func (d *Dynamic) UpperBound(dim int) int {
	if dim < 0 || dim >= len(d.sizes) {
		return -1
	}
	return d.lower[dim] + d.sizes[dim] - 1
}

// NumDims returns the number of declared dimensions.
func (d *Dynamic) NumDims() int { return len(d.sizes) }

// offset maps a vector of indices (in the array's own lower-bound-relative
// coordinates) to a flat, row-major storage offset.
func (d *Dynamic) offset(indices []int) (int, error) {
	if len(indices) != len(d.sizes) {
		return 0, fmt.Errorf("array: expected %d indices, got %d", len(d.sizes), len(indices))
	}
	offset := 0
	for dim, idx := range indices {
		rel := idx - d.lower[dim]
		if rel < 0 || rel >= d.sizes[dim] {
			return 0, fmt.Errorf("array: index %d out of range for dimension %d (bounds %d to %d)",
				idx, dim+1, d.lower[dim], d.lower[dim]+d.sizes[dim]-1)
		}
		offset = offset*d.sizes[dim] + rel
	}
	return offset, nil
}

// Get reads the element at indices, raising *SubscriptError when a
// coordinate falls outside its dimension's bounds.
func (d *Dynamic) Get(indices ...int) (values.Value, error) {
	off, err := d.offset(indices)
	if err != nil {
		return nil, &SubscriptError{Err: err}
	}
	return d.elements[off], nil
}

// Set writes the element at indices.
func (d *Dynamic) Set(v values.Value, indices ...int) error {
	off, err := d.offset(indices)
	if err != nil {
		return &SubscriptError{Err: err}
	}
	d.elements[off] = v
	return nil
}

// SubscriptError wraps an out-of-bounds index, letting the evaluator map it
// to the dialect's "Subscript out of range" runtime error (code 9).
type SubscriptError struct {
	Err error
}

func (e *SubscriptError) Error() string { return e.Err.Error() }
func (e *SubscriptError) Unwrap() error { return e.Err }

// ReDim replaces the array's storage with a freshly-sized, freshly-zeroed
// array of the given lower bounds and sizes, discarding every prior
// element (Preserve is handled separately by ReDimPreserve).
func (d *Dynamic) ReDim(lower, sizes []int) {
	*d = *NewBounded(lower, sizes)
}

// ReDimPreserve replaces storage with the given lower bounds and sizes,
// copying over every element whose indices are valid in both the old and
// new shape. Elements outside the overlap are left Empty.
func (d *Dynamic) ReDimPreserve(lower, sizes []int) error {
	if len(sizes) != len(d.sizes) {
		return fmt.Errorf("array: ReDim Preserve cannot change the number of dimensions (%d to %d)", len(d.sizes), len(sizes))
	}
	next := NewBounded(lower, sizes)
	overlap := make([]int, len(sizes))
	for dim := range sizes {
		oldUpper := d.lower[dim] + d.sizes[dim] - 1
		newUpper := lower[dim] + sizes[dim] - 1
		upper := oldUpper
		if newUpper < upper {
			upper = newUpper
		}
		lowBound := d.lower[dim]
		if lower[dim] > lowBound {
			lowBound = lower[dim]
		}
		overlap[dim] = upper - lowBound + 1
		if overlap[dim] < 0 {
			overlap[dim] = 0
		}
	}
	copyRange(d, next, overlap)
	*d = *next
	return nil
}

// copyRange walks every index combination within overlap (counts per
// dimension, relative to each array's own lower bound) and copies src's
// element into dst at the corresponding absolute index.
func copyRange(src, dst *Dynamic, overlap []int) {
	if len(overlap) == 0 {
		return
	}
	for _, n := range overlap {
		if n <= 0 {
			return
		}
	}
	indices := make([]int, len(overlap))
	for {
		srcIdx := make([]int, len(overlap))
		dstIdx := make([]int, len(overlap))
		for dim := range overlap {
			srcIdx[dim] = src.lower[dim] + indices[dim]
			dstIdx[dim] = dst.lower[dim] + indices[dim]
		}
		v, err := src.Get(srcIdx...)
		if err == nil {
			_ = dst.Set(v, dstIdx...)
		}

		dim := len(overlap) - 1
		for dim >= 0 {
			indices[dim]++
			if indices[dim] < overlap[dim] {
				break
			}
			indices[dim] = 0
			dim--
		}
		if dim < 0 {
			break
		}
	}
}
