package array

import (
	"testing"

	"github.com/dws-sandbox/basicscript/internal/values"
)

func TestNewZeroFillsWithEmpty(t *testing.T) {
	d := New(3)
	v, err := d.Get(0)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if v != values.Empty {
		t.Errorf("expected Empty element, got %v", v)
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	d := New(5)
	if err := d.Set(values.IntegerValue{Value: 42}, 2); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	v, err := d.Get(2)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if iv, ok := v.(values.IntegerValue); !ok || iv.Value != 42 {
		t.Errorf("Get(2) = %v, want IntegerValue{42}", v)
	}
}

func TestOutOfRangeRaisesSubscriptError(t *testing.T) {
	d := New(3)
	if _, err := d.Get(3); err == nil {
		t.Errorf("expected out-of-range Get to raise")
	}
	var subErr *SubscriptError
	_, err := d.Get(-1)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !asSubscriptError(err, &subErr) {
		t.Errorf("expected *SubscriptError, got %T", err)
	}
}

func asSubscriptError(err error, target **SubscriptError) bool {
	if se, ok := err.(*SubscriptError); ok {
		*target = se
		return true
	}
	return false
}

func TestArbitraryLowerBound(t *testing.T) {
	d := NewBounded([]int{5}, []int{3})
	if d.LowerBound(0) != 5 || d.UpperBound(0) != 7 {
		t.Fatalf("bounds = [%d, %d], want [5, 7]", d.LowerBound(0), d.UpperBound(0))
	}
	if err := d.Set(values.StringValue{Value: "x"}, 6); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	v, err := d.Get(6)
	if err != nil || v.(values.StringValue).Value != "x" {
		t.Errorf("Get(6) = %v, %v", v, err)
	}
	if _, err := d.Get(4); err == nil {
		t.Errorf("expected index below lower bound to raise")
	}
}

func TestTwoDimensionalRowMajorIndexing(t *testing.T) {
	d := New(2, 3)
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			if err := d.Set(values.IntegerValue{Value: int16(r*10 + c)}, r, c); err != nil {
				t.Fatalf("Set(%d,%d) error: %v", r, c, err)
			}
		}
	}
	v, err := d.Get(1, 2)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if v.(values.IntegerValue).Value != 12 {
		t.Errorf("Get(1,2) = %v, want 12", v)
	}
}

func TestReDimDiscardsContents(t *testing.T) {
	d := New(3)
	_ = d.Set(values.IntegerValue{Value: 9}, 0)
	d.ReDim([]int{0}, []int{5})
	v, _ := d.Get(0)
	if v != values.Empty {
		t.Errorf("expected ReDim to reset elements to Empty, got %v", v)
	}
	if d.Dims()[0] != 5 {
		t.Errorf("expected resized dimension of 5, got %d", d.Dims()[0])
	}
}

func TestReDimPreserveKeepsOverlap(t *testing.T) {
	d := New(3)
	for i := 0; i < 3; i++ {
		_ = d.Set(values.IntegerValue{Value: int16(i)}, i)
	}
	if err := d.ReDimPreserve([]int{0}, []int{5}); err != nil {
		t.Fatalf("ReDimPreserve error: %v", err)
	}
	for i := 0; i < 3; i++ {
		v, _ := d.Get(i)
		if v.(values.IntegerValue).Value != int16(i) {
			t.Errorf("Get(%d) after grow = %v, want %d", i, v, i)
		}
	}
	v, _ := d.Get(4)
	if v != values.Empty {
		t.Errorf("expected new slot to be Empty, got %v", v)
	}
}

func TestReDimPreserveShrinkDropsTail(t *testing.T) {
	d := New(5)
	for i := 0; i < 5; i++ {
		_ = d.Set(values.IntegerValue{Value: int16(i)}, i)
	}
	if err := d.ReDimPreserve([]int{0}, []int{2}); err != nil {
		t.Fatalf("ReDimPreserve error: %v", err)
	}
	v, _ := d.Get(1)
	if v.(values.IntegerValue).Value != 1 {
		t.Errorf("Get(1) = %v, want 1", v)
	}
	if d.Dims()[0] != 2 {
		t.Errorf("expected shrunk dimension of 2, got %d", d.Dims()[0])
	}
}

func TestReDimPreserveRejectsDimensionCountChange(t *testing.T) {
	d := New(3)
	if err := d.ReDimPreserve([]int{0, 0}, []int{3, 3}); err == nil {
		t.Errorf("expected ReDim Preserve to reject a changed dimension count")
	}
}

func TestStringRendersParenthesizedElements(t *testing.T) {
	d := New(2)
	_ = d.Set(values.IntegerValue{Value: 1}, 0)
	_ = d.Set(values.IntegerValue{Value: 2}, 1)
	if got, want := d.String(), "(1, 2)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDynamicSatisfiesValuesArrayInterface(t *testing.T) {
	var _ values.Array = (*Dynamic)(nil)
}
