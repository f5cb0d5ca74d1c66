package array

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/naldom/naldom-runtime/internal/testutil"
)

func TestNewLength(t *testing.T) {
	sizes := []int{0, 1, 2, 5, 100, 4096}
	for _, size := range sizes {
		a, err := New(size, WithSeed(1))
		if err != nil {
			t.Fatalf("New(%d): unexpected error: %v", size, err)
		}
		if a.Len() != size {
			t.Errorf("New(%d): got length %d", size, a.Len())
		}
		if a.Values == nil {
			t.Errorf("New(%d): Values must be non-nil", size)
		}
	}
}

func TestNewNegativeSize(t *testing.T) {
	for _, size := range []int{-1, -100} {
		a, err := New(size)
		if !errors.Is(err, ErrNegativeSize) {
			t.Errorf("New(%d): got error %v, want ErrNegativeSize", size, err)
		}
		if a != nil {
			t.Errorf("New(%d): got non-nil array on error", size)
		}
	}
}

func TestNewDefaultRange(t *testing.T) {
	a, err := New(1000, WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range a.Values {
		if v < 0 || v >= 100 {
			t.Fatalf("value %d out of [0, 100): %f", i, v)
		}
	}
}

func TestNewCustomRange(t *testing.T) {
	a, err := New(1000, WithSeed(7), WithRange(-1, 1))
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range a.Values {
		if v < -1 || v >= 1 {
			t.Fatalf("value %d out of [-1, 1): %f", i, v)
		}
	}
}

func TestNewInvalidRange(t *testing.T) {
	cases := []struct {
		name     string
		min, max float64
	}{
		{"equal bounds", 5, 5},
		{"inverted bounds", 10, 0},
		{"nan min", math.NaN(), 1},
		{"nan max", 0, math.NaN()},
		{"inf max", 0, math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(4, WithRange(tc.min, tc.max))
			if !errors.Is(err, ErrInvalidRange) {
				t.Errorf("got error %v, want ErrInvalidRange", err)
			}
		})
	}
}

func TestNewDeterministic(t *testing.T) {
	a, err := New(256, WithSeed(42))
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(256, WithSeed(42))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Values {
		if a.Values[i] != b.Values[i] {
			t.Fatalf("same seed diverged at %d: %f vs %f", i, a.Values[i], b.Values[i])
		}
	}

	c, err := New(256, WithSeed(43))
	if err != nil {
		t.Fatal(err)
	}
	same := true
	for i := range a.Values {
		if a.Values[i] != c.Values[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical arrays")
	}
}

func TestWithRNGNil(t *testing.T) {
	if _, err := New(4, WithRNG(nil)); err == nil {
		t.Error("WithRNG(nil) must fail")
	}
}

func TestSortAscending(t *testing.T) {
	a := FromValues(testutil.UniformNoise(3, 0, 100, 512))
	a.Sort(Ascending)
	if !testutil.NonDecreasing(a.Values) {
		t.Error("ascending sort left values out of order")
	}
	if a.Len() != 512 {
		t.Errorf("sort changed length to %d", a.Len())
	}
}

func TestSortDescending(t *testing.T) {
	a := FromValues(testutil.UniformNoise(3, 0, 100, 512))
	a.Sort(Descending)
	if !testutil.NonIncreasing(a.Values) {
		t.Error("descending sort left values out of order")
	}
}

func TestSortIdempotent(t *testing.T) {
	for _, order := range []Order{Ascending, Descending} {
		a := FromValues(testutil.UniformNoise(9, 0, 100, 128))
		a.Sort(order)
		want := append([]float64(nil), a.Values...)
		a.Sort(order)
		for i := range want {
			if a.Values[i] != want[i] {
				t.Fatalf("%v: second sort changed element %d", order, i)
			}
		}
	}
}

func TestSortPreservesElements(t *testing.T) {
	src := testutil.UniformNoise(5, 0, 100, 64)
	a := FromValues(append([]float64(nil), src...))
	a.Sort(Ascending)

	sorted := append([]float64(nil), src...)
	sortAscending(sorted)
	for i := range sorted {
		if a.Values[i] != sorted[i] {
			t.Fatalf("element %d: got %f, want %f", i, a.Values[i], sorted[i])
		}
	}
}

func TestSortAbsent(t *testing.T) {
	var a *Array
	a.Sort(Ascending) // must not panic

	b := &Array{}
	b.Sort(Descending)
	if b.Values != nil {
		t.Error("sort of an absent buffer must not allocate one")
	}
}

func TestSortEmpty(t *testing.T) {
	a, err := New(0)
	if err != nil {
		t.Fatal(err)
	}
	a.Sort(Ascending)
	a.Sort(Descending)
	if a.Len() != 0 {
		t.Errorf("got length %d", a.Len())
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		name   string
		values []float64
		want   string
	}{
		{"empty", []float64{}, "[]"},
		{"single", []float64{3.1}, "[3.10]"},
		{"several", []float64{1, 3.1, 50, 77.4, 99.99}, "[1.00, 3.10, 50.00, 77.40, 99.99]"},
		{"negative", []float64{-0.5, 0.5}, "[-0.50, 0.50]"},
		{"rounded", []float64{1.2345, 99.999}, "[1.23, 100.00]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FromValues(tc.values).String()
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestStringAbsent(t *testing.T) {
	var a *Array
	if got := a.String(); got != "[]" {
		t.Errorf("got %q, want %q", got, "[]")
	}
}

func TestFormat(t *testing.T) {
	var sb strings.Builder
	a := FromValues([]float64{2.5, 1})
	if err := a.Format(&sb); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "[2.50, 1.00]" {
		t.Errorf("got %q", sb.String())
	}
}

func TestLenAbsent(t *testing.T) {
	var a *Array
	if a.Len() != 0 {
		t.Errorf("got %d", a.Len())
	}
}
