package array

import (
	"fmt"
	"sort"
)

// Order selects the direction of a sort.
type Order int

const (
	// Ascending sorts into non-decreasing order.
	Ascending Order = iota
	// Descending sorts into non-increasing order.
	Descending

	orderCount
)

var orderNames = [orderCount]string{
	"Ascending",
	"Descending",
}

func (o Order) String() string {
	if o >= 0 && o < orderCount {
		return orderNames[o]
	}
	return fmt.Sprintf("Order(%d)", o)
}

// Valid reports whether o is a known order.
func (o Order) Valid() bool {
	return o >= 0 && o < orderCount
}

// OrderFromCode translates the compiler's numeric order code: 1 means
// descending, every other value means ascending. The permissive
// fallback matches the lowering convention of the Naldom compiler,
// which passes 0 for ascending and 1 for descending.
func OrderFromCode(code int64) Order {
	if code == 1 {
		return Descending
	}
	return Ascending
}

func sortAscending(values []float64) {
	sort.Float64s(values)
}

func sortDescending(values []float64) {
	sort.Sort(sort.Reverse(sort.Float64Slice(values)))
}
