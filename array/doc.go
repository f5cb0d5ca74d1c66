// Package array implements the numeric array type backing the Naldom
// native runtime.
//
// An [Array] owns a fixed-length buffer of float64 values. It is created
// with pseudo-random contents, sorted in place, and rendered as a
// two-decimal bracketed list:
//
//	a, err := array.New(5, array.WithSeed(42))
//	if err != nil {
//		log.Fatal(err)
//	}
//	a.Sort(array.Ascending)
//	fmt.Println(a) // e.g. [3.10, 12.87, 50.00, 77.40, 99.99]
//
// A nil *Array is a valid "absent" argument: Sort and Format are no-ops
// on it, mirroring the defensive null handling of the original native
// runtime. All operations are single-threaded; an Array is exclusively
// owned by its caller.
package array
