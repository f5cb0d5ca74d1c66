// Command arraydemo drives the native runtime end to end: it creates a
// random array, sorts it, and prints it, exactly as a Naldom-compiled
// program would.
//
// Usage:
//
//	arraydemo [flags]
//
// Examples:
//
//	arraydemo -size 10
//	arraydemo -size 20 -order descending
//	arraydemo -size 5 -seed 42 -min -1 -max 1
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/naldom/naldom-runtime/array"
	"github.com/naldom/naldom-runtime/native"
)

func main() {
	var (
		size  = flag.Int64("size", 10, "number of elements to create")
		order = flag.String("order", "ascending", "sort order: ascending or descending")
		seed  = flag.Uint64("seed", 0, "deterministic seed (0 uses a time-based seed)")
		min   = flag.Float64("min", 0, "lower bound of the value range (inclusive)")
		max   = flag.Float64("max", 100, "upper bound of the value range (exclusive)")
	)
	flag.Parse()

	var code int64
	switch strings.ToLower(*order) {
	case "ascending", "asc":
		code = native.OrderCodeAscending
	case "descending", "desc":
		code = native.OrderCodeDescending
	default:
		fmt.Fprintf(os.Stderr, "unknown order %q (want ascending or descending)\n", *order)
		os.Exit(2)
	}

	opts := []array.Option{array.WithRange(*min, *max)}
	if *seed != 0 {
		opts = append(opts, array.WithSeed(*seed))
	}

	rt := native.New(os.Stdout, opts...)

	a, err := rt.CreateRandomArray(*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arraydemo: %v\n", err)
		os.Exit(1)
	}

	rt.SortArray(a, code)
	rt.PrintArray(a)
}
