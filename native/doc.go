// Package native is the boundary surface that Naldom-compiled programs
// link against.
//
// It mirrors the foreign-function signatures the compiler lowers to
// (int64 size and order codes) and reproduces the original runtime's
// console output byte for byte: progress notices on creation and
// sorting, and a framed print block with two-decimal formatting.
//
// The package-level functions operate on a default runtime writing to
// stdout. A [Runtime] with an injected writer supports capturing the
// output in tests.
package native
