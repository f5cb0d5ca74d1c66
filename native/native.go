package native

import (
	"fmt"
	"io"
	"os"

	"github.com/naldom/naldom-runtime/array"
)

// Order codes as emitted by the compiler's lowering pass.
const (
	OrderCodeAscending  int64 = 0
	OrderCodeDescending int64 = 1
)

type flusher interface {
	Flush() error
}

// Runtime is the native support runtime for one compiled program. All
// console output goes to its writer; operations are synchronous and
// single-threaded.
type Runtime struct {
	out  io.Writer
	opts []array.Option
}

// New creates a Runtime writing to w. The given array options are
// applied to every CreateRandomArray call, so tests can inject a
// deterministic seed once.
func New(w io.Writer, opts ...array.Option) *Runtime {
	if w == nil {
		w = os.Stdout
	}
	return &Runtime{out: w, opts: opts}
}

// CreateRandomArray announces and creates an array of size random
// values in [0, 100). A negative size is a caller contract violation
// and fails with array.ErrNegativeSize; no partial array is returned.
func (r *Runtime) CreateRandomArray(size int64) (*array.Array, error) {
	fmt.Fprintf(r.out, "Runtime: Creating an array of %d random numbers...\n", size)
	if size < 0 {
		return nil, array.ErrNegativeSize
	}
	return array.New(int(size), r.opts...)
}

// SortArray sorts a in place per the compiler's order code (1 for
// descending, anything else ascending). An absent array is a silent
// no-op: no notice is emitted.
func (r *Runtime) SortArray(a *array.Array, order int64) {
	if a == nil || a.Values == nil {
		return
	}
	fmt.Fprintln(r.out, "Runtime: Sorting the array...")
	a.Sort(array.OrderFromCode(order))
}

// PrintArray renders a inside the framed output block and flushes the
// writer if it is buffered, so the block survives an abrupt exit of the
// surrounding program. An absent array is a silent no-op.
func (r *Runtime) PrintArray(a *array.Array) {
	if a == nil || a.Values == nil {
		return
	}

	fmt.Fprintf(r.out, "\n--- Naldom Native Output ---\n%s\n--------------------------\n\n", a)

	if f, ok := r.out.(flusher); ok {
		_ = f.Flush()
	}
}

var defaultRuntime = New(os.Stdout)

// CreateRandomArray calls [Runtime.CreateRandomArray] on the default
// stdout runtime.
func CreateRandomArray(size int64) (*array.Array, error) {
	return defaultRuntime.CreateRandomArray(size)
}

// SortArray calls [Runtime.SortArray] on the default stdout runtime.
func SortArray(a *array.Array, order int64) {
	defaultRuntime.SortArray(a, order)
}

// PrintArray calls [Runtime.PrintArray] on the default stdout runtime.
func PrintArray(a *array.Array) {
	defaultRuntime.PrintArray(a)
}
