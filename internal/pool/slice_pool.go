// Package pool provides sync.Pool backed buffers for evaluation vectors and
// frame encoding.
package pool

import "sync"

// SlicePool reuses slices of T across calls.
//
// The evaluator allocates one vector per AST node per evaluation; with 500
// samples per call the pool keeps those intermediates off the heap.
type SlicePool[T any] struct {
	pool sync.Pool
}

// NewSlicePool creates an empty SlicePool.
func NewSlicePool[T any]() *SlicePool[T] {
	return &SlicePool[T]{
		pool: sync.Pool{
			New: func() any { return &[]T{} },
		},
	}
}

// Get retrieves a slice with length size from the pool.
//
// The contents of the returned slice are unspecified; callers must overwrite
// every element they read. The returned cleanup function must be called
// exactly once, after which the slice must no longer be used.
//
// Example:
//
//	values, cleanup := p.Get(500)
//	defer cleanup()
func (p *SlicePool[T]) Get(size int) ([]T, func()) {
	ptr, _ := p.pool.Get().(*[]T)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]T, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { p.pool.Put(ptr) }
}

var float64SlicePool = NewSlicePool[float64]()

// GetFloat64Slice retrieves a float64 slice with length size from the shared pool.
func GetFloat64Slice(size int) ([]float64, func()) {
	return float64SlicePool.Get(size)
}
