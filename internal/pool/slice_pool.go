// Package pool recycles the float64 scratch arrays used for Monte Carlo draws.
package pool

import "sync"

var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves a float64 slice of exactly size elements from the pool.
//
// Contents are not zeroed; callers overwrite every element. The returned cleanup
// function must be called (typically with defer) once the slice is no longer referenced.
//
// Example:
//
//	draws, release := pool.GetFloat64Slice(100000)
//	defer release()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}

// Float64Slices hands out several pooled slices of the same length and
// releases them together.
type Float64Slices struct {
	size     int
	releases []func()
}

// NewFloat64Slices creates a group whose slices all have length size.
func NewFloat64Slices(size int) *Float64Slices {
	return &Float64Slices{size: size}
}

// Get returns a new pooled slice owned by the group.
func (g *Float64Slices) Get() []float64 {
	s, release := GetFloat64Slice(g.size)
	g.releases = append(g.releases, release)

	return s
}

// Len returns the number of slices handed out and not yet released.
func (g *Float64Slices) Len() int {
	return len(g.releases)
}

// Release returns every slice to the pool. The group may be reused afterwards.
func (g *Float64Slices) Release() {
	for _, release := range g.releases {
		release()
	}
	g.releases = g.releases[:0]
}
