// Package epoch provides a generation-counter array: a per-index tag compared
// against one global epoch, so that every index can be invalidated in O(1)
// by advancing the epoch.
//
// Tag 0 is reserved as "never current". The epoch starts at 1; when it reaches
// math.MaxUint32, Clear physically resets every tag to 0 and restarts the epoch
// at 1. That overflow path is the only O(n) operation, amortized over
// 2^32−1 clears.
package epoch

import "math"

const (
	// stale is the tag value that is never equal to the current epoch.
	stale uint32 = 0
	// first is the lowest valid epoch.
	first uint32 = 1
)

// Array is an epoch counter array. The zero value is an empty array whose
// epoch is not yet initialized; use New.
type Array struct {
	tags    []uint32
	current uint32
}

// New returns an Array of length n in which every index is outdated.
func New(n int) *Array {
	return &Array{
		tags:    make([]uint32, n),
		current: first,
	}
}

// Len returns the number of indices.
func (a *Array) Len() int { return len(a.tags) }

// Epoch returns the current epoch value.
func (a *Array) Epoch() uint32 { return a.current }

// Clear outdates every index.
func (a *Array) Clear() {
	if a.current == math.MaxUint32 {
		for i := range a.tags {
			a.tags[i] = stale
		}
		a.current = first

		return
	}
	a.current++
}

// IsCurrent reports whether i was updated since the last Clear.
func (a *Array) IsCurrent(i int) bool {
	return a.tags[i] == a.current
}

// Update marks i as current and reports whether it already was.
func (a *Array) Update(i int) bool {
	was := a.tags[i] == a.current
	a.tags[i] = a.current

	return was
}

// GetAndUpdate is Update with a read-only fast path: the tag is written only
// when i was not current.
func (a *Array) GetAndUpdate(i int) bool {
	if a.tags[i] == a.current {
		return true
	}
	a.tags[i] = a.current

	return false
}
