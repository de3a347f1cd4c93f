// Package collision tracks coefficient names while a table is loaded and
// detects duplicate names and 64-bit hash collisions.
package collision

import (
	"fmt"

	"github.com/arloliu/rvjitter/errs"
)

// Tracker remembers every name seen during one table load.
type Tracker struct {
	names        map[uint64]string // hash -> first name seen with it
	ordered      []string          // names in load order
	hasCollision bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:   make(map[uint64]string),
		ordered: make([]string, 0),
	}
}

// Track records name under hash.
//
// Returns ErrEmptyCoefficientName for an empty name and ErrDuplicateCoefficient
// when the same name is tracked twice. Two different names sharing a hash is not
// an error; HasCollision reports it so the caller can fall back to name keys.
func (t *Tracker) Track(name string, hash uint64) error {
	if name == "" {
		return errs.ErrEmptyCoefficientName
	}

	if existing, exists := t.names[hash]; exists {
		if existing == name {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateCoefficient, name)
		}
		t.hasCollision = true
		for _, n := range t.ordered {
			if n == name {
				return fmt.Errorf("%w: %q", errs.ErrDuplicateCoefficient, name)
			}
		}
	} else {
		t.names[hash] = name
	}

	t.ordered = append(t.ordered, name)

	return nil
}

// HasCollision returns true if two distinct names hashed to the same ID.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the tracked names in the order Track was called.
func (t *Tracker) Names() []string {
	return t.ordered
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.ordered)
}

// Reset clears all tracked names and collision state.
func (t *Tracker) Reset() {
	clear(t.names)
	t.ordered = t.ordered[:0]
	t.hasCollision = false
}
