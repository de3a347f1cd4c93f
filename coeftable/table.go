package coeftable

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/arloliu/rvjitter/errs"
	"github.com/arloliu/rvjitter/internal/collision"
	"github.com/arloliu/rvjitter/internal/hash"
)

const (
	// ErrFloor is the smallest fit uncertainty kept as-is.
	ErrFloor = 0.005
	// ErrFloorValue replaces any fit uncertainty below ErrFloor.
	ErrFloorValue = 0.01
)

// NamePrefix is shared by every parameter name in the table.
const NamePrefix = "RV_RMS_All"

// Coefficient is a fitted parameter value with its standard error.
type Coefficient struct {
	Value float64
	Err   float64
}

// Name builds the table key for a branch, model and positional suffix.
//
//	Name("Giant", "LTg", "gamma") // "RV_RMS_All_Giant_LTg_gamma"
func Name(branch, model, suffix string) string {
	return NamePrefix + "_" + branch + "_" + model + "_" + suffix
}

// Entry is one named row of a table.
type Entry struct {
	Name string
	Coefficient
}

// Table is an immutable coefficient lookup indexed by xxHash64 of the name.
// When two names collide on their hash the table keys by name instead.
type Table struct {
	byID   map[uint64]Coefficient
	byName map[string]Coefficient // non-nil only after a hash collision
	names  []string
}

// NewTable builds a table from in-memory values, applying the error floor.
func NewTable(values map[string]Coefficient) (*Table, error) {
	entries := make([]Entry, 0, len(values))
	for _, name := range slices.Sorted(maps.Keys(values)) {
		entries = append(entries, Entry{Name: name, Coefficient: values[name]})
	}

	return newTable(entries)
}

func newTable(entries []Entry) (*Table, error) {
	tracker := collision.NewTracker()
	t := &Table{byID: make(map[uint64]Coefficient, len(entries))}

	for _, e := range entries {
		if !isFinite(e.Value) || !isFinite(e.Err) {
			return nil, fmt.Errorf("%w: %q has non-finite value or std", errs.ErrInvalidTable, e.Name)
		}
		id := hash.ID(e.Name)
		if err := tracker.Track(e.Name, id); err != nil {
			return nil, err
		}
		t.byID[id] = clampErr(e.Coefficient)
	}

	if tracker.HasCollision() {
		t.byName = make(map[string]Coefficient, len(entries))
		for _, e := range entries {
			t.byName[e.Name] = clampErr(e.Coefficient)
		}
	}
	t.names = slices.Clone(tracker.Names())
	slices.Sort(t.names)

	return t, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clampErr(c Coefficient) Coefficient {
	if c.Err < ErrFloor {
		c.Err = ErrFloorValue
	}

	return c
}

// Lookup returns the coefficient stored under name.
// A missing name yields *errs.MissingCoefficientError.
func (t *Table) Lookup(name string) (Coefficient, error) {
	if t.byName != nil {
		if c, ok := t.byName[name]; ok {
			return c, nil
		}

		return Coefficient{}, &errs.MissingCoefficientError{Name: name}
	}

	if c, ok := t.byID[hash.ID(name)]; ok {
		return c, nil
	}

	return Coefficient{}, &errs.MissingCoefficientError{Name: name}
}

// MustLookup is like Lookup but panics on a missing name. Intended for tests
// and static tables known to be complete.
func (t *Table) MustLookup(name string) Coefficient {
	c, err := t.Lookup(name)
	if err != nil {
		panic(err)
	}

	return c
}

// Len returns the number of parameters in the table.
func (t *Table) Len() int {
	return len(t.names)
}

// Names returns the parameter names in sorted order.
func (t *Table) Names() []string {
	return slices.Clone(t.names)
}

// Entries returns every row in name order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.names))
	for _, name := range t.names {
		c, _ := t.Lookup(name)
		out = append(out, Entry{Name: name, Coefficient: c})
	}

	return out
}

// Validate checks that every name in required is present.
// All missing names are reported in one error wrapping errs.ErrMissingCoefficient.
func (t *Table) Validate(required []string) error {
	var missing []string
	for _, name := range required {
		if _, err := t.Lookup(name); err != nil {
			missing = append(missing, name)
		}
	}

	switch len(missing) {
	case 0:
		return nil
	case 1:
		return &errs.MissingCoefficientError{Name: missing[0]}
	default:
		return fmt.Errorf("%w: %d names, first %q", errs.ErrMissingCoefficient, len(missing), missing[0])
	}
}
