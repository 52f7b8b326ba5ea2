package apierror

import (
	"fmt"
	"strings"
)

// Taxonomy is an immutable, named registry of descriptors. Construction
// validates the whole set up front: empty or duplicate codes and out-of-range
// statuses are reported with ErrDefinitionConflict, so a misdeclared taxonomy
// fails at process startup instead of serving malformed responses.
//
// A service typically declares one taxonomy per bounded area:
//
//	var Errors = apierror.MustNew("users",
//		ErrNotFound,
//		ErrEmailTaken,
//		ErrValidationFailed,
//	)
type Taxonomy struct {
	name  string
	descs []*Descriptor
	index map[string]*Descriptor
}

// New builds a taxonomy from the given descriptors. Declaration order is
// preserved and becomes the order of Descriptors and of generated
// documentation.
func New(name string, descs ...*Descriptor) (*Taxonomy, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: taxonomy name is empty", ErrDefinitionConflict)
	}

	t := &Taxonomy{
		name:  name,
		descs: make([]*Descriptor, 0, len(descs)),
		index: make(map[string]*Descriptor, len(descs)),
	}
	for i, d := range descs {
		if d == nil {
			return nil, fmt.Errorf("%w: %s: descriptor %d is nil", ErrDefinitionConflict, name, i)
		}
		if strings.TrimSpace(d.code) == "" {
			return nil, fmt.Errorf("%w: %s: descriptor %d has an empty code", ErrDefinitionConflict, name, i)
		}
		if d.status < 100 || d.status > 599 {
			return nil, fmt.Errorf("%w: %s: %q has status %d outside 100..599", ErrDefinitionConflict, name, d.code, d.status)
		}
		if prev, ok := t.index[d.code]; ok && prev != d {
			return nil, fmt.Errorf("%w: %s: code %q declared twice", ErrDefinitionConflict, name, d.code)
		}
		if _, ok := t.index[d.code]; ok {
			continue // same descriptor listed twice is harmless
		}
		t.index[d.code] = d
		t.descs = append(t.descs, d)
	}
	return t, nil
}

// MustNew is like New but panics on invalid definitions. Intended for
// package-level taxonomy variables where a definition conflict is a
// programming error.
func MustNew(name string, descs ...*Descriptor) *Taxonomy {
	t, err := New(name, descs...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the taxonomy name.
func (t *Taxonomy) Name() string { return t.name }

// Descriptors returns the registered descriptors in declaration order.
// The returned slice is a copy.
func (t *Taxonomy) Descriptors() []*Descriptor {
	out := make([]*Descriptor, len(t.descs))
	copy(out, t.descs)
	return out
}

// Lookup returns the descriptor registered under code.
func (t *Taxonomy) Lookup(code string) (*Descriptor, bool) {
	d, ok := t.index[code]
	return d, ok
}
