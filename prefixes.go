package sizef

import (
	"errors"
	"fmt"
)

// Prefixes describes an ordered unit-prefix scale: a list of labels and
// the multiplicative base between adjacent labels.
//
// Index 0 is the smallest (unscaled) representation; each subsequent
// label represents one more multiplication by Base. Implementations
// must return a base of at least 2 and at least one label.
type Prefixes interface {
	// Base returns the multiplicative factor between adjacent prefixes,
	// e.g. 1000 for the metric system.
	Base() uint64
	// Labels returns the prefix labels ordered from smallest to largest
	// scale.
	Labels() []string
}

// Scale is a Prefixes backed by a fixed label list. The zero Scale is
// not usable; build custom scales with NewScale or MustScale.
type Scale struct {
	base   uint64
	labels []string
}

// Binary scales by powers of 1024, the way operating systems display
// file sizes ("42.0Mi").
var Binary = Scale{1024, []string{"", "Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi", "Yi"}}

// SI scales by powers of 1000 using metric prefixes ("42.0M").
var SI = Scale{1000, []string{"", "k", "M", "G", "T", "P", "E", "Z", "Y"}}

// NewScale builds a custom prefix scale from a base and its labels,
// ordered from smallest to largest. It rejects scales no valid prefix
// selection exists for: an empty label list or a base below 2.
func NewScale(base uint64, labels ...string) (Scale, error) {
	if base < 2 {
		return Scale{}, fmt.Errorf("scale base must be at least 2, got %d", base)
	}
	if len(labels) == 0 {
		return Scale{}, errors.New("a scale needs at least one label")
	}
	return Scale{base: base, labels: labels}, nil
}

// MustScale is like NewScale but panics on an invalid scale. Intended
// for package-level scale definitions.
func MustScale(base uint64, labels ...string) Scale {
	s, err := NewScale(base, labels...)
	if err != nil {
		panic("sizef: " + err.Error())
	}
	return s
}

// Base returns the scale's multiplicative base.
func (s Scale) Base() uint64 { return s.base }

// Labels returns the scale's prefix labels, smallest first.
func (s Scale) Labels() []string { return s.labels }
