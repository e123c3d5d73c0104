// Package morph implements the species mesh morphing engine: a weight
// vector over an ordered species set, a deterministic weighted-sum blend
// into a session-owned working buffer, and derived normals/bounds.
package morph

import "fmt"

// Condition classifies a non-fatal diagnostic raised during a weight
// mutation or a blend pass. None of these abort the operation — the
// affected input is skipped and the rest proceeds.
type Condition int

const (
	// IndexOutOfRange: single-weight set with an index outside the vector.
	IndexOutOfRange Condition = iota
	// LengthMismatch: bulk weight set whose length differs from the species count.
	LengthMismatch
	// MissingSource: a weighted species slot has no geometry assigned.
	MissingSource
	// TopologyMismatch: a species vertex count differs from the reference count.
	TopologyMismatch
)

func (c Condition) String() string {
	switch c {
	case IndexOutOfRange:
		return "index out of range"
	case LengthMismatch:
		return "length mismatch"
	case MissingSource:
		return "missing source"
	case TopologyMismatch:
		return "topology mismatch"
	}
	return fmt.Sprintf("condition(%d)", int(c))
}

// Diagnostic is one advisory condition with its context. Species and Label
// identify the offending species for MissingSource/TopologyMismatch; Want
// and Got carry the expected/actual counts where a count comparison failed.
type Diagnostic struct {
	Cond    Condition
	Species int
	Label   string
	Want    int
	Got     int
}

func (d Diagnostic) String() string {
	switch d.Cond {
	case IndexOutOfRange:
		return fmt.Sprintf("weight index %d out of range [0,%d)", d.Got, d.Want)
	case LengthMismatch:
		return fmt.Sprintf("weight vector length %d != species count %d", d.Got, d.Want)
	case MissingSource:
		return fmt.Sprintf("species %d (%s): no mesh assigned", d.Species, d.Label)
	case TopologyMismatch:
		return fmt.Sprintf("species %d (%s): %d vertices, reference is %d",
			d.Species, d.Label, d.Got, d.Want)
	}
	return d.Cond.String()
}
