// Package mesh holds the source geometry for a morph: an ordered set of
// topologically identical species vertex buffers plus the shared triangle
// connectivity they all reference.
package mesh

import "mesh-morpher/internal/mathutil"

// Species is one labeled source vertex buffer. Immutable once registered —
// the blend engine only ever reads it. A Species with nil or empty Verts is
// a placeholder slot (label known, geometry not yet assigned).
type Species struct {
	Label string
	Verts []mathutil.Vec3
}

// HasMesh reports whether the species has geometry assigned.
func (s Species) HasMesh() bool {
	return len(s.Verts) > 0
}

// Set is an ordered, append-friendly collection of species sharing one
// topology contract. The order is significant: weight indices and blend
// accumulation order both follow insertion order.
type Set struct {
	species  []Species
	template int // explicit reference vertex count, 0 = derive from first entry
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{}
}

// Append registers a species at the end of the set.
func (s *Set) Append(label string, verts []mathutil.Vec3) {
	s.species = append(s.species, Species{Label: label, Verts: verts})
}

// Len returns the number of registered species, including placeholder slots.
func (s *Set) Len() int {
	return len(s.species)
}

// At returns the species at index i. Panics on out-of-range i, matching
// slice semantics; callers index within [0, Len()).
func (s *Set) At(i int) Species {
	return s.species[i]
}

// VertexCountOf returns the vertex count of species i, 0 for a placeholder.
func (s *Set) VertexCountOf(i int) int {
	return len(s.species[i].Verts)
}

// SetReferenceCount pins the topology's canonical vertex count to an
// explicit template instead of deriving it from the first valid entry.
func (s *Set) SetReferenceCount(n int) {
	s.template = n
}

// ReferenceVertexCount returns the canonical vertex count of the topology:
// the explicit template if one was supplied, otherwise the count of the
// first species that has geometry. Zero when the set is empty or all slots
// are placeholders.
func (s *Set) ReferenceVertexCount() int {
	if s.template > 0 {
		return s.template
	}
	for _, sp := range s.species {
		if sp.HasMesh() {
			return len(sp.Verts)
		}
	}
	return 0
}
