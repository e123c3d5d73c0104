package morph

import (
	"mesh-morpher/internal/mathutil"
	"mesh-morpher/internal/mesh"
)

// Options configures a Session at construction.
type Options struct {
	// NormalizeWeights renormalizes the weight vector on every Apply.
	NormalizeWeights bool
	// RecalcNormals recomputes per-vertex normals after every blend.
	RecalcNormals bool
	// Workers is passed through to the blend engine (0/1 = sequential).
	Workers int
}

// Session orchestrates one morph: it owns the weight vector and the
// working buffer, holds a read-only view of the species set, and funnels
// every weight mutation through Apply.
//
// Single-threaded by contract: callers mixing UI and tracking input must
// serialize access themselves; the session holds no locks.
type Session struct {
	set    *mesh.Set
	topo   mesh.Topology
	opts   Options
	engine Engine

	weights  Weights
	buffer   []mathutil.Vec3 // working buffer, freshly allocated — never aliases species data
	normals  []mathutil.Vec3
	bounds   mathutil.Box3
	refCount int
	inited   bool
}

// NewSession creates an uninitialized session over set. Initialization is
// lazy: the first mutating call (or an explicit Initialize) establishes
// the reference count and allocates the working buffer.
func NewSession(set *mesh.Set, topo mesh.Topology, opts Options) *Session {
	return &Session{
		set:    set,
		topo:   topo,
		opts:   opts,
		engine: Engine{Workers: opts.Workers},
		bounds: mathutil.EmptyBox3(),
	}
}

// Initialize establishes the reference vertex count from the species set,
// allocates the working buffer, syncs the weight vector to the species
// count, and performs one blend pass. Safe to call more than once; later
// calls re-derive the topology (useful after appending species).
func (s *Session) Initialize() []Diagnostic {
	s.refCount = s.set.ReferenceVertexCount()
	s.buffer = make([]mathutil.Vec3, s.refCount)
	if s.opts.RecalcNormals {
		s.normals = make([]mathutil.Vec3, s.refCount)
	}
	s.weights = s.weights.SyncLength(s.set.Len())
	s.inited = true
	return s.Apply()
}

func (s *Session) ensureInit() []Diagnostic {
	if s.inited {
		return nil
	}
	return s.Initialize()
}

// SetWeight assigns one species weight. When applyNow is true the morph is
// recomputed immediately; otherwise the change is staged until the next
// Apply. Diagnostics from both the mutation and any triggered blend are
// returned together.
func (s *Session) SetWeight(i int, v float64, applyNow bool) []Diagnostic {
	diags := s.ensureInit()
	if d := s.weights.Set(i, v); d != nil {
		diags = append(diags, *d)
	}
	if applyNow {
		diags = append(diags, s.Apply()...)
	}
	return diags
}

// SetWeights replaces the whole weight vector, with the same applyNow
// semantics as SetWeight. A length mismatch leaves the prior vector
// untouched.
func (s *Session) SetWeights(values []float64, applyNow bool) []Diagnostic {
	diags := s.ensureInit()
	if d := s.weights.SetAll(values); d != nil {
		diags = append(diags, *d)
	}
	if applyNow {
		diags = append(diags, s.Apply()...)
	}
	return diags
}

// Apply is the single recomputation path: sync the weight vector to the
// species count, optionally normalize, blend into the working buffer, and
// refresh derived geometry. Re-entrant — repeated calls with unchanged
// inputs produce bit-identical buffers.
func (s *Session) Apply() []Diagnostic {
	if !s.inited {
		return s.Initialize()
	}
	s.weights = s.weights.SyncLength(s.set.Len())
	if s.opts.NormalizeWeights {
		s.weights.Normalize()
	}
	diags := s.engine.Blend(s.buffer, s.weights, s.set)
	if s.opts.RecalcNormals {
		RecalcNormals(s.normals, s.buffer, s.topo)
	}
	s.bounds = RecalcBounds(s.buffer)
	return diags
}

// Buffer returns the working buffer. The slice is owned by the session and
// overwritten by every Apply; renderers wanting a stable snapshot must copy.
func (s *Session) Buffer() []mathutil.Vec3 {
	return s.buffer
}

// Normals returns the derived per-vertex normals, nil unless
// Options.RecalcNormals is set.
func (s *Session) Normals() []mathutil.Vec3 {
	return s.normals
}

// Bounds returns the bounding box of the last blend.
func (s *Session) Bounds() mathutil.Box3 {
	return s.bounds
}

// Weights returns a copy of the current weight vector.
func (s *Session) Weights() Weights {
	return s.weights.Clone()
}

// ReferenceCount returns the topology's canonical vertex count, 0 before
// initialization.
func (s *Session) ReferenceCount() int {
	return s.refCount
}
