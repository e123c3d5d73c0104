package morph

import (
	"sync"

	"mesh-morpher/internal/mathutil"
	"mesh-morpher/internal/mesh"
)

// parallelThreshold is the vertex count below which chunked goroutines
// cost more than they save.
const parallelThreshold = 4096

// Engine computes the weighted sum of species vertex buffers into a
// caller-supplied working buffer.
//
// The result is deterministic: species accumulate in insertion order, so
// floating-point rounding is reproducible across runs. Workers > 1 splits
// the vertex range across goroutines; each vertex still sees species in
// the same order, so the output is bit-identical to the sequential loop.
type Engine struct {
	Workers int
}

// Blend zeroes dst and accumulates weights[s] * species[s] vertex-wise for
// every species in order. Species with a non-positive weight are skipped
// silently. Species with no geometry or with a vertex count different from
// len(dst) contribute nothing and are reported as advisory diagnostics —
// exactly as if their weight were zero.
//
// An empty set or a zero-length dst yields the zeroed buffer and no
// diagnostics.
func (e Engine) Blend(dst []mathutil.Vec3, w Weights, set *mesh.Set) []Diagnostic {
	for i := range dst {
		dst[i] = mathutil.Vec3{}
	}

	var diags []Diagnostic
	var active []int // species that actually contribute
	refCount := len(dst)

	n := set.Len()
	if n > len(w) {
		n = len(w)
	}
	for s := 0; s < n; s++ {
		if w[s] <= 0 {
			continue
		}
		sp := set.At(s)
		if !sp.HasMesh() {
			diags = append(diags, Diagnostic{Cond: MissingSource, Species: s, Label: sp.Label})
			continue
		}
		if len(sp.Verts) != refCount {
			diags = append(diags, Diagnostic{
				Cond:    TopologyMismatch,
				Species: s,
				Label:   sp.Label,
				Want:    refCount,
				Got:     len(sp.Verts),
			})
			continue
		}
		active = append(active, s)
	}

	if len(active) == 0 || refCount == 0 {
		return diags
	}

	workers := e.Workers
	if workers <= 1 || refCount < parallelThreshold {
		e.accumulate(dst, w, set, active, 0, refCount)
		return diags
	}
	if workers > refCount {
		workers = refCount
	}

	// Chunk the vertex range; species order inside each chunk is unchanged,
	// so per-vertex accumulation order — and therefore rounding — matches
	// the sequential path.
	chunk := (refCount + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < refCount; lo += chunk {
		hi := lo + chunk
		if hi > refCount {
			hi = refCount
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			e.accumulate(dst, w, set, active, lo, hi)
		}(lo, hi)
	}
	wg.Wait()

	return diags
}

func (Engine) accumulate(dst []mathutil.Vec3, w Weights, set *mesh.Set, active []int, lo, hi int) {
	for _, s := range active {
		verts := set.At(s).Verts
		ws := w[s]
		for i := lo; i < hi; i++ {
			dst[i] = dst[i].MulAdd(verts[i], ws)
		}
	}
}
