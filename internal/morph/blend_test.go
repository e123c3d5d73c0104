package morph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-morpher/internal/mathutil"
	"mesh-morpher/internal/mesh"
)

func twoSpecies() *mesh.Set {
	set := mesh.NewSet()
	set.Append("A", []mathutil.Vec3{{0, 0, 0}})
	set.Append("B", []mathutil.Vec3{{10, 0, 0}})
	return set
}

func TestBlendWeightedSum(t *testing.T) {
	set := twoSpecies()
	dst := make([]mathutil.Vec3, 1)

	diags := Engine{}.Blend(dst, Weights{0.5, 0.5}, set)
	assert.Empty(t, diags)
	assert.Equal(t, mathutil.Vec3{5, 0, 0}, dst[0])
}

func TestBlendSkipsZeroWeight(t *testing.T) {
	set := twoSpecies()
	dst := make([]mathutil.Vec3, 1)

	diags := Engine{}.Blend(dst, Weights{1, 0}, set)
	assert.Empty(t, diags)
	assert.Equal(t, mathutil.Vec3{0, 0, 0}, dst[0])
}

func TestBlendMissingSource(t *testing.T) {
	set := mesh.NewSet()
	set.Append("A", []mathutil.Vec3{{1, 2, 3}})
	set.Append("ghost", nil)
	dst := make([]mathutil.Vec3, 1)

	diags := Engine{}.Blend(dst, Weights{1, 1}, set)
	require.Len(t, diags, 1)
	assert.Equal(t, MissingSource, diags[0].Cond)
	assert.Equal(t, 1, diags[0].Species)
	assert.Equal(t, "ghost", diags[0].Label)
	assert.Equal(t, mathutil.Vec3{1, 2, 3}, dst[0], "missing species contributes exactly zero")
}

func TestBlendTopologyMismatchIsolated(t *testing.T) {
	// Scenario: A has 2 vertices, B has 1 (mismatched) with weight 1.
	set := mesh.NewSet()
	set.Append("A", []mathutil.Vec3{{0, 0, 0}, {1, 0, 0}})
	set.Append("B", []mathutil.Vec3{{9, 9, 9}})
	dst := make([]mathutil.Vec3, 2)

	diags := Engine{}.Blend(dst, Weights{0, 1}, set)
	require.Len(t, diags, 1)
	assert.Equal(t, TopologyMismatch, diags[0].Cond)
	assert.Equal(t, 1, diags[0].Species)
	assert.Equal(t, "B", diags[0].Label)
	assert.Equal(t, 2, diags[0].Want)
	assert.Equal(t, 1, diags[0].Got)

	assert.Equal(t, []mathutil.Vec3{{0, 0, 0}, {0, 0, 0}}, dst)

	// The mismatch must not disturb other contributions either.
	diags = Engine{}.Blend(dst, Weights{1, 1}, set)
	require.Len(t, diags, 1)
	assert.Equal(t, []mathutil.Vec3{{0, 0, 0}, {1, 0, 0}}, dst)
}

func TestBlendDeterministic(t *testing.T) {
	set := mesh.NewSet()
	set.Append("A", ramp(100, 1))
	set.Append("B", ramp(100, 3))
	set.Append("C", ramp(100, 7))
	w := Weights{0.1, 0.3, 0.6}

	first := make([]mathutil.Vec3, 100)
	Engine{}.Blend(first, w, set)

	for run := 0; run < 4; run++ {
		again := make([]mathutil.Vec3, 100)
		Engine{}.Blend(again, w, set)
		assert.Equal(t, first, again, "repeated blends must be bit-identical")
	}
}

func TestBlendParallelMatchesSequential(t *testing.T) {
	const n = 5000 // above the parallel threshold
	set := mesh.NewSet()
	set.Append("A", ramp(n, 1))
	set.Append("B", ramp(n, 3))
	set.Append("C", ramp(n, 7))
	w := Weights{0.25, 0.25, 0.5}

	seq := make([]mathutil.Vec3, n)
	Engine{}.Blend(seq, w, set)

	for _, workers := range []int{2, 4, 16} {
		par := make([]mathutil.Vec3, n)
		Engine{Workers: workers}.Blend(par, w, set)
		assert.Equal(t, seq, par, "workers=%d must match sequential bit-for-bit", workers)
	}
}

func TestBlendLinearity(t *testing.T) {
	set := mesh.NewSet()
	set.Append("A", ramp(10, 2))
	set.Append("B", ramp(10, 5))
	w1 := Weights{0.25, 0.5}
	w2 := Weights{0.5, 0.25}

	sum := make(Weights, 2)
	for i := range sum {
		sum[i] = w1[i] + w2[i]
	}

	a := make([]mathutil.Vec3, 10)
	b := make([]mathutil.Vec3, 10)
	combined := make([]mathutil.Vec3, 10)
	Engine{}.Blend(a, w1, set)
	Engine{}.Blend(b, w2, set)
	Engine{}.Blend(combined, sum, set)

	for i := range combined {
		got := a[i].Add(b[i])
		for k := 0; k < 3; k++ {
			assert.InDelta(t, combined[i][k], got[k], 1e-12)
		}
	}
}

func TestBlendEmptySet(t *testing.T) {
	dst := []mathutil.Vec3{{1, 1, 1}}
	diags := Engine{}.Blend(dst, Weights{}, mesh.NewSet())
	assert.Empty(t, diags)
	assert.Equal(t, mathutil.Vec3{}, dst[0], "buffer is zeroed, not an error")
}

// ramp builds n vertices along a line with slope k, enough structure to
// catch ordering and indexing mistakes.
func ramp(n int, k float64) []mathutil.Vec3 {
	out := make([]mathutil.Vec3, n)
	for i := range out {
		f := float64(i)
		out[i] = mathutil.Vec3{f * k, f*k + 1, f*k + 2}
	}
	return out
}
