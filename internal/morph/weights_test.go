package morph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightsSetClamps(t *testing.T) {
	w := NewWeights(3)
	require.Nil(t, w.Set(1, -5))
	assert.Equal(t, 0.0, w[1])

	require.Nil(t, w.Set(2, 0.75))
	assert.Equal(t, 0.75, w[2])
}

func TestWeightsSetOutOfRange(t *testing.T) {
	w := Weights{0.1, 0.2}
	before := w.Clone()

	d := w.Set(2, 1)
	require.NotNil(t, d)
	assert.Equal(t, IndexOutOfRange, d.Cond)
	assert.Equal(t, before, w, "vector must be unchanged")

	d = w.Set(-1, 1)
	require.NotNil(t, d)
	assert.Equal(t, IndexOutOfRange, d.Cond)
	assert.Equal(t, before, w)
}

func TestWeightsSetAllLengthMismatch(t *testing.T) {
	w := Weights{0.5, 0.5}
	before := w.Clone()

	d := w.SetAll([]float64{0.2, 0.3, 0.5})
	require.NotNil(t, d)
	assert.Equal(t, LengthMismatch, d.Cond)
	assert.Equal(t, 2, d.Want)
	assert.Equal(t, 3, d.Got)
	assert.Equal(t, before, w, "prior vector must remain unchanged")
}

func TestWeightsSetAllNoClamp(t *testing.T) {
	// Bulk set intentionally does not clamp; Normalize clamps later.
	w := NewWeights(2)
	require.Nil(t, w.SetAll([]float64{-1, 2}))
	assert.Equal(t, -1.0, w[0])

	w.Normalize()
	assert.Equal(t, 0.0, w[0])
	assert.Equal(t, 1.0, w[1])
}

func TestWeightsSyncLength(t *testing.T) {
	w := Weights{0.3, 0.7}

	padded := w.SyncLength(4)
	assert.Equal(t, Weights{0.3, 0.7, 0, 0}, padded)

	truncated := padded.SyncLength(1)
	assert.Equal(t, Weights{0.3}, truncated)

	// Idempotent: a second sync with the same target changes nothing.
	assert.Equal(t, padded.SyncLength(4), padded.SyncLength(4).SyncLength(4))
	assert.Empty(t, Weights(nil).SyncLength(0))
}

func TestWeightsNormalizeSumsToOne(t *testing.T) {
	w := Weights{2, 1, 1}
	w.Normalize()

	sum := 0.0
	for _, v := range w {
		assert.GreaterOrEqual(t, v, 0.0)
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.InDelta(t, 0.5, w[0], 1e-12)
}

func TestWeightsNormalizeClampsNegatives(t *testing.T) {
	w := Weights{-3, 1, 1}
	w.Normalize()

	assert.Equal(t, 0.0, w[0])
	assert.InDelta(t, 0.5, w[1], 1e-12)
	assert.InDelta(t, 0.5, w[2], 1e-12)
}

func TestWeightsNormalizeZeroSumFallback(t *testing.T) {
	for _, w := range []Weights{{0, 0, 0}, {-1, -2, -3}} {
		w.Normalize()
		assert.Equal(t, Weights{1, 0, 0}, w, "fallback selects slot 0")
	}
}

func TestWeightsNormalizeEmpty(t *testing.T) {
	w := Weights{}
	w.Normalize() // must not panic
	assert.Empty(t, w)
}
