package morph

// Weights is the per-species blend coefficient vector. Indices align
// positionally with the species set's insertion order. Mutations never
// fail hard: a bad index or length yields an advisory Diagnostic and
// leaves the vector unchanged.
type Weights []float64

// NewWeights returns an all-zero vector of length n.
func NewWeights(n int) Weights {
	return make(Weights, n)
}

// Set assigns weight v to slot i, clamped to >= 0. Out-of-range i leaves
// the vector unchanged and reports IndexOutOfRange.
//
// Clamping is intentionally asymmetric with SetAll: the single-slot setter
// clamps at the boundary, the bulk setter defers clamping to Normalize.
func (w Weights) Set(i int, v float64) *Diagnostic {
	if i < 0 || i >= len(w) {
		return &Diagnostic{Cond: IndexOutOfRange, Want: len(w), Got: i}
	}
	if v < 0 {
		v = 0
	}
	w[i] = v
	return nil
}

// SetAll replaces the whole vector with values. A length mismatch leaves
// the vector unchanged and reports LengthMismatch.
func (w Weights) SetAll(values []float64) *Diagnostic {
	if len(values) != len(w) {
		return &Diagnostic{Cond: LengthMismatch, Want: len(w), Got: len(values)}
	}
	copy(w, values)
	return nil
}

// SyncLength returns the vector resized to target: padded with zero
// entries when shorter, truncated from the tail when longer. Idempotent.
func (w Weights) SyncLength(target int) Weights {
	if target < 0 {
		target = 0
	}
	switch {
	case len(w) == target:
		return w
	case len(w) > target:
		return w[:target]
	default:
		out := make(Weights, target)
		copy(out, w)
		return out
	}
}

// Normalize clamps negative entries to 0 and rescales the vector to sum
// to 1, in place. When every entry is non-positive it falls back to a
// one-hot vector selecting slot 0, so a degenerate input still produces a
// deterministic blend. No-op on an empty vector.
func (w Weights) Normalize() {
	if len(w) == 0 {
		return
	}
	sum := 0.0
	for i, v := range w {
		if v < 0 {
			w[i] = 0
			continue
		}
		sum += v
	}
	if sum <= 0 {
		w[0] = 1
		for i := 1; i < len(w); i++ {
			w[i] = 0
		}
		return
	}
	inv := 1.0 / sum
	for i := range w {
		w[i] *= inv
	}
}

// Clone returns an independent copy of the vector.
func (w Weights) Clone() Weights {
	out := make(Weights, len(w))
	copy(out, w)
	return out
}
