// Package weighted wraps gonum's weighted-index sampler behind the single
// shape both the player factory (height distribution) and the possession
// simulator (shooter/rebounder/defender selection) need: "pick an index
// proportional to a weight slice, deterministically under a seeded
// source."
package weighted

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/sampleuv"
)

// Sampler draws indices into a weight slice without replacement,
// proportional to each weight: every Take zeroes the weight of the index
// it returns.
type Sampler struct {
	inner sampleuv.Weighted
}

// New builds a Sampler over weights using src for randomness. weights must
// be non-empty and non-negative; a weights slice that sums to zero falls
// back to a uniform draw.
func New(weights []float64, src *rand.Rand) Sampler {
	w := make([]float64, len(weights))
	copy(w, weights)
	var total float64
	for _, v := range w {
		total += v
	}
	if total <= 0 {
		for i := range w {
			w[i] = 1
		}
	}
	return Sampler{inner: sampleuv.NewWeighted(w, src)}
}

// Take draws one index proportional to its weight. ok is false when the
// weight slice is empty or every index has already been taken.
func (s Sampler) Take() (int, bool) {
	return s.inner.Take()
}
