package factory

import "math/rand"

// heightBucket is one discretized point in the empirical height
// distribution, weighted toward the 72-82 inch range per §4.1.
type heightBucket struct {
	inches int
	weight float64
}

var heightDistribution = []heightBucket{
	{68, 1}, {69, 2}, {70, 3}, {71, 5}, {72, 9},
	{73, 11}, {74, 13}, {75, 15}, {76, 16}, {77, 16},
	{78, 15}, {79, 13}, {80, 11}, {81, 8}, {82, 6},
	{83, 4}, {84, 3}, {85, 2}, {86, 1}, {87, 1}, {88, 1},
}

func heightWeights() []float64 {
	w := make([]float64, len(heightDistribution))
	for i, b := range heightDistribution {
		w[i] = b.weight
	}
	return w
}

// sampleHeight draws a height in inches (68-88) from the empirical
// distribution, using idx as a pre-drawn weighted index.
func sampleHeight(idx int) int {
	if idx < 0 || idx >= len(heightDistribution) {
		idx = len(heightDistribution) / 2
	}
	return heightDistribution[idx].inches
}

// MinHeightIn and MaxHeightIn bound the generated height range.
const (
	MinHeightIn = 68
	MaxHeightIn = 88
)

// uniformInt draws an integer in [lo,hi] inclusive using rnd.
func uniformInt(rnd *rand.Rand, lo, hi int) int {
	return lo + rnd.Intn(hi-lo+1)
}
