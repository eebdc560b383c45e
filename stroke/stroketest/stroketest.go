// Package stroketest provides randomized stroke content for tests.
//
// Nothing in this package is used by production code.
package stroketest

import (
	"math/rand/v2"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/stroke"
)

// MaxValidationElements is the largest number of elements ValidationData
// returns.
const MaxValidationElements = 20

// ValidationData returns between 0 and MaxValidationElements elements with
// positions uniform inside bounds and pressures uniform in [0, 1].
// The result depends only on bounds and the state of rng.
func ValidationData(bounds ink.Box, rng *rand.Rand) []stroke.Element {
	n := rng.IntN(MaxValidationElements + 1)
	elems := make([]stroke.Element, n)
	for i := range elems {
		pos := ink.V2(
			bounds.Min.X+rng.Float64()*bounds.Width(),
			bounds.Min.Y+rng.Float64()*bounds.Height(),
		)
		elems[i] = stroke.NewElement(stroke.NewInputData(pos, rng.Float64()))
	}
	return elems
}

// NewRand returns a deterministic random source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
