package synth

import (
	"math/rand/v2"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// draws is a keyed pseudo-random function. Every (id, field) pair owns its
// own PCG stream, so values never depend on the order in which fields are read.
type draws struct {
	id int
}

func (d draws) rand(field string) *rand.Rand {
	key := strconv.Itoa(d.id) + ":" + field
	seed := xxhash.Sum64String(key)
	return rand.New(rand.NewPCG(seed, uint64(int64(d.id))))
}

// intn draws an integer from [lo, hi). hi <= lo yields lo.
func (d draws) intn(field string, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + d.rand(field).IntN(hi-lo)
}

// uniform draws a float from [lo, hi).
func (d draws) uniform(field string, lo, hi float64) float64 {
	return lo + d.rand(field).Float64()*(hi-lo)
}
