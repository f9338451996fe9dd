// Package randstream derives independent deterministic random streams from a
// single base seed, one per replication, so resampling runs are reproducible
// without shared mutable generator state.
package randstream

import "github.com/valyala/fastrand"

// Distinct odd multipliers keep streams for neighboring indices apart.
const (
	mix1 = 0x9E3779B9
	mix2 = 0x85EBCA6B
)

// New returns a generator seeded from the base seed and the stream indices
// (typically replication number, then retry attempt). fastrand's xorshift
// state must not be zero.
func New(base uint32, idx ...uint32) *fastrand.RNG {
	seed := base
	mul := uint32(mix1)
	for _, v := range idx {
		seed ^= (v + 1) * mul
		mul ^= mix2
	}
	if seed == 0 {
		seed = 1
	}
	var rng fastrand.RNG
	rng.Seed(seed)
	return &rng
}
