package core

import "time"

// Xorshift32 is a minimal deterministic generator with period 2^32-1 for
// any nonzero seed. The all-zero state is a fixed point, so seeding guards
// against it.
type Xorshift32 struct {
	state uint32
}

// NewXorshift32 creates a generator from the provided seed. A zero seed is
// replaced with a fixed nonzero constant.
func NewXorshift32(seed uint32) *Xorshift32 {
	r := &Xorshift32{}
	r.Reseed(seed)
	return r
}

// Reseed replaces the generator state, substituting a constant for zero.
func (r *Xorshift32) Reseed(seed uint32) {
	if seed == 0 {
		seed = 0x6c078965
	}
	r.state = seed
}

// Next advances the state and returns the next 32-bit output.
func (r *Xorshift32) Next() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Chance reports true with probability of approximately percent/100. The
// mapping is Next()%100, which carries a bias below 1e-6 per draw.
func (r *Xorshift32) Chance(percent uint32) bool {
	return r.Next()%100 < percent
}

// TimeSeed derives a seed from the wall clock at microsecond resolution.
func TimeSeed() uint32 {
	s := uint32(time.Now().UnixMicro())
	if s == 0 {
		s = 1
	}
	return s
}
