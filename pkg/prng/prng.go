// Package prng provides the deterministic Mulberry32 stream that every seed
// generator draws from.
//
// The arithmetic matches the 32-bit reference implementation exactly, so a
// given seed and call sequence yields the same values in any implementation
// that follows the same integer wraparound rules.
package prng

import (
	"fmt"
	"math"
)

// DefaultSeed is used when no seed is supplied.
const DefaultSeed int32 = 42

const (
	increment = 0x6D2B79F5
	twoTo32   = 4294967296.0
)

// Rand is a Mulberry32 generator. It is not safe for concurrent use; give each
// goroutine its own instance.
type Rand struct {
	seed  int32
	state uint32
}

// New creates a generator positioned at the start of the stream for seed.
func New(seed int32) *Rand {
	r := &Rand{}
	r.Reset(seed)
	return r
}

// Reset reinitializes the stream.
func (r *Rand) Reset(seed int32) {
	r.seed = seed
	r.state = uint32(seed)
}

// Seed returns the seed passed to the last Reset.
func (r *Rand) Seed() int32 {
	return r.seed
}

// Uint32 advances the stream and returns the next 32-bit output.
func (r *Rand) Uint32() uint32 {
	r.state += increment
	s := r.state
	t := (s ^ (s >> 15)) * (1 | s)
	t = (t + (t^(t>>7))*(61|t)) ^ t
	return t ^ (t >> 14)
}

// Raw returns a uniform float in [0, 1).
func (r *Rand) Raw() float64 {
	return float64(r.Uint32()) / twoTo32
}

// IntRange returns an integer in [min, max], both ends inclusive.
// It panics if min > max.
func (r *Rand) IntRange(min, max int) int {
	if min > max {
		panic(fmt.Sprintf("prng: invalid range [%d, %d]", min, max))
	}
	return int(math.Floor(r.Raw()*float64(max-min+1))) + min
}

// FloatRange returns a uniform float in [min, max).
func (r *Rand) FloatRange(min, max float64) float64 {
	return r.Raw()*(max-min) + min
}

// Chance reports true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.Raw() < p
}

// Pick returns a uniformly chosen element. It panics on an empty slice.
func Pick[T any](r *Rand, items []T) T {
	if len(items) == 0 {
		panic("prng: pick from empty slice")
	}
	return items[int(math.Floor(r.Raw()*float64(len(items))))]
}

// Shuffle returns a Fisher-Yates permutation of items. The input is not
// modified. A slice of length n always consumes n-1 draws.
func Shuffle[T any](r *Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := int(math.Floor(r.Raw() * float64(i+1)))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// PickN shuffles items and returns at most n of them. It panics if n is
// negative.
func PickN[T any](r *Rand, items []T, n int) []T {
	if n < 0 {
		panic(fmt.Sprintf("prng: negative count %d", n))
	}
	shuffled := Shuffle(r, items)
	return shuffled[:min(n, len(items))]
}
