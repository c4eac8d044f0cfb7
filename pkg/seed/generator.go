// Package seed synthesizes schema-shaped documents for every dashboard entity
// family from a deterministic PRNG stream.
//
// Every draw goes through the Generator's own prng.Rand, so two Generators
// with the same seed and the same call sequence produce identical documents.
// The order of draws inside each method is fixed; changing it changes every
// dataset derived from a seed.
package seed

import (
	"fmt"
	"strings"

	"pkg.jsn.cam/levelup/pkg/prng"
)

// Generator owns a PRNG stream and an id sequence.
// It is not safe for concurrent use.
type Generator struct {
	rng *prng.Rand
	seq int64
}

// New creates a Generator seeded with seed.
func New(seed int32) *Generator {
	return NewWithRand(prng.New(seed))
}

// NewWithRand wraps an existing stream. The Generator takes ownership of r.
func NewWithRand(r *prng.Rand) *Generator {
	return &Generator{rng: r}
}

// Reset reseeds the stream and restarts the id sequence.
func (g *Generator) Reset(seed int32) {
	g.rng.Reset(seed)
	g.seq = 0
}

// Rand exposes the underlying stream.
func (g *Generator) Rand() *prng.Rand {
	return g.rng
}

// nextStamp returns a millisecond-style stamp unique within this Generator.
func (g *Generator) nextStamp() int64 {
	s := referenceEpochMs + g.seq
	g.seq++
	return s
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz"

func (g *Generator) randomSuffix() string {
	var b strings.Builder
	b.Grow(4)
	for i := 0; i < 4; i++ {
		b.WriteByte(suffixAlphabet[g.rng.IntRange(0, 25)])
	}
	return b.String()
}

// newID builds "<prefix>_<stamp>_<suffix>". The suffix is drawn last.
func (g *Generator) newID(prefix string) string {
	stamp := g.nextStamp()
	return fmt.Sprintf("%s_%d_%s", prefix, stamp, g.randomSuffix())
}
