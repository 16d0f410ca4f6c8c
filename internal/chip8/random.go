package chip8

import "math/rand/v2"

// Random is the byte source of the RND instruction.
type Random interface {
	// Byte returns the next pseudo-random byte.
	Byte() uint8
	// Seed resets the source to a deterministic sequence.
	Seed(seed uint64)
}

// pcgRandom implements Random using a PCG generator.
type pcgRandom struct {
	pcg *rand.PCG
	rng *rand.Rand
}

// NewRandom returns a random source seeded from system entropy.
func NewRandom() Random {
	return newPCGRandom(rand.Uint64(), rand.Uint64())
}

// NewSeededRandom returns a random source that produces the same sequence
// for the same seed.
func NewSeededRandom(seed uint64) Random {
	return newPCGRandom(seed, seed)
}

func newPCGRandom(seed1, seed2 uint64) *pcgRandom {
	pcg := rand.NewPCG(seed1, seed2)
	return &pcgRandom{
		pcg: pcg,
		rng: rand.New(pcg),
	}
}

func (r *pcgRandom) Byte() uint8 {
	return uint8(r.rng.UintN(256))
}

func (r *pcgRandom) Seed(seed uint64) {
	r.pcg.Seed(seed, seed)
}
