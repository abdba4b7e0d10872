package quizgen

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

// deriveSeed maps input text to a stable int64 seed so that unseeded
// generation is still reproducible for identical input.
func deriveSeed(text string) int64 {
	h := sha256.Sum256([]byte("learnify|quizgen|" + text))
	v := int64(binary.LittleEndian.Uint64(h[:8]))
	if v < 0 {
		v = -v
	}
	return v
}

// newRand builds the generator's random source. A non-zero configured seed
// wins; otherwise the seed is derived from the text.
func (c *Config) newRand(text string) *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = deriveSeed(text)
	}
	return rand.New(rand.NewSource(seed))
}
