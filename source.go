package squaresrng

import "math/rand"

type source struct {
	rng *RNG
}

// Assert that source implements rand.Source64.
var _ rand.Source64 = source{}

// Seed is a no-op: the stream is positioned by the counter of the wrapped
// RNG, not by a seed. Use NewAt to start at a specific counter.
func (source) Seed(int64) {}

func (s source) Int63() int64 {
	return int64(s.rng.Uint64() >> 1)
}

func (s source) Uint64() uint64 {
	return s.rng.Uint64()
}

// Source wraps an RNG as a math/rand source, so the generator plugs into
// rand.New and everything built on top of it. The source draws from (and
// advances) the given RNG; it inherits its single-goroutine discipline.
//
// The returned source implements [math/rand.Source64].
func Source(rng *RNG) rand.Source {
	return source{rng: rng}
}
