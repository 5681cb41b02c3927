package squaresrng

import (
	"math"
	"math/bits"
)

// RNG is the stateful form of the Squares generator: it pairs a counter with
// a key and advances the counter by CounterIncrement after every draw.
// This random number generator is deterministic in the sequence of numbers it generates:
// the whole state is the exported Counter, and the mapping (Counter, Key) -> output
// is a pure function, so callers can snapshot the counter before a draw to replay it.
// This random number generator is deterministic in its runtime (a fixed, small number of arithmetic instructions per draw; nothing blocks).
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe; use one instance (or disjoint counter ranges, see Partition) per goroutine.
// This random number generator has a very small memory footprint (16 bytes).
// Distinct instances meant to be statistically independent must use distinct keys.
type RNG struct {
	Counter uint64
	Key     uint64
}

// New creates a generator for the given key, starting at counter 0.
// Any key is accepted; see DefaultKey for the bit-balance quality caveat.
func New(key uint64) *RNG {
	return &RNG{Key: key}
}

// NewAt creates a generator positioned at an arbitrary counter. Any counter
// value is valid, including 0.
func NewAt(key, counter uint64) *RNG {
	return &RNG{Counter: counter, Key: key}
}

// Uint32 returns the 32-bit output for the current counter and advances the
// counter by CounterIncrement.
func (r *RNG) Uint32() uint32 {
	v := Rand32(r.Counter, r.Key)
	r.Counter += CounterIncrement
	return v
}

// Uint64 returns the 64-bit output for the current counter and advances the
// counter by CounterIncrement.
func (r *RNG) Uint64() uint64 {
	v := Rand64(r.Counter, r.Key)
	r.Counter += CounterIncrement
	return v
}

// Skip advances the counter by n draws without generating output. Skipping
// is exact: Skip(n) leaves the generator in the same state as n discarded
// draws, at the cost of one multiplication.
func (r *RNG) Skip(n uint64) {
	r.Counter += n * CounterIncrement
}

// Uint32N returns a uniformly distributed number in the half-open interval [0,n).
// Use this function for generating random indices or sizes for slices or arrays, for example.
// It avoids division and modulo operations and compensates for bias.
// For n=0 and n=1, Uint32N returns 0 (consuming one draw either way).
//
// For implementation details, see:
//
//	https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
//	https://lemire.me/blog/2016/06/30/fast-random-shuffling
func (r *RNG) Uint32N(n uint32) uint32 {
	v := r.Uint32()
	prod := uint64(v) * uint64(n)
	low := uint32(prod)
	if low < n {
		thresh := uint32(-n) % n
		for low < thresh {
			v = r.Uint32()
			prod = uint64(v) * uint64(n)
			low = uint32(prod)
		}
	}
	return uint32(prod >> 32)
}

// Uint64N returns a uniformly distributed number in the half-open interval [0,n).
// Same reduction as Uint32N, widened to 64 bits via a 128-bit product.
// For n=0 and n=1, Uint64N returns 0 (consuming one draw either way).
func (r *RNG) Uint64N(n uint64) uint64 {
	v := r.Uint64()
	hi, low := bits.Mul64(v, n)
	if low < n {
		thresh := -n % n
		for low < thresh {
			v = r.Uint64()
			hi, low = bits.Mul64(v, n)
		}
	}
	return hi
}

// Float32 returns a uniformly distributed float32 in [0.0, 1.0).
// This function will never return -0.0, 1.0, NaN or Inf.
// It uses 23 random bits for the mantissa, the maximum randomness a float32
// can represent without breaking uniformity. If you need more randomness,
// use Float64 instead.
// See: https://en.wikipedia.org/wiki/Single-precision_floating-point_format
func (r *RNG) Float32() float32 {
	u := r.Uint32()

	u &= 0x7FFFFF // 23 random bits for mantissa

	const sign uint32 = 0
	const exp uint32 = 127
	bits := (sign << 31) | (exp << 23) | u
	return math.Float32frombits(bits) - 1.0
}

// Float64 returns a uniformly distributed float64 in [0.0, 1.0).
// This function will never return -0.0, 1.0, NaN or Inf.
// It uses 52 random bits for the mantissa, the maximum randomness a float64
// can represent without breaking uniformity.
// See: https://en.wikipedia.org/wiki/Double-precision_floating-point_format
func (r *RNG) Float64() float64 {
	u := r.Uint64()

	u &= 0x000FFFFFFFFFFFFF // 52 random bits for mantissa

	const sign uint64 = 0
	const exp uint64 = 1023
	bits := (sign << 63) | (exp << 52) | u
	return math.Float64frombits(bits) - 1.0
}
