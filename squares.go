// Package squaresrng implements the Squares counter-based random number
// generator, a variant of the Middle Square Weyl Sequence RNG
// (see https://arxiv.org/abs/2004.06278 for details).
//
// Output is a pure function of a 64-bit counter and a 64-bit key: the same
// (counter, key) pair produces the same bit pattern on every call, on every
// platform. State is nothing but the counter, which makes sequences trivially
// reproducible, skippable, and shardable across workers.
// This random number generator is not cryptographically secure.
package squaresrng

import "math/bits"

// swapHalves rotates x by 32 bits, exchanging its high and low halves.
// Applied between rounds to spread entropy across both halves before the
// next squaring.
func swapHalves(x uint64) uint64 {
	return bits.RotateLeft64(x, 32)
}

// DefaultKey is a sample key for use with the algorithm. Keys should have an
// irregular bit pattern with close to equal numbers of zeros and ones for
// optimal output; heavily skewed keys (the extreme case being zero) degrade
// statistical quality but are not rejected. Published key constants are part
// of the output compatibility contract: new keys are added under new names,
// an existing name never changes value.
const DefaultKey uint64 = 0x548c9decbce65297

// CounterIncrement is the fixed odd Weyl step applied to an RNG's counter
// after every draw. Because the step is odd and arithmetic wraps modulo 2^64,
// the counter visits all 2^64 residues before repeating, so the sequence
// period for a fixed key is exactly 2^64.
const CounterIncrement uint64 = 1

// Rand32 generates the 32-bit output for the given counter and key.
// It is a pure function: no side effects, no failure conditions, every
// 64-bit input is valid. All intermediate arithmetic wraps modulo 2^64.
//
// Four rounds: each round squares the accumulated value and folds in one of
// two key-derived terms, with a half-word rotation between rounds to spread
// entropy across both halves before the next squaring. The final round
// returns the high 32 bits without a further rotation.
func Rand32(counter, key uint64) uint32 {
	x := counter * key
	y := x
	z := y + key

	x = swapHalves(x*x + y)
	x = swapHalves(x*x + z)
	x = swapHalves(x*x + y)

	return uint32((x*x + z) >> 32)
}

// Rand64 generates the 64-bit output for the given counter and key.
// Pure and total like Rand32.
//
// A single squaring pipeline does not have enough avalanche to fill 64
// uniform bits in one pass, so the 64-bit variant runs a fifth round and
// XORs its high half into the round-four value, as specified in the paper.
func Rand64(counter, key uint64) uint64 {
	x := counter * key
	y := x
	z := y + key

	x = swapHalves(x*x + y)
	x = swapHalves(x*x + z)
	x = swapHalves(x*x + y)

	t := x*x + z
	x = swapHalves(t)

	return t ^ ((x*x + y) >> 32)
}
