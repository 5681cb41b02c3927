//go:build !windows

package squaresrng

import "time"

// clockStamp is a relative timestamp with the highest possible precision on
// the current runtime system. Values are only comparable between two
// sampleClock() calls within the same run of a program on the same machine.
type clockStamp = time.Time

// sampleClock returns a timestamp with the highest possible precision on the
// current runtime system.
func sampleClock() clockStamp {
	return time.Now()
}

// clockDelta returns the difference between two timestamps in nanoseconds.
// It assumes later comes after earlier and goes negative otherwise.
func clockDelta(earlier, later clockStamp) int64 {
	return later.Sub(earlier).Nanoseconds()
}
