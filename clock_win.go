//go:build windows

package squaresrng

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// clockStamp is a relative timestamp with the highest possible precision on
// the current runtime system. Values are only comparable between two
// sampleClock() calls within the same run of a program on the same machine.
type clockStamp = int64

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	procFreq    = modkernel32.NewProc("QueryPerformanceFrequency")
	procCounter = modkernel32.NewProc("QueryPerformanceCounter")

	qpcFrequency = getFrequency()
)

// getFrequency returns frequency in ticks per second.
func getFrequency() int64 {
	var freq int64
	r1, _, err := procFreq.Call(uintptr(unsafe.Pointer(&freq)))
	if r1 == 0 {
		panic(fmt.Sprintf("call failed: %v", err))
	}
	return freq
}

// sampleClock returns a timestamp with the highest possible precision on the
// current runtime system.
func sampleClock() clockStamp {
	var qpc int64
	procCounter.Call(uintptr(unsafe.Pointer(&qpc)))
	return qpc
}

// clockDelta returns the difference between two timestamps in nanoseconds.
// It assumes later comes after earlier and goes negative otherwise.
func clockDelta(earlier, later clockStamp) int64 {
	result := later - earlier
	result *= int64(1_000_000_000) // ns per sec
	result /= qpcFrequency
	return result
}
