package squaresrng

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withinTolerance(f1, f2, tolerancePercentage float64) bool {
	absTol := math.Abs(f1 * tolerancePercentage / 100)
	return f1-absTol <= f2 && f1+absTol >= f2
}

func TestClockDeltaAgreesWithTimeNow(t *testing.T) {
	t1 := sampleClock()
	t1a := time.Now()
	time.Sleep(500 * time.Millisecond)
	t2 := sampleClock()
	t2a := time.Now()

	diff := float64(clockDelta(t1, t2))
	diffa := float64(t2a.Sub(t1a).Nanoseconds())
	assert.True(t, withinTolerance(diffa, diff, 1.0), "clock sources diverge too much: %v vs. %v", time.Duration(int64(diff)), time.Duration(int64(diffa)))
}

func TestCalcClockPrecision(t *testing.T) {
	minDiff := calcClockPrecision()
	t.Logf("calcClockPrecision result: %d ns", minDiff)
	assert.True(t, minDiff >= 1, "calcClockPrecision returned too small value")
	assert.True(t, minDiff < 1_000_000, "calcClockPrecision returned too large value")
}

func TestClockPrecisionCaches(t *testing.T) {
	prev := precision
	defer func() { precision = prev }()

	precision = int64(-1)
	p1 := ClockPrecision()
	p2 := ClockPrecision()
	assert.Equal(t, p1, p2, "ClockPrecision should return a cached value on subsequent calls")
	assert.True(t, p1 >= 1, "precision should be at least 1 ns on all systems")
}

func TestClockPrecisionRespectsCachedValue(t *testing.T) {
	prev := precision
	defer func() { precision = prev }()

	precision = int64(123456)
	assert.Equal(t, int64(123456), ClockPrecision(), "ClockPrecision should return the pre-set precision without recalculation")
}

func TestMeasureDrawRate(t *testing.T) {
	nsPerDraw, sink := MeasureDrawRate(5_000_000)
	t.Logf("%.2f ns/draw (sink %#x)", nsPerDraw, sink)
	assert.Greater(t, nsPerDraw, 0.0)
	assert.Less(t, nsPerDraw, 1000.0, "a draw should cost nowhere near a microsecond")
}

func TestMeasureDrawRateClampsDraws(t *testing.T) {
	nsPerDraw, _ := MeasureDrawRate(0)
	assert.GreaterOrEqual(t, nsPerDraw, 0.0)
}
