package driver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/schedcu/solver/internal/solver/driver"
)

func TestGapPercent_MatchesSpecFormula(t *testing.T) {
	assert.Equal(t, 0.0, driver.GapPercent(10, 10))
	assert.Equal(t, 50.0, driver.GapPercent(2, 1))
	// max(1, |obj|) guards against division by zero when obj == 0.
	assert.Equal(t, 300.0, driver.GapPercent(0, 3))
}

func TestProgressThrottle_AtMostOnePerInterval(t *testing.T) {
	throttle := driver.NewProgressThrottle(1.0)
	start := time.Now()

	assert.True(t, throttle.ShouldReport(start))
	assert.False(t, throttle.ShouldReport(start.Add(500*time.Millisecond)))
	assert.True(t, throttle.ShouldReport(start.Add(1100*time.Millisecond)))
}

func TestProgressThrottle_DefaultsToOneSecond(t *testing.T) {
	throttle := driver.NewProgressThrottle(0)
	start := time.Now()
	assert.True(t, throttle.ShouldReport(start))
	assert.False(t, throttle.ShouldReport(start.Add(900*time.Millisecond)))
}

func TestCancelled_NilContextNeverCancelled(t *testing.T) {
	assert.False(t, driver.Cancelled(nil))
}

func TestCancelled_ReflectsContextState(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	assert.False(t, driver.Cancelled(ctx))
	cancel()
	assert.True(t, driver.Cancelled(ctx))
}

func TestTerminalStatus_String(t *testing.T) {
	assert.Equal(t, "Optimal", driver.Optimal.String())
	assert.Equal(t, "Infeasible", driver.Infeasible.String())
	assert.Equal(t, "Unknown", driver.Unknown.String())
}
