package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationSchedulerLifecycle(t *testing.T) {
	clock := newFakeClock(sessionNow)
	scheduler := NewNotificationScheduler(clock)
	assert.False(t, scheduler.Running())
	assert.Empty(t, clock.Tickers())

	id := scheduler.Post("Saved", 0)
	require.Equal(t, int64(1), id)
	require.True(t, scheduler.Running())
	require.Len(t, clock.Tickers(), 1)
	assert.Equal(t, TickInterval, clock.Tickers()[0].interval)

	active := scheduler.Active()
	require.Len(t, active, 1)
	assert.Equal(t, DefaultNotificationDuration, active[0].Duration)
	assert.Zero(t, active[0].Progress)

	clock.Advance(2 * time.Second)
	scheduler.Tick()
	active = scheduler.Active()
	require.Len(t, active, 1)
	assert.InDelta(t, 50.0, active[0].Progress, 0.001)

	clock.Advance(2 * time.Second)
	scheduler.Tick()
	assert.Empty(t, scheduler.Active())
	assert.False(t, scheduler.Running())
	assert.Zero(t, clock.LiveTickers())
}

func TestNotificationSchedulerIDsNeverReused(t *testing.T) {
	clock := newFakeClock(sessionNow)
	scheduler := NewNotificationScheduler(clock)
	defer scheduler.Close()

	first := scheduler.Post("a", time.Second)
	scheduler.Dismiss(first)
	second := scheduler.Post("b", time.Second)
	third := scheduler.PostDefault("c")

	assert.Equal(t, []int64{1, 2, 3}, []int64{first, second, third})
}

func TestNotificationSchedulerSharesOneTicker(t *testing.T) {
	clock := newFakeClock(sessionNow)
	scheduler := NewNotificationScheduler(clock)

	a := scheduler.Post("a", time.Second)
	b := scheduler.Post("b", 3*time.Second)
	require.Len(t, clock.Tickers(), 1)

	clock.Advance(time.Second)
	scheduler.Tick()
	active := scheduler.Active()
	require.Len(t, active, 1)
	assert.Equal(t, b, active[0].ID)
	assert.True(t, scheduler.Running())

	scheduler.Dismiss(a)
	assert.True(t, scheduler.Running())

	scheduler.Dismiss(b)
	assert.False(t, scheduler.Running())
	assert.Zero(t, clock.LiveTickers())

	// A new post after draining starts a fresh ticker.
	scheduler.Post("again", time.Second)
	assert.Len(t, clock.Tickers(), 2)
	assert.Equal(t, 1, clock.LiveTickers())
	scheduler.Close()
	assert.Zero(t, clock.LiveTickers())
}

func TestNotificationSchedulerDismissUnknownID(t *testing.T) {
	scheduler := NewNotificationScheduler(newFakeClock(sessionNow))
	scheduler.Dismiss(42)
	assert.False(t, scheduler.Running())
}

func TestNotificationSchedulerTicksFromTicker(t *testing.T) {
	clock := newFakeClock(sessionNow)
	scheduler := NewNotificationScheduler(clock)

	scheduler.Post("bye", 100*time.Millisecond)
	ticker := clock.Tickers()[0]

	clock.Advance(100 * time.Millisecond)
	ticker.ch <- clock.Now()

	require.Eventually(t, func() bool {
		return !scheduler.Running()
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, scheduler.Active())
	assert.True(t, ticker.Stopped())
}

func TestNotificationSchedulerClockStepBackwards(t *testing.T) {
	clock := newFakeClock(sessionNow)
	scheduler := NewNotificationScheduler(clock)
	defer scheduler.Close()

	scheduler.Post("x", time.Second)
	clock.Advance(-time.Minute)
	scheduler.Tick()

	active := scheduler.Active()
	require.Len(t, active, 1)
	assert.Zero(t, active[0].Progress)
}
