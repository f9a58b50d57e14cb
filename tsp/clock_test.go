package tsp_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/lvtsp/geom"
	"github.com/katalvlaran/lvtsp/tsp"
	"github.com/stretchr/testify/require"
)

func TestDeadline_StepClockExpiresOnSchedule(t *testing.T) {
	dl := tsp.NewDeadline(newStepClock(), 10*tick)
	require.Equal(t, 10*tick, dl.Budget())

	polls := 0
	for !dl.Expired() {
		polls++
	}
	// Creation reads the clock once; the tenth poll lands on the end instant.
	require.Equal(t, 9, polls)
}

func TestDeadline_NonPositiveBudget(t *testing.T) {
	for _, b := range []time.Duration{0, -time.Second} {
		dl := tsp.NewDeadline(newStepClock(), b)
		require.True(t, dl.Expired())
		require.Zero(t, dl.Budget())
		require.Equal(t, 1.0, dl.Progress())
	}
}

func TestDeadline_ZeroValueIsExpired(t *testing.T) {
	var dl tsp.Deadline
	require.True(t, dl.Expired())
	require.Zero(t, dl.Budget())
	require.Equal(t, 1.0, dl.Progress())

	d := geom.EuclideanDistances(randomPoints(12, seedDet))
	start := shuffledTour(12, seedDet)
	got, _ := tsp.TwoOpt(start, d, dl, tsp.NewRand(seedDet))
	require.Equal(t, start, got)
	got, _ = tsp.Relocate(start, d, dl, tsp.Schedule{}, tsp.NewRand(seedDet))
	require.Equal(t, start, got)
}

func TestDeadline_Progress(t *testing.T) {
	dl := tsp.NewDeadline(newStepClock(), 10*tick)
	require.InDelta(t, 0.1, dl.Progress(), 1e-12)
	require.InDelta(t, 0.2, dl.Progress(), 1e-12)

	for i := 0; i < 20; i++ {
		dl.Progress()
	}
	require.Equal(t, 1.0, dl.Progress(), "progress is clamped")
}

func TestDeadline_NilClockUsesWallClock(t *testing.T) {
	dl := tsp.NewDeadline(nil, time.Hour)
	require.False(t, dl.Expired())
	require.Less(t, dl.Progress(), 0.01)

	require.WithinDuration(t, time.Now(), tsp.SystemClock().Now(), time.Second)
}
