package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parasols/maxclique/scheduler"
)

func TestStealPointPublishAndSteal(t *testing.T) {
	sp := scheduler.NewStealPoint()
	assert.False(t, sp.WasStolen())

	sp.Publish([]int{1, 2})
	offs, ok := sp.TrySteal()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, offs)
	assert.True(t, sp.WasStolen())
}

func TestStealPointSecondStealFails(t *testing.T) {
	sp := scheduler.NewStealPoint()
	sp.Publish([]int{0})
	_, ok := sp.TrySteal()
	require.True(t, ok)

	_, ok = sp.TrySteal()
	assert.False(t, ok, "a claimed publication cannot be stolen twice")
}

func TestStealPointTryStealWithoutPublishFails(t *testing.T) {
	sp := scheduler.NewStealPoint()
	_, ok := sp.TrySteal()
	assert.False(t, ok)
}

func TestStealPointUnpublishAndKeepGoing(t *testing.T) {
	sp := scheduler.NewStealPoint()
	sp.Publish([]int{4})
	sp.UnpublishAndKeepGoing()

	_, ok := sp.TrySteal()
	assert.False(t, ok, "withdrawn publication must not be stealable")
	assert.False(t, sp.WasStolen())
}

func TestStealPointUnpublishAfterStealIsNoOp(t *testing.T) {
	sp := scheduler.NewStealPoint()
	sp.Publish([]int{4})
	_, ok := sp.TrySteal()
	require.True(t, ok)

	sp.UnpublishAndKeepGoing()
	assert.True(t, sp.WasStolen(), "a claimed steal must survive an unrelated UnpublishAndKeepGoing call")
}

func TestStealPointFinishAndReset(t *testing.T) {
	sp := scheduler.NewStealPoint()
	sp.Finish()
	assert.True(t, sp.Finished())

	sp.Reset()
	assert.False(t, sp.Finished())
	assert.False(t, sp.WasStolen())
}

func TestHooksReportsStealAtCorrectDepth(t *testing.T) {
	points := []*scheduler.StealPoint{
		scheduler.NewStealPoint(),
		scheduler.NewStealPoint(),
	}
	hooks := scheduler.NewHooks(points)

	assert.False(t, hooks.StealPoint(0))
	assert.False(t, hooks.StealPoint(1))

	points[1].Publish([]int{2})
	_, ok := points[1].TrySteal()
	require.True(t, ok)

	assert.False(t, hooks.StealPoint(0))
	assert.True(t, hooks.StealPoint(1))
}

func TestHooksOutOfRangeDepthNeverSteals(t *testing.T) {
	hooks := scheduler.NewHooks(nil)
	assert.False(t, hooks.StealPoint(0))
	assert.False(t, hooks.StealPoint(5))
}
