package study

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathwise/planner"
)

type countingChime struct{ plays int }

func (c *countingChime) Play() { c.plays++ }

func pomodoro(t *testing.T) planner.Technique {
	t.Helper()
	technique, ok := planner.FindTechnique("pomodoro")
	require.True(t, ok)
	return technique
}

func runPhase(t *testing.T, timer *Timer) {
	t.Helper()
	if !timer.Running {
		timer.Toggle()
	}
	for i := timer.Remaining; i > 1; i-- {
		require.False(t, timer.Tick())
	}
	require.True(t, timer.Tick())
}

func TestTimerStartsPausedAtFullStudy(t *testing.T) {
	timer := NewTimer(pomodoro(t), 3, nil)

	assert.Equal(t, PhaseStudy, timer.Phase)
	assert.Equal(t, 25*60, timer.Remaining)
	assert.False(t, timer.Running)

	// paused timers don't count down
	assert.False(t, timer.Tick())
	assert.Equal(t, 25*60, timer.Remaining)
}

func TestStudyPhaseCompletesToBreak(t *testing.T) {
	chime := &countingChime{}
	timer := NewTimer(pomodoro(t), 3, chime)

	runPhase(t, timer)

	assert.Equal(t, PhaseBreak, timer.Phase)
	assert.Equal(t, 5*60, timer.Remaining)
	assert.Equal(t, 1, timer.StudyCount)
	assert.True(t, timer.SubtopicDone(0))
	assert.False(t, timer.Running)
	assert.Equal(t, 1, chime.plays)
}

func TestEveryFourthPomodoroIsLongBreak(t *testing.T) {
	timer := NewTimer(pomodoro(t), 10, nil)

	for i := 0; i < 3; i++ {
		runPhase(t, timer) // study
		assert.Equal(t, PhaseBreak, timer.Phase)
		runPhase(t, timer) // break
		assert.Equal(t, PhaseStudy, timer.Phase)
	}

	runPhase(t, timer) // 4th study
	assert.Equal(t, PhaseLongBreak, timer.Phase)
	assert.Equal(t, 15*60, timer.Remaining)
}

func TestNoLongBreakWithoutCadence(t *testing.T) {
	feynman, ok := planner.FindTechnique("feynman")
	require.True(t, ok)
	timer := NewTimer(feynman, 2, nil)

	for i := 0; i < 4; i++ {
		runPhase(t, timer)
		assert.Equal(t, PhaseBreak, timer.Phase)
		assert.Equal(t, 10*60, timer.Remaining)
		runPhase(t, timer)
		assert.Equal(t, PhaseStudy, timer.Phase)
	}
}

func TestBreakAdvancesSubtopic(t *testing.T) {
	timer := NewTimer(pomodoro(t), 2, nil)

	runPhase(t, timer) // study completes subtopic 0
	assert.Equal(t, 0, timer.SubtopicIndex)
	runPhase(t, timer) // break advances
	assert.Equal(t, 1, timer.SubtopicIndex)

	// last subtopic: index stays put
	runPhase(t, timer)
	runPhase(t, timer)
	assert.Equal(t, 1, timer.SubtopicIndex)
}

func TestTogglePreservesState(t *testing.T) {
	timer := NewTimer(pomodoro(t), 1, nil)
	timer.Toggle()
	for i := 0; i < 10; i++ {
		timer.Tick()
	}
	remaining := timer.Remaining

	timer.Toggle()
	assert.False(t, timer.Tick())
	assert.Equal(t, remaining, timer.Remaining)
	assert.Equal(t, PhaseStudy, timer.Phase)

	timer.Toggle()
	assert.False(t, timer.Tick())
	assert.Equal(t, remaining-1, timer.Remaining)
}

func TestResetRestoresStudyPhase(t *testing.T) {
	timer := NewTimer(pomodoro(t), 3, nil)
	runPhase(t, timer)
	require.Equal(t, PhaseBreak, timer.Phase)

	timer.Reset()
	assert.Equal(t, PhaseStudy, timer.Phase)
	assert.Equal(t, 25*60, timer.Remaining)
	assert.False(t, timer.Running)
}

func TestChimeSuppressedWhenMuted(t *testing.T) {
	chime := &countingChime{}
	timer := NewTimer(pomodoro(t), 1, chime)
	timer.SoundEnabled = false

	runPhase(t, timer)
	assert.Zero(t, chime.plays)
}
