package study

import (
	"pathwise/planner"
)

// Phase of the countdown timer
type Phase string

const (
	PhaseStudy     Phase = "study"
	PhaseBreak     Phase = "break"
	PhaseLongBreak Phase = "longBreak"
)

// Chime is played when a phase completes. Implementations are
// best-effort; the timer never fails on a silent chime.
type Chime interface {
	Play()
}

// Timer is the phase-switching countdown driving an active study
// session. All mutation goes through Tick, Toggle and Reset; callers
// own the one-second cadence.
type Timer struct {
	technique planner.Technique

	Phase         Phase
	Remaining     int // seconds
	Running       bool
	StudyCount    int // completed study phases
	SubtopicIndex int
	SoundEnabled  bool

	completed     map[int]bool
	subtopicCount int
	chime         Chime
}

// NewTimer starts paused in the study phase at the technique's full
// study duration. subtopicCount is how many content blocks the session
// walks through; chime may be nil.
func NewTimer(technique planner.Technique, subtopicCount int, chime Chime) *Timer {
	return &Timer{
		technique:     technique,
		Phase:         PhaseStudy,
		Remaining:     technique.StudyMinutes * 60,
		SoundEnabled:  true,
		completed:     make(map[int]bool),
		subtopicCount: subtopicCount,
		chime:         chime,
	}
}

// Tick advances the countdown by one second. A no-op while paused.
// Returns true when this tick completed a phase.
func (t *Timer) Tick() bool {
	if !t.Running || t.Remaining <= 0 {
		return false
	}
	t.Remaining--
	if t.Remaining > 0 {
		return false
	}
	t.completePhase()
	return true
}

// Toggle pauses or resumes without touching phase or remaining time
func (t *Timer) Toggle() {
	t.Running = !t.Running
}

// Reset stops the timer and restores the study phase at full duration
func (t *Timer) Reset() {
	t.Running = false
	t.Phase = PhaseStudy
	t.Remaining = t.technique.StudyMinutes * 60
}

// SubtopicDone reports whether a subtopic index was completed
func (t *Timer) SubtopicDone(index int) bool {
	return t.completed[index]
}

func (t *Timer) completePhase() {
	if t.SoundEnabled && t.chime != nil {
		t.chime.Play()
	}

	if t.Phase == PhaseStudy {
		t.StudyCount++
		t.completed[t.SubtopicIndex] = true

		if t.technique.LongBreakEvery > 0 && t.StudyCount%t.technique.LongBreakEvery == 0 {
			t.Phase = PhaseLongBreak
			t.Remaining = t.technique.LongBreakMins * 60
		} else {
			t.Phase = PhaseBreak
			t.Remaining = t.technique.BreakMinutes * 60
		}
	} else {
		t.Phase = PhaseStudy
		t.Remaining = t.technique.StudyMinutes * 60
		if t.SubtopicIndex < t.subtopicCount-1 {
			t.SubtopicIndex++
		}
	}

	// waits for the user to start the next phase
	t.Running = false
}
