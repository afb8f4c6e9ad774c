package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFirstActivityStartsAtOne(t *testing.T) {
	d := Advance(Data{}, day(2026, time.March, 2)) // a Monday

	assert.Equal(t, 1, d.Current)
	assert.Equal(t, 1, d.Longest)
	require.NotNil(t, d.LastActivity)
	assert.True(t, d.Weekly[0])
}

func TestSameDayIsNoOp(t *testing.T) {
	d := Advance(Data{}, day(2026, time.March, 2))
	// later the same day, different wall clock
	again := Advance(d, time.Date(2026, time.March, 2, 22, 15, 0, 0, time.UTC))

	assert.Equal(t, d, again)
}

func TestConsecutiveDayIncrements(t *testing.T) {
	d := Advance(Data{}, day(2026, time.March, 2))
	d = Advance(d, day(2026, time.March, 3))
	d = Advance(d, day(2026, time.March, 4))

	assert.Equal(t, 3, d.Current)
	assert.Equal(t, 3, d.Longest)
	assert.True(t, d.Weekly[0])
	assert.True(t, d.Weekly[1])
	assert.True(t, d.Weekly[2])
}

func TestGapBreaksStreak(t *testing.T) {
	d := Advance(Data{}, day(2026, time.March, 2))
	d = Advance(d, day(2026, time.March, 3))
	d = Advance(d, day(2026, time.March, 6)) // 3-day gap

	assert.Equal(t, 1, d.Current)
	assert.Equal(t, 2, d.Longest) // high-water mark survives
}

func TestLongestNeverDecreases(t *testing.T) {
	d := Data{Current: 1, Longest: 9}
	last := day(2026, time.March, 2)
	d.LastActivity = &last

	d = Advance(d, day(2026, time.March, 3))
	assert.Equal(t, 2, d.Current)
	assert.Equal(t, 9, d.Longest)
}

func TestWeekdaySlots(t *testing.T) {
	// Sunday lands in the last slot
	d := Advance(Data{}, day(2026, time.March, 8))
	assert.True(t, d.Weekly[6])

	d = Advance(d, day(2026, time.March, 9)) // Monday
	assert.True(t, d.Weekly[0])
}

func TestAccuracyAveragesPercentages(t *testing.T) {
	var d Data
	assert.Zero(t, d.Accuracy())

	d = RecordQuiz(d, 60)
	d = RecordQuiz(d, 100)
	d = RecordQuiz(d, 80)

	assert.Equal(t, 3, d.TotalQuizzes)
	assert.Equal(t, 80, d.Accuracy())

	d = RecordQuiz(d, 33)
	assert.Equal(t, 68, d.Accuracy()) // 273/4 rounds to 68
}
