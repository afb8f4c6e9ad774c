package streak

import (
	"math"
	"time"

	"github.com/jinzhu/now"
)

// Data is a user's streak state. Weekly is Monday-first; TotalCorrect
// accumulates quiz percentages so accuracy is their running average.
type Data struct {
	Current      int        `json:"current"`
	Longest      int        `json:"longest"`
	LastActivity *time.Time `json:"last_activity"`
	Weekly       [7]bool    `json:"weekly"`
	TotalQuizzes int        `json:"total_quizzes"`
	TotalCorrect float64    `json:"-"`
}

// Advance applies one day of activity to the streak. Same-day repeats
// are a no-op; a one-day gap extends the run; anything longer breaks it
// back to 1. Longest is a high-water mark and never decreases.
func Advance(d Data, today time.Time) Data {
	day := now.With(today).BeginningOfDay()

	switch {
	case d.LastActivity == nil:
		d.Current = 1
	default:
		last := now.With(*d.LastActivity).BeginningOfDay()
		gap := int(day.Sub(last).Hours() / 24)
		switch {
		case gap == 0:
			return d
		case gap == 1:
			d.Current++
		default:
			d.Current = 1
		}
	}

	if d.Current > d.Longest {
		d.Longest = d.Current
	}
	d.Weekly[weekdaySlot(day)] = true
	d.LastActivity = &day
	return d
}

// RecordQuiz folds a graded quiz percentage into the running totals
func RecordQuiz(d Data, percentage float64) Data {
	d.TotalQuizzes++
	d.TotalCorrect += percentage
	return d
}

// Accuracy is the rounded average percentage across recorded quizzes
func (d Data) Accuracy() int {
	quizzes := d.TotalQuizzes
	if quizzes < 1 {
		quizzes = 1
	}
	return int(math.Round(d.TotalCorrect / float64(quizzes)))
}

// Monday is slot 0, Sunday slot 6
func weekdaySlot(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
