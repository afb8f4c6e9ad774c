package quiz

import (
	"math"
	"math/rand"

	"pathwise/catalog"
)

// PassThreshold is the minimum percentage to pass a quiz
const PassThreshold = 60

const sampleSize = 5

// Result of grading a set of answers
type Result struct {
	Correct    int  `json:"correct"`
	Total      int  `json:"total"`
	Percentage int  `json:"percentage"`
	Passed     bool `json:"passed"`
}

// QuestionsForLesson selects the quiz for a lesson: the lesson's own
// questions when it has any, otherwise a sample of up to five drawn
// from the whole course pool without replacement. rng drives the
// sampling so callers can make it reproducible.
func QuestionsForLesson(courseID, lessonID string, rng *rand.Rand) ([]catalog.Question, bool) {
	lesson, _, _, ok := catalog.FindLesson(lessonID)
	if ok && len(lesson.Quiz) > 0 {
		return lesson.Quiz, true
	}

	pool := catalog.CourseQuestions(courseID)
	if len(pool) == 0 {
		return nil, false
	}

	shuffled := make([]catalog.Question, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if len(shuffled) > sampleSize {
		shuffled = shuffled[:sampleSize]
	}
	return shuffled, true
}

// Grade scores selected answer indexes against the questions. Answers
// beyond len(questions) are ignored; missing answers count as wrong.
func Grade(questions []catalog.Question, answers []int) Result {
	result := Result{Total: len(questions)}
	if result.Total == 0 {
		return result
	}

	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectIndex {
			result.Correct++
		}
	}

	result.Percentage = int(math.Round(float64(result.Correct) / float64(result.Total) * 100))
	result.Passed = result.Percentage >= PassThreshold
	return result
}
