package quiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathwise/catalog"
)

func TestQuestionsForLessonOwnQuiz(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	questions, ok := QuestionsForLesson("calculo", "limites-1", rng)
	require.True(t, ok)
	require.Len(t, questions, 3)
	assert.Equal(t, "lim-q1", questions[0].ID)
}

func TestQuestionsForLessonFallbackSample(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	questions, ok := QuestionsForLesson("calculo", "no-such-lesson", rng)
	require.True(t, ok)
	assert.Len(t, questions, 5)

	// no duplicates
	seen := make(map[string]bool)
	for _, q := range questions {
		assert.False(t, seen[q.ID], "duplicate question %s", q.ID)
		seen[q.ID] = true
	}
}

func TestSamplingReproducible(t *testing.T) {
	first, _ := QuestionsForLesson("quimica", "missing", rand.New(rand.NewSource(7)))
	second, _ := QuestionsForLesson("quimica", "missing", rand.New(rand.NewSource(7)))
	assert.Equal(t, first, second)

	other, _ := QuestionsForLesson("quimica", "missing", rand.New(rand.NewSource(8)))
	assert.NotEqual(t, first, other) // different seed, different order
}

func TestQuestionsForUnknownCourse(t *testing.T) {
	_, ok := QuestionsForLesson("astronomia", "missing", rand.New(rand.NewSource(1)))
	assert.False(t, ok)
}

func TestGradeThreeOfFivePasses(t *testing.T) {
	questions := []catalog.Question{
		{CorrectIndex: 0}, {CorrectIndex: 1}, {CorrectIndex: 2},
		{CorrectIndex: 0}, {CorrectIndex: 3},
	}
	result := Grade(questions, []int{0, 1, 2, 1, 1})

	assert.Equal(t, 3, result.Correct)
	assert.Equal(t, 60, result.Percentage)
	assert.True(t, result.Passed)
}

func TestGradeBelowThresholdFails(t *testing.T) {
	questions := []catalog.Question{
		{CorrectIndex: 0}, {CorrectIndex: 1}, {CorrectIndex: 2},
	}
	result := Grade(questions, []int{0, 0, 0})

	assert.Equal(t, 1, result.Correct)
	assert.Equal(t, 33, result.Percentage)
	assert.False(t, result.Passed)
}

func TestGradeRounding(t *testing.T) {
	questions := make([]catalog.Question, 3)
	result := Grade(questions, []int{0, 0})
	// 2 of 3 correct rounds 66.67 to 67
	assert.Equal(t, 2, result.Correct)
	assert.Equal(t, 67, result.Percentage)
	assert.True(t, result.Passed)
}

func TestGradeShortAndEmptyAnswers(t *testing.T) {
	questions := []catalog.Question{{CorrectIndex: 0}, {CorrectIndex: 1}}

	result := Grade(questions, []int{0})
	assert.Equal(t, 1, result.Correct)
	assert.Equal(t, 50, result.Percentage)

	empty := Grade(nil, nil)
	assert.Zero(t, empty.Total)
	assert.False(t, empty.Passed)
}
