package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoursesOrder(t *testing.T) {
	list := Courses()
	require.Len(t, list, 3)
	assert.Equal(t, "calculo", list[0].ID)
	assert.Equal(t, "quimica", list[1].ID)
	assert.Equal(t, "programacion", list[2].ID)
}

func TestFindCourse(t *testing.T) {
	c, ok := FindCourse("calculo")
	require.True(t, ok)
	assert.Equal(t, "Cálculo de una Variable", c.Name)
	assert.Len(t, c.Units, 4)

	_, ok = FindCourse("astronomia")
	assert.False(t, ok)
}

func TestFindLesson(t *testing.T) {
	lesson, unit, course, ok := FindLesson("derivadas-2")
	require.True(t, ok)
	assert.Equal(t, "Reglas de Derivación", lesson.Title)
	assert.Equal(t, "derivadas", unit.ID)
	assert.Equal(t, "calculo", course.ID)
	assert.Equal(t, 40, lesson.Duration)

	_, _, _, ok = FindLesson("no-such-lesson")
	assert.False(t, ok)
}

func TestTotalLessonsAndDuration(t *testing.T) {
	c, ok := FindCourse("calculo")
	require.True(t, ok)
	assert.Equal(t, 6, TotalLessons(c))
	assert.Equal(t, 195, TotalDuration(c)) // 30+25+35+40+30+35

	q, ok := FindCourse("quimica")
	require.True(t, ok)
	assert.Equal(t, 7, TotalLessons(q))

	p, ok := FindCourse("programacion")
	require.True(t, ok)
	assert.Equal(t, 9, TotalLessons(p))
}

func TestUnitDuration(t *testing.T) {
	c, _ := FindCourse("calculo")
	assert.Equal(t, 55, UnitDuration(&c.Units[0])) // limites: 30+25
	assert.Equal(t, 75, UnitDuration(&c.Units[1])) // derivadas: 35+40
}

func TestCourseQuestionsCatalogOrder(t *testing.T) {
	questions := CourseQuestions("calculo")
	require.Len(t, questions, 14)
	assert.Equal(t, "lim-q1", questions[0].ID)
	assert.Equal(t, "intdef-q2", questions[len(questions)-1].ID)

	assert.Nil(t, CourseQuestions("astronomia"))
}

func TestContentForLesson(t *testing.T) {
	content, ok := ContentForLesson("limites-1")
	require.True(t, ok)
	assert.Equal(t, "Concepto de Límite", content.Title)
	require.Len(t, content.Subtopics, 2)
	assert.Equal(t, "definicion-intuitiva", content.Subtopics[0].ID)
	assert.NotEmpty(t, content.Summary)

	// lessons without deep material fall back to the short bullets
	_, ok = ContentForLesson("sol-1")
	assert.False(t, ok)
}

func TestQuestionShapes(t *testing.T) {
	for _, course := range Courses() {
		for _, unit := range course.Units {
			for _, lesson := range unit.Lessons {
				for _, q := range lesson.Quiz {
					assert.True(t, len(q.Options) >= 2, "question %s needs options", q.ID)
					assert.GreaterOrEqual(t, q.CorrectIndex, 0)
					assert.Less(t, q.CorrectIndex, len(q.Options), "question %s correct index in range", q.ID)
				}
			}
		}
	}
}
