package catalog

// Question is a single multiple-choice quiz question
type Question struct {
	ID           string   `json:"id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// Lesson belongs to exactly one unit
type Lesson struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    int        `json:"duration"` // minutes
	Content     []string   `json:"content"`
	Quiz        []Question `json:"quiz"`
}

// Unit belongs to exactly one course
type Unit struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// Course is the root of the static catalog tree
type Course struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Units       []Unit `json:"units"`
}

var (
	byCourseID map[string]*Course
	byLessonID map[string]lessonRef
)

type lessonRef struct {
	course *Course
	unit   *Unit
	lesson *Lesson
}

func init() {
	byCourseID = make(map[string]*Course, len(courses))
	byLessonID = make(map[string]lessonRef)

	for ci := range courses {
		course := &courses[ci]
		byCourseID[course.ID] = course
		for ui := range course.Units {
			unit := &course.Units[ui]
			for li := range unit.Lessons {
				byLessonID[unit.Lessons[li].ID] = lessonRef{
					course: course,
					unit:   unit,
					lesson: &unit.Lessons[li],
				}
			}
		}
	}
}

// Courses returns the full catalog in fixed order
func Courses() []Course {
	return courses
}

// FindCourse looks up a course by id
func FindCourse(id string) (*Course, bool) {
	c, ok := byCourseID[id]
	return c, ok
}

// FindLesson looks up a lesson by id together with its owning unit and course
func FindLesson(id string) (*Lesson, *Unit, *Course, bool) {
	ref, ok := byLessonID[id]
	if !ok {
		return nil, nil, nil, false
	}
	return ref.lesson, ref.unit, ref.course, true
}

// TotalLessons counts lessons across all units of a course
func TotalLessons(c *Course) int {
	total := 0
	for _, unit := range c.Units {
		total += len(unit.Lessons)
	}
	return total
}

// TotalDuration sums lesson durations (minutes) across all units of a course
func TotalDuration(c *Course) int {
	total := 0
	for _, unit := range c.Units {
		total += UnitDuration(&unit)
	}
	return total
}

// UnitDuration sums lesson durations (minutes) within a unit
func UnitDuration(u *Unit) int {
	total := 0
	for _, lesson := range u.Lessons {
		total += lesson.Duration
	}
	return total
}

// CourseQuestions returns every quiz question of a course in catalog order
func CourseQuestions(courseID string) []Question {
	course, ok := FindCourse(courseID)
	if !ok {
		return nil
	}

	var questions []Question
	for _, unit := range course.Units {
		for _, lesson := range unit.Lessons {
			questions = append(questions, lesson.Quiz...)
		}
	}
	return questions
}
