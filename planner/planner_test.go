package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathwise/catalog"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFindTechnique(t *testing.T) {
	pomo, ok := FindTechnique("pomodoro")
	require.True(t, ok)
	assert.Equal(t, 25, pomo.StudyMinutes)
	assert.Equal(t, 5, pomo.BreakMinutes)
	assert.Equal(t, 15, pomo.LongBreakMins)
	assert.Equal(t, 4, pomo.LongBreakEvery)

	feynman, ok := FindTechnique("feynman")
	require.True(t, ok)
	assert.Equal(t, 35, feynman.StudyMinutes)
	assert.Zero(t, feynman.LongBreakEvery)

	_, ok = FindTechnique("cramming")
	assert.False(t, ok)
}

func TestGeneratePlanBatchesAndDates(t *testing.T) {
	course, ok := catalog.FindCourse("calculo")
	require.True(t, ok)

	cfg := SessionConfig{
		TechniqueID: "pomodoro",
		Mode:        ModeCustom,
		StartDate:   date(2026, time.March, 2),
	}
	plan := GeneratePlan(course, cfg)

	// units hold 2, 2, 1 and 1 lessons: four sessions
	require.Len(t, plan.Sessions, 4)
	assert.Equal(t, 4, plan.TotalSessions)
	assert.Equal(t, 195, plan.TotalDuration)
	assert.Equal(t, "Técnica Pomodoro", plan.TechniqueName)

	assert.Equal(t, "2026-03-02", plan.Sessions[0].Date)
	assert.Equal(t, "2026-03-04", plan.Sessions[1].Date)
	assert.Equal(t, "2026-03-06", plan.Sessions[2].Date)
	assert.Equal(t, "2026-03-08", plan.Sessions[3].Date)

	assert.Equal(t, "09:00", plan.Sessions[0].Time)
	assert.Equal(t, "14:00", plan.Sessions[1].Time)
	assert.Equal(t, "16:00", plan.Sessions[2].Time)
	assert.Equal(t, "19:00", plan.Sessions[3].Time)

	// concatenated sessions preserve catalog lesson order exactly
	var got []string
	for _, s := range plan.Sessions {
		for _, l := range s.Lessons {
			got = append(got, l.ID)
		}
	}
	var want []string
	for _, unit := range course.Units {
		for _, lesson := range unit.Lessons {
			want = append(want, lesson.ID)
		}
	}
	assert.Equal(t, want, got)
}

func TestGeneratePlanTwoUnitSubset(t *testing.T) {
	full, ok := catalog.FindCourse("calculo")
	require.True(t, ok)

	subset := &catalog.Course{
		ID:    full.ID,
		Name:  full.Name,
		Units: full.Units[:2], // limites + derivadas, 4 lessons
	}

	cfg := SessionConfig{TechniqueID: "pomodoro", StartDate: date(2026, time.March, 2)}
	plan := GeneratePlan(subset, cfg)

	require.Len(t, plan.Sessions, 2)
	assert.Len(t, plan.Sessions[0].Lessons, 2)
	assert.Len(t, plan.Sessions[1].Lessons, 2)
	assert.Equal(t, "2026-03-02", plan.Sessions[0].Date)
	assert.Equal(t, "2026-03-04", plan.Sessions[1].Date)
	assert.Equal(t, "Límites", plan.Sessions[0].UnitTitle)
	assert.Equal(t, "Derivadas", plan.Sessions[1].UnitTitle)
}

func TestGeneratePlanDeterministic(t *testing.T) {
	course, _ := catalog.FindCourse("programacion")
	cfg := SessionConfig{TechniqueID: "active_recall", StartDate: date(2026, time.January, 5)}

	first := GeneratePlan(course, cfg)
	second := GeneratePlan(course, cfg)
	assert.Equal(t, first, second)
}

func TestAssignedMinutes(t *testing.T) {
	custom := SessionConfig{Mode: ModeCustom, TotalSessions: 10, SessionDuration: 15}
	assert.Equal(t, 150, AssignedMinutes(custom))

	// 28 days round to 4 weeks
	period := SessionConfig{
		Mode:            ModePeriod,
		StartDate:       date(2026, time.March, 2),
		EndDate:         date(2026, time.March, 30),
		SessionsPerWeek: 3,
		SessionDuration: 45,
	}
	assert.Equal(t, 4*3*45, AssignedMinutes(period))

	// partial week rounds up
	period.EndDate = date(2026, time.March, 5)
	assert.Equal(t, 1*3*45, AssignedMinutes(period))
}

func TestValidateStudyTimeShortfall(t *testing.T) {
	course := &catalog.Course{
		ID:   "demo",
		Name: "Demo",
		Units: []catalog.Unit{
			{ID: "u1", Title: "Unidad 1", Lessons: []catalog.Lesson{
				{ID: "l1", Duration: 100},
				{ID: "l2", Duration: 100},
			}},
			{ID: "u2", Title: "Unidad 2", Lessons: []catalog.Lesson{
				{ID: "l3", Duration: 100},
			}},
		},
	}

	cfg := SessionConfig{Mode: ModeCustom, TotalSessions: 10, SessionDuration: 15}
	v := ValidateStudyTime(course, cfg)

	assert.False(t, v.IsValid)
	assert.Equal(t, 150, v.AssignedMinutes)
	assert.Equal(t, 300, v.RequiredMinutes)
	assert.Equal(t, 150, v.ShortfallMinutes)
	// both units exceed their lesson-count share of 150 minutes
	require.Len(t, v.UnitWarnings, 2)
	assert.Equal(t, "u1", v.UnitWarnings[0].UnitID)
	assert.Equal(t, 200, v.UnitWarnings[0].RequiredMinutes)
	assert.Equal(t, 100, v.UnitWarnings[0].AllottedMinutes)
}

func TestValidateStudyTimeSufficient(t *testing.T) {
	course, ok := catalog.FindCourse("calculo")
	require.True(t, ok)

	cfg := SessionConfig{Mode: ModeCustom, TotalSessions: 10, SessionDuration: 60}
	v := ValidateStudyTime(course, cfg) // 600 assigned vs 195 required

	assert.True(t, v.IsValid)
	assert.Zero(t, v.ShortfallMinutes)
	assert.Empty(t, v.UnitWarnings)
}
