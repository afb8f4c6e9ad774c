package planController

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pathwise/catalog"
	"pathwise/planner"
)

// The stored snapshot must decode back to the exact session list the
// generator produced, so GET /plan/:id mirrors the generate response.
func TestPlanSnapshotRoundTrip(t *testing.T) {
	course, ok := catalog.FindCourse("calculo")
	require.True(t, ok)

	cfg := planner.SessionConfig{
		TechniqueID:     "pomodoro",
		Mode:            planner.ModeCustom,
		StartDate:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		TotalSessions:   10,
		SessionDuration: 45,
	}

	original := planSnapshot{
		Plan:       planner.GeneratePlan(course, cfg),
		Validation: planner.ValidateStudyTime(course, cfg),
	}
	require.NotEmpty(t, original.Plan.Sessions)

	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded planSnapshot
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	require.Equal(t, original.Plan.Sessions, decoded.Plan.Sessions)
	require.Equal(t, original, decoded)
}

// An underfunded config's warnings have to survive the roundtrip too
func TestPlanSnapshotKeepsValidationWarnings(t *testing.T) {
	course, ok := catalog.FindCourse("calculo")
	require.True(t, ok)

	cfg := planner.SessionConfig{
		TechniqueID:     "pomodoro",
		Mode:            planner.ModeCustom,
		StartDate:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		TotalSessions:   2,
		SessionDuration: 15,
	}

	original := planSnapshot{
		Plan:       planner.GeneratePlan(course, cfg),
		Validation: planner.ValidateStudyTime(course, cfg),
	}
	require.False(t, original.Validation.IsValid)
	require.NotEmpty(t, original.Validation.UnitWarnings)

	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded planSnapshot
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	require.Equal(t, original.Validation, decoded.Validation)
}
