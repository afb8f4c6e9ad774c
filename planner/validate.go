package planner

import (
	"github.com/jinzhu/now"

	"pathwise/catalog"
)

// UnitWarning flags a unit whose material does not fit its share of the
// configured study time
type UnitWarning struct {
	UnitID          string `json:"unit_id"`
	UnitTitle       string `json:"unit_title"`
	RequiredMinutes int    `json:"required_minutes"`
	AllottedMinutes int    `json:"allotted_minutes"`
}

// TimeValidation is the advisory result of checking a config against a
// course. It never blocks plan generation.
type TimeValidation struct {
	IsValid          bool          `json:"is_valid"`
	AssignedMinutes  int           `json:"assigned_minutes"`
	RequiredMinutes  int           `json:"required_minutes"`
	ShortfallMinutes int           `json:"shortfall_minutes"`
	UnitWarnings     []UnitWarning `json:"unit_warnings,omitempty"`
}

// AssignedMinutes computes the total study time a config allots. Custom
// mode is sessions times duration; period mode rounds the date range up
// to whole weeks and multiplies by the weekly cadence.
func AssignedMinutes(cfg SessionConfig) int {
	if cfg.Mode == ModeCustom {
		return cfg.TotalSessions * cfg.SessionDuration
	}

	start := now.With(cfg.StartDate).BeginningOfDay()
	end := now.With(cfg.EndDate).BeginningOfDay()
	days := int(end.Sub(start).Hours() / 24)
	if days < 0 {
		days = 0
	}
	weeks := (days + 6) / 7

	return weeks * cfg.SessionsPerWeek * cfg.SessionDuration
}

// ValidateStudyTime compares the assigned time against the course's
// total lesson minutes. On a shortfall, each unit's share of the
// assigned time is taken as proportional to its lesson count and units
// whose own material exceeds that share are flagged.
func ValidateStudyTime(course *catalog.Course, cfg SessionConfig) TimeValidation {
	validation := TimeValidation{
		AssignedMinutes: AssignedMinutes(cfg),
		RequiredMinutes: catalog.TotalDuration(course),
	}

	if validation.AssignedMinutes < validation.RequiredMinutes {
		validation.ShortfallMinutes = validation.RequiredMinutes - validation.AssignedMinutes
	}
	validation.IsValid = validation.ShortfallMinutes == 0

	totalLessons := catalog.TotalLessons(course)
	if validation.IsValid || totalLessons == 0 {
		return validation
	}

	for i := range course.Units {
		unit := &course.Units[i]
		required := catalog.UnitDuration(unit)
		allotted := validation.AssignedMinutes * len(unit.Lessons) / totalLessons
		if required > allotted {
			validation.UnitWarnings = append(validation.UnitWarnings, UnitWarning{
				UnitID:          unit.ID,
				UnitTitle:       unit.Title,
				RequiredMinutes: required,
				AllottedMinutes: allotted,
			})
		}
	}

	return validation
}
