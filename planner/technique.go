package planner

// Technique is a study method with its timer cadence. Durations are in
// minutes; LongBreakEvery is 0 for techniques without a long break.
type Technique struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	StudyMinutes   int    `json:"study_minutes"`
	BreakMinutes   int    `json:"break_minutes"`
	LongBreakMins  int    `json:"long_break_minutes,omitempty"`
	LongBreakEvery int    `json:"long_break_every,omitempty"`
}

var techniques = []Technique{
	{
		ID:             "pomodoro",
		Name:           "Técnica Pomodoro",
		Description:    "Estudia 25 min, descansa 5 min. Cada 4 sesiones, descansa 15 min.",
		StudyMinutes:   25,
		BreakMinutes:   5,
		LongBreakMins:  15,
		LongBreakEvery: 4,
	},
	{
		ID:           "spaced_repetition",
		Name:         "Repetición Espaciada",
		Description:  "Revisa el material en intervalos crecientes para mejor retención.",
		StudyMinutes: 30,
		BreakMinutes: 10,
	},
	{
		ID:           "active_recall",
		Name:         "Recuerdo Activo",
		Description:  "Lee, cierra el material, intenta recordar, y luego verifica.",
		StudyMinutes: 20,
		BreakMinutes: 5,
	},
	{
		ID:           "feynman",
		Name:         "Técnica Feynman",
		Description:  "Aprende explicando el concepto como si le enseñaras a un niño.",
		StudyMinutes: 35,
		BreakMinutes: 10,
	},
}

// Techniques returns the supported study techniques in fixed order
func Techniques() []Technique {
	return techniques
}

// FindTechnique looks up a technique by id
func FindTechnique(id string) (Technique, bool) {
	for _, t := range techniques {
		if t.ID == id {
			return t, true
		}
	}
	return Technique{}, false
}
