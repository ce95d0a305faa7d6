package model

type predicateEvaluator interface {
	// Checks whether the professor's window contains [slotStart, slotStart+duration). Unknown professors are available
	ProfessorAvailable(professor string, slotStart, duration int) bool

	// Checks whether every professor of the team is available for the slot
	TeamAvailable(team Team, slotStart, duration int) bool

	// Checks whether the professor is present in the roster
	Known(professor string) bool

	// Returns the intersection of the known professors' windows; known is false when none of them is in the roster
	CommonWindow(team Team) (start, end int, known bool)
}

func newPredicateEvaluator(professors []Professor) predicateEvaluator {
	return newPredicateEvaluatorStandard(professors)
}
