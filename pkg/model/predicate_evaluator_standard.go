package model

import (
	"github.com/samber/lo"
)

type predicateEvaluatorStandard struct {
	professors map[string]Professor // Roster snapshot indexed by name
}

func newPredicateEvaluatorStandard(professors []Professor) *predicateEvaluatorStandard {
	return &predicateEvaluatorStandard{
		professors: lo.KeyBy(professors, func(professor Professor) string { return professor.Name }),
	}
}

func (evaluator *predicateEvaluatorStandard) ProfessorAvailable(professor string, slotStart, duration int) bool {
	found, ok := evaluator.professors[professor]
	if !ok {
		return true
	}
	return slotStart >= found.AvailableStart && slotStart+duration <= found.AvailableEnd
}

func (evaluator *predicateEvaluatorStandard) TeamAvailable(team Team, slotStart, duration int) bool {
	return lo.EveryBy(team.Professors, func(professor string) bool {
		return evaluator.ProfessorAvailable(professor, slotStart, duration)
	})
}

func (evaluator *predicateEvaluatorStandard) Known(professor string) bool {
	_, ok := evaluator.professors[professor]
	return ok
}

func (evaluator *predicateEvaluatorStandard) CommonWindow(team Team) (start, end int, known bool) {
	start, end = 0, MinutesPerDay
	for _, name := range team.Professors {
		professor, ok := evaluator.professors[name]
		if !ok {
			continue
		}
		known = true
		start = max(start, professor.AvailableStart)
		end = min(end, professor.AvailableEnd)
	}
	return start, end, known
}
