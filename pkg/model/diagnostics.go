package model

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
)

type FailureReason string

const (
	ReasonInsufficientProfessorOverlap FailureReason = "insufficient-professor-overlap"
	ReasonOutsideApplicationWindow     FailureReason = "outside-application-window"
	ReasonDuplicateProfessor           FailureReason = "duplicate-professor"
	ReasonResourceSaturation           FailureReason = "resource-saturation"
)

// Diagnosis explains why a team could not be placed. It is derived from the inputs alone, not from the search trace,
// so when saturation and a tight window both contribute it may name only one of them
type Diagnosis struct {
	Team        Team
	Reason      FailureReason
	CommonStart int // Intersection of the professors' windows
	CommonEnd   int
	Message     string
}

func ExplainFailure(team Team, config SchedulingConfig) Diagnosis {
	evaluator := newPredicateEvaluator(config.Professors)
	commonStart, commonEnd, _ := evaluator.CommonWindow(team)
	diagnosis := Diagnosis{Team: team, CommonStart: commonStart, CommonEnd: commonEnd}

	//** Professors' windows must overlap for at least one interview
	if commonStart >= commonEnd || commonEnd-commonStart < config.Duration {
		diagnosis.Reason = ReasonInsufficientProfessorOverlap
		diagnosis.Message = fmt.Sprintf(
			"professors' schedules do not overlap enough: common window %v - %v (requires %v continuous hours)",
			FormatMinutes(commonStart), FormatMinutes(commonEnd), strconv.FormatFloat(float64(config.Duration)/60, 'f', -1, 64),
		)
		return diagnosis
	}

	//** The common window must overlap the application window for at least one interview
	windowStart, windowEnd := max(commonStart, config.AppStart), min(commonEnd, config.AppEnd)
	if windowEnd-windowStart < config.Duration {
		diagnosis.Reason = ReasonOutsideApplicationWindow
		diagnosis.Message = fmt.Sprintf(
			"professors' common window does not match the application window (%v - %v) enough",
			FormatMinutes(config.AppStart), FormatMinutes(config.AppEnd),
		)
		return diagnosis
	}

	if hasDuplicateProfessors(team) {
		diagnosis.Reason = ReasonDuplicateProfessor
		diagnosis.Message = fmt.Sprintf("a professor cannot sit twice in the same interview: %v", lo.FindDuplicates(team.Professors))
		return diagnosis
	}

	diagnosis.Reason = ReasonResourceSaturation
	diagnosis.Message = "every available slot is taken by other interviews or the concurrency limit was reached; " +
		"consider adding working days, widening the application window or raising the concurrency limit"
	return diagnosis
}

// Explain diagnoses every unscheduled team of result, in order
func Explain(result SchedulingResult, config SchedulingConfig) []Diagnosis {
	return lo.Map(result.Unscheduled, func(team Team, _ int) Diagnosis {
		return ExplainFailure(team, config)
	})
}
