package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

// TeamSize is the number of professors every interview requires
const TeamSize = 3

type Scheduler interface {
	Schedule(
		config SchedulingConfig,
	) (result SchedulingResult, err error)

	Verify(
		result SchedulingResult,
		config SchedulingConfig,
	) bool
}

type Strategy string

const (
	StrategyGreedy           Strategy = "greedy"
	StrategyDivideAndConquer Strategy = "divide-and-conquer"
)

var (
	Strategies = []Strategy{StrategyGreedy, StrategyDivideAndConquer}
	schedulers = map[Strategy]func() Scheduler{
		StrategyGreedy:           NewGreedyScheduler,
		StrategyDivideAndConquer: NewDivideAndConquerScheduler,
	}
	// Divide-and-conquer always works Monday to Friday
	weekend = []time.Weekday{time.Saturday, time.Sunday}
)

func ParseStrategy(strategy string) (Strategy, error) {
	parsed := Strategy(strings.ToLower(strings.TrimSpace(strategy)))
	if !lo.Contains(Strategies, parsed) {
		return "", fmt.Errorf("%q is not a valid strategy, allowed values are %v", strategy, Strategies)
	}
	return parsed, nil
}

func NewScheduler(strategy Strategy) (Scheduler, error) {
	constructor, ok := schedulers[strategy]
	if !ok {
		return nil, fmt.Errorf("%q is not a valid strategy, allowed values are %v", strategy, Strategies)
	}
	return constructor(), nil
}

// WorkingDays builds the calendar following the strategy's convention: greedy honours the excluded weekdays,
// divide-and-conquer ignores them and keeps Monday to Friday
func (strategy Strategy) WorkingDays(start, end WorkingDay, excluded []time.Weekday) []WorkingDay {
	if strategy == StrategyDivideAndConquer {
		return WorkingDays(start, end, weekend)
	}
	return WorkingDays(start, end, excluded)
}
