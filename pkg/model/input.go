package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type Professor struct {
	Name           string
	AvailableStart int // Minutes since midnight
	AvailableEnd   int // Minutes since midnight
}

type Team struct {
	Id         uint64
	Professors []string
}

// WorkingDay is a calendar date without time of day. Two values are equal (==) iff year, month and day match
type WorkingDay struct {
	Year  int
	Month time.Month
	Day   int
}

type ScheduleEntry struct {
	Team        Team
	Day         WorkingDay
	StartMinute int
	EndMinute   int
	RoomIndex   int // Concurrent slot (1..MaxConcurrent) occupied when the entry was placed
}

type UnknownProfessorPolicy int

const (
	UnknownProfessorPermissive UnknownProfessorPolicy = iota // Unknown professors are treated as always available
	UnknownProfessorStrict                                   // Unknown professors abort the run with a DataIntegrityError
)

type SchedulingConfig struct {
	WorkingDays       []WorkingDay
	AppStart          int
	AppEnd            int
	Duration          int
	MaxConcurrent     int
	Teams             []Team
	Professors        []Professor
	UnknownProfessors UnknownProfessorPolicy
}

type SchedulingResult struct {
	Scheduled   []ScheduleEntry
	Unscheduled []Team
}

type RawProfessor struct {
	Name           string
	AvailableStart string `mapstructure:"availableStart"`
	AvailableEnd   string `mapstructure:"availableEnd"`
}

type RawRosterInput struct {
	Professors []RawProfessor
	Teams      []Team
}

type RosterInput struct {
	Professors []Professor
	Teams      []Team
}

func ParseUnknownProfessorPolicy(policy string) (UnknownProfessorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case "", "permissive":
		return UnknownProfessorPermissive, nil
	case "strict":
		return UnknownProfessorStrict, nil
	}
	return UnknownProfessorPermissive, fmt.Errorf("unknown-professor policy must be \"permissive\" or \"strict\": %q", policy)
}

func (policy UnknownProfessorPolicy) String() string {
	if policy == UnknownProfessorStrict {
		return "strict"
	}
	return "permissive"
}

// InputFromFile reads a roster from a JSON or YAML file, chosen by extension
func InputFromFile(file string) (RosterInput, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return InputFromYaml(file)
	default:
		return InputFromJson(file)
	}
}

func InputFromJson(file string) (RosterInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return RosterInput{}, err
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return RosterInput{}, err
	}
	return decodeRawInput(inputJson)
}

func InputFromYaml(file string) (RosterInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return RosterInput{}, err
	}
	var inputYaml map[string]any
	if err := yaml.Unmarshal(bytes, &inputYaml); err != nil {
		return RosterInput{}, err
	}
	return decodeRawInput(inputYaml)
}

func decodeRawInput(document map[string]any) (RosterInput, error) {
	var rawInput RawRosterInput
	if err := mapstructure.Decode(document, &rawInput); err != nil {
		return RosterInput{}, fmt.Errorf("cannot decode roster: %w", err)
	}
	return ProcessRawInput(rawInput)
}

func ProcessRawInput(rawInput RawRosterInput) (RosterInput, error) {
	input := RosterInput{
		Professors: make([]Professor, 0, len(rawInput.Professors)),
		Teams:      make([]Team, 0, len(rawInput.Teams)),
	}

	//** Manage professors
	names := make(map[string]bool)
	for _, rawProfessor := range rawInput.Professors {
		name := strings.TrimSpace(rawProfessor.Name)
		if name == "" {
			return RosterInput{}, fmt.Errorf("professor name must not be empty")
		} else if names[name] {
			return RosterInput{}, fmt.Errorf("professor \"%v\" is defined more than once", name)
		}
		names[name] = true

		start, err := MinutesOfDay(rawProfessor.AvailableStart)
		if err != nil {
			return RosterInput{}, fmt.Errorf("professor \"%v\": %w", name, err)
		}
		end, err := MinutesOfDay(rawProfessor.AvailableEnd)
		if err != nil {
			return RosterInput{}, fmt.Errorf("professor \"%v\": %w", name, err)
		}
		if start >= end {
			return RosterInput{}, fmt.Errorf("professor \"%v\" must start before it ends: %v - %v", name, FormatMinutes(start), FormatMinutes(end))
		}

		input.Professors = append(input.Professors, Professor{Name: name, AvailableStart: start, AvailableEnd: end})
	}

	//** Manage teams
	ids := make(map[uint64]bool)
	for _, team := range rawInput.Teams {
		if ids[team.Id] {
			return RosterInput{}, fmt.Errorf("team %d is defined more than once", team.Id)
		} else if len(team.Professors) != TeamSize {
			return RosterInput{}, fmt.Errorf("team %d must have exactly %d professors: %v", team.Id, TeamSize, team.Professors)
		}
		ids[team.Id] = true

		input.Teams = append(input.Teams, Team{
			Id:         team.Id,
			Professors: lo.Map(team.Professors, func(name string, _ int) string { return strings.TrimSpace(name) }),
		})
	}

	return input, nil
}
