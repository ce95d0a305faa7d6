package roster

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/limaJavier/interview-scheduling/pkg/model"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateProfessor = errors.New("professor already exists")
	ErrInvalidProfessor   = errors.New("invalid professor")
	ErrInvalidTeam        = errors.New("invalid team")
)

// Repository stores the professors and the interview teams that a scheduling run reads
type Repository interface {
	Professors(ctx context.Context) ([]model.Professor, error)
	AddProfessor(ctx context.Context, professor model.Professor) error
	RemoveProfessor(ctx context.Context, name string) error
	Teams(ctx context.Context) ([]model.Team, error)
	// AddTeam stores a team under the next free id (greatest id + 1) and returns it
	AddTeam(ctx context.Context, professors []string) (model.Team, error)
	RemoveTeam(ctx context.Context, id uint64) error
}

type professorInput struct {
	Name           string `validate:"required,max=100"`
	AvailableStart int    `validate:"gte=0,lte=1440"`
	AvailableEnd   int    `validate:"gtfield=AvailableStart,lte=1440"`
}

type teamInput struct {
	Professors []string `validate:"len=3,dive,required"`
}

var validate = validator.New()

func validateProfessor(professor model.Professor) error {
	if err := validate.Struct(professorInput(professor)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProfessor, err)
	}
	return nil
}

func validateTeam(professors []string) error {
	if err := validate.Struct(teamInput{Professors: professors}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTeam, err)
	}
	return nil
}

// Roster loads everything a scheduling run needs from repository
func Roster(ctx context.Context, repository Repository) (model.RosterInput, error) {
	professors, err := repository.Professors(ctx)
	if err != nil {
		return model.RosterInput{}, fmt.Errorf("list professors: %w", err)
	}
	teams, err := repository.Teams(ctx)
	if err != nil {
		return model.RosterInput{}, fmt.Errorf("list teams: %w", err)
	}
	return model.RosterInput{Professors: professors, Teams: teams}, nil
}

// Seed fills an empty repository with professors and teams. A repository holding any professor or team is left as is
func Seed(ctx context.Context, repository Repository, professors []model.Professor, teams []model.Team) (bool, error) {
	current, err := Roster(ctx, repository)
	if err != nil {
		return false, err
	}
	if len(current.Professors) > 0 || len(current.Teams) > 0 {
		return false, nil
	}

	for _, professor := range professors {
		if err := repository.AddProfessor(ctx, professor); err != nil {
			return false, fmt.Errorf("seed professor %q: %w", professor.Name, err)
		}
	}
	for _, team := range teams {
		if _, err := repository.AddTeam(ctx, team.Professors); err != nil {
			return false, fmt.Errorf("seed team %d: %w", team.Id, err)
		}
	}
	return true, nil
}
