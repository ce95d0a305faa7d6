package roster

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/limaJavier/interview-scheduling/pkg/model"
)

// MemoryRepository keeps the roster in process memory. Safe for concurrent use
type MemoryRepository struct {
	mu         sync.RWMutex
	professors []model.Professor
	teams      []model.Team
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (repository *MemoryRepository) Professors(ctx context.Context) ([]model.Professor, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return slices.Clone(repository.professors), nil
}

func (repository *MemoryRepository) AddProfessor(ctx context.Context, professor model.Professor) error {
	if err := validateProfessor(professor); err != nil {
		return err
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	if lo.ContainsBy(repository.professors, func(current model.Professor) bool { return current.Name == professor.Name }) {
		return fmt.Errorf("%w: %q", ErrDuplicateProfessor, professor.Name)
	}
	repository.professors = append(repository.professors, professor)
	return nil
}

func (repository *MemoryRepository) RemoveProfessor(ctx context.Context, name string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	index := slices.IndexFunc(repository.professors, func(professor model.Professor) bool { return professor.Name == name })
	if index < 0 {
		return fmt.Errorf("professor %q: %w", name, ErrNotFound)
	}
	repository.professors = slices.Delete(repository.professors, index, index+1)
	return nil
}

func (repository *MemoryRepository) Teams(ctx context.Context) ([]model.Team, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return lo.Map(repository.teams, func(team model.Team, _ int) model.Team {
		return model.Team{Id: team.Id, Professors: slices.Clone(team.Professors)}
	}), nil
}

func (repository *MemoryRepository) AddTeam(ctx context.Context, professors []string) (model.Team, error) {
	if err := validateTeam(professors); err != nil {
		return model.Team{}, err
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	known := lo.Map(repository.professors, func(professor model.Professor, _ int) string { return professor.Name })
	if missing, _ := lo.Difference(professors, known); len(missing) > 0 {
		return model.Team{}, fmt.Errorf("%w: unknown professors %v", ErrInvalidTeam, missing)
	}

	team := model.Team{
		Id:         lo.Max(lo.Map(repository.teams, func(team model.Team, _ int) uint64 { return team.Id })) + 1,
		Professors: slices.Clone(professors),
	}
	repository.teams = append(repository.teams, team)
	return team, nil
}

func (repository *MemoryRepository) RemoveTeam(ctx context.Context, id uint64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	index := slices.IndexFunc(repository.teams, func(team model.Team) bool { return team.Id == id })
	if index < 0 {
		return fmt.Errorf("team %d: %w", id, ErrNotFound)
	}
	repository.teams = slices.Delete(repository.teams, index, index+1)
	return nil
}
