package roster

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/limaJavier/interview-scheduling/pkg/model"
)

type professorRow struct {
	Name           string `db:"name"`
	AvailableStart int    `db:"available_start"`
	AvailableEnd   int    `db:"available_end"`
}

type teamRow struct {
	Id         uint64 `db:"id"`
	Professor1 string `db:"professor1"`
	Professor2 string `db:"professor2"`
	Professor3 string `db:"professor3"`
}

// SQLRepository stores the roster in a SQL database. Queries are written with "?" and rebound for the driver
type SQLRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSQLRepository(db *sqlx.DB, logger *zap.Logger) *SQLRepository {
	return &SQLRepository{db: db, logger: logger.With(zap.String("component", "roster"))}
}

func (repository *SQLRepository) Professors(ctx context.Context) ([]model.Professor, error) {
	repository.logger.Debug("sql", zap.String("op", "select"), zap.String("table", "professors"))

	var rows []professorRow
	if err := repository.db.SelectContext(ctx, &rows, "SELECT name, available_start, available_end FROM professors ORDER BY position"); err != nil {
		return nil, fmt.Errorf("query professors: %w", err)
	}
	return lo.Map(rows, func(row professorRow, _ int) model.Professor {
		return model.Professor{Name: row.Name, AvailableStart: row.AvailableStart, AvailableEnd: row.AvailableEnd}
	}), nil
}

func (repository *SQLRepository) AddProfessor(ctx context.Context, professor model.Professor) error {
	if err := validateProfessor(professor); err != nil {
		return err
	}
	repository.logger.Debug("sql", zap.String("op", "insert"), zap.String("table", "professors"), zap.String("name", professor.Name))

	return repository.inTx(ctx, func(tx *sqlx.Tx) error {
		var count int
		if err := tx.GetContext(ctx, &count, tx.Rebind("SELECT COUNT(*) FROM professors WHERE name = ?"), professor.Name); err != nil {
			return fmt.Errorf("check professor: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: %q", ErrDuplicateProfessor, professor.Name)
		}

		// Professors are listed in insertion order
		var last int64
		if err := tx.GetContext(ctx, &last, "SELECT COALESCE(MAX(position), 0) FROM professors"); err != nil {
			return fmt.Errorf("query last professor position: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			tx.Rebind("INSERT INTO professors (name, available_start, available_end, position) VALUES (?, ?, ?, ?)"),
			professor.Name, professor.AvailableStart, professor.AvailableEnd, last+1,
		); err != nil {
			return fmt.Errorf("insert professor: %w", err)
		}
		return nil
	})
}

func (repository *SQLRepository) RemoveProfessor(ctx context.Context, name string) error {
	repository.logger.Debug("sql", zap.String("op", "delete"), zap.String("table", "professors"), zap.String("name", name))

	result, err := repository.db.ExecContext(ctx, repository.db.Rebind("DELETE FROM professors WHERE name = ?"), name)
	if err != nil {
		return fmt.Errorf("delete professor: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("professor %q: %w", name, ErrNotFound)
	}
	return nil
}

func (repository *SQLRepository) Teams(ctx context.Context) ([]model.Team, error) {
	repository.logger.Debug("sql", zap.String("op", "select"), zap.String("table", "teams"))

	var rows []teamRow
	if err := repository.db.SelectContext(ctx, &rows, "SELECT id, professor1, professor2, professor3 FROM teams ORDER BY id"); err != nil {
		return nil, fmt.Errorf("query teams: %w", err)
	}
	return lo.Map(rows, func(row teamRow, _ int) model.Team {
		return model.Team{Id: row.Id, Professors: []string{row.Professor1, row.Professor2, row.Professor3}}
	}), nil
}

func (repository *SQLRepository) AddTeam(ctx context.Context, professors []string) (model.Team, error) {
	if err := validateTeam(professors); err != nil {
		return model.Team{}, err
	}
	repository.logger.Debug("sql", zap.String("op", "insert"), zap.String("table", "teams"), zap.Strings("professors", professors))

	var team model.Team
	err := repository.inTx(ctx, func(tx *sqlx.Tx) error {
		//** Every member must be a known professor
		query, args, err := sqlx.In("SELECT name FROM professors WHERE name IN (?)", professors)
		if err != nil {
			return err
		}
		var known []string
		if err := tx.SelectContext(ctx, &known, tx.Rebind(query), args...); err != nil {
			return fmt.Errorf("check team professors: %w", err)
		}
		if missing, _ := lo.Difference(professors, known); len(missing) > 0 {
			return fmt.Errorf("%w: unknown professors %v", ErrInvalidTeam, missing)
		}

		//** Next id
		var last uint64
		if err := tx.GetContext(ctx, &last, "SELECT COALESCE(MAX(id), 0) FROM teams"); err != nil {
			return fmt.Errorf("query last team id: %w", err)
		}

		team = model.Team{Id: last + 1, Professors: append([]string(nil), professors...)}
		if _, err := tx.ExecContext(ctx,
			tx.Rebind("INSERT INTO teams (id, professor1, professor2, professor3) VALUES (?, ?, ?, ?)"),
			team.Id, professors[0], professors[1], professors[2],
		); err != nil {
			return fmt.Errorf("insert team: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Team{}, err
	}
	return team, nil
}

func (repository *SQLRepository) RemoveTeam(ctx context.Context, id uint64) error {
	repository.logger.Debug("sql", zap.String("op", "delete"), zap.String("table", "teams"), zap.Uint64("id", id))

	result, err := repository.db.ExecContext(ctx, repository.db.Rebind("DELETE FROM teams WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("team %d: %w", id, ErrNotFound)
	}
	return nil
}

func (repository *SQLRepository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := repository.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
