package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

type TeamRepositoryInterface interface {
	List(ctx context.Context) ([]entities.MaintenanceTeam, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.MaintenanceTeam, error)
	Create(ctx context.Context, team *entities.MaintenanceTeam) error
	Update(ctx context.Context, team *entities.MaintenanceTeam) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TeamRepository struct {
	storage *pgxpool.Pool
}

func NewTeamRepository(storage *pgxpool.Pool) TeamRepositoryInterface {
	return &TeamRepository{storage: storage}
}

func (r *TeamRepository) List(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, name, description, department, created_at FROM maintenance_teams ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]entities.MaintenanceTeam, 0)
	for rows.Next() {
		var t entities.MaintenanceTeam
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Department, &t.CreatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *TeamRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.MaintenanceTeam, error) {
	var t entities.MaintenanceTeam
	err := r.storage.QueryRow(ctx,
		`SELECT id, name, description, department, created_at FROM maintenance_teams WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Description, &t.Department, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TeamRepository) Create(ctx context.Context, team *entities.MaintenanceTeam) error {
	return r.storage.QueryRow(ctx,
		`INSERT INTO maintenance_teams (name, description, department) VALUES ($1, $2, $3) RETURNING id, created_at`,
		team.Name, team.Description, team.Department,
	).Scan(&team.ID, &team.CreatedAt)
}

func (r *TeamRepository) Update(ctx context.Context, team *entities.MaintenanceTeam) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE maintenance_teams SET name = $1, description = $2, department = $3 WHERE id = $4`,
		team.Name, team.Description, team.Department, team.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM maintenance_teams WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
