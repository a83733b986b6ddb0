package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

type ProfileRepositoryInterface interface {
	List(ctx context.Context) ([]entities.Profile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error)
	FindByEmail(ctx context.Context, email string) (*entities.Profile, error)
	Create(ctx context.Context, profile *entities.Profile) error
	Update(ctx context.Context, profile *entities.Profile) error
}

type ProfileRepository struct {
	storage *pgxpool.Pool
}

func NewProfileRepository(storage *pgxpool.Pool) ProfileRepositoryInterface {
	return &ProfileRepository{storage: storage}
}

const profileColumns = "id, email, full_name, department, role, password_hash, created_at"

func (r *ProfileRepository) List(ctx context.Context) ([]entities.Profile, error) {
	rows, err := r.storage.Query(ctx,
		"SELECT "+profileColumns+" FROM profiles ORDER BY full_name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]entities.Profile, 0)
	for rows.Next() {
		var p entities.Profile
		if err := rows.Scan(&p.ID, &p.Email, &p.FullName, &p.Department, &p.Role, &p.PasswordHash, &p.CreatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	return r.findOne(ctx, "SELECT "+profileColumns+" FROM profiles WHERE id = $1", id)
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	return r.findOne(ctx, "SELECT "+profileColumns+" FROM profiles WHERE email = $1", email)
}

func (r *ProfileRepository) findOne(ctx context.Context, query string, arg interface{}) (*entities.Profile, error) {
	var p entities.Profile
	err := r.storage.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.Email, &p.FullName, &p.Department, &p.Role, &p.PasswordHash, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	err := r.storage.QueryRow(ctx,
		`INSERT INTO profiles (email, full_name, department, role, password_hash)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		profile.Email, profile.FullName, profile.Department, profile.Role, profile.PasswordHash,
	).Scan(&profile.ID, &profile.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return apperrors.NewValidationError("email is already registered", map[string]string{
			"email": "unique",
		})
	}
	return err
}

func (r *ProfileRepository) Update(ctx context.Context, profile *entities.Profile) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE profiles SET full_name = $1, department = $2 WHERE id = $3`,
		profile.FullName, profile.Department, profile.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
