package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/entities"
)

type CategoryRepositoryInterface interface {
	List(ctx context.Context) ([]entities.EquipmentCategory, error)
	Create(ctx context.Context, category *entities.EquipmentCategory) error
}

type CategoryRepository struct {
	storage *pgxpool.Pool
}

func NewCategoryRepository(storage *pgxpool.Pool) CategoryRepositoryInterface {
	return &CategoryRepository{storage: storage}
}

func (r *CategoryRepository) List(ctx context.Context) ([]entities.EquipmentCategory, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, name, created_at FROM equipment_categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]entities.EquipmentCategory, 0)
	for rows.Next() {
		var c entities.EquipmentCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) Create(ctx context.Context, category *entities.EquipmentCategory) error {
	return r.storage.QueryRow(ctx,
		`INSERT INTO equipment_categories (name) VALUES ($1) RETURNING id, created_at`,
		category.Name,
	).Scan(&category.ID, &category.CreatedAt)
}
