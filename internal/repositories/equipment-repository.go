package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

const pgUniqueViolation = "23505"

type EquipmentRepositoryInterface interface {
	List(ctx context.Context) ([]dto.EquipmentDTO, error)
	FindByID(ctx context.Context, id uuid.UUID) (*dto.EquipmentDTO, error)
	FindEntity(ctx context.Context, id uuid.UUID) (*entities.Equipment, error)
	Create(ctx context.Context, equipment *entities.Equipment) error
	Update(ctx context.Context, equipment *entities.Equipment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

const equipmentJoinedSelect = `
	SELECT
		e.id, e.name, e.serial_number, e.department, e.location,
		e.purchase_date, e.warranty_expiry, e.status, e.created_at,
		c.id, c.name,
		t.id, t.name
	FROM equipment e
		LEFT JOIN equipment_categories c ON c.id = e.category_id
		LEFT JOIN maintenance_teams t ON t.id = e.maintenance_team_id`

func (r *EquipmentRepository) List(ctx context.Context) ([]dto.EquipmentDTO, error) {
	rows, err := r.storage.Query(ctx, equipmentJoinedSelect+" ORDER BY e.name ASC, e.id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]dto.EquipmentDTO, 0)
	for rows.Next() {
		item, err := scanEquipmentRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *EquipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*dto.EquipmentDTO, error) {
	item, err := scanEquipmentRow(r.storage.QueryRow(ctx, equipmentJoinedSelect+" WHERE e.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *EquipmentRepository) FindEntity(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
	query := `
		SELECT id, name, serial_number, category_id, department, location,
			maintenance_team_id, purchase_date, warranty_expiry, status, created_at, updated_at
		FROM equipment WHERE id = $1`

	var e entities.Equipment
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.CategoryID, &e.Department, &e.Location,
		&e.MaintenanceTeamID, &e.PurchaseDate, &e.WarrantyExpiry, &e.Status,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EquipmentRepository) Create(ctx context.Context, equipment *entities.Equipment) error {
	query := `
		INSERT INTO equipment
			(name, serial_number, category_id, department, location,
			 maintenance_team_id, purchase_date, warranty_expiry, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	err := r.storage.QueryRow(ctx, query,
		equipment.Name, equipment.SerialNumber, equipment.CategoryID,
		equipment.Department, equipment.Location, equipment.MaintenanceTeamID,
		equipment.PurchaseDate, equipment.WarrantyExpiry, equipment.Status,
	).Scan(&equipment.ID, &equipment.CreatedAt, &equipment.UpdatedAt)

	return mapEquipmentError(err)
}

func (r *EquipmentRepository) Update(ctx context.Context, equipment *entities.Equipment) error {
	query := `
		UPDATE equipment
		SET name = $1, serial_number = $2, category_id = $3, department = $4,
			location = $5, maintenance_team_id = $6, purchase_date = $7,
			warranty_expiry = $8, status = $9, updated_at = CURRENT_TIMESTAMP
		WHERE id = $10`

	result, err := r.storage.Exec(ctx, query,
		equipment.Name, equipment.SerialNumber, equipment.CategoryID,
		equipment.Department, equipment.Location, equipment.MaintenanceTeamID,
		equipment.PurchaseDate, equipment.WarrantyExpiry, equipment.Status,
		equipment.ID,
	)
	if err != nil {
		return mapEquipmentError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM equipment WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// mapEquipmentError turns a serial-number unique violation into a validation
// error the client can act on.
func mapEquipmentError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return apperrors.NewValidationError("serial number is already in use", map[string]string{
			"serial_number": "unique",
		})
	}
	return err
}

func scanEquipmentRow(row pgx.Row) (*dto.EquipmentDTO, error) {
	var (
		item           dto.EquipmentDTO
		id             uuid.UUID
		purchaseDate   *time.Time
		warrantyExpiry *time.Time
		categoryID     uuid.NullUUID
		categoryName   *string
		teamID         uuid.NullUUID
		teamName       *string
	)

	err := row.Scan(
		&id, &item.Name, &item.SerialNumber, &item.Department, &item.Location,
		&purchaseDate, &warrantyExpiry, &item.Status, &item.CreatedAt,
		&categoryID, &categoryName,
		&teamID, &teamName,
	)
	if err != nil {
		return nil, err
	}

	item.ID = id.String()
	if purchaseDate != nil {
		item.PurchaseDate = utils.ToPtr(purchaseDate.Format("2006-01-02"))
	}
	if warrantyExpiry != nil {
		item.WarrantyExpiry = utils.ToPtr(warrantyExpiry.Format("2006-01-02"))
	}
	if categoryID.Valid {
		item.Category = &dto.ShortCategoryDTO{ID: categoryID.UUID.String(), Name: utils.SafeDeref(categoryName)}
	}
	if teamID.Valid {
		item.Team = &dto.ShortTeamDTO{ID: teamID.UUID.String(), Name: utils.SafeDeref(teamName)}
	}
	return &item, nil
}
