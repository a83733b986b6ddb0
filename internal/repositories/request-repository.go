package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

// overdueExpr derives the is_overdue flag at read time: a scheduled request
// still open past its date.
const overdueExpr = "(r.scheduled_date IS NOT NULL AND r.scheduled_date < CURRENT_DATE AND r.stage NOT IN ('repaired','scrap'))"

const requestEntityColumns = `id, subject, description, equipment_id, team_id, type, priority, stage,
	scheduled_date, duration_hours, assigned_to, created_by, created_at, updated_at`

type RequestRepositoryInterface interface {
	List(ctx context.Context, filter dto.RequestFilterDTO) ([]dto.RequestDTO, error)
	FindByID(ctx context.Context, id uuid.UUID) (*dto.RequestDTO, error)
	FindEntity(ctx context.Context, id uuid.UUID) (*entities.MaintenanceRequest, error)
	FindEntityForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entities.MaintenanceRequest, error)
	Create(ctx context.Context, request *entities.MaintenanceRequest) error
	Update(ctx context.Context, request *entities.MaintenanceRequest) error
	UpdateStageInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, stage entities.Stage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RequestRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRequestRepository(storage *pgxpool.Pool, logger *zap.Logger) RequestRepositoryInterface {
	return &RequestRepository{storage: storage, logger: logger}
}

func (r *RequestRepository) List(ctx context.Context, filter dto.RequestFilterDTO) ([]dto.RequestDTO, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	builder := psql.Select(
		"r.id", "r.subject", "r.description", "r.type", "r.priority", "r.stage",
		"r.scheduled_date", "r.duration_hours", "r.created_at",
		overdueExpr+" AS is_overdue",
		"e.id", "e.name", "e.serial_number",
		"t.id", "t.name",
		"a.id", "a.full_name",
		"c.id", "c.full_name",
	).
		From("maintenance_requests r").
		Join("equipment e ON e.id = r.equipment_id").
		LeftJoin("maintenance_teams t ON t.id = r.team_id").
		LeftJoin("profiles a ON a.id = r.assigned_to").
		Join("profiles c ON c.id = r.created_by").
		OrderBy("r.created_at ASC", "r.id ASC")

	if filter.Stage != "" {
		builder = builder.Where(sq.Eq{"r.stage": filter.Stage})
	}
	if filter.Type != "" {
		builder = builder.Where(sq.Eq{"r.type": filter.Type})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"r.subject": pattern},
			sq.ILike{"e.name": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building request list query: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]dto.RequestDTO, 0)
	for rows.Next() {
		item, err := scanRequestRow(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *item)
	}
	return requests, rows.Err()
}

func (r *RequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*dto.RequestDTO, error) {
	query := fmt.Sprintf(`
		SELECT
			r.id, r.subject, r.description, r.type, r.priority, r.stage,
			r.scheduled_date, r.duration_hours, r.created_at,
			%s AS is_overdue,
			e.id, e.name, e.serial_number,
			t.id, t.name,
			a.id, a.full_name,
			c.id, c.full_name
		FROM maintenance_requests r
			JOIN equipment e ON e.id = r.equipment_id
			LEFT JOIN maintenance_teams t ON t.id = r.team_id
			LEFT JOIN profiles a ON a.id = r.assigned_to
			JOIN profiles c ON c.id = r.created_by
		WHERE r.id = $1
	`, overdueExpr)

	item, err := scanRequestRow(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *RequestRepository) FindEntity(ctx context.Context, id uuid.UUID) (*entities.MaintenanceRequest, error) {
	return findRequestEntity(ctx, r.storage, id, false)
}

// FindEntityForUpdate loads the row with FOR UPDATE so a concurrent
// transition against the same request waits for the current one.
func (r *RequestRepository) FindEntityForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entities.MaintenanceRequest, error) {
	return findRequestEntity(ctx, tx, id, true)
}

func findRequestEntity(ctx context.Context, q querier, id uuid.UUID, forUpdate bool) (*entities.MaintenanceRequest, error) {
	query := fmt.Sprintf("SELECT %s FROM maintenance_requests WHERE id = $1", requestEntityColumns)
	if forUpdate {
		query += " FOR UPDATE"
	}

	var req entities.MaintenanceRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.Subject, &req.Description, &req.EquipmentID, &req.TeamID,
		&req.Type, &req.Priority, &req.Stage, &req.ScheduledDate,
		&req.DurationHours, &req.AssignedTo, &req.CreatedBy,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepository) Create(ctx context.Context, request *entities.MaintenanceRequest) error {
	query := `
		INSERT INTO maintenance_requests
			(subject, description, equipment_id, team_id, type, priority, stage,
			 scheduled_date, duration_hours, assigned_to, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`

	return r.storage.QueryRow(ctx, query,
		request.Subject, request.Description, request.EquipmentID, request.TeamID,
		request.Type, request.Priority, request.Stage, request.ScheduledDate,
		request.DurationHours, request.AssignedTo, request.CreatedBy,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
}

// Update writes every editable field; partial-update merging happens in the
// service. Stage is deliberately not written here.
func (r *RequestRepository) Update(ctx context.Context, request *entities.MaintenanceRequest) error {
	query := `
		UPDATE maintenance_requests
		SET subject = $1, description = $2, equipment_id = $3, team_id = $4,
			type = $5, priority = $6, scheduled_date = $7, duration_hours = $8,
			assigned_to = $9, updated_at = CURRENT_TIMESTAMP
		WHERE id = $10`

	result, err := r.storage.Exec(ctx, query,
		request.Subject, request.Description, request.EquipmentID, request.TeamID,
		request.Type, request.Priority, request.ScheduledDate, request.DurationHours,
		request.AssignedTo, request.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RequestRepository) UpdateStageInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, stage entities.Stage) error {
	result, err := tx.Exec(ctx,
		`UPDATE maintenance_requests SET stage = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		stage, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM maintenance_requests WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// scanRequestRow maps one joined row onto the response DTO.
func scanRequestRow(row pgx.Row) (*dto.RequestDTO, error) {
	var (
		item          dto.RequestDTO
		id            uuid.UUID
		description   *string
		scheduledDate *time.Time
		durationHours *float64
		equipID       uuid.UUID
		teamID        uuid.NullUUID
		teamName      *string
		assignedID    uuid.NullUUID
		assignedName  *string
		creatorID     uuid.UUID
	)

	err := row.Scan(
		&id, &item.Subject, &description, &item.Type, &item.Priority, &item.Stage,
		&scheduledDate, &durationHours, &item.CreatedAt,
		&item.IsOverdue,
		&equipID, &item.Equipment.Name, &item.Equipment.SerialNumber,
		&teamID, &teamName,
		&assignedID, &assignedName,
		&creatorID, &item.Creator.FullName,
	)
	if err != nil {
		return nil, err
	}

	item.ID = id.String()
	item.Description = description
	item.Equipment.ID = equipID.String()
	item.Creator.ID = creatorID.String()
	item.DurationHours = durationHours
	if scheduledDate != nil {
		item.ScheduledDate = utils.ToPtr(scheduledDate.Format("2006-01-02"))
	}
	if teamID.Valid {
		item.Team = &dto.ShortTeamDTO{ID: teamID.UUID.String(), Name: utils.SafeDeref(teamName)}
	}
	if assignedID.Valid {
		item.Assigned = &dto.ShortProfileDTO{ID: assignedID.UUID.String(), FullName: utils.SafeDeref(assignedName)}
	}
	return &item, nil
}
