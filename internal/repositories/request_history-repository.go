package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/entities"
)

// HistoryItem is one audit row enriched with the acting profile's name.
type HistoryItem struct {
	entities.RequestHistoryEntry
	ActorName string
}

type RequestHistoryRepositoryInterface interface {
	CreateInTx(ctx context.Context, tx pgx.Tx, entry *entities.RequestHistoryEntry) error
	FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]HistoryItem, error)
}

type RequestHistoryRepository struct {
	storage *pgxpool.Pool
}

func NewRequestHistoryRepository(storage *pgxpool.Pool) RequestHistoryRepositoryInterface {
	return &RequestHistoryRepository{storage: storage}
}

// CreateInTx appends one audit entry inside the same transaction as the
// stage update, so a transition is either fully recorded or not applied.
func (r *RequestHistoryRepository) CreateInTx(ctx context.Context, tx pgx.Tx, entry *entities.RequestHistoryEntry) error {
	query := `
		INSERT INTO maintenance_request_history (request_id, old_stage, new_stage, changed_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, changed_at`
	return tx.QueryRow(ctx, query,
		entry.RequestID, entry.OldStage, entry.NewStage, entry.ChangedBy,
	).Scan(&entry.ID, &entry.ChangedAt)
}

func (r *RequestHistoryRepository) FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]HistoryItem, error) {
	query := `
		SELECT h.id, h.request_id, h.old_stage, h.new_stage, h.changed_by, h.changed_at,
			COALESCE(p.full_name, 'Unknown user')
		FROM maintenance_request_history h
			LEFT JOIN profiles p ON p.id = h.changed_by
		WHERE h.request_id = $1
		ORDER BY h.changed_at ASC, h.id ASC`

	rows, err := r.storage.Query(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]HistoryItem, 0)
	for rows.Next() {
		var h HistoryItem
		if err := rows.Scan(
			&h.ID, &h.RequestID, &h.OldStage, &h.NewStage, &h.ChangedBy, &h.ChangedAt,
			&h.ActorName,
		); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	return history, rows.Err()
}
