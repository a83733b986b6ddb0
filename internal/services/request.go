package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/utils"
)

type RequestServiceInterface interface {
	GetRequests(ctx context.Context, filter dto.RequestFilterDTO) ([]dto.RequestDTO, error)
	FindRequest(ctx context.Context, id uuid.UUID) (*dto.RequestDTO, error)
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO, actorID uuid.UUID) (*dto.RequestDTO, error)
	UpdateRequest(ctx context.Context, id uuid.UUID, payload dto.UpdateRequestDTO) (*dto.RequestDTO, error)
	DeleteRequest(ctx context.Context, id uuid.UUID) error
	Transition(ctx context.Context, id uuid.UUID, target entities.Stage, actorID uuid.UUID) (*dto.RequestDTO, error)
	GetHistory(ctx context.Context, requestID uuid.UUID) ([]dto.HistoryEntryDTO, error)
}

type RequestService struct {
	repo        repositories.RequestRepositoryInterface
	historyRepo repositories.RequestHistoryRepositoryInterface
	txManager   repositories.TxManagerInterface
	bus         *eventbus.Bus
	logger      *zap.Logger
}

func NewRequestService(
	repo repositories.RequestRepositoryInterface,
	historyRepo repositories.RequestHistoryRepositoryInterface,
	txManager repositories.TxManagerInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		repo:        repo,
		historyRepo: historyRepo,
		txManager:   txManager,
		bus:         bus,
		logger:      logger,
	}
}

func (s *RequestService) GetRequests(ctx context.Context, filter dto.RequestFilterDTO) ([]dto.RequestDTO, error) {
	return s.repo.List(ctx, filter)
}

func (s *RequestService) FindRequest(ctx context.Context, id uuid.UUID) (*dto.RequestDTO, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RequestService) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO, actorID uuid.UUID) (*dto.RequestDTO, error) {
	subject := strings.TrimSpace(payload.Subject)
	if subject == "" {
		return nil, apperrors.NewValidationError("subject must not be empty", map[string]string{
			"subject": "required",
		})
	}

	equipmentID, err := uuid.Parse(payload.EquipmentID)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid equipment id")
	}

	request := &entities.MaintenanceRequest{
		Subject:       subject,
		Description:   payload.Description,
		EquipmentID:   equipmentID,
		Type:          entities.RequestType(payload.Type),
		Priority:      entities.Priority(payload.Priority),
		Stage:         entities.StageNew,
		DurationHours: payload.DurationHours,
		CreatedBy:     actorID,
	}

	if request.TeamID, err = parseOptionalUUID(payload.TeamID); err != nil {
		return nil, apperrors.NewBadRequestError("invalid team id")
	}
	if request.AssignedTo, err = parseOptionalUUID(payload.AssignedTo); err != nil {
		return nil, apperrors.NewBadRequestError("invalid assignee id")
	}
	if request.ScheduledDate, err = parseOptionalDate(payload.ScheduledDate); err != nil {
		return nil, apperrors.NewBadRequestError("invalid scheduled date")
	}

	if err := s.repo.Create(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info("maintenance request created",
		zap.String("requestID", request.ID.String()),
		zap.String("subject", request.Subject),
	)

	return s.repo.FindByID(ctx, request.ID)
}

func (s *RequestService) UpdateRequest(ctx context.Context, id uuid.UUID, payload dto.UpdateRequestDTO) (*dto.RequestDTO, error) {
	request, err := s.repo.FindEntity(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := mergeRequest(request, payload); err != nil {
		return nil, err
	}

	// Field edits never touch the stage and never write history.
	if err := s.repo.Update(ctx, request); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *RequestService) DeleteRequest(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Transition moves a request to the target stage and appends the audit row
// in the same transaction, so a stage change can never go unrecorded. A drop
// onto the current column is a valid transition and is audited like any
// other.
func (s *RequestService) Transition(ctx context.Context, id uuid.UUID, target entities.Stage, actorID uuid.UUID) (*dto.RequestDTO, error) {
	if !target.Valid() {
		return nil, apperrors.NewValidationError("unknown stage", map[string]string{"stage": "stage"})
	}

	var oldStage entities.Stage
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		request, err := s.repo.FindEntityForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		oldStage = request.Stage

		if !request.Stage.CanTransitionTo(target) {
			return apperrors.NewValidationError(
				fmt.Sprintf("cannot move request from %q to %q", request.Stage, target),
				map[string]string{"stage": "transition"},
			)
		}

		if err := s.repo.UpdateStageInTx(ctx, tx, id, target); err != nil {
			return err
		}

		entry := &entities.RequestHistoryEntry{
			RequestID: id,
			OldStage:  oldStage,
			NewStage:  target,
			ChangedBy: actorID,
		}
		return s.historyRepo.CreateInTx(ctx, tx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("request stage changed",
		zap.String("requestID", id.String()),
		zap.String("oldStage", oldStage.String()),
		zap.String("newStage", target.String()),
	)

	if s.bus != nil {
		s.bus.Publish(ctx, StageChangedEvent{
			RequestID: id,
			OldStage:  oldStage,
			NewStage:  target,
			ChangedBy: actorID,
		})
	}

	return s.repo.FindByID(ctx, id)
}

func (s *RequestService) GetHistory(ctx context.Context, requestID uuid.UUID) ([]dto.HistoryEntryDTO, error) {
	items, err := s.historyRepo.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	history := make([]dto.HistoryEntryDTO, 0, len(items))
	for _, item := range items {
		history = append(history, dto.HistoryEntryDTO{
			ID:        item.ID.String(),
			RequestID: item.RequestID.String(),
			OldStage:  item.OldStage.String(),
			NewStage:  item.NewStage.String(),
			ChangedBy: dto.ShortProfileDTO{
				ID:       item.ChangedBy.String(),
				FullName: item.ActorName,
			},
			ChangedAt: item.ChangedAt,
		})
	}
	return history, nil
}

func mergeRequest(request *entities.MaintenanceRequest, payload dto.UpdateRequestDTO) error {
	if payload.Subject.Valid {
		subject := strings.TrimSpace(payload.Subject.String)
		if subject == "" {
			return apperrors.NewValidationError("subject must not be empty", map[string]string{
				"subject": "required",
			})
		}
		request.Subject = subject
	}
	if payload.Type.Valid {
		t := entities.RequestType(payload.Type.String)
		if !t.Valid() {
			return apperrors.NewValidationError("unknown request type", map[string]string{"type": "request_type"})
		}
		request.Type = t
	}
	if payload.Priority.Valid {
		p := entities.Priority(payload.Priority.String)
		if !p.Valid() {
			return apperrors.NewValidationError("unknown priority", map[string]string{"priority": "priority"})
		}
		request.Priority = p
	}
	if payload.Description.Valid {
		request.Description = utils.ToPtr(payload.Description.String)
	}
	if payload.DurationHours.Valid {
		if payload.DurationHours.Float64 < 0 {
			return apperrors.NewValidationError("duration must not be negative", map[string]string{
				"duration_hours": "gte",
			})
		}
		request.DurationHours = utils.ToPtr(payload.DurationHours.Float64)
	}

	if payload.EquipmentID.Valid {
		id, err := uuid.Parse(payload.EquipmentID.String)
		if err != nil {
			return apperrors.NewBadRequestError("invalid equipment id")
		}
		request.EquipmentID = id
	}

	// For nullable references an empty string clears the field.
	var err error
	if payload.TeamID.Valid {
		if request.TeamID, err = parseOptionalUUID(payload.TeamID.Ptr()); err != nil {
			return apperrors.NewBadRequestError("invalid team id")
		}
	}
	if payload.AssignedTo.Valid {
		if request.AssignedTo, err = parseOptionalUUID(payload.AssignedTo.Ptr()); err != nil {
			return apperrors.NewBadRequestError("invalid assignee id")
		}
	}
	if payload.ScheduledDate.Valid {
		if request.ScheduledDate, err = parseOptionalDate(payload.ScheduledDate.Ptr()); err != nil {
			return apperrors.NewBadRequestError("invalid scheduled date")
		}
	}

	return nil
}

func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
