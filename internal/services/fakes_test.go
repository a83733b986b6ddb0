package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
)

// fakeRequestRepo is an in-memory stand-in for the request repository. Tests
// either preload joined rows via the requests field or drive the entity store
// through Create, in which case List and FindByID build DTOs the way the SQL
// layer would.
type fakeRequestRepo struct {
	requests []dto.RequestDTO

	order   []uuid.UUID
	store   map[uuid.UUID]*entities.MaintenanceRequest
	teams   map[uuid.UUID]dto.ShortTeamDTO
	gear    map[uuid.UUID]dto.ShortEquipmentDTO
	people  map[uuid.UUID]string
	listErr error
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{
		store:  make(map[uuid.UUID]*entities.MaintenanceRequest),
		teams:  make(map[uuid.UUID]dto.ShortTeamDTO),
		gear:   make(map[uuid.UUID]dto.ShortEquipmentDTO),
		people: make(map[uuid.UUID]string),
	}
}

func (r *fakeRequestRepo) toDTO(request *entities.MaintenanceRequest) dto.RequestDTO {
	d := dto.RequestDTO{
		ID:            request.ID.String(),
		Subject:       request.Subject,
		Description:   request.Description,
		Type:          string(request.Type),
		Priority:      string(request.Priority),
		Stage:         string(request.Stage),
		Equipment:     r.gear[request.EquipmentID],
		Creator:       dto.ShortProfileDTO{ID: request.CreatedBy.String(), FullName: r.people[request.CreatedBy]},
		DurationHours: request.DurationHours,
		CreatedAt:     request.CreatedAt,
	}
	if request.TeamID != nil {
		team := r.teams[*request.TeamID]
		d.Team = &team
	}
	if request.AssignedTo != nil {
		d.Assigned = &dto.ShortProfileDTO{ID: request.AssignedTo.String(), FullName: r.people[*request.AssignedTo]}
	}
	if request.ScheduledDate != nil {
		date := request.ScheduledDate.Format("2006-01-02")
		d.ScheduledDate = &date
	}
	return d
}

func (r *fakeRequestRepo) List(_ context.Context, filter dto.RequestFilterDTO) ([]dto.RequestDTO, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	if len(r.order) == 0 {
		return r.requests, nil
	}

	result := make([]dto.RequestDTO, 0, len(r.order))
	for _, id := range r.order {
		d := r.toDTO(r.store[id])
		if filter.Stage != "" && d.Stage != filter.Stage {
			continue
		}
		if filter.Type != "" && d.Type != filter.Type {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(d.Subject), needle) &&
				!strings.Contains(strings.ToLower(d.Equipment.Name), needle) {
				continue
			}
		}
		result = append(result, d)
	}
	return result, nil
}

func (r *fakeRequestRepo) FindByID(_ context.Context, id uuid.UUID) (*dto.RequestDTO, error) {
	request, ok := r.store[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	d := r.toDTO(request)
	return &d, nil
}

func (r *fakeRequestRepo) FindEntity(_ context.Context, id uuid.UUID) (*entities.MaintenanceRequest, error) {
	request, ok := r.store[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *request
	return &copied, nil
}

func (r *fakeRequestRepo) FindEntityForUpdate(ctx context.Context, _ pgx.Tx, id uuid.UUID) (*entities.MaintenanceRequest, error) {
	return r.FindEntity(ctx, id)
}

func (r *fakeRequestRepo) Create(_ context.Context, request *entities.MaintenanceRequest) error {
	request.ID = uuid.New()
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	copied := *request
	r.store[request.ID] = &copied
	r.order = append(r.order, request.ID)
	return nil
}

func (r *fakeRequestRepo) Update(_ context.Context, request *entities.MaintenanceRequest) error {
	if _, ok := r.store[request.ID]; !ok {
		return apperrors.ErrNotFound
	}
	copied := *request
	copied.UpdatedAt = time.Now()
	r.store[request.ID] = &copied
	return nil
}

func (r *fakeRequestRepo) UpdateStageInTx(_ context.Context, _ pgx.Tx, id uuid.UUID, stage entities.Stage) error {
	request, ok := r.store[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	request.Stage = stage
	request.UpdatedAt = time.Now()
	return nil
}

func (r *fakeRequestRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.store, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeHistoryRepo struct {
	entries []repositories.HistoryItem
	names   map[uuid.UUID]string
}

func (r *fakeHistoryRepo) CreateInTx(_ context.Context, _ pgx.Tx, entry *entities.RequestHistoryEntry) error {
	entry.ID = uuid.New()
	entry.ChangedAt = time.Now()

	name, ok := r.names[entry.ChangedBy]
	if !ok {
		name = "Unknown user"
	}
	r.entries = append(r.entries, repositories.HistoryItem{
		RequestHistoryEntry: *entry,
		ActorName:           name,
	})
	return nil
}

func (r *fakeHistoryRepo) FindByRequestID(_ context.Context, requestID uuid.UUID) ([]repositories.HistoryItem, error) {
	items := make([]repositories.HistoryItem, 0)
	for _, entry := range r.entries {
		if entry.RequestID == requestID {
			items = append(items, entry)
		}
	}
	return items, nil
}

// fakeTxManager runs the callback without a real transaction; the fakes it
// pairs with ignore the tx handle.
type fakeTxManager struct{}

func (m *fakeTxManager) RunInTransaction(_ context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeTeamRepo struct {
	teams []entities.MaintenanceTeam
}

func (r *fakeTeamRepo) List(_ context.Context) ([]entities.MaintenanceTeam, error) {
	return r.teams, nil
}

func (r *fakeTeamRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.MaintenanceTeam, error) {
	for i := range r.teams {
		if r.teams[i].ID == id {
			return &r.teams[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeTeamRepo) Create(_ context.Context, team *entities.MaintenanceTeam) error {
	team.ID = uuid.New()
	team.CreatedAt = time.Now()
	r.teams = append(r.teams, *team)
	return nil
}

func (r *fakeTeamRepo) Update(_ context.Context, team *entities.MaintenanceTeam) error {
	for i := range r.teams {
		if r.teams[i].ID == team.ID {
			r.teams[i] = *team
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *fakeTeamRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.teams {
		if r.teams[i].ID == id {
			r.teams = append(r.teams[:i], r.teams[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type fakeEquipmentRepo struct {
	equipment []dto.EquipmentDTO
}

func (r *fakeEquipmentRepo) List(_ context.Context) ([]dto.EquipmentDTO, error) {
	return r.equipment, nil
}

func (r *fakeEquipmentRepo) FindByID(_ context.Context, id uuid.UUID) (*dto.EquipmentDTO, error) {
	for i := range r.equipment {
		if r.equipment[i].ID == id.String() {
			return &r.equipment[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeEquipmentRepo) FindEntity(_ context.Context, _ uuid.UUID) (*entities.Equipment, error) {
	return nil, apperrors.ErrNotFound
}

func (r *fakeEquipmentRepo) Create(_ context.Context, equipment *entities.Equipment) error {
	equipment.ID = uuid.New()
	return nil
}

func (r *fakeEquipmentRepo) Update(_ context.Context, _ *entities.Equipment) error {
	return nil
}

func (r *fakeEquipmentRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}
