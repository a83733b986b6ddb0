package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
)

type TeamServiceInterface interface {
	GetTeams(ctx context.Context) ([]dto.TeamDTO, error)
	FindTeam(ctx context.Context, id uuid.UUID) (*dto.TeamDTO, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamDTO, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, payload dto.UpdateTeamDTO) (*dto.TeamDTO, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

type TeamService struct {
	repo   repositories.TeamRepositoryInterface
	logger *zap.Logger
}

func NewTeamService(repo repositories.TeamRepositoryInterface, logger *zap.Logger) TeamServiceInterface {
	return &TeamService{repo: repo, logger: logger}
}

func (s *TeamService) GetTeams(ctx context.Context) ([]dto.TeamDTO, error) {
	teams, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]dto.TeamDTO, 0, len(teams))
	for _, t := range teams {
		res = append(res, mapTeam(t))
	}
	return res, nil
}

func (s *TeamService) FindTeam(ctx context.Context, id uuid.UUID) (*dto.TeamDTO, error) {
	team, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	res := mapTeam(*team)
	return &res, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamDTO, error) {
	team := &entities.MaintenanceTeam{
		Name:        strings.TrimSpace(payload.Name),
		Description: payload.Description,
		Department:  payload.Department,
	}
	if team.Name == "" {
		return nil, apperrors.NewValidationError("name is required", map[string]string{"name": "required"})
	}

	if err := s.repo.Create(ctx, team); err != nil {
		return nil, err
	}

	s.logger.Info("team created", zap.String("teamID", team.ID.String()), zap.String("name", team.Name))

	res := mapTeam(*team)
	return &res, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, id uuid.UUID, payload dto.UpdateTeamDTO) (*dto.TeamDTO, error) {
	team, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name.Valid {
		name := strings.TrimSpace(payload.Name.String)
		if name == "" {
			return nil, apperrors.NewValidationError("name must not be empty", map[string]string{"name": "required"})
		}
		team.Name = name
	}
	if payload.Description.Valid {
		team.Description = nilIfEmpty(payload.Description.String)
	}
	if payload.Department.Valid {
		team.Department = nilIfEmpty(payload.Department.String)
	}

	if err := s.repo.Update(ctx, team); err != nil {
		return nil, err
	}

	res := mapTeam(*team)
	return &res, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func mapTeam(team entities.MaintenanceTeam) dto.TeamDTO {
	return dto.TeamDTO{
		ID:          team.ID.String(),
		Name:        team.Name,
		Description: team.Description,
		Department:  team.Department,
		CreatedAt:   team.CreatedAt,
	}
}
