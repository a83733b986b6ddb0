package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
)

type ProfileServiceInterface interface {
	GetProfiles(ctx context.Context) ([]dto.ProfileDTO, error)
	FindProfile(ctx context.Context, id uuid.UUID) (*dto.ProfileDTO, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, payload dto.UpdateProfileDTO) (*dto.ProfileDTO, error)
}

type ProfileService struct {
	repo repositories.ProfileRepositoryInterface
}

func NewProfileService(repo repositories.ProfileRepositoryInterface) ProfileServiceInterface {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) GetProfiles(ctx context.Context) ([]dto.ProfileDTO, error) {
	profiles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]dto.ProfileDTO, 0, len(profiles))
	for _, p := range profiles {
		res = append(res, mapProfile(p))
	}
	return res, nil
}

func (s *ProfileService) FindProfile(ctx context.Context, id uuid.UUID) (*dto.ProfileDTO, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	res := mapProfile(*profile)
	return &res, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, id uuid.UUID, payload dto.UpdateProfileDTO) (*dto.ProfileDTO, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.FullName.Valid {
		name := strings.TrimSpace(payload.FullName.String)
		if name == "" {
			return nil, apperrors.NewValidationError("full name must not be empty", map[string]string{
				"full_name": "required",
			})
		}
		profile.FullName = name
	}
	if payload.Department.Valid {
		profile.Department = nilIfEmpty(payload.Department.String)
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}

	res := mapProfile(*profile)
	return &res, nil
}

func mapProfile(p entities.Profile) dto.ProfileDTO {
	return dto.ProfileDTO{
		ID:         p.ID.String(),
		Email:      p.Email,
		FullName:   p.FullName,
		Department: p.Department,
		Role:       p.Role,
	}
}
