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

type EquipmentServiceInterface interface {
	GetEquipment(ctx context.Context) ([]dto.EquipmentDTO, error)
	FindEquipment(ctx context.Context, id uuid.UUID) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id uuid.UUID) error
	GetCategories(ctx context.Context) ([]dto.CategoryDTO, error)
	CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*dto.CategoryDTO, error)
}

type EquipmentService struct {
	repo         repositories.EquipmentRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *zap.Logger
}

func NewEquipmentService(
	repo repositories.EquipmentRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{repo: repo, categoryRepo: categoryRepo, logger: logger}
}

func (s *EquipmentService) GetEquipment(ctx context.Context) ([]dto.EquipmentDTO, error) {
	return s.repo.List(ctx)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uuid.UUID) (*dto.EquipmentDTO, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	name := strings.TrimSpace(payload.Name)
	serial := strings.TrimSpace(payload.SerialNumber)
	if name == "" || serial == "" {
		return nil, apperrors.NewValidationError("name and serial number are required", map[string]string{
			"name":          "required",
			"serial_number": "required",
		})
	}

	equipment := &entities.Equipment{
		Name:         name,
		SerialNumber: serial,
		Department:   payload.Department,
		Location:     payload.Location,
		Status:       entities.EquipmentStatus(payload.Status),
	}

	var err error
	if equipment.CategoryID, err = parseOptionalUUID(payload.CategoryID); err != nil {
		return nil, apperrors.NewBadRequestError("invalid category id")
	}
	if equipment.MaintenanceTeamID, err = parseOptionalUUID(payload.MaintenanceTeamID); err != nil {
		return nil, apperrors.NewBadRequestError("invalid team id")
	}
	if equipment.PurchaseDate, err = parseOptionalDate(payload.PurchaseDate); err != nil {
		return nil, apperrors.NewBadRequestError("invalid purchase date")
	}
	if equipment.WarrantyExpiry, err = parseOptionalDate(payload.WarrantyExpiry); err != nil {
		return nil, apperrors.NewBadRequestError("invalid warranty expiry date")
	}

	if err := s.repo.Create(ctx, equipment); err != nil {
		return nil, err
	}

	s.logger.Info("equipment created",
		zap.String("equipmentID", equipment.ID.String()),
		zap.String("serial", equipment.SerialNumber),
	)

	return s.repo.FindByID(ctx, equipment.ID)
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	equipment, err := s.repo.FindEntity(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := mergeEquipment(equipment, payload); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, equipment); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *EquipmentService) GetCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		res = append(res, dto.CategoryDTO{ID: c.ID.String(), Name: c.Name})
	}
	return res, nil
}

func (s *EquipmentService) CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*dto.CategoryDTO, error) {
	category := &entities.EquipmentCategory{Name: strings.TrimSpace(payload.Name)}
	if category.Name == "" {
		return nil, apperrors.NewValidationError("name is required", map[string]string{"name": "required"})
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return &dto.CategoryDTO{ID: category.ID.String(), Name: category.Name}, nil
}

func mergeEquipment(equipment *entities.Equipment, payload dto.UpdateEquipmentDTO) error {
	if payload.Name.Valid {
		name := strings.TrimSpace(payload.Name.String)
		if name == "" {
			return apperrors.NewValidationError("name must not be empty", map[string]string{"name": "required"})
		}
		equipment.Name = name
	}
	if payload.SerialNumber.Valid {
		serial := strings.TrimSpace(payload.SerialNumber.String)
		if serial == "" {
			return apperrors.NewValidationError("serial number must not be empty", map[string]string{
				"serial_number": "required",
			})
		}
		equipment.SerialNumber = serial
	}
	if payload.Status.Valid {
		status := entities.EquipmentStatus(payload.Status.String)
		if !status.Valid() {
			return apperrors.NewValidationError("unknown equipment status", map[string]string{
				"status": "equipment_status",
			})
		}
		equipment.Status = status
	}
	if payload.Department.Valid {
		equipment.Department = nilIfEmpty(payload.Department.String)
	}
	if payload.Location.Valid {
		equipment.Location = nilIfEmpty(payload.Location.String)
	}

	var err error
	if payload.CategoryID.Valid {
		if equipment.CategoryID, err = parseOptionalUUID(payload.CategoryID.Ptr()); err != nil {
			return apperrors.NewBadRequestError("invalid category id")
		}
	}
	if payload.MaintenanceTeamID.Valid {
		if equipment.MaintenanceTeamID, err = parseOptionalUUID(payload.MaintenanceTeamID.Ptr()); err != nil {
			return apperrors.NewBadRequestError("invalid team id")
		}
	}
	if payload.PurchaseDate.Valid {
		if equipment.PurchaseDate, err = parseOptionalDate(payload.PurchaseDate.Ptr()); err != nil {
			return apperrors.NewBadRequestError("invalid purchase date")
		}
	}
	if payload.WarrantyExpiry.Valid {
		if equipment.WarrantyExpiry, err = parseOptionalDate(payload.WarrantyExpiry.Ptr()); err != nil {
			return apperrors.NewBadRequestError("invalid warranty expiry date")
		}
	}

	return nil
}

func nilIfEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
