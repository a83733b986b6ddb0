package customvalidator

import (
	"github.com/go-playground/validator/v10"

	"gearguard/internal/entities"
)

// RegisterCustomValidations installs the domain enum rules used by the DTO
// `validate` tags.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("stage", isStage); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_type", isRequestType); err != nil {
		return err
	}
	if err := v.RegisterValidation("priority", isPriority); err != nil {
		return err
	}
	return v.RegisterValidation("equipment_status", isEquipmentStatus)
}

func isStage(fl validator.FieldLevel) bool {
	return entities.Stage(fl.Field().String()).Valid()
}

func isRequestType(fl validator.FieldLevel) bool {
	return entities.RequestType(fl.Field().String()).Valid()
}

func isPriority(fl validator.FieldLevel) bool {
	return entities.Priority(fl.Field().String()).Valid()
}

func isEquipmentStatus(fl validator.FieldLevel) bool {
	return entities.EquipmentStatus(fl.Field().String()).Valid()
}
