package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// uuid.UUID zero value passes "required", so it needs its own tag
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errs []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			errs = append(errs, &ErrorResponse{
				FailedField: fieldErr.StructNamespace(),
				Tag:         fieldErr.Tag(),
				Value:       fieldErr.Param(),
			})
		}
	}
	return errs
}

// FirstError turns a validation result into a single error suitable for an
// API response, or nil when validation passed.
func FirstError(errs []*ErrorResponse) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
}
