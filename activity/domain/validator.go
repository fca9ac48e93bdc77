package domain

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func GetValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("activity_action", func(fl validator.FieldLevel) bool {
			return Action(fl.Field().String()).IsValid()
		})
		_ = validate.RegisterValidation("activity_status", func(fl validator.FieldLevel) bool {
			return Status(fl.Field().String()).IsValid()
		})
	})
	return validate
}

// FormatValidationError converts validator errors into a *ValidationError for the first failing field.
func FormatValidationError(err error) error {
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return NewValidationError("", err.Error())
	}

	e := validationErrors[0]
	field := fieldNames[e.Field()]
	if field == "" {
		field = e.Field()
	}
	switch e.Tag() {
	case "required":
		return NewValidationError(field, field+" is required")
	case "activity_action":
		return NewValidationError(field, "action must be one of the supported activity actions")
	case "activity_status":
		return NewValidationError(field, "status must be one of success, failure, pending")
	}
	return NewValidationError(field, "field validation for '"+field+"' failed on the '"+e.Tag()+"' tag")
}

// external (JSON) names of validated fields
var fieldNames = map[string]string{
	"UserID": "userId",
	"Action": "action",
	"Status": "status",
}
