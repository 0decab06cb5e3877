package services

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rce-newyear/greetings-api/internal/models"
)

var validate = validator.New()

// ValidateGreetingRequest checks a submission before any generation attempt.
// Pure function over the (normalized) input. Fail-fast: the first failing
// field wins and is reported alone, in declaration order (name, branch,
// year, rollNumber, goal, language).
func ValidateGreetingRequest(req *models.GenerateGreetingRequest) *models.ValidationError {
	req.Name = strings.TrimSpace(req.Name)
	req.Goal = strings.TrimSpace(req.Goal)
	req.RollNumber = strings.TrimSpace(req.RollNumber)

	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return &models.ValidationError{Field: "request", Message: "Invalid request"}
	}

	fe := validationErrors[0]
	return &models.ValidationError{
		Field:   fieldName(fe.Field()),
		Message: fieldErrorMessage(fe),
	}
}

func fieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "max":
		return field + " must not exceed " + fe.Param() + " characters"
	default:
		return field + " is invalid"
	}
}
