package util

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/SeakMengs/WorkshopHub/internal/apperror"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type ApiError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func msgForTag(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%v is required", field)
	case "email":
		return "Invalid email"
	case "numeric":
		return fmt.Sprintf("%v must be numeric", field)
	case "len":
		return fmt.Sprintf("%v must be exactly %v characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%v must be at least %v characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%v must be at most %v characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%v must be greater than or equal to %v", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%v must be less than or equal to %v", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%v must be one of: %v", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%v must match the format %v", field, fe.Param())
	case "hexcolor":
		return fmt.Sprintf("%v must be a hex color code", field)
	case "strNotEmpty":
		return fmt.Sprintf("%v must not be empty or contain only whitespace characters", field)
	}

	log.Printf("Unknown tag: %v with error: %v", fe.Tag(), fe.Error())
	return fe.Error() // default error
}

// GenerateErrorMessages extracts validation errors and returns them as an
// array of ApiError, each carrying the field name and a descriptive message.
// A fieldName may be passed to label errors that have no field of their own.
func GenerateErrorMessages(err error, fieldName ...string) []ApiError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]ApiError, len(ve))
		for i, fe := range ve {
			out[i] = ApiError{fe.Field(), msgForTag(fe)}
		}
		return out
	}

	var appVe *apperror.ValidationError
	if errors.As(err, &appVe) {
		out := make([]ApiError, len(appVe.Fields))
		for i, fe := range appVe.Fields {
			out[i] = ApiError{fe.Field, fe.Message}
		}
		return out
	}

	field := "Unknown"
	if len(fieldName) > 0 && fieldName[0] != "" {
		field = fieldName[0]
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, apperror.ErrNotFound):
		return []ApiError{{Field: field, Message: "Record not found"}}
	default:
		return []ApiError{{Field: field, Message: err.Error()}}
	}
}

// check if string is empty, after trimming spaces
// Usage: `binding:"strNotEmpty"`
func StrNotEmpty(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	return len(strings.TrimSpace(field.String())) > 0
}
