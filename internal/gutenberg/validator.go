package gutenberg

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// SaveParams are the caller-supplied inputs of the save operation,
// checked before any outbound call is made.
type SaveParams struct {
	BookID string `validate:"required"`
	Lang   string `validate:"required,len=2,alpha"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ValidateStruct(s interface{}) []ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errors []ValidationError
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()

		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "len":
			message = fmt.Sprintf("%s must be exactly %s characters", field, err.Param())
		case "alpha":
			message = fmt.Sprintf("%s must contain only letters", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		errors = append(errors, ValidationError{
			Field:   fieldName,
			Message: message,
		})
	}

	return errors
}
