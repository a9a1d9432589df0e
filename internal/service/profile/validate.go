package profile

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MsgRequiredFields is the client-facing message for a create without its required fields.
const MsgRequiredFields = "Name, email, and phone are required"

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError lists the required fields that were missing. It matches ErrValidation
// with errors.Is.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return MsgRequiredFields
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ValidateCreate checks that name, email and phone are present.
func ValidateCreate(params CreateParams) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return &ValidationError{Fields: fields}
}
