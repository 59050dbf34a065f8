package types

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError is a local, pre-network failure. Message is the exact
// text shown to the patient; no request was issued when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string { return e.Message }

// AsValidation returns the ValidationError inside err, or nil.
func AsValidation(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// registerInput mirrors the fields registration requires. Field order
// matters: the first failing field decides the message, matching the
// order the registration form checks them in.
type registerInput struct {
	Email     string `validate:"required"`
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	DNI       string `validate:"required"`
}

var registerMessages = map[string]string{
	"Email":     "El correo es obligatorio",
	"FirstName": "El nombre es obligatorio",
	"LastName":  "Los apellidos son obligatorios",
	"DNI":       "El DNI es obligatorio",
}

// ValidateRegister checks field presence before registration touches the
// network. Whitespace-only values count as absent.
func ValidateRegister(u User) error {
	in := registerInput{
		Email:     strings.TrimSpace(u.Email),
		FirstName: strings.TrimSpace(u.FirstName),
		LastName:  strings.TrimSpace(u.LastName),
		DNI:       strings.TrimSpace(u.DNI),
	}
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		field := ve[0].StructField()
		return &ValidationError{Field: field, Message: registerMessages[field]}
	}
	return err
}
