package forms

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var ErrValidation = errors.New("validation failed")

// phonePattern accepts international numbers with common separators.
var phonePattern = regexp.MustCompile(`^[+]?[0-9\s\-()]{10,}$`)

// NewsletterSignup is the newsletter subscription payload.
type NewsletterSignup struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
}

// ContactMessage is the contact form payload.
type ContactMessage struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,phone"`
	Subject string `json:"subject,omitempty" validate:"omitempty,max=150"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator checks form payloads against their declared rules.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Check validates a payload and returns one FieldError per violated rule.
func (v *Validator) Check(payload any) ([]FieldError, error) {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil, nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return nil, err
	}

	fields := make([]FieldError, 0, len(invalid))
	for _, fe := range invalid {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return fields, fmt.Errorf("%w: %d field(s)", ErrValidation, len(fields))
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Dieses Feld ist erforderlich"
	case "email":
		return "Bitte geben Sie eine gültige E-Mail-Adresse ein"
	case "phone":
		return "Bitte geben Sie eine gültige Telefonnummer ein"
	case "min":
		return fmt.Sprintf("Mindestens %s Zeichen erforderlich", fe.Param())
	case "max":
		return fmt.Sprintf("Maximal %s Zeichen erlaubt", fe.Param())
	}
	return "Ungültiges Format"
}
