// Package validation holds the pure request validators. Validation never
// performs I/O and never panics on malformed input: malformed input is the
// expected case it classifies.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/formworks/survey-server/src/models"
)

var (
	// ErrInvalidEmail indicates the email does not look like local@domain.tld
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidPhone indicates the phone has fewer than 10 or more than 15 digits
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrInvalidGender indicates the gender is not one of male, female, other
	ErrInvalidGender = errors.New("gender must be one of male, female, other")
)

// MissingFieldsError lists the required fields absent from a request.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// LoginInput is the shape checked before a login attempt.
type LoginInput struct {
	Username string
	Password string
}

// SurveyInput is the shape checked before a survey submission is persisted.
type SurveyInput struct {
	Name        string
	Gender      string
	Nationality string
	Email       string
	Phone       string
	Address     string
	Message     string
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var nonDigits = regexp.MustCompile(`\D`)

// PhoneDigits strips every non-digit character from phone.
func PhoneDigits(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// ValidateLogin requires a non-empty username and password.
func ValidateLogin(in LoginInput) error {
	var missing []string
	if in.Username == "" {
		missing = append(missing, "username")
	}
	if in.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

// ValidateSurvey checks field presence, email shape, phone digit count and
// the gender enum. Address and message are optional.
func ValidateSurvey(in SurveyInput) error {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", in.Name},
		{"gender", in.Gender},
		{"nationality", in.Nationality},
		{"email", in.Email},
		{"phone", in.Phone},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	if !emailPattern.MatchString(in.Email) {
		return ErrInvalidEmail
	}

	if n := len(PhoneDigits(in.Phone)); n < 10 || n > 15 {
		return ErrInvalidPhone
	}

	if !models.ValidGender(strings.ToLower(in.Gender)) {
		return ErrInvalidGender
	}

	return nil
}
