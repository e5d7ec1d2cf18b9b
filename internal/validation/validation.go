// Package validation validates inbound request payloads.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"waypoint/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Struct validates v against its struct tags. Failures come back as a
// validation error listing the offending fields.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return models.NewValidationError("invalid request payload")
	}

	fields := make([]string, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", e.Field(), e.Tag()))
	}
	return models.NewValidationError("invalid fields: " + strings.Join(fields, ", "))
}

// ValidateDate checks the YYYY-MM-DD date format used across the API.
func ValidateDate(date string) error {
	if !dateRegex.MatchString(date) {
		return models.NewValidationError("date must be in YYYY-MM-DD format")
	}
	return nil
}

// ValidatePassword enforces the minimum password policy for registration.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return models.NewValidationError("password must be at least 8 characters")
	}
	return nil
}
