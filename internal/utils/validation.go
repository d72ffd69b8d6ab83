package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"nexttrain.org/internal/itinerary"
)

// DefaultDepartureLimit is used when a departures query has no limit.
const DefaultDepartureLimit = 5

var (
	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()

	// Report errors under the query parameter name the caller used.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("param")
	})

	_ = v.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
		return ValidateClockTime(fl.Field().String()) == nil
	})

	return v
}

// ValidateClockTime accepts H:MM, HH:MM and HH:MM:SS times within a single day.
func ValidateClockTime(value string) error {
	minutes, ok := itinerary.ParseMinutes(value)
	if !ok {
		return fmt.Errorf("invalid time %q, use HH:MM", value)
	}
	if minutes >= 24*60 {
		return fmt.Errorf("time %q is past the end of the day", value)
	}
	return nil
}

// SanitizeInput removes HTML tags and trims whitespace
func SanitizeInput(input string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(input, ""))
}

// ValidateStruct runs the struct's validate tags and returns the failures keyed
// by parameter name, or nil when everything is valid.
func ValidateStruct(s interface{}) map[string][]string {
	return validateStruct(s, func(name string) string { return name })
}

// validateStruct is ValidateStruct with field names passed through rename
// before they are used as keys and in messages.
func validateStruct(s interface{}, rename func(string) string) map[string][]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]string{"request": {err.Error()}}
	}

	fieldErrors := make(map[string][]string)
	for _, fe := range validationErrors {
		field := rename(fe.Field())
		fieldErrors[field] = append(fieldErrors[field], fieldErrorMessage(field, fe))
	}
	return fieldErrors
}

func fieldErrorMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Missing required field %q.", field)
	case "max":
		return fmt.Sprintf("Field %q is too long (max %s characters).", field, fe.Param())
	default:
		return fmt.Sprintf("Invalid field value for field %q.", field)
	}
}
