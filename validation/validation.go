// Package validation contains custom validation functions for the application to use for input validation.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"TaskWebService/response"

	"github.com/go-playground/validator/v10"
)

// Accepted values for the categorical task fields.
var (
	Statuses   = []string{"todo", "inProgress", "completed"}
	Priorities = []string{"low", "normal", "high"}
)

var dateLayouts = []string{time.RFC3339, time.DateOnly}

// New returns a validator with the custom task rules registered.
// Field names in reported errors follow the json tags of the validated struct.
func New() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterValidation("fieldValidator", FieldValidator)
	validate.RegisterValidation("statusValidator", StatusValidator)
	validate.RegisterValidation("priorityValidator", PriorityValidator)
	validate.RegisterValidation("dateValidator", DateValidator)
	return validate
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// StatusValidator accepts only the known task statuses.
func StatusValidator(fl validator.FieldLevel) bool {
	return oneOf(fl.Field().String(), Statuses)
}

// PriorityValidator accepts only the known task priorities.
func PriorityValidator(fl validator.FieldLevel) bool {
	return oneOf(fl.Field().String(), Priorities)
}

// DateValidator checks that the field parses with ParseDate.
func DateValidator(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

// FieldValidator is a validation function that checks if the field value is empty.
// It returns true if the field value is not empty, and false otherwise.
func FieldValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	return true
}

// ParseDate parses an RFC 3339 timestamp or a calendar date.
// Calendar dates are read as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// Errors converts the error returned by Validate.Struct into the itemized list
// sent back to the caller. It reports false when err is not a validation failure.
func Errors(err error) ([]response.FieldError, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	out := make([]response.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, response.FieldError{
			Type:     "field",
			Value:    fe.Value(),
			Msg:      message(fe),
			Path:     fe.Field(),
			Location: "body",
		})
	}
	return out, true
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "fieldValidator":
		return fmt.Sprintf("%s must not be empty", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	case "statusValidator":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), strings.Join(Statuses, ", "))
	case "priorityValidator":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), strings.Join(Priorities, ", "))
	case "dateValidator":
		return fmt.Sprintf("%s must be a date (YYYY-MM-DD) or an RFC 3339 timestamp", fe.Field())
	}
	return "Invalid value"
}
