package validator

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	ierr "github.com/lumelec/backoffice/internal/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// NewValidator builds the shared validator. Field names in reported
// details follow the JSON keys callers actually send.
func NewValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

func GetValidator() *validator.Validate {
	return NewValidator()
}

// ValidateRequest runs struct tag validation and marks failures as
// validation errors with one detail entry per offending field
func ValidateRequest(req interface{}) error {
	if err := GetValidator().Struct(req); err != nil {
		details := make(map[string]any)
		var validateErrs validator.ValidationErrors
		if ierr.As(err, &validateErrs) {
			for _, err := range validateErrs {
				details[err.Field()] = describe(err)
			}
		}
		return ierr.WithError(err).
			WithHint(hintFor(validateErrs)).
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be a date formatted as " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return fe.Error()
	}
}

func hintFor(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "Request validation failed"
	}
	missing := make([]string, 0, len(errs))
	for _, fe := range errs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		return "Missing required fields: " + strings.Join(missing, ", ") + "."
	}
	return "Request validation failed"
}
