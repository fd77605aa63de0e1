package items

import (
	"errors"
	"fmt"
	"strings"

	"econ-cdn/core/resolve"

	"github.com/go-playground/validator/v10"
)

// newValidator returns a validator that also knows the "phase" tag.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phase", validatePhase)
	return v
}

func validatePhase(fl validator.FieldLevel) bool {
	_, ok := resolve.ParsePhase(fl.Field().String())
	return ok
}

// formatValidationError turns validation errors into a field -> message map without
// leaking struct names.
func formatValidationError(err error) map[string]string {
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "phase":
			errs[field] = "Must be one of ruby, sapphire, blackpearl, emerald, phase1, phase2, phase3, phase4"
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}
	return errs
}
