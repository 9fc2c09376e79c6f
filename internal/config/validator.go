package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/gridkit/internal/grid"
	gridkiterrors "github.com/alexisbeaulieu97/gridkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern     = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?$`)
	breakpointPattern = regexp.MustCompile(`^[a-z][a-z0-9]{0,7}$`)
	childIDPattern    = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("breakpoint", func(fl validator.FieldLevel) bool {
			return breakpointPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("child_id", func(fl validator.FieldLevel) bool {
			return childIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("columns", func(fl validator.FieldLevel) bool {
			c := fl.Field().Int()
			return c >= 1 && c <= grid.Columns
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on a layout document.
// Every problem is reported, not just the first.
func Validate(doc *Document) error {
	if doc == nil {
		return gridkiterrors.NewValidationError("document", "document is nil", nil)
	}

	var problems gridkiterrors.ValidationErrors

	if err := validatorInstance().Struct(doc); err != nil {
		problems = append(problems, convertValidationErrors(err)...)
	}

	for i := 1; i < len(doc.Breakpoints); i++ {
		prev, cur := doc.Breakpoints[i-1], doc.Breakpoints[i]
		if cur.MinWidth <= prev.MinWidth {
			problems = append(problems, &gridkiterrors.ValidationError{
				Field:   fmt.Sprintf("breakpoints[%d].min_width", i),
				Message: fmt.Sprintf("%s (%d) must be wider than %s (%d)", cur.Name, cur.MinWidth, prev.Name, prev.MinWidth),
			})
		}
	}
	if err := doc.Table().Validate(); err != nil {
		problems = append(problems, &gridkiterrors.ValidationError{Field: "breakpoints", Message: err.Error(), Err: err})
	}

	if len(problems) == 0 {
		return nil
	}
	return problems
}

func convertValidationErrors(err error) gridkiterrors.ValidationErrors {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return gridkiterrors.ValidationErrors{{Field: "document", Message: err.Error(), Err: err}}
	}

	out := make(gridkiterrors.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fieldPath(fe)
		out = append(out, &gridkiterrors.ValidationError{
			Field:   field,
			Message: describe(fe),
			Err:     fe,
		})
	}
	return out
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "columns":
		return fmt.Sprintf("must be between 1 and %d, got %v", grid.Columns, fe.Value())
	case "breakpoint":
		return fmt.Sprintf("%q is not a valid breakpoint name", fe.Value())
	case "child_id":
		return fmt.Sprintf("%q must be lowercase letters, digits, '-' or '_'", fe.Value())
	case "unique":
		return "child ids must be unique"
	case "semver":
		return fmt.Sprintf("%q is not a valid version", fe.Value())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "min", "max":
		return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
