// Package validator validates request DTOs with go-playground/validator and
// plugs into echo as its Validator.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"gameshub/domain"
	apperrors "gameshub/utils/errors"
)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return domain.ValidSlug(fl.Field().String())
	})
	_ = validate.RegisterValidation("gametype", func(fl validator.FieldLevel) bool {
		return domain.GameType(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return domain.AdminRole(fl.Field().String()).Valid()
	})

	// Report JSON field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: validate}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return &ValidationError{Fields: fieldMessages(verrs)}
}

// ValidationError lists a message per invalid JSON field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return apperrors.ErrInvalidInput
}

func fieldMessages(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, err := range errs {
		field := err.Field()
		switch err.Tag() {
		case "required":
			out[field] = field + " is required"
		case "email":
			out[field] = field + " must be a valid email address"
		case "min":
			out[field] = fmt.Sprintf("%s must be at least %s", field, err.Param())
		case "max":
			out[field] = fmt.Sprintf("%s must be at most %s", field, err.Param())
		case "url", "http_url":
			out[field] = field + " must be a valid http(s) URL"
		case "slug":
			out[field] = field + " must be lower-kebab-case, at most 64 characters"
		case "gametype":
			out[field] = field + " must be one of quiz, hangman, headline_scramble"
		case "role":
			out[field] = field + " must be one of owner, admin, editor"
		case "oneof":
			out[field] = fmt.Sprintf("%s must be one of %s", field, err.Param())
		default:
			out[field] = fmt.Sprintf("%s failed %s validation", field, err.Tag())
		}
	}
	return out
}
