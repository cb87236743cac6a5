package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"vocab-quiz/internal/domain"
	"vocab-quiz/internal/util"

	"github.com/go-playground/validator/v10"
)

// Validator checks request DTOs against their `validate` struct tags and
// reports failures as domain.ValidationErrors.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that reports fields by their JSON names
// and understands the custom "ulid" tag.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("ulid", func(fl validator.FieldLevel) bool {
		return util.IsULID(fl.Field().String())
	})
	return &Validator{validate: v}
}

// ValidateStruct returns nil when s passes every rule.
func (v *Validator) ValidateStruct(s interface{}) domain.ValidationErrors {
	return toValidationErrors(v.validate.Struct(s), "")
}

// ValidateSessionID checks a path parameter holding a session ID.
func (v *Validator) ValidateSessionID(id string) domain.ValidationErrors {
	return toValidationErrors(v.validate.Var(id, "required,ulid"), "session_id")
}

func toValidationErrors(err error, field string) domain.ValidationErrors {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{{
			Field:   field,
			Code:    domain.CodeValidation,
			Message: err.Error(),
		}}
	}

	out := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := fe.Field()
		if name == "" {
			name = field
		}

		switch fe.Tag() {
		case "required":
			out = append(out, domain.NewMissingFieldError(name))
		case "oneof":
			ve := domain.NewInvalidFormatError(name, fe.Value())
			ve.Message = fmt.Sprintf("%s must be one of [%s]", name, fe.Param())
			out = append(out, ve)
		case "max":
			ve := domain.NewInvalidFormatError(name, nil)
			ve.Message = fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
			out = append(out, ve)
		default:
			out = append(out, domain.NewInvalidFormatError(name, fe.Value()))
		}
	}
	return out
}
