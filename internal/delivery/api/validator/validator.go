// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"peterparts/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator with the catalog specific tags registered. It panics
// if a tag cannot be registered.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)

	if err := validate.RegisterValidation("brand", validBrand); err != nil {
		panic(errors.Wrap(err, "register brand validation"))
	}

	return &Validator{validate: validate}
}

// validBrand checks membership of the closed brand set.
func validBrand(fl validator.FieldLevel) bool {
	return entity.Brand(fl.Field().String()).IsValid()
}

// Validate reports every failing field as "field: tag" pairs.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fe.Field()+": "+fe.Tag())
	}

	return errors.New(strings.Join(messages, ", "))
}

// fieldName reports fields by their JSON name so messages match the payload.
func fieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return strings.ToLower(field.Name[:1]) + field.Name[1:]
	}

	return name
}
