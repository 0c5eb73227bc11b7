package application

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/MostafaRhazlani/EventFlow/internal/domain"
)

// checkStruct runs validator tags over in and converts violations into the
// domain validation error, keyed by field name.
func checkStruct(v *validator.Validate, in any) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return &domain.ValidationError{Fields: fields}
}
