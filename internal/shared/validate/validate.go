package validate

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"social-service/internal/shared/apperr"
)

var (
	once sync.Once
	v    *validator.Validate
)

// Struct validates payload tags and converts failures into the service's
// validation error shape.
func Struct(s any) error {
	once.Do(func() { v = validator.New(validator.WithRequiredStructEnabled()) })
	if err := v.Struct(s); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			f := errs[0]
			if f.Tag() == "required" {
				return apperr.Invalid("%s is required", f.Field())
			}
			return apperr.Invalid("%s is invalid", f.Field())
		}
		return apperr.Invalid("invalid payload")
	}
	return nil
}
