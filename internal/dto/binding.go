package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/testebank/testebank_backend/internal/utils/dateutil"
)

// RegisterCustomValidators installs the `displaydate` binding tag on gin's
// validator engine. Call once at startup, before the router handles requests.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("displaydate", func(fl validator.FieldLevel) bool {
		return dateutil.IsValidCalendarDate(dateutil.FormatDisplayDate(fl.Field().String()))
	})
}
