package middleware

import (
	"fmt"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations adds the "vehicletype" tag to gin's validator
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("vehicletype", func(fl validator.FieldLevel) bool {
		return entity.VehicleType(fl.Field().String()).IsValid()
	})
}
