package court

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Registers the "timeofday" binding tag for string fields carrying
// wall-clock times.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
			_, err := ParseTimeOfDay(fl.Field().String())
			return err == nil
		})
	}
}
