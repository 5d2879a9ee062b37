package request

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Commercial recordings predate none of the catalog we carry.
const earliestReleaseYear = 1900

// RegisterValidations hooks the custom binding validators into gin's
// validator engine. Call once at startup, before routes are served.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	return v.RegisterValidation("release_year", func(fl validator.FieldLevel) bool {
		year := fl.Field().Int()
		return year >= earliestReleaseYear && year <= int64(time.Now().Year())+1
	})
}
