package validation

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/homeroom/internal/app/models"
)

// Validation rule patterns
var (
	// Student identifiers are letters, digits, dashes and underscores
	StudentIDPattern = `^[A-Za-z0-9_-]{1,32}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	StudentID *regexp.Regexp
}{
	StudentID: regexp.MustCompile(StudentIDPattern),
}

// rules maps binding tag names to their checks
var rules = map[string]validator.Func{
	"studentid": func(fl validator.FieldLevel) bool {
		return CompiledPatterns.StudentID.MatchString(fl.Field().String())
	},
	"period": func(fl validator.FieldLevel) bool {
		return models.PeriodIndex(models.Period(fl.Field().String())) >= 0
	},
	"counselingtype": func(fl validator.FieldLevel) bool {
		_, ok := models.CounselingTypes[fl.Field().String()]
		return ok
	},
}

// Register adds the custom rules to v
func Register(v *validator.Validate) error {
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s rule: %w", tag, err)
		}
	}
	return nil
}

// RegisterWithGin adds the custom rules to gin's binding validator
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return Register(v)
}
