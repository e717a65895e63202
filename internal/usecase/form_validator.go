package usecase

import (
	"math"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

var phoneNoise = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// whole: float fields that must hold an integer value.
	if err := v.RegisterValidation("whole", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return f == math.Trunc(f)
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(normalizePhone(fl.Field().String()))
	}); err != nil {
		panic(err)
	}
	return v
}

func normalizePhone(raw string) string {
	return phoneNoise.Replace(strings.TrimSpace(raw))
}

// fieldRule is one field check: the value, its validator tag and the message key reported on failure.
type fieldRule struct {
	field string
	value any
	tag   string
	key   string
}

// check runs every rule and records one message key per failing field.
func check(rules []fieldRule) *ValidationError {
	vErr := &ValidationError{}
	for _, r := range rules {
		if err := formValidator.Var(r.value, r.tag); err != nil {
			vErr.add(r.field, r.key)
		}
	}
	return vErr
}
