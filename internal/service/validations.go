package service

import (
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once

	e164Pattern = regexp.MustCompile(`^\+\d{10,15}$`)
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		validate.RegisterValidation("phone_e164", func(fl validator.FieldLevel) bool {
			return e164Pattern.MatchString(NormalizePhone(fl.Field().String()))
		})
	})
}

func validatorInstance() *validator.Validate {
	InitValidator()
	return validate
}

// NormalizePhone drops spaces and dashes, "+1 555-010-9999" becomes "+15550109999".
func NormalizePhone(phone string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(phone))
}
