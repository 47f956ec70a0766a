package utils

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/truemail-rb/truemail-go"
)

type Validator struct {
	Validate    *validator.Validate
	VerifyEmail func(email string) bool
}

var instance *Validator
var configuration *truemail.Configuration
var once sync.Once

func GetValidator() *Validator {
	once.Do(func() {
		configuration, _ = truemail.NewConfiguration(truemail.ConfigurationAttr{
			VerifierEmail:         "assistant@mail.calendar-assistant.app",
			ValidationTypeDefault: "mx",
			SmtpFailFast:          true,
		})

		instance = &Validator{
			Validate:    validator.New(validator.WithRequiredStructEnabled()),
			VerifyEmail: validateEmail,
		}

		registerCustomValidators(instance.Validate)
	})

	return instance
}

func validateEmail(email string) bool {
	return truemail.IsValid(email, configuration)
}

func registerCustomValidators(v *validator.Validate) {
	err := v.RegisterValidation("iso_datetime", isoDatetimeValidation)
	if err != nil {
		return
	}

	err = v.RegisterValidation("client_id_validation", clientIdValidation)
	if err != nil {
		return
	}
}

func isoDatetimeValidation(fl validator.FieldLevel) bool {
	_, ok := SafeParse(fl.Field().String())
	return ok
}

func clientIdValidation(fl validator.FieldLevel) bool {
	clientId := fl.Field().String()
	// Define the regular expression pattern for a valid client id
	// The pattern allows a-z, A-Z, 0-9, ., -, and _
	pattern := `^[a-zA-Z0-9.\-_]+$`
	match, err := regexp.MatchString(pattern, clientId)
	if err != nil {
		return false
	}

	return match
}
