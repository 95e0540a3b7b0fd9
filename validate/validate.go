// Package validate contains custom validation functions
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	passwordvalidator "github.com/wagslane/go-password-validator"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	phoneRegex    = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	otpRegex      = regexp.MustCompile(`^[0-9]{6}$`)
)

// Username is a custom validation function that is used to validate the username
func Username(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}

// Password is custom validation function that is used to validate passwords
func Password(fl validator.FieldLevel) bool {
	const minEntropy = 60
	password := fl.Field().String()

	err := passwordvalidator.Validate(password, minEntropy)
	return err == nil
}

// Phone is a custom validation function that is used to validate phone numbers
func Phone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

// OTPCode is a custom validation function that is used to validate one time codes
func OTPCode(fl validator.FieldLevel) bool {
	return otpRegex.MatchString(fl.Field().String())
}

// New creates a validator with all the custom validation functions registered,
// naming fields after their json tags
func New() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("validate_username", Username)
	v.RegisterValidation("validate_password", Password)
	v.RegisterValidation("validate_phone", Phone)
	v.RegisterValidation("validate_otp", OTPCode)
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Struct validates the given payload and returns a field to message map,
// nil when the payload is valid
func Struct(payload interface{}) map[string]string {
	err := New().Struct(payload)
	if err == nil {
		return nil
	}

	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"payload": "Invalid request payload"}
	}

	fields := make(map[string]string, len(vErrs))
	for _, fe := range vErrs {
		fields[fe.Field()] = message(fe)
	}

	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "email":
		return "Email is not valid."
	case "validate_username":
		return "Username must be 3-20 characters and can only contain letters, numbers, and underscores."
	case "validate_password":
		return "Password is not strong enough."
	case "validate_phone":
		return "Phone number is not valid."
	case "validate_otp":
		return "OTP must be exactly 6 digits."
	case "url":
		return "Avatar URL is not valid."
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s can not exceed %s characters.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is not valid.", fe.Field())
	}
}
