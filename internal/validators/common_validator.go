package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"luxerent/internal/utils"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validation functions
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("currency_code", validateCurrencyCode)
	validate.RegisterValidation("iso_date", validateISODate)
	validate.RegisterValidation("iso_datetime", validateISODateTime)
	validate.RegisterValidation("past_date", validatePastDate)
	validate.RegisterValidation("charge_amount", validateChargeAmount)
}

// Common validation errors
var (
	ErrInvalidPhoneNumber = errors.New("invalid phone number format")
	ErrInvalidCurrency    = errors.New("invalid currency code")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidAmount      = errors.New("invalid charge amount")
)

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// ToMap flattens errors into field -> message pairs for API responses.
func (v ValidationErrors) ToMap() map[string]string {
	out := make(map[string]string, len(v))
	for _, err := range v {
		out[err.Field] = err.Message
	}
	return out
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationError := ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: getErrorMessage(err),
			}
			validationErrors = append(validationErrors, validationError)
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
	case "phone_number":
		return "Invalid phone number format"
	case "currency_code":
		return "Invalid currency code"
	case "iso_date":
		return "Invalid date, expected YYYY-MM-DD"
	case "iso_datetime":
		return "Invalid date-time, expected ISO-8601"
	case "past_date":
		return "Date must be in the past"
	case "charge_amount":
		return "Invalid charge amount"
	default:
		return fmt.Sprintf("Validation failed for %s", err.Field())
	}
}

// Custom validation functions
func validatePhoneNumber(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	if phone == "" {
		return true // Let required tag handle empty values
	}

	// E.164 format validation
	phoneRegex := regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
	return phoneRegex.MatchString(phone)
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return utils.IsSupportedCurrency(fl.Field().String())
}

func validateISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := utils.ParseDate(value)
	return ok
}

func validateISODateTime(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := utils.ParseDateTime(value)
	return ok
}

func validatePastDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	date, ok := utils.ParseDate(value)
	if !ok {
		return false
	}
	return date.Before(time.Now())
}

func validateChargeAmount(fl validator.FieldLevel) bool {
	amount := fl.Field().Float()
	return amount >= utils.MinChargeAmount && amount <= utils.MaxChargeAmount
}
