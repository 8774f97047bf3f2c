package validator

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	ErrRequired       = "is required"
	ErrMinValue       = "must be at least %s"
	ErrMaxValue       = "must be at most %s"
	ErrMinLength      = "must contain at least %s items"
	ErrMaxLength      = "must contain at most %s items"
	ErrMaxChars       = "must be at most %s characters long"
	ErrAlpha          = "must contain only letters"
	ErrPositiveAmount = "must be a positive amount with at most two decimal places"
	ErrDefaultInvalid = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	// decimals are validated through their string form
	validator.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	validator.RegisterValidation("positive_amount", validatePositiveAmount)

	return validator
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}

	return nil
}

func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}

	return amount.IsPositive() && amount.Equal(amount.Round(2))
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		if err.Kind() == reflect.Slice {
			return fmt.Sprintf(ErrMinLength, err.Param())
		}
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		switch err.Kind() {
		case reflect.Slice:
			return fmt.Sprintf(ErrMaxLength, err.Param())
		case reflect.String:
			return fmt.Sprintf(ErrMaxChars, err.Param())
		}
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "alpha":
		return ErrAlpha
	case "positive_amount":
		return ErrPositiveAmount
	default:
		return ErrDefaultInvalid
	}
}
