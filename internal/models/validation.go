package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Storage scales of the NUMERIC money and rate columns.
const (
	AmountScale int32 = 4
	RateScale   int32 = 8
)

var currencyCode = regexp.MustCompile(`^[A-Z]{3}$`)

func positiveDecimal(value interface{}) error {
	var d decimal.Decimal
	switch v := value.(type) {
	case decimal.Decimal:
		d = v
	case *decimal.Decimal:
		if v == nil {
			return errors.New("is required")
		}
		d = *v
	default:
		return errors.New("must be a decimal")
	}
	if !d.IsPositive() {
		return errors.New("must be greater than 0")
	}
	return nil
}

// maxScale rejects values with non-zero digits past places decimal places,
// which the database would otherwise round away.
func maxScale(places int32) validation.RuleFunc {
	return func(value interface{}) error {
		var d decimal.Decimal
		switch v := value.(type) {
		case decimal.Decimal:
			d = v
		case *decimal.Decimal:
			if v == nil {
				return nil
			}
			d = *v
		default:
			return errors.New("must be a decimal")
		}
		if !d.Equal(d.Truncate(places)) {
			return fmt.Errorf("must have at most %d decimal places", places)
		}
		return nil
	}
}

func nonNegativeDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal")
	}
	if d.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

// validationError wraps an ozzo error so that callers can match ErrValidation.
func validationError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// ValidateCreditLimit checks a new credit limit value.
func ValidateCreditLimit(limit decimal.Decimal) error {
	return validationError(validation.Validate(limit,
		validation.By(nonNegativeDecimal),
		validation.By(maxScale(AmountScale)),
	))
}
