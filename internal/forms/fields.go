package forms

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// cleanString enforces required/max-length rules on a text field and
// records failures on ve. Leading and trailing whitespace is stripped.
func cleanString(ve *ValidationError, field, value string, required bool, maxLength int) string {
	value = strings.TrimSpace(value)
	if required && value == "" {
		ve.AddFieldError(field, CodeRequired, "this field is required")
		return value
	}
	if maxLength > 0 && len([]rune(value)) > maxLength {
		ve.AddFieldError(field, CodeMaxLength,
			fmt.Sprintf("ensure this value has at most %d characters", maxLength))
	}
	return value
}

// cleanDecimal parses a decimal field and enforces minimum value, total
// digit count and decimal places. The returned value is only meaningful
// when no error was recorded for the field.
func cleanDecimal(ve *ValidationError, field, value string, min decimal.Decimal, maxDigits, decimalPlaces int) decimal.Decimal {
	value = strings.TrimSpace(value)
	if value == "" {
		ve.AddFieldError(field, CodeRequired, "this field is required")
		return decimal.Zero
	}
	// Accept comma as decimal separator, the common form in DE/AT/CH.
	value = strings.Replace(value, ",", ".", 1)
	d, err := decimal.NewFromString(value)
	if err != nil {
		ve.AddFieldError(field, CodeInvalid, "enter a number")
		return decimal.Zero
	}
	if d.LessThan(min) {
		ve.AddFieldError(field, CodeMinValue,
			fmt.Sprintf("ensure this value is greater than or equal to %s", min))
		return d
	}
	if exp := -d.Exponent(); exp > int32(decimalPlaces) {
		ve.AddFieldError(field, CodeDecimalPlaces,
			fmt.Sprintf("ensure there are no more than %d decimal places", decimalPlaces))
		return d
	}
	if digits := countDigits(d); digits > maxDigits {
		ve.AddFieldError(field, CodeMaxDigits,
			fmt.Sprintf("ensure there are no more than %d digits in total", maxDigits))
	}
	return d
}

func countDigits(d decimal.Decimal) int {
	s := d.Abs().String()
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits
}

// cleanBool interprets the checkbox values web forms submit.
func cleanBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
