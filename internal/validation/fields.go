package validation

import (
	"strings"

	"github.com/AlenaMolokova/checkout/internal/constants"
)

func Name(name string) bool {
	return len([]rune(strings.TrimSpace(name))) >= constants.NameMinLength
}

func StreetNumber(number string) bool {
	return strings.TrimSpace(number) != ""
}

// SecurityCode expects the already masked code, so only its length matters.
func SecurityCode(code string) bool {
	return len(code) >= constants.SecurityCodeMin && len(code) <= constants.SecurityCodeMax && allDigits(code)
}
