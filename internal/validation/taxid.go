package validation

import "github.com/AlenaMolokova/checkout/internal/constants"

// TaxID validates a CPF given as its 11 digits. Sequences of one repeated
// digit pass the check-digit arithmetic but are rejected.
func TaxID(digits string) bool {
	if len(digits) != constants.TaxIDLength || !allDigits(digits) || sameDigit(digits) {
		return false
	}

	return checkDigit(digits[:9], 10) == digits[9]-'0' &&
		checkDigit(digits[:10], 11) == digits[10]-'0'
}

// checkDigit weighs prefix with firstWeight, firstWeight-1, ... and maps the
// remainder of sum*10 mod 11 to a single digit.
func checkDigit(prefix string, firstWeight int) byte {
	sum := 0
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * (firstWeight - i)
	}
	r := (sum * 10) % 11
	if r == 10 || r == 11 {
		r = 0
	}
	return byte(r)
}

func sameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
