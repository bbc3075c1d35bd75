package utils

// LuhnCheck reports whether a digit string carries a valid Luhn check digit.
// Any non-digit character makes the number invalid.
func LuhnCheck(number string) bool {
	if number == "" {
		return false
	}

	sum, ok := luhnSum(number, false)
	if !ok {
		return false
	}
	return sum%10 == 0
}

// LuhnCheckDigit computes the digit that makes payload+digit pass LuhnCheck.
func LuhnCheckDigit(payload string) (byte, bool) {
	sum, ok := luhnSum(payload, true)
	if !ok {
		return 0, false
	}
	return byte('0' + (10-sum%10)%10), true
}

// luhnSum walks the digits right to left, doubling every second one. When
// doubleFirst is set the rightmost digit is doubled, which is the position it
// takes once a check digit is appended.
func luhnSum(number string, doubleFirst bool) (int, bool) {
	var sum int
	isEven := doubleFirst

	for i := len(number) - 1; i >= 0; i-- {
		if number[i] < '0' || number[i] > '9' {
			return 0, false
		}
		digit := int(number[i] - '0')
		if isEven {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		isEven = !isEven
	}

	return sum, true
}
