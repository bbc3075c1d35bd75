package validation

import (
	"strings"

	"github.com/AlenaMolokova/checkout/internal/constants"
	"github.com/AlenaMolokova/checkout/internal/utils"
)

// CardNumber validates the digits of a payment card: 13 to 19 digits with a
// valid Luhn check digit.
func CardNumber(digits string) bool {
	if len(digits) < constants.CardMinLength || len(digits) > constants.CardMaxLength {
		return false
	}
	return utils.LuhnCheck(digits)
}

// CardBrand classifies a card by its leading digits. The first matching rule
// wins, so 51-55 resolve to Mastercard before the Elo prefixes are tried.
func CardBrand(digits string) string {
	switch {
	case strings.HasPrefix(digits, "4"):
		return constants.BrandVisa
	case hasPrefixIn(digits, "51", "52", "53", "54", "55"):
		return constants.BrandMastercard
	case hasPrefixIn(digits, "50", "56", "57", "58"):
		return constants.BrandElo
	case hasPrefixIn(digits, "34", "37"):
		return constants.BrandAmex
	case strings.HasPrefix(digits, "6"):
		return constants.BrandDiscover
	default:
		return constants.BrandUnknown
	}
}

func hasPrefixIn(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
