package mask

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigits(t *testing.T) {
	assert.Equal(t, "12345678", Digits("12.345-678"))
	assert.Equal(t, "", Digits("abc"))
	assert.Equal(t, "", Digits(""))
}

func TestMasks(t *testing.T) {
	tests := []struct {
		name     string
		mask     func(string) string
		input    string
		expected string
	}{
		{"tax id empty", TaxID, "", ""},
		{"tax id partial first group", TaxID, "12", "12"},
		{"tax id first separator", TaxID, "1234", "123.4"},
		{"tax id second separator", TaxID, "1234567", "123.456.7"},
		{"tax id check digit separator", TaxID, "1234567890", "123.456.789-0"},
		{"tax id complete", TaxID, "52998224725", "529.982.247-25"},
		{"tax id truncated", TaxID, "529982247251234", "529.982.247-25"},
		{"tax id from noisy input", TaxID, "529a982 247/25", "529.982.247-25"},
		{"postal code partial", PostalCode, "0131", "0131"},
		{"postal code separator", PostalCode, "013100", "01310-0"},
		{"postal code complete", PostalCode, "01310100", "01310-100"},
		{"postal code truncated", PostalCode, "0131010099", "01310-100"},
		{"card short", CardNumber, "411", "411"},
		{"card one group", CardNumber, "4111", "4111"},
		{"card second group started", CardNumber, "41111", "4111 1"},
		{"card sixteen digits", CardNumber, "4111111111111111", "4111 1111 1111 1111"},
		{"card nineteen digits", CardNumber, "6011000000000000004", "6011 0000 0000 0000 004"},
		{"card not truncated", CardNumber, "41111111111111111111111", "4111 1111 1111 1111 1111 111"},
		{"expiry month only", Expiry, "1", "1"},
		{"expiry separator", Expiry, "123", "12/3"},
		{"expiry complete", Expiry, "1229", "12/29"},
		{"expiry truncated", Expiry, "122999", "12/29"},
		{"security code", SecurityCode, "12a3", "123"},
		{"security code truncated", SecurityCode, "123456", "1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mask(tt.input))
		})
	}
}

func TestMasksAreIdempotent(t *testing.T) {
	masks := map[string]func(string) string{
		"tax id":        TaxID,
		"postal code":   PostalCode,
		"card number":   CardNumber,
		"expiry":        Expiry,
		"security code": SecurityCode,
	}
	inputs := []string{"", "1", "12", "123", "1234", "12345", "123456789", "52998224725", "12345678901234567890", "ab-12.3 4"}

	for name, m := range masks {
		for _, in := range inputs {
			once := m(in)
			assert.Equal(t, once, m(once), "%s(%q)", name, in)
		}
	}
}

func TestMasksDependOnDigitsOnly(t *testing.T) {
	// Typing one more digit into a masked value gives the same result as
	// masking the raw digits from scratch.
	raw := "52998224725"
	masked := ""
	for i := 0; i < len(raw); i++ {
		masked = TaxID(masked + raw[i:i+1])
		assert.Equal(t, TaxID(raw[:i+1]), masked)
	}

	// Deleting the last character of a masked value behaves the same way.
	for len(masked) > 0 {
		masked = TaxID(masked[:len(masked)-1])
		assert.Equal(t, TaxID(Digits(masked)), masked)
	}
}

func TestMasksNeverAddExtraSeparators(t *testing.T) {
	long := strings.Repeat("9", 40)

	assert.LessOrEqual(t, strings.Count(TaxID(long), ".")+strings.Count(TaxID(long), "-"), 3)
	assert.LessOrEqual(t, strings.Count(PostalCode(long), "-"), 1)
	assert.LessOrEqual(t, strings.Count(Expiry(long), "/"), 1)
	assert.Equal(t, 9, strings.Count(CardNumber(long), " "))
	assert.False(t, strings.HasSuffix(CardNumber("41111111"), " "))
}
