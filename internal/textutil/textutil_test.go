package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertPersianDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"all persian", "۱۲۳۴۵۶۷۸۹۰", "1234567890"},
		{"mixed text", "قیمت ۵ میلیارد", "قیمت 5 میلیارد"},
		{"already latin", "5 billion", "5 billion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConvertPersianDigits(tt.input))
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		ok       bool
	}{
		{"grouped toman", "6,500,000,000 تومان", 6_500_000_000, true},
		{"english toman word", "2,000,000 toman", 2_000_000, true},
		{"billion word", "5 میلیارد", 5_000_000_000, true},
		{"million word", "850 میلیون", 850_000_000, true},
		{"english billion", "3 billion", 3_000_000_000, true},
		{"persian digits with billion", "۵ میلیارد", 5_000_000_000, true},
		{"bare large number", "6500000000", 6_500_000_000, true},
		{"bare short digit run is not a price", "750", 0, false},
		{"no digits", "قیمت توافقی", 0, false},
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, ok := ParsePrice(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, price)
			}
		})
	}
}

func TestParsePriceSmallNumberWithCurrencyWord(t *testing.T) {
	// A number under 1000 next to a currency word scales to millions.
	price, ok := ParsePrice("750 toman")
	assert.True(t, ok)
	assert.Equal(t, int64(750_000_000), price)
}

func TestFormatLargeNumber(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1_500, "1.5K"},
		{2_300_000, "2.3M"},
		{6_500_000_000, "6.5B"},
		{1_250_000_000_000, "1.3T"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatLargeNumber(tt.input))
		})
	}
}
