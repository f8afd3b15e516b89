// Package textutil holds presentation and parsing helpers for Persian
// listing text. These are free functions on plain values and sit outside
// the analytic core.
package textutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var persianDigits = map[rune]rune{
	'۰': '0',
	'۱': '1',
	'۲': '2',
	'۳': '3',
	'۴': '4',
	'۵': '5',
	'۶': '6',
	'۷': '7',
	'۸': '8',
	'۹': '9',
}

// ConvertPersianDigits replaces Persian digit glyphs with their Latin
// equivalents, leaving everything else untouched.
func ConvertPersianDigits(input string) string {
	if input == "" {
		return input
	}
	return strings.Map(func(r rune) rune {
		if latin, ok := persianDigits[r]; ok {
			return latin
		}
		return r
	}, input)
}

// Price texts come in several shapes: grouped digits with a currency word,
// a small number with a million/billion word, or a bare digit run.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})*)\s*(?:تومان|ریال|toman|rial)`),
	regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})*)\s*(?:میلیون|میلیارد|million|billion)`),
	regexp.MustCompile(`(?i)(\d+)\s*(?:میلیون|million)`),
	regexp.MustCompile(`(?i)(\d+)\s*(?:میلیارد|billion)`),
	regexp.MustCompile(`(\d{4,})`),
}

var (
	millionWords = regexp.MustCompile(`(?i)میلیون|million`)
	billionWords = regexp.MustCompile(`(?i)میلیارد|billion`)
)

// ParsePrice extracts a price in Toman from free listing text. Persian
// digits are normalized first; million/billion words scale the value, and a
// bare number under 1000 is read as millions. The second return is false
// when no price can be found.
func ParsePrice(text string) (int64, bool) {
	if strings.TrimSpace(text) == "" {
		return 0, false
	}
	normalized := ConvertPersianDigits(text)

	for _, pattern := range pricePatterns {
		match := pattern.FindStringSubmatch(normalized)
		if match == nil {
			continue
		}

		raw := strings.ReplaceAll(match[1], ",", "")
		price, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}

		switch {
		case millionWords.MatchString(normalized):
			price *= 1_000_000
		case billionWords.MatchString(normalized):
			price *= 1_000_000_000
		case price < 1000:
			price *= 1_000_000
		}
		return price, true
	}

	return 0, false
}

// FormatLargeNumber renders a value compactly with a K/M/B/T suffix and one
// decimal place.
func FormatLargeNumber(n int64) string {
	switch {
	case n >= 1_000_000_000_000:
		return fmt.Sprintf("%.1fT", float64(n)/1e12)
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1e9)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1e6)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1e3)
	default:
		return strconv.FormatInt(n, 10)
	}
}
