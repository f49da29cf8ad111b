package pattern

import (
	"regexp"
	"unicode"

	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

// BuiltinPatterns returns the closed-set patterns every pipeline carries
// unconditionally: EMAIL, PHONE, SSN, CREDIT_CARD, IPV4, IPV6. The regex
// shapes follow the original regex_detector.py pattern dictionary
// (original_source/maskingengine/detectors/regex_detector.py); the
// CREDIT_CARD validator is the Luhn check mandated by §4.1.
func BuiltinPatterns() []Pattern {
	return []Pattern{
		{
			Name:  sanitize.KindEmail,
			Regex: regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`),
		},
		{
			Name:  sanitize.KindSSN,
			Regex: regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
		},
		{
			// Matches the common 13-19 digit card-number shapes (with
			// optional space/dash separators in groups of four); the
			// Luhn validator below is the actual acceptance gate.
			Name:      sanitize.KindCreditCard,
			Regex:     regexp.MustCompile(`\b(?:\d[ -]?){13,19}\b`),
			Validator: luhnValid,
		},
		{
			Name:  sanitize.KindPhone,
			Regex: regexp.MustCompile(`\b(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]\d{3}[-.\s]\d{4}\b`),
		},
		{
			Name:  sanitize.KindIPv4,
			Regex: regexp.MustCompile(`\b(?:(?:25[0-5]|2[0-4]\d|1?\d?\d)\.){3}(?:25[0-5]|2[0-4]\d|1?\d?\d)\b`),
		},
		{
			Name:  sanitize.KindIPv6,
			Regex: regexp.MustCompile(`\b(?:[0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}\b`),
		},
	}
}

// luhnValid implements the Luhn checksum mandated by §4.1: strip
// non-digits, require length 13-19, sum mod 10 must be zero.
func luhnValid(match string) bool {
	digits := make([]byte, 0, len(match))
	for _, r := range match {
		if unicode.IsDigit(r) {
			digits = append(digits, byte(r-'0'))
		}
	}
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i])
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
