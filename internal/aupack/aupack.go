// Package aupack is an optional pattern pack demonstrating the
// extension point from §6.3 with user-declared EntityKinds: Australian
// Tax File Numbers, Medicare numbers, Business Numbers, Company Numbers,
// and Bank-State-Branch codes. It is disabled by default — the closed
// EntityKind set in §3 never includes these — but wiring it in via
// `pattern_packs: ["au"]` shows a consumer supplying both a regex and a
// checksum validator the way §3's Pattern type allows.
//
// The checksum formulas below are the official Australian government
// algorithms, ported from the teacher's pkg/validation validators as
// plain functions — this pack needed only the five check-digit
// computations, not the Validator/Type/Normalize interface or the
// ValidatorRegistry that package built around them.
package aupack

import (
	"regexp"
	"strconv"

	"github.com/MacAttak/pi-sanitizer/pkg/pattern"
	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

var nonDigit = regexp.MustCompile(`[^\d]`)

// Patterns returns the Australian identifier pack.
func Patterns() []pattern.Pattern {
	return []pattern.Pattern{
		{
			Name:      sanitize.EntityKind("AU_TFN"),
			Regex:     regexp.MustCompile(`\b\d{3}[\s\-]?\d{3}[\s\-]?\d{3}\b`),
			Validator: validTFN,
		},
		{
			Name:      sanitize.EntityKind("AU_ABN"),
			Regex:     regexp.MustCompile(`\b\d{2}[\s]?\d{3}[\s]?\d{3}[\s]?\d{3}\b`),
			Validator: validABN,
		},
		{
			Name:      sanitize.EntityKind("AU_MEDICARE"),
			Regex:     regexp.MustCompile(`\b[2-6]\d{3}[\s\-]?\d{5}[\s\-]?\d(?:/\d)?\b`),
			Validator: validMedicare,
		},
		{
			Name:      sanitize.EntityKind("AU_BSB"),
			Regex:     regexp.MustCompile(`\b\d{3}[\-]?\d{3}\b`),
			Validator: validBSB,
		},
		{
			Name:      sanitize.EntityKind("AU_ACN"),
			Regex:     regexp.MustCompile(`\b\d{3}[\s]?\d{3}[\s]?\d{3}\b`),
			Validator: validACN,
		},
	}
}

// validTFN checks a Tax File Number with the official weighted-sum
// algorithm: weights 1,4,3,7,5,8,6,9,10 over 9 digits, valid when the
// weighted sum is divisible by 11.
func validTFN(match string) bool {
	tfn := nonDigit.ReplaceAllString(match, "")
	if len(tfn) != 9 {
		return false
	}

	weights := [9]int{1, 4, 3, 7, 5, 8, 6, 9, 10}
	sum := 0
	for i := 0; i < 9; i++ {
		digit, err := strconv.Atoi(string(tfn[i]))
		if err != nil {
			return false
		}
		sum += digit * weights[i]
	}
	return sum%11 == 0
}

// validABN checks a Business Number with the modulus-89 algorithm:
// subtract 1 from the first digit, apply weights
// 10,1,3,5,7,9,11,13,15,17,19 over 11 digits, valid when divisible by 89.
func validABN(match string) bool {
	abn := nonDigit.ReplaceAllString(match, "")
	if len(abn) != 11 {
		return false
	}

	weights := [11]int{10, 1, 3, 5, 7, 9, 11, 13, 15, 17, 19}
	first, err := strconv.Atoi(string(abn[0]))
	if err != nil {
		return false
	}
	sum := (first - 1) * weights[0]
	for i := 1; i < 11; i++ {
		digit, err := strconv.Atoi(string(abn[i]))
		if err != nil {
			return false
		}
		sum += digit * weights[i]
	}
	return sum%89 == 0
}

// validMedicare checks a Medicare number: 10-11 digits, leading digit
// 2-6, check digit (9th digit) equal to the weighted sum of the first 8
// digits (weights 1,3,7,9,1,3,7,9) mod 10.
func validMedicare(match string) bool {
	medicare := regexp.MustCompile(`[\s\-/]`).ReplaceAllString(match, "")
	if len(medicare) < 10 || len(medicare) > 11 {
		return false
	}
	if medicare[0] < '2' || medicare[0] > '6' {
		return false
	}

	checkDigit, err := strconv.Atoi(string(medicare[8]))
	if err != nil {
		return false
	}

	weights := [8]int{1, 3, 7, 9, 1, 3, 7, 9}
	sum := 0
	for i := 0; i < 8; i++ {
		digit, err := strconv.Atoi(string(medicare[i]))
		if err != nil {
			return false
		}
		sum += digit * weights[i]
	}
	return sum%10 == checkDigit
}

// validBSB checks a Bank-State-Branch code: exactly 6 digits, with the
// 3rd digit (the state code) in the valid range 2-7.
func validBSB(match string) bool {
	bsb := nonDigit.ReplaceAllString(match, "")
	if len(bsb) != 6 {
		return false
	}
	return bsb[2] >= '2' && bsb[2] <= '7'
}

// validACN checks a Company Number: 9 digits, check digit (last digit)
// equal to (10 - weighted sum mod 10) mod 10, weights 8,7,6,5,4,3,2,1
// over the first 8 digits.
func validACN(match string) bool {
	acn := nonDigit.ReplaceAllString(match, "")
	if len(acn) != 9 {
		return false
	}

	weights := [8]int{8, 7, 6, 5, 4, 3, 2, 1}
	sum := 0
	for i := 0; i < 8; i++ {
		digit, err := strconv.Atoi(string(acn[i]))
		if err != nil {
			return false
		}
		sum += digit * weights[i]
	}
	checkDigit := (10 - sum%10) % 10

	last, err := strconv.Atoi(string(acn[8]))
	if err != nil {
		return false
	}
	return checkDigit == last
}
