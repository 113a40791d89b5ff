// Package util contains small, dependency-free helpers shared across layers.
package util

import "strings"

const (
	// CNPJLength is the number of digits in a normalized CNPJ.
	CNPJLength = 14
	// CPFLength is the number of digits in a normalized CPF.
	CPFLength = 11
)

// NormalizeDocument strips every non-digit character from a tax id, so that
// "12.345.678/0001-90" and "12345678000190" share the same comparison key.
func NormalizeDocument(document string) string {
	var digits strings.Builder
	digits.Grow(len(document))

	for _, r := range document {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	return digits.String()
}

// IsValidCNPJ reports whether the value normalizes to a plausible CNPJ.
// Validation is structural (length and digit content); registry numbers from
// legacy systems do not always carry valid check digits.
func IsValidCNPJ(document string) bool {
	digits := NormalizeDocument(document)

	return len(digits) == CNPJLength && !allZero(digits)
}

// IsValidCPF reports whether the value normalizes to a plausible CPF.
func IsValidCPF(document string) bool {
	digits := NormalizeDocument(document)

	return len(digits) == CPFLength && !allZero(digits)
}

// FormatCNPJ renders a normalized CNPJ as "12.345.678/0001-90".
// Values that are not 14 digits long are returned unchanged.
func FormatCNPJ(digits string) string {
	if len(digits) != CNPJLength {
		return digits
	}

	return digits[0:2] + "." + digits[2:5] + "." + digits[5:8] + "/" + digits[8:12] + "-" + digits[12:14]
}

// FormatCPF renders a normalized CPF as "123.456.789-00".
// Values that are not 11 digits long are returned unchanged.
func FormatCPF(digits string) string {
	if len(digits) != CPFLength {
		return digits
	}

	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}

func allZero(digits string) bool {
	for _, r := range digits {
		if r != '0' {
			return false
		}
	}

	return true
}
