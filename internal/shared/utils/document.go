package utils

import "strings"

// StripDigits removes every non-digit character from s. CNPJ and CEP
// comparisons are always performed on the stripped form.
func StripDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidCNPJ reports whether s contains exactly 14 digits after stripping
// punctuation.
func IsValidCNPJ(s string) bool {
	return len(StripDigits(s)) == 14
}

// FormatCNPJ renders the display form XX.XXX.XXX/XXXX-XX. Partial input is
// formatted as far as it goes; anything beyond 14 digits is truncated.
func FormatCNPJ(s string) string {
	digits := StripDigits(s)
	if len(digits) > 14 {
		digits = digits[:14]
	}

	switch {
	case len(digits) <= 2:
		return digits
	case len(digits) <= 5:
		return digits[:2] + "." + digits[2:]
	case len(digits) <= 8:
		return digits[:2] + "." + digits[2:5] + "." + digits[5:]
	case len(digits) <= 12:
		return digits[:2] + "." + digits[2:5] + "." + digits[5:8] + "/" + digits[8:]
	default:
		return digits[:2] + "." + digits[2:5] + "." + digits[5:8] + "/" + digits[8:12] + "-" + digits[12:]
	}
}

// IsValidCEP reports whether s contains exactly 8 digits after stripping
// punctuation.
func IsValidCEP(s string) bool {
	return len(StripDigits(s)) == 8
}
