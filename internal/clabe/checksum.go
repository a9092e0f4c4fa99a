// Package clabe validates, decodes and builds CLABE (Clave Bancaria
// Estandarizada) numbers: 3-digit bank code, 3-digit plaza code, 11-digit
// account number and a check digit over the first 17 digits.
package clabe

import "regexp"

// Field widths and offsets of an 18-digit CLABE.
const (
	Length        = 18
	BankWidth     = 3
	CityWidth     = 3
	AccountWidth  = 11
	checkedDigits = BankWidth + CityWidth + AccountWidth
)

var checksumInputRegex = regexp.MustCompile(`^[0-9]{17,18}$`)

// checksumWeights repeat over the 17 checked positions.
var checksumWeights = [3]int{3, 7, 1}

// ComputeChecksum returns the check digit for the first 17 digits of s.
// ok is false unless s is exactly 17 or 18 ASCII digits.
func ComputeChecksum(s string) (checksum int, ok bool) {
	if !checksumInputRegex.MatchString(s) {
		return 0, false
	}

	sum := 0
	for i := 0; i < checkedDigits; i++ {
		digit := int(s[i] - '0')
		sum += (digit * checksumWeights[i%3]) % 10
	}

	return (10 - sum%10) % 10, true
}
