package clabe

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/olgasafonova/clabe-mcp-server/internal/catalog"
	"github.com/olgasafonova/clabe-mcp-server/internal/errors"
)

const messageValid = "Valid"

var errorMessages = map[ErrorKind]string{
	KindLength:     "Must be exactly 18 digits long",
	KindCharacters: "Must be only numeric digits (no letters)",
	KindChecksum:   "Invalid checksum, last digit should be: ",
	KindBank:       "Invalid bank code: ",
	KindCity:       "Invalid city code: ",
}

// ValidateValue validates an arbitrary decoded value. Anything other than a
// string is a caller error and yields an ArgumentTypeError instead of a result.
func ValidateValue(candidate any) (ValidationResult, error) {
	s, ok := candidate.(string)
	if !ok {
		return ValidationResult{}, errors.NewArgumentTypeError("validate", "string", candidate)
	}
	return Validate(s), nil
}

// Validate classifies candidate against the CLABE rules. Failures are
// reported in the result; the first broken rule wins, in ErrorKinds order.
func Validate(candidate string) ValidationResult {
	runes := []rune(candidate)
	bankCode := substring(runes, 0, 3)
	cityCode := substring(runes, 3, 6)

	result := ValidationResult{
		BankCode: bankCode,
		CityCode: cityCode,
		Account:  substring(runes, 6, 17),
	}

	if code, ok := leadingInt(bankCode); ok {
		if bank, found := catalog.LookupBank(code); found {
			result.BankTag = bank.Tag
			result.BankName = bank.Name
		}
	}
	if code, ok := leadingInt(cityCode); ok {
		if name, found := catalog.CityName(code); found {
			result.CityName = name
		}
	}

	expected, checksumOK := ComputeChecksum(candidate)
	if checksumOK {
		result.Checksum = &expected
	}

	var kind ErrorKind
	var detail string
	switch {
	case len(runes) != Length:
		kind = KindLength
	case !isDigits(candidate):
		kind = KindCharacters
	case int(candidate[Length-1]-'0') != expected:
		kind, detail = KindChecksum, strconv.Itoa(expected)
	case result.BankTag == "":
		kind, detail = KindBank, bankCode
	case result.CityName == "":
		kind, detail = KindCity, cityCode
	}

	result.OK = kind == ""
	result.Kind = kind
	result.Error = kind.Code()
	result.FormatOK = kind.wellFormed()
	if result.OK {
		result.Message = messageValid
	} else {
		result.Message = errorMessages[kind] + detail
	}

	return result
}

// substring returns runes[start:end] clamped to the input length.
func substring(runes []rune, start, end int) string {
	if start > len(runes) {
		start = len(runes)
	}
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[start:end])
}

// leadingInt parses the integer at the start of s after leading whitespace
// and an optional sign. "002" is 2, " 02" is 2, "0a1" is 0; ok is false when
// no digit follows.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, i := 0, 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	if neg {
		n = -n
	}
	return n, i > 0
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
