package clabe

import (
	"strconv"
	"strings"

	"github.com/olgasafonova/clabe-mcp-server/internal/errors"
)

// Calculate builds an 18-digit CLABE from its parts. Each part is
// left-padded with zeros and cut to its field width, keeping the rightmost
// digits, so Calculate(2, 10, "7777777777") is "002010077777777771".
// The bank and plaza codes are not checked against the catalog.
func Calculate(bankCode, cityCode int, account string) (string, error) {
	if bankCode < 0 {
		return "", errors.NewValidationError("bank_code", strconv.Itoa(bankCode), "must not be negative")
	}
	if cityCode < 0 {
		return "", errors.NewValidationError("city_code", strconv.Itoa(cityCode), "must not be negative")
	}

	account = strings.TrimSpace(account)
	if account == "" {
		return "", errors.NewValidationError("account", "", "is required")
	}
	if !isDigits(account) {
		return "", errors.NewValidationError("account", account, "must contain only digits")
	}

	number := fit(strconv.Itoa(bankCode), BankWidth) +
		fit(strconv.Itoa(cityCode), CityWidth) +
		fit(account, AccountWidth)

	checksum, _ := ComputeChecksum(number)
	return number + strconv.Itoa(checksum), nil
}

// CalculateFromNumbers is Calculate for a numeric account number.
func CalculateFromNumbers(bankCode, cityCode int, account uint64) (string, error) {
	return Calculate(bankCode, cityCode, strconv.FormatUint(account, 10))
}

// fit pads digits with leading zeros to width and keeps the last width digits.
func fit(digits string, width int) string {
	if len(digits) < width {
		digits = strings.Repeat("0", width-len(digits)) + digits
	}
	return digits[len(digits)-width:]
}
