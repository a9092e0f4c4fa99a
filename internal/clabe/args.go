package clabe

import "github.com/olgasafonova/clabe-mcp-server/internal/catalog"

// MaxBatchSize caps the number of candidates in one batch validation.
const MaxBatchSize = 100

// ValidateArgs contains parameters for validating a CLABE
type ValidateArgs struct {
	CLABE any `json:"clabe" jsonschema:"CLABE number to validate, as an 18-digit string (e.g. 002010077777777771)"`
}

// ValidateBatchArgs contains parameters for validating several CLABEs
type ValidateBatchArgs struct {
	CLABEs []any `json:"clabes" jsonschema:"CLABE numbers to validate as strings (max 100)"`
}

// BatchItem is the outcome for one batch entry. Exactly one of Result and
// Error is set; Error means the entry was not a string.
type BatchItem struct {
	Index  int               `json:"index"`
	Result *ValidationResult `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// ValidateBatchResult is the result of a batch validation
type ValidateBatchResult struct {
	Items    []BatchItem `json:"items"`
	Total    int         `json:"total"`
	Valid    int         `json:"valid"`
	Invalid  int         `json:"invalid"`
	Rejected int         `json:"rejected"`
}

// CalculateArgs contains parameters for building a CLABE
type CalculateArgs struct {
	BankCode int    `json:"bank_code" jsonschema:"Bank code (e.g. 2 for BANAMEX); only the last 3 digits are used"`
	CityCode int    `json:"city_code" jsonschema:"Plaza code (e.g. 10 for Aguascalientes); only the last 3 digits are used"`
	Account  string `json:"account" jsonschema:"Account number digits; only the last 11 digits are used"`
}

// CalculateResult is the result of building a CLABE
type CalculateResult struct {
	CLABE    string `json:"clabe"`
	BankCode string `json:"bank_code"`
	CityCode string `json:"city_code"`
	Account  string `json:"account"`
	Checksum int    `json:"checksum"`
	BankTag  string `json:"bank_tag,omitempty"`
	CityName string `json:"city_name,omitempty"`
	// Registered is true when both codes exist in the catalog.
	Registered bool `json:"registered"`
}

// ComputeChecksumArgs contains parameters for computing a check digit
type ComputeChecksumArgs struct {
	Digits string `json:"digits" jsonschema:"First 17 digits of a CLABE (an 18th digit is ignored)"`
}

// ComputeChecksumResult is the result of computing a check digit
type ComputeChecksumResult struct {
	OK       bool   `json:"ok"`
	Checksum *int   `json:"checksum"`
	Message  string `json:"message,omitempty"`
}

// GetBankArgs contains parameters for a bank lookup
type GetBankArgs struct {
	Code int `json:"code" jsonschema:"Numeric bank code (0-999)"`
}

// GetBankResult is the result of a bank lookup
type GetBankResult struct {
	Bank catalog.Bank `json:"bank"`
}

// ListBanksArgs contains parameters for listing banks
type ListBanksArgs struct {
	Query string `json:"query,omitempty" jsonschema:"Optional filter on tag or name, case and accent insensitive"`
}

// ListBanksResult is the result of listing banks
type ListBanksResult struct {
	Banks       []catalog.Bank `json:"banks"`
	Count       int            `json:"count"`
	DataVersion string         `json:"data_version"`
}

// GetCityArgs contains parameters for a plaza lookup
type GetCityArgs struct {
	Code int `json:"code" jsonschema:"Numeric plaza code (0-999)"`
}

// GetCityResult is the result of a plaza lookup
type GetCityResult struct {
	City catalog.CityGroup `json:"city"`
}

// ListCitiesArgs contains parameters for listing plazas
type ListCitiesArgs struct {
	Query string `json:"query,omitempty" jsonschema:"Optional filter on any plaza name, case and accent insensitive"`
}

// ListCitiesResult is the result of listing plazas
type ListCitiesResult struct {
	Cities      []catalog.CityGroup `json:"cities"`
	Count       int                 `json:"count"`
	DataVersion string              `json:"data_version"`
}
