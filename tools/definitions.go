package tools

// AllTools contains all tool specifications for the CLABE MCP server.
// Tool descriptions follow a structured format for LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// VALIDATION TOOLS
	// ==========================================================================
	{
		Name:     "clabe_validate",
		Method:   "Validate",
		Title:    "Validate CLABE",
		Category: "validate",
		Description: `Validate a Mexican CLABE (18-digit interbank account number) and decode its parts.

USE WHEN: User asks "is this CLABE valid", "which bank is this CLABE from", "check this account number".

NOT FOR: Building a CLABE from its parts (use clabe_calculate). Several numbers at once (use clabe_validate_batch).

PARAMETERS:
- clabe: The CLABE as a string (required). Numbers are rejected; pass digits as text.

RETURNS: ok flag, error_kind (length, characters, checksum, bank, city), message, bank tag and name, city name, account, codes and the expected check digit.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "clabe_validate_batch",
		Method:   "ValidateBatch",
		Title:    "Validate CLABEs (Batch)",
		Category: "validate",
		Description: `Validate up to 100 CLABE numbers in one call.

USE WHEN: User provides a list of CLABEs, e.g. from a spreadsheet or payout file.

NOT FOR: A single number (use clabe_validate).

PARAMETERS:
- clabes: Array of CLABE strings (required, max 100). Non-string entries are reported per item.

RETURNS: Per-item validation results plus valid, invalid and rejected counts.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "clabe_compute_checksum",
		Method:   "ComputeChecksum",
		Title:    "Compute CLABE Check Digit",
		Category: "validate",
		Description: `Compute the CLABE check digit (18th digit) from the first 17 digits.

USE WHEN: User asks "what should the last digit be", "compute the control digit".

NOT FOR: Full validation with bank and city lookup (use clabe_validate).

PARAMETERS:
- digits: 17 digits (an 18th digit is accepted and ignored)

RETURNS: The check digit, or ok=false if the input is not 17-18 digits.`,
		ReadOnly:   true,
		Idempotent: true,
	},

	// ==========================================================================
	// CONSTRUCTION TOOLS
	// ==========================================================================
	{
		Name:     "clabe_calculate",
		Method:   "Calculate",
		Title:    "Build CLABE",
		Category: "build",
		Description: `Build an 18-digit CLABE from a bank code, plaza code and account number.

USE WHEN: User asks "generate the CLABE for bank 2, plaza 10, account 7777777777".

NOT FOR: Checking an existing CLABE (use clabe_validate).

PARAMETERS:
- bank_code: Numeric bank code (required)
- city_code: Numeric plaza code (required)
- account: Account digits (required, zero-padded to 11)

RETURNS: The CLABE, its fields, check digit, and whether both codes are registered.`,
		ReadOnly:   true,
		Idempotent: true,
	},

	// ==========================================================================
	// CATALOG TOOLS
	// ==========================================================================
	{
		Name:     "clabe_get_bank",
		Method:   "GetBank",
		Title:    "Get Bank",
		Category: "catalog",
		Description: `Look up a bank by its 3-digit CLABE bank code.

USE WHEN: User asks "which bank has code 072", "what is bank 646".

NOT FOR: Searching by name (use clabe_list_banks with query).

PARAMETERS:
- code: Numeric bank code (required)

RETURNS: Bank code, short tag and full legal name.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "clabe_list_banks",
		Method:   "ListBanks",
		Title:    "List Banks",
		Category: "catalog",
		Description: `List CLABE participant banks, optionally filtered by tag or name.

USE WHEN: User asks "what is the bank code for Santander", "list all banks".

NOT FOR: Looking up a known code (use clabe_get_bank).

PARAMETERS:
- query: Optional text filter, case and accent insensitive

RETURNS: Matching banks ordered by code.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "clabe_get_city",
		Method:   "GetCity",
		Title:    "Get Plaza",
		Category: "catalog",
		Description: `Look up a plaza (city) by its 3-digit CLABE plaza code.

USE WHEN: User asks "which city is plaza 180", "what does city code 027 mean".

NOT FOR: Searching by city name (use clabe_list_cities with query).

PARAMETERS:
- code: Numeric plaza code (required)

RETURNS: All place names sharing the code, joined and as a list.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "clabe_list_cities",
		Method:   "ListCities",
		Title:    "List Plazas",
		Category: "catalog",
		Description: `List CLABE plazas (cities), optionally filtered by place name.

USE WHEN: User asks "what is the plaza code for Monterrey", "list plaza codes".

NOT FOR: Looking up a known code (use clabe_get_city).

PARAMETERS:
- query: Optional place name filter, case and accent insensitive

RETURNS: Matching plazas ordered by code with every alias name.`,
		ReadOnly:   true,
		Idempotent: true,
	},
}

// ToolsByCategory returns the specs in the given category.
func ToolsByCategory(category string) []ToolSpec {
	var out []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			out = append(out, spec)
		}
	}
	return out
}
