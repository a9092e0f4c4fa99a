package clabe

import (
	"context"
	"fmt"
	"strconv"

	"github.com/olgasafonova/clabe-mcp-server/internal/catalog"
	"github.com/olgasafonova/clabe-mcp-server/internal/errors"
	"github.com/olgasafonova/clabe-mcp-server/metrics"
	"github.com/olgasafonova/clabe-mcp-server/tracing"
	"go.opentelemetry.io/otel/trace"
)

// MCP Tool wrapper methods
// These methods adapt the service to the Args/Result types used by MCP tools.

// ValidateMCP is the MCP wrapper for Validate
func (s *Service) ValidateMCP(ctx context.Context, args ValidateArgs) (ValidationResult, error) {
	res, err := s.Validate(args.CLABE)
	if err != nil {
		return ValidationResult{}, err
	}
	tracing.AddValidationAttributes(trace.SpanFromContext(ctx), string(res.Kind), res.FormatOK)
	return res, nil
}

// ValidateBatchMCP is the MCP wrapper for validating several CLABEs at once.
// Non-string entries are reported per item and do not fail the batch.
func (s *Service) ValidateBatchMCP(ctx context.Context, args ValidateBatchArgs) (ValidateBatchResult, error) {
	if len(args.CLABEs) == 0 {
		return ValidateBatchResult{}, errors.NewValidationError("clabes", "", "at least one CLABE is required")
	}
	if len(args.CLABEs) > MaxBatchSize {
		return ValidateBatchResult{}, errors.NewValidationError("clabes", strconv.Itoa(len(args.CLABEs)),
			fmt.Sprintf("cannot exceed %d entries", MaxBatchSize))
	}

	out := ValidateBatchResult{
		Items: make([]BatchItem, 0, len(args.CLABEs)),
		Total: len(args.CLABEs),
	}
	for i, candidate := range args.CLABEs {
		if err := ctx.Err(); err != nil {
			return ValidateBatchResult{}, err
		}
		item := BatchItem{Index: i}
		res, err := s.Validate(candidate)
		switch {
		case err != nil:
			item.Error = err.Error()
			out.Rejected++
		case res.OK:
			item.Result = &res
			out.Valid++
		default:
			item.Result = &res
			out.Invalid++
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

// CalculateMCP is the MCP wrapper for Calculate
func (s *Service) CalculateMCP(ctx context.Context, args CalculateArgs) (CalculateResult, error) {
	number, err := s.Calculate(args.BankCode, args.CityCode, args.Account)
	if err != nil {
		return CalculateResult{}, err
	}

	// Decoding the number we just built fills in the catalog fields.
	res := Validate(number)
	return CalculateResult{
		CLABE:      number,
		BankCode:   res.BankCode,
		CityCode:   res.CityCode,
		Account:    res.Account,
		Checksum:   *res.Checksum,
		BankTag:    res.BankTag,
		CityName:   res.CityName,
		Registered: res.OK,
	}, nil
}

// ComputeChecksumMCP is the MCP wrapper for ComputeChecksum
func (s *Service) ComputeChecksumMCP(ctx context.Context, args ComputeChecksumArgs) (ComputeChecksumResult, error) {
	checksum, ok := ComputeChecksum(args.Digits)
	if !ok {
		return ComputeChecksumResult{Message: "Input must be exactly 17 or 18 digits"}, nil
	}
	return ComputeChecksumResult{OK: true, Checksum: &checksum}, nil
}

// GetBankMCP is the MCP wrapper for a bank lookup
func (s *Service) GetBankMCP(ctx context.Context, args GetBankArgs) (GetBankResult, error) {
	tracing.AddCatalogAttributes(trace.SpanFromContext(ctx), "bank", args.Code)
	bank, ok := catalog.LookupBank(args.Code)
	metrics.RecordLookup("bank", ok)
	if !ok {
		return GetBankResult{}, errors.NewNotFoundError("bank", strconv.Itoa(args.Code))
	}
	return GetBankResult{Bank: bank}, nil
}

// ListBanksMCP is the MCP wrapper for listing and searching banks
func (s *Service) ListBanksMCP(ctx context.Context, args ListBanksArgs) (ListBanksResult, error) {
	banks := catalog.SearchBanks(args.Query)
	if banks == nil {
		banks = []catalog.Bank{}
	}
	return ListBanksResult{
		Banks:       banks,
		Count:       len(banks),
		DataVersion: catalog.DataVersion,
	}, nil
}

// GetCityMCP is the MCP wrapper for a plaza lookup
func (s *Service) GetCityMCP(ctx context.Context, args GetCityArgs) (GetCityResult, error) {
	tracing.AddCatalogAttributes(trace.SpanFromContext(ctx), "city", args.Code)
	city, ok := catalog.LookupCity(args.Code)
	metrics.RecordLookup("city", ok)
	if !ok {
		return GetCityResult{}, errors.NewNotFoundError("city", strconv.Itoa(args.Code))
	}
	return GetCityResult{City: city}, nil
}

// ListCitiesMCP is the MCP wrapper for listing and searching plazas
func (s *Service) ListCitiesMCP(ctx context.Context, args ListCitiesArgs) (ListCitiesResult, error) {
	cities := catalog.SearchCities(args.Query)
	if cities == nil {
		cities = []catalog.CityGroup{}
	}
	return ListCitiesResult{
		Cities:      cities,
		Count:       len(cities),
		DataVersion: catalog.DataVersion,
	}, nil
}
