package clabe

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/olgasafonova/clabe-mcp-server/internal/errors"
)

func newTestService() *Service {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewService(WithLogger(logger))
}

func TestNewService(t *testing.T) {
	s := NewService()
	if s.logger == nil {
		t.Fatal("expected default logger")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if got := NewService(WithLogger(logger)); got.logger != logger {
		t.Error("WithLogger did not set the logger")
	}
	if got := NewService(WithLogger(nil)); got.logger == nil {
		t.Error("WithLogger(nil) must keep the default logger")
	}
}

func TestValidateMCP(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	res, err := s.ValidateMCP(ctx, ValidateArgs{CLABE: "002010077777777771"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.OK || res.BankTag != "BANAMEX" || res.CityName != "Aguascalientes" {
		t.Errorf("unexpected result: %+v", res)
	}

	_, err = s.ValidateMCP(ctx, ValidateArgs{CLABE: 2010077777777771.0})
	if !errors.IsArgumentType(err) {
		t.Errorf("expected ArgumentTypeError for number, got %v", err)
	}

	_, err = s.ValidateMCP(ctx, ValidateArgs{})
	if !errors.IsArgumentType(err) {
		t.Errorf("expected ArgumentTypeError for missing value, got %v", err)
	}
}

func TestValidateBatchMCP(t *testing.T) {
	s := newTestService()

	res, err := s.ValidateBatchMCP(context.Background(), ValidateBatchArgs{
		CLABEs: []any{"002010077777777771", "002010077777777779", 42.0, "12345"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Total != 4 || res.Valid != 1 || res.Invalid != 2 || res.Rejected != 1 {
		t.Errorf("counts = total %d valid %d invalid %d rejected %d", res.Total, res.Valid, res.Invalid, res.Rejected)
	}
	if len(res.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(res.Items))
	}
	if res.Items[2].Error == "" || res.Items[2].Result != nil {
		t.Errorf("item 2 should be rejected: %+v", res.Items[2])
	}
	if res.Items[1].Result == nil || res.Items[1].Result.Kind != KindChecksum {
		t.Errorf("item 1 should fail checksum: %+v", res.Items[1])
	}
	for i, item := range res.Items {
		if item.Index != i {
			t.Errorf("item %d has index %d", i, item.Index)
		}
	}
}

func TestValidateBatchMCP_Limits(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if _, err := s.ValidateBatchMCP(ctx, ValidateBatchArgs{}); !errors.IsValidation(err) {
		t.Errorf("empty batch: expected ValidationError, got %v", err)
	}

	big := make([]any, MaxBatchSize+1)
	for i := range big {
		big[i] = "002010077777777771"
	}
	if _, err := s.ValidateBatchMCP(ctx, ValidateBatchArgs{CLABEs: big}); !errors.IsValidation(err) {
		t.Errorf("oversized batch: expected ValidationError, got %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := s.ValidateBatchMCP(cancelled, ValidateBatchArgs{CLABEs: []any{"1"}}); err == nil {
		t.Error("expected context error for cancelled batch")
	}
}

func TestCalculateMCP(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	res, err := s.CalculateMCP(ctx, CalculateArgs{BankCode: 2, CityCode: 10, Account: "7777777777"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := CalculateResult{
		CLABE:      "002010077777777771",
		BankCode:   "002",
		CityCode:   "010",
		Account:    "07777777777",
		Checksum:   1,
		BankTag:    "BANAMEX",
		CityName:   "Aguascalientes",
		Registered: true,
	}
	if res != want {
		t.Errorf("CalculateMCP() = %+v, want %+v", res, want)
	}

	unregistered, err := s.CalculateMCP(ctx, CalculateArgs{BankCode: 0, CityCode: 10, Account: "7777777777"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unregistered.Registered || unregistered.CLABE != "000010077777777773" {
		t.Errorf("unexpected result for unregistered bank: %+v", unregistered)
	}

	if _, err := s.CalculateMCP(ctx, CalculateArgs{BankCode: 2, CityCode: 10, Account: "abc"}); !errors.IsValidation(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestComputeChecksumMCP(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	res, err := s.ComputeChecksumMCP(ctx, ComputeChecksumArgs{Digits: "00201007777777777"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.OK || res.Checksum == nil || *res.Checksum != 1 {
		t.Errorf("unexpected result: %+v", res)
	}

	res, err = s.ComputeChecksumMCP(ctx, ComputeChecksumArgs{Digits: "123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OK || res.Checksum != nil || res.Message == "" {
		t.Errorf("expected not-ok result with message, got %+v", res)
	}
}

func TestGetBankMCP(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	res, err := s.GetBankMCP(ctx, GetBankArgs{Code: 72})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Bank.Tag != "BANORTE" {
		t.Errorf("Tag = %q, want BANORTE", res.Bank.Tag)
	}

	if _, err := s.GetBankMCP(ctx, GetBankArgs{Code: 1}); !errors.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestGetCityMCP(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	res, err := s.GetCityMCP(ctx, GetCityArgs{Code: 27})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.City.Name != "Tecate, Tijuana" || len(res.City.Names) != 2 {
		t.Errorf("unexpected city: %+v", res.City)
	}

	if _, err := s.GetCityMCP(ctx, GetCityArgs{Code: 11}); !errors.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestListMCP(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	banks, err := s.ListBanksMCP(ctx, ListBanksArgs{Query: "santander"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if banks.Count != 1 || banks.Banks[0].Code != 14 {
		t.Errorf("unexpected banks: %+v", banks)
	}
	if banks.DataVersion == "" {
		t.Error("expected data version")
	}

	none, err := s.ListBanksMCP(ctx, ListBanksArgs{Query: "no such bank"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if none.Banks == nil || none.Count != 0 {
		t.Errorf("expected empty non-nil list, got %+v", none)
	}

	cities, err := s.ListCitiesMCP(ctx, ListCitiesArgs{Query: "queretaro"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cities.Count != 1 || cities.Cities[0].Code != 680 {
		t.Errorf("unexpected cities: %+v", cities)
	}
}
