package clabe

import (
	"reflect"
	"testing"

	"github.com/olgasafonova/clabe-mcp-server/internal/catalog"
	"github.com/olgasafonova/clabe-mcp-server/internal/errors"
)

func intPtr(v int) *int { return &v }

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ValidationResult
	}{
		{
			name:  "valid banamex aguascalientes",
			input: "002010077777777771",
			want: ValidationResult{
				OK:       true,
				FormatOK: true,
				Message:  "Valid",
				BankTag:  "BANAMEX",
				BankName: "Banco Nacional de México, S.A.",
				CityName: "Aguascalientes",
				Account:  "07777777777",
				BankCode: "002",
				CityCode: "010",
				Checksum: intPtr(1),
			},
		},
		{
			name:  "wrong checksum",
			input: "002010077777777779",
			want: ValidationResult{
				Kind:     KindChecksum,
				Error:    "invalid-checksum",
				Message:  "Invalid checksum, last digit should be: 1",
				BankTag:  "BANAMEX",
				BankName: "Banco Nacional de México, S.A.",
				CityName: "Aguascalientes",
				Account:  "07777777777",
				BankCode: "002",
				CityCode: "010",
				Checksum: intPtr(1),
			},
		},
		{
			name:  "too short",
			input: "12345",
			want: ValidationResult{
				Kind:     KindLength,
				Error:    "invalid-length",
				Message:  "Must be exactly 18 digits long",
				CityName: "San José del Cabo",
				BankCode: "123",
				CityCode: "45",
			},
		},
		{
			name:  "letter in check digit",
			input: "00299907777777777X",
			want: ValidationResult{
				Kind:     KindCharacters,
				Error:    "invalid-characters",
				Message:  "Must be only numeric digits (no letters)",
				BankTag:  "BANAMEX",
				BankName: "Banco Nacional de México, S.A.",
				Account:  "07777777777",
				BankCode: "002",
				CityCode: "999",
			},
		},
		{
			name:  "unregistered bank",
			input: "000010077777777773",
			want: ValidationResult{
				Kind:     KindBank,
				Error:    "invalid-bank",
				FormatOK: true,
				Message:  "Invalid bank code: 000",
				CityName: "Aguascalientes",
				Account:  "07777777777",
				BankCode: "000",
				CityCode: "010",
				Checksum: intPtr(3),
			},
		},
		{
			name:  "unregistered city",
			input: "002011077777777770",
			want: ValidationResult{
				Kind:     KindCity,
				Error:    "invalid-city",
				FormatOK: true,
				Message:  "Invalid city code: 011",
				BankTag:  "BANAMEX",
				BankName: "Banco Nacional de México, S.A.",
				Account:  "07777777777",
				BankCode: "002",
				CityCode: "011",
				Checksum: intPtr(0),
			},
		},
		{
			name:  "empty",
			input: "",
			want: ValidationResult{
				Kind:    KindLength,
				Error:   "invalid-length",
				Message: "Must be exactly 18 digits long",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Validate(%q)\n got = %+v\nwant = %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidate_PriorityOrder(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ErrorKind
	}{
		{"short with letters", "ABC12", KindLength},
		{"long with letters and bad checksum", "00201007777777777XYZ", KindLength},
		{"17 digits", "00201007777777777", KindLength},
		{"19 digits", "0020100777777777710", KindLength},
		{"18 runes with accent", "00201007777777777é", KindCharacters},
		{"letters beat checksum", "A02010077777777771", KindCharacters},
		{"space", "002010 77777777771", KindCharacters},
		{"checksum beats unknown bank", "000010077777777770", KindChecksum},
		{"bank beats unknown city", "000011077777777772", KindBank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.input)
			if got.Kind != tt.want {
				t.Errorf("Validate(%q).Kind = %q, want %q (message %q)", tt.input, got.Kind, tt.want, got.Message)
			}
			if got.OK {
				t.Errorf("Validate(%q).OK = true, want false", tt.input)
			}
		})
	}
}

func TestValidate_FormatOK(t *testing.T) {
	for _, kind := range ErrorKinds {
		want := kind == KindBank || kind == KindCity
		if got := kind.wellFormed(); got != want {
			t.Errorf("%s.wellFormed() = %v, want %v", kind, got, want)
		}
	}
	if !ErrorKind("").wellFormed() {
		t.Error("valid result must be well formed")
	}
}

func TestValidate_Idempotent(t *testing.T) {
	inputs := []string{"002010077777777771", "002010077777777779", "12345", ""}
	for _, in := range inputs {
		first := Validate(in)
		second := Validate(in)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Validate(%q) not idempotent: %+v vs %+v", in, first, second)
		}
	}
}

func TestValidate_RoundTripAllRegisteredCodes(t *testing.T) {
	cities := catalog.CityGroups()
	for _, bank := range catalog.Banks() {
		for _, city := range cities {
			number, err := CalculateFromNumbers(bank.Code, city.Code, 7777777777)
			if err != nil {
				t.Fatalf("Calculate(%d, %d) error: %v", bank.Code, city.Code, err)
			}
			res := Validate(number)
			if !res.OK {
				t.Fatalf("Validate(%q) = %+v, want ok", number, res)
			}
			if res.BankTag != bank.Tag || res.CityName != city.Name {
				t.Fatalf("Validate(%q) decoded %q/%q, want %q/%q", number, res.BankTag, res.CityName, bank.Tag, city.Name)
			}
		}
	}
}

func TestValidateValue(t *testing.T) {
	t.Run("string delegates to Validate", func(t *testing.T) {
		got, err := ValidateValue("002010077777777771")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, Validate("002010077777777771")) {
			t.Errorf("ValidateValue differs from Validate: %+v", got)
		}
	})

	for _, v := range []any{42, 2010077777777771.0, true, nil, []any{"002010077777777771"}} {
		_, err := ValidateValue(v)
		if err == nil {
			t.Errorf("ValidateValue(%#v) expected error", v)
			continue
		}
		if !errors.IsArgumentType(err) {
			t.Errorf("ValidateValue(%#v) error = %v, want ArgumentTypeError", v, err)
		}
	}
}

func TestErrorKind_Code(t *testing.T) {
	if got := KindChecksum.Code(); got != "invalid-checksum" {
		t.Errorf("Code() = %q", got)
	}
	if got := ErrorKind("").Code(); got != "" {
		t.Errorf("empty kind Code() = %q, want empty", got)
	}
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"002", 2, true},
		{"646", 646, true},
		{"0a1", 0, true},
		{"45", 45, true},
		{"a01", 0, false},
		{"", 0, false},
		{" 02", 2, true},
		{"\t72", 72, true},
		{"+14", 14, true},
		{"-2", -2, true},
		{" -", 0, false},
		{"   ", 0, false},
	}
	for _, tt := range tests {
		got, ok := leadingInt(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("leadingInt(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestValidate_LeadingWhitespaceStillDecodes(t *testing.T) {
	res := Validate(" 02010077777777771")
	if res.Kind != KindCharacters {
		t.Fatalf("Kind = %q, want %q", res.Kind, KindCharacters)
	}
	if res.BankTag != "BANAMEX" || res.BankCode != " 02" {
		t.Errorf("bank = %q (%q), want BANAMEX from \" 02\"", res.BankTag, res.BankCode)
	}
	if res.CityName != "Aguascalientes" {
		t.Errorf("CityName = %q, want Aguascalientes", res.CityName)
	}
}
