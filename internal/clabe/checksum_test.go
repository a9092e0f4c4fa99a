package clabe

import (
	"math/rand"
	"strings"
	"testing"
)

func TestComputeChecksum(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{"17 digits", "00201007777777777", 1, true},
		{"18 digits ignores last", "002010077777777779", 1, true},
		{"all zeros", "00000000000000000", 0, true},
		{"bank 646 plaza 180", "64618001234567890", 6, true},
		{"16 digits", "0020100777777777", 0, false},
		{"19 digits", "0020100777777777712", 0, false},
		{"letter", "0020100777777777X", 0, false},
		{"spaces", "002 010 0777777777", 0, false},
		{"empty", "", 0, false},
		{"fullwidth digits", "００２０１００７７７７７７７７７７", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ComputeChecksum(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ComputeChecksum(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ComputeChecksum(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// checksumReducedTotal reduces only the final sum rather than each term.
func checksumReducedTotal(s string) int {
	sum := 0
	for i := 0; i < checkedDigits; i++ {
		sum += int(s[i]-'0') * checksumWeights[i%3]
	}
	return (10 - sum%10) % 10
}

func TestComputeChecksum_FormulationsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 5000; n++ {
		var b strings.Builder
		for i := 0; i < checkedDigits; i++ {
			b.WriteByte(byte('0' + rng.Intn(10)))
		}
		s := b.String()

		got, ok := ComputeChecksum(s)
		if !ok {
			t.Fatalf("ComputeChecksum(%q) not ok", s)
		}
		if want := checksumReducedTotal(s); got != want {
			t.Fatalf("per-term %d != total %d for %q", got, want, s)
		}
		if got < 0 || got > 9 {
			t.Fatalf("checksum %d out of range for %q", got, s)
		}
		if again, _ := ComputeChecksum(s); again != got {
			t.Fatalf("non-deterministic checksum for %q", s)
		}
	}
}

func TestComputeChecksum_DetectsSingleDigitErrors(t *testing.T) {
	base := "00201007777777777"
	want, _ := ComputeChecksum(base)

	for i := 0; i < len(base); i++ {
		// Weight 1, 3 and 7 are all coprime with 10, so every substitution
		// changes the check digit.
		mutated := []byte(base)
		mutated[i] = '0' + (mutated[i]-'0'+1)%10
		got, _ := ComputeChecksum(string(mutated))
		if got == want {
			t.Errorf("substitution at position %d not detected", i)
		}
	}
}
