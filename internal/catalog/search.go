package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// SearchBanks returns banks whose tag or name contains query, ignoring case
// and accents. An empty query matches every bank.
func SearchBanks(query string) []Bank {
	q := fold(query)
	all := Banks()
	if q == "" {
		return all
	}
	var out []Bank
	for _, b := range all {
		if strings.Contains(fold(b.Tag), q) || strings.Contains(fold(b.Name), q) {
			out = append(out, b)
		}
	}
	return out
}

// SearchCities returns plazas with at least one name containing query,
// ignoring case and accents. An empty query matches every plaza.
func SearchCities(query string) []CityGroup {
	q := fold(query)
	all := CityGroups()
	if q == "" {
		return all
	}
	var out []CityGroup
	for _, g := range all {
		for _, name := range g.Names {
			if strings.Contains(fold(name), q) {
				out = append(out, g)
				break
			}
		}
	}
	return out
}

// fold lowercases s, strips diacritics and collapses whitespace.
func fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return s
	}

	// NFD splits "é" into "e" + U+0301; drop the combining marks.
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
