// Package catalog holds the static CLABE reference tables: participating banks
// keyed by their 3-digit bank code, and plazas (cities) keyed by their 3-digit
// plaza code. The tables are immutable; accessors hand out copies.
package catalog

import (
	"sort"
	"strings"
	"sync"
)

// DataVersion identifies the revision of the published reference tables.
const DataVersion = "1.3.5"

// Bank is a CLABE participant.
type Bank struct {
	Code int    `json:"code"`
	Tag  string `json:"tag"`
	Name string `json:"name"`
}

// City is a single plaza entry. Several entries may share a code.
type City struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// CityGroup is the aggregated view of every entry sharing a plaza code.
// Name joins Names with ", " in publication order.
type CityGroup struct {
	Code  int      `json:"code"`
	Name  string   `json:"name"`
	Names []string `json:"names"`
}

var (
	banksByCode = indexBanks(bankTable)

	citiesOnce   sync.Once
	citiesByCode map[int]*CityGroup
	cityCodes    []int
)

func indexBanks(table []Bank) map[int]Bank {
	m := make(map[int]Bank, len(table))
	for _, b := range table {
		m[b.Code] = b
	}
	return m
}

// aggregateCities groups raw entries by code, keeping first-seen order.
func aggregateCities(table []City) (map[int]*CityGroup, []int) {
	groups := make(map[int]*CityGroup)
	var codes []int
	for _, c := range table {
		g, ok := groups[c.Code]
		if !ok {
			g = &CityGroup{Code: c.Code}
			groups[c.Code] = g
			codes = append(codes, c.Code)
		}
		g.Names = append(g.Names, c.Name)
	}
	for _, g := range groups {
		g.Name = strings.Join(g.Names, ", ")
	}
	sort.Ints(codes)
	return groups, codes
}

func cityIndex() map[int]*CityGroup {
	citiesOnce.Do(func() {
		citiesByCode, cityCodes = aggregateCities(cityTable)
	})
	return citiesByCode
}

// LookupBank returns the bank registered under code.
func LookupBank(code int) (Bank, bool) {
	b, ok := banksByCode[code]
	return b, ok
}

// Banks returns every bank ordered by code.
func Banks() []Bank {
	out := make([]Bank, 0, len(bankTable))
	out = append(out, bankTable...)
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Cities returns the raw plaza entries in publication order, duplicates included.
func Cities() []City {
	out := make([]City, len(cityTable))
	copy(out, cityTable)
	return out
}

// CityName returns the aggregated display name for a plaza code.
func CityName(code int) (string, bool) {
	g, ok := cityIndex()[code]
	if !ok {
		return "", false
	}
	return g.Name, true
}

// LookupCity returns the aggregated entry for a plaza code.
func LookupCity(code int) (CityGroup, bool) {
	g, ok := cityIndex()[code]
	if !ok {
		return CityGroup{}, false
	}
	return g.clone(), true
}

// CityGroups returns every aggregated plaza ordered by code.
func CityGroups() []CityGroup {
	idx := cityIndex()
	out := make([]CityGroup, 0, len(cityCodes))
	for _, code := range cityCodes {
		out = append(out, idx[code].clone())
	}
	return out
}

func (g *CityGroup) clone() CityGroup {
	names := make([]string, len(g.Names))
	copy(names, g.Names)
	return CityGroup{Code: g.Code, Name: g.Name, Names: names}
}
