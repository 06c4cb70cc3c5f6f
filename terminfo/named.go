package terminfo

import (
	"strings"

	"github.com/samber/lo"
	"github.com/thanhnguyen2187/tinfo/ds"
	"github.com/thanhnguyen2187/tinfo/terminfo/tcaps"
	"github.com/thanhnguyen2187/tinfo/terminfo/tparse"
	"github.com/thanhnguyen2187/tinfo/terminfo/tsection"
)

type (
	// Named holds every catalog capability keyed by long name, in catalog
	// order. Absent numbers are tsection.NumberAbsent and absent strings are
	// nil.
	Named struct {
		Booleans *ds.LinkedHashMap[string, bool]    `json:"booleans"`
		Numbers  *ds.LinkedHashMap[string, int]     `json:"numbers"`
		Strings  *ds.LinkedHashMap[string, *string] `json:"strings"`
	}
	// NamesField is the first section of an entry split on "|".
	NamesField struct {
		Name        string   `json:"name"`
		Aliases     []string `json:"aliases"`
		Description string   `json:"description"`
	}
)

// nth returns the value at i, or absent when the entry stores fewer values
// than the catalog knows about.
func nth[T any](values []T, i int, absent T) T {
	if i < len(values) {
		return values[i]
	}
	return absent
}

// NewNamed zips the positional values with the catalog names. Values past the
// end of the catalog are dropped.
func NewNamed(parsed tparse.Parsed) Named {
	named := Named{
		Booleans: ds.NewLinkedHashMap[string, bool](tcaps.BoolCount),
		Numbers:  ds.NewLinkedHashMap[string, int](tcaps.NumberCount),
		Strings:  ds.NewLinkedHashMap[string, *string](tcaps.StringCount),
	}
	lo.ForEach(
		tcaps.BoolNames(),
		func(name string, i int) {
			named.Booleans.Put(name, nth(parsed.Booleans, i, false))
		},
	)
	lo.ForEach(
		tcaps.NumberNames(),
		func(name string, i int) {
			named.Numbers.Put(name, nth(parsed.Numbers, i, tsection.NumberAbsent))
		},
	)
	lo.ForEach(
		tcaps.StringNames(),
		func(name string, i int) {
			named.Strings.Put(name, nth[*string](parsed.Strings, i, nil))
		},
	)
	return named
}

// ParseNamesField trims the trailing NUL bytes and splits on "|". The first
// field is the name and, when there are at least two, the last one is the
// description.
func ParseNamesField(names string) NamesField {
	fields := strings.Split(strings.TrimRight(names, "\x00"), "|")
	if len(fields) == 1 {
		return NamesField{
			Name:    fields[0],
			Aliases: []string{},
		}
	}
	return NamesField{
		Name:        fields[0],
		Aliases:     ds.ShallowCopy(fields[1 : len(fields)-1]),
		Description: fields[len(fields)-1],
	}
}
