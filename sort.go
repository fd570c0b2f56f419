package rentals

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortKey is a field of Property that can order a collection.
type SortKey int

const (
	SortByName SortKey = iota
	SortByLink
	SortByNeighborhoodSecurity
	SortByCenterAccess
	SortByLeisure
	SortByUFMGAccess
	SortByBusQuantity
	SortByUberPriceDay
	SortByUberPriceNight
	SortByRentTotal
	SortByIdealRating
	SortByCurrentMomentRating
	SortByNotes
	SortByAverageUber
	SortByScore
)

// sortFields maps each key to its name and an ascending comparator. Text and
// enumerated values compare lexicographically, numbers numerically.
var sortFields = []struct {
	name string
	cmp  func(a, b Property) int
}{
	SortByName:                 {"name", func(a, b Property) int { return strings.Compare(a.Name, b.Name) }},
	SortByLink:                 {"link", func(a, b Property) int { return strings.Compare(a.Link, b.Link) }},
	SortByNeighborhoodSecurity: {"neighborhoodSecurity", func(a, b Property) int { return cmp.Compare(a.NeighborhoodSecurity, b.NeighborhoodSecurity) }},
	SortByCenterAccess:         {"centerAccess", func(a, b Property) int { return cmp.Compare(a.CenterAccess, b.CenterAccess) }},
	SortByLeisure:              {"leisure", func(a, b Property) int { return cmp.Compare(a.Leisure, b.Leisure) }},
	SortByUFMGAccess:           {"ufmgAccess", func(a, b Property) int { return strings.Compare(a.UFMGAccess.String(), b.UFMGAccess.String()) }},
	SortByBusQuantity:          {"busQuantity", func(a, b Property) int { return strings.Compare(a.BusQuantity, b.BusQuantity) }},
	SortByUberPriceDay:         {"uberPriceDay", func(a, b Property) int { return a.UberPriceDay.Cmp(b.UberPriceDay) }},
	SortByUberPriceNight:       {"uberPriceNight", func(a, b Property) int { return a.UberPriceNight.Cmp(b.UberPriceNight) }},
	SortByRentTotal:            {"rentTotal", func(a, b Property) int { return a.RentTotal.Cmp(b.RentTotal) }},
	SortByIdealRating:          {"idealRating", func(a, b Property) int { return cmp.Compare(a.IdealRating, b.IdealRating) }},
	SortByCurrentMomentRating:  {"currentMomentRating", func(a, b Property) int { return cmp.Compare(a.CurrentMomentRating, b.CurrentMomentRating) }},
	SortByNotes:                {"notes", func(a, b Property) int { return strings.Compare(a.Notes, b.Notes) }},
	SortByAverageUber:          {"averageUber", func(a, b Property) int { return a.AverageUber().Cmp(b.AverageUber()) }},
	SortByScore:                {"score", func(a, b Property) int { return cmp.Compare(CombinedScore(a), CombinedScore(b)) }},
}

func (k SortKey) String() string {
	if k < 0 || int(k) >= len(sortFields) {
		return fmt.Sprintf("SortKey(%d)", int(k))
	}
	return sortFields[k].name
}

// Compare compares a and b in ascending order of this key.
func (k SortKey) Compare(a, b Property) int { return sortFields[k].cmp(a, b) }

// SortKeys returns all sort keys.
func SortKeys() []SortKey {
	keys := make([]SortKey, len(sortFields))
	for i := range sortFields {
		keys[i] = SortKey(i)
	}
	return keys
}

// SortKeyNames returns the names accepted by ParseSortKey.
func SortKeyNames() []string {
	names := make([]string, len(sortFields))
	for i, f := range sortFields {
		names[i] = f.name
	}
	return names
}

// short aliases accepted on the command line.
var sortAliases = map[string]SortKey{
	"rent":     SortByRentTotal,
	"ideal":    SortByIdealRating,
	"moment":   SortByCurrentMomentRating,
	"security": SortByNeighborhoodSecurity,
	"center":   SortByCenterAccess,
	"access":   SortByUFMGAccess,
	"uber":     SortByAverageUber,
}

// ParseSortKey parses a field name, case-insensitively.
func ParseSortKey(s string) (SortKey, error) {
	for i, f := range sortFields {
		if strings.EqualFold(f.name, s) {
			return SortKey(i), nil
		}
	}
	if k, ok := sortAliases[strings.ToLower(s)]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown sort key %q, expected one of %s", s, strings.Join(SortKeyNames(), ", "))
}

// Direction is a sort order.
type Direction int

const (
	Descending Direction = iota
	Ascending
)

func (d Direction) String() string {
	if d == Ascending {
		return "asc"
	}
	return "desc"
}

// ParseDirection parses "asc" or "desc".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending", "":
		return Descending, nil
	default:
		return 0, fmt.Errorf("unknown sort direction %q", s)
	}
}

// Sort returns a copy of props ordered by key. The sort is stable in both
// directions: properties with equal keys keep their relative order.
func Sort(props []Property, key SortKey, dir Direction) []Property {
	out := slices.Clone(props)
	slices.SortStableFunc(out, func(a, b Property) int {
		if dir == Descending {
			return key.Compare(b, a)
		}
		return key.Compare(a, b)
	})
	return out
}

// SortState is the sort selection of a table view. Its zero value is
// unsorted.
type SortState struct {
	Key       SortKey
	Direction Direction
	Active    bool
}

// Select chooses key: a new key starts descending, selecting the current key
// again toggles the direction.
func (s *SortState) Select(key SortKey) {
	if s.Active && s.Key == key && s.Direction == Descending {
		s.Direction = Ascending
		return
	}
	*s = SortState{Key: key, Direction: Descending, Active: true}
}

// Apply sorts props according to the state. An inactive state returns props
// unchanged.
func (s SortState) Apply(props []Property) []Property {
	if !s.Active {
		return props
	}
	return Sort(props, s.Key, s.Direction)
}
