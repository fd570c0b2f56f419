package rentals

import (
	"strings"

	"golang.org/x/text/cases"
)

// Stats are the aggregate figures of a collection.
type Stats struct {
	Count       int       `json:"count"`
	AverageRent Money     `json:"averageRent"`
	TopPick     *Property `json:"topPick"`
}

// NewStats computes the statistics of props.
//
// AverageRent is zero for an empty collection. TopPick is the property with
// the highest ideal rating, the first one in collection order on ties, or nil
// for an empty collection.
func NewStats(props []Property) Stats {
	s := Stats{Count: len(props)}
	if len(props) == 0 {
		return s
	}
	var total Money
	top := 0
	for i, p := range props {
		total = total.Add(p.RentTotal)
		if p.IdealRating > props[top].IdealRating {
			top = i
		}
	}
	s.AverageRent = total.DivInt(len(props))
	pick := props[top]
	s.TopPick = &pick
	return s
}

// CombinedScore is the mean of the ideal rating, the current moment rating
// and the neighborhood security.
func CombinedScore(p Property) float64 {
	return float64(p.IdealRating+p.CurrentMomentRating+p.NeighborhoodSecurity) / 3
}

// Filter returns the properties whose name or access text contains term,
// ignoring case. An empty term returns props unchanged.
func Filter(props []Property, term string) []Property {
	if term == "" {
		return props
	}
	fold := cases.Fold()
	needle := fold.String(term)
	out := make([]Property, 0, len(props))
	for _, p := range props {
		if strings.Contains(fold.String(p.Name), needle) ||
			strings.Contains(fold.String(p.UFMGAccess.String()), needle) {
			out = append(out, p)
		}
	}
	return out
}
