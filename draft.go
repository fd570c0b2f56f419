package rentals

import (
	"math"
	"strings"
)

// Draft is a property where every field is optional. It is what a user or the
// extraction delegate provides before defaults are known.
//
// Numbers are kept as float64 because delegates and JSON payloads do not
// promise integers; they are rounded when merged.
type Draft struct {
	Name                 *string  `json:"name,omitempty"`
	Link                 *string  `json:"link,omitempty"`
	NeighborhoodSecurity *float64 `json:"neighborhoodSecurity,omitempty"`
	CenterAccess         *float64 `json:"centerAccess,omitempty"`
	UFMGAccess           *Access  `json:"ufmgAccess,omitempty"`
	BusQuantity          *string  `json:"busQuantity,omitempty"`
	Leisure              *float64 `json:"leisure,omitempty"`
	UberPriceDay         *float64 `json:"uberPriceDay,omitempty"`
	UberPriceNight       *float64 `json:"uberPriceNight,omitempty"`
	RentTotal            *float64 `json:"rentTotal,omitempty"`
	IdealRating          *float64 `json:"idealRating,omitempty"`
	CurrentMomentRating  *float64 `json:"currentMomentRating,omitempty"`
	Notes                *string  `json:"notes,omitempty"`
}

// Ptr returns a pointer to v, to fill drafts.
func Ptr[T any](v T) *T { return &v }

// IsEmpty reports whether the draft sets no field at all.
func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

// Clamp forces every numeric field into its documented range: ratings are
// rounded and clamped to 1-10 or 1-6, amounts are floored at 0.
func (d *Draft) Clamp() {
	clampRating(d.NeighborhoodSecurity, 10)
	clampRating(d.CenterAccess, 6)
	clampRating(d.Leisure, 6)
	clampRating(d.IdealRating, 10)
	clampRating(d.CurrentMomentRating, 10)
	clampAmount(d.UberPriceDay)
	clampAmount(d.UberPriceNight)
	clampAmount(d.RentTotal)
}

func clampRating(v *float64, hi float64) {
	if v == nil {
		return
	}
	*v = math.Min(hi, math.Max(1, math.Round(*v)))
}

func clampAmount(v *float64) {
	if v != nil && *v < 0 {
		*v = 0
	}
}

// Merge applies every field set in the draft over base and returns the result.
// The ID of base is always preserved. Merge does not validate: out-of-range
// values are kept so that Validate can report them.
func (d Draft) Merge(base Property) Property {
	p := base
	setString(&p.Name, d.Name)
	setString(&p.Link, d.Link)
	setString(&p.BusQuantity, d.BusQuantity)
	setString(&p.Notes, d.Notes)
	setInt(&p.NeighborhoodSecurity, d.NeighborhoodSecurity)
	setInt(&p.CenterAccess, d.CenterAccess)
	setInt(&p.Leisure, d.Leisure)
	setInt(&p.IdealRating, d.IdealRating)
	setInt(&p.CurrentMomentRating, d.CurrentMomentRating)
	setMoney(&p.UberPriceDay, d.UberPriceDay)
	setMoney(&p.UberPriceNight, d.UberPriceNight)
	setMoney(&p.RentTotal, d.RentTotal)
	if d.UFMGAccess != nil {
		p.UFMGAccess = *d.UFMGAccess
	}
	return p
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setInt(dst *int, v *float64) {
	if v != nil {
		*dst = int(math.Round(*v))
	}
}

func setMoney(dst *Money, v *float64) {
	if v != nil {
		*dst = M(*v)
	}
}
