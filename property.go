package rentals

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Access is the qualitative difficulty of reaching the university campus.
type Access string

const (
	Easy       Access = "Easy"
	Acceptable Access = "Acceptable"
	Complex    Access = "Complex"
	Poor       Access = "Poor"
)

// Accesses returns all access values, from the easiest to the hardest.
func Accesses() []Access { return []Access{Easy, Acceptable, Complex, Poor} }

// legacyAccess maps the literals used by the first version of the tool.
var legacyAccess = map[string]Access{
	"fácil":     Easy,
	"facil":     Easy,
	"aceitável": Acceptable,
	"aceitavel": Acceptable,
	"complexo":  Complex,
	"ruim":      Poor,
}

// ParseAccess parses an access value, case-insensitively. Legacy literals are
// accepted too.
func ParseAccess(s string) (Access, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, a := range Accesses() {
		if strings.ToLower(string(a)) == key {
			return a, nil
		}
	}
	if a, ok := legacyAccess[key]; ok {
		return a, nil
	}
	return "", fmt.Errorf("unknown access %q, expected one of %s", s, strings.Join(AccessNames(), ", "))
}

// AccessNames returns the display text of all access values.
func AccessNames() []string {
	names := make([]string, 0, 4)
	for _, a := range Accesses() {
		names = append(names, string(a))
	}
	return names
}

// IsValid checks if the access is one of the four known values.
func (a Access) IsValid() bool {
	for _, v := range Accesses() {
		if a == v {
			return true
		}
	}
	return false
}

// String returns the display text.
func (a Access) String() string { return string(a) }

// UnmarshalJSON parses the access with ParseAccess.
func (a *Access) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseAccess(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Property is one candidate residence.
type Property struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"notblank"`
	// Link to the external listing, if any.
	Link string `json:"link,omitempty" validate:"omitempty,http_url"`

	NeighborhoodSecurity int    `json:"neighborhoodSecurity" validate:"min=1,max=10"`
	CenterAccess         int    `json:"centerAccess" validate:"min=1,max=6"`
	Leisure              int    `json:"leisure" validate:"min=1,max=6"`
	UFMGAccess           Access `json:"ufmgAccess" validate:"access"`
	BusQuantity          string `json:"busQuantity,omitempty"`

	UberPriceDay   Money `json:"uberPriceDay" validate:"min=0"`
	UberPriceNight Money `json:"uberPriceNight" validate:"min=0"`
	RentTotal      Money `json:"rentTotal" validate:"min=0"`

	// IdealRating is the fit under the "ideal place" framing.
	IdealRating int `json:"idealRating" validate:"min=1,max=10"`
	// CurrentMomentRating is the fit under the "current moment" framing.
	CurrentMomentRating int `json:"currentMomentRating" validate:"min=1,max=10"`

	Notes string `json:"notes,omitempty"`
}

// NewID returns a fresh property identifier.
func NewID() string { return uuid.NewString() }

// NewProperty returns a property with a fresh ID and the default values of an
// empty entry form.
func NewProperty() Property {
	return Property{
		ID:                   NewID(),
		NeighborhoodSecurity: 5,
		CenterAccess:         3,
		Leisure:              3,
		UFMGAccess:           Acceptable,
		IdealRating:          5,
		CurrentMomentRating:  5,
	}
}

// AverageUber returns the mean of the day and night ride-hailing prices.
func (p Property) AverageUber() Money {
	return p.UberPriceDay.Add(p.UberPriceNight).DivInt(2)
}

// Equal reports whether both properties hold the same values.
func (p Property) Equal(q Property) bool {
	return p.ID == q.ID &&
		p.Name == q.Name &&
		p.Link == q.Link &&
		p.NeighborhoodSecurity == q.NeighborhoodSecurity &&
		p.CenterAccess == q.CenterAccess &&
		p.Leisure == q.Leisure &&
		p.UFMGAccess == q.UFMGAccess &&
		p.BusQuantity == q.BusQuantity &&
		p.UberPriceDay.Equal(q.UberPriceDay) &&
		p.UberPriceNight.Equal(q.UberPriceNight) &&
		p.RentTotal.Equal(q.RentTotal) &&
		p.IdealRating == q.IdealRating &&
		p.CurrentMomentRating == q.CurrentMomentRating &&
		p.Notes == q.Notes
}

// ShortID returns the first 8 characters of the ID, enough to address a
// property from the command line.
func (p Property) ShortID() string {
	if len(p.ID) > 8 {
		return p.ID[:8]
	}
	return p.ID
}
