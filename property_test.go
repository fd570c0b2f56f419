package rentals

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProperty_Defaults(t *testing.T) {
	p := NewProperty()

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 5, p.NeighborhoodSecurity)
	assert.Equal(t, 3, p.CenterAccess)
	assert.Equal(t, 3, p.Leisure)
	assert.Equal(t, Acceptable, p.UFMGAccess)
	assert.Equal(t, 5, p.IdealRating)
	assert.Equal(t, 5, p.CurrentMomentRating)
	assert.True(t, p.RentTotal.IsZero())
	assert.True(t, p.UberPriceDay.IsZero())
	assert.True(t, p.UberPriceNight.IsZero())
	assert.Empty(t, p.Name)
	assert.Empty(t, p.Notes)

	assert.NotEqual(t, p.ID, NewProperty().ID, "IDs must be unique")
}

func TestParseAccess(t *testing.T) {
	testCases := []struct {
		in      string
		want    Access
		wantErr bool
	}{
		{in: "Easy", want: Easy},
		{in: "complex", want: Complex},
		{in: " POOR ", want: Poor},
		{in: "Fácil", want: Easy},
		{in: "Aceitável", want: Acceptable},
		{in: "Complexo", want: Complex},
		{in: "Ruim", want: Poor},
		{in: "far", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAccess(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProperty_Validate(t *testing.T) {
	testCases := []struct {
		name       string
		edit       func(p *Property)
		wantFields []string
	}{
		{name: "valid defaults", edit: func(p *Property) {}},
		{name: "empty name", edit: func(p *Property) { p.Name = "" }, wantFields: []string{"name"}},
		{name: "blank name", edit: func(p *Property) { p.Name = "   " }, wantFields: []string{"name"}},
		{name: "missing id", edit: func(p *Property) { p.ID = "" }, wantFields: []string{"id"}},
		{name: "security too high", edit: func(p *Property) { p.NeighborhoodSecurity = 11 }, wantFields: []string{"neighborhoodSecurity"}},
		{name: "center access too low", edit: func(p *Property) { p.CenterAccess = 0 }, wantFields: []string{"centerAccess"}},
		{name: "leisure too high", edit: func(p *Property) { p.Leisure = 7 }, wantFields: []string{"leisure"}},
		{name: "ideal rating 15", edit: func(p *Property) { p.IdealRating = 15 }, wantFields: []string{"idealRating"}},
		{name: "negative rent", edit: func(p *Property) { p.RentTotal = M(-1) }, wantFields: []string{"rentTotal"}},
		{name: "unknown access", edit: func(p *Property) { p.UFMGAccess = "Far" }, wantFields: []string{"ufmgAccess"}},
		{name: "bad link", edit: func(p *Property) { p.Link = "not a link" }, wantFields: []string{"link"}},
		{name: "good link", edit: func(p *Property) { p.Link = "https://example.com/listing/42" }},
		{
			name:       "several failures",
			edit:       func(p *Property) { p.Name = ""; p.IdealRating = 0; p.CurrentMomentRating = 11 },
			wantFields: []string{"name", "idealRating", "currentMomentRating"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProperty()
			p.Name = "Savassi studio"
			tc.edit(&p)

			err := p.Validate()
			if len(tc.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected a *ValidationError, got %v", err)
			var fields []string
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
				assert.NotEmpty(t, f.Message)
			}
			assert.ElementsMatch(t, tc.wantFields, fields)
		})
	}
}

func TestProperty_ValidateMessage(t *testing.T) {
	p := NewProperty()
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestProperty_AverageUber(t *testing.T) {
	p := NewProperty()
	p.UberPriceDay = M(20)
	p.UberPriceNight = M(35)
	assert.True(t, p.AverageUber().Equal(M(27.5)), "got %v", p.AverageUber())
}

func TestMoney(t *testing.T) {
	m, err := ParseMoney("1500.50")
	require.NoError(t, err)
	assert.True(t, m.Equal(M(1500.5)))
	assert.Equal(t, "$1,500.50", m.Format("USD"))
	assert.True(t, M(10).DivInt(0).IsZero())

	_, err = ParseMoney("abc")
	assert.Error(t, err)
}
