package rentals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraft_Clamp(t *testing.T) {
	d := Draft{
		NeighborhoodSecurity: Ptr(14.0),
		CenterAccess:         Ptr(0.2),
		Leisure:              Ptr(4.6),
		IdealRating:          Ptr(-3.0),
		RentTotal:            Ptr(-10.0),
		UberPriceDay:         Ptr(12.5),
	}
	d.Clamp()

	assert.Equal(t, 10.0, *d.NeighborhoodSecurity)
	assert.Equal(t, 1.0, *d.CenterAccess)
	assert.Equal(t, 5.0, *d.Leisure)
	assert.Equal(t, 1.0, *d.IdealRating)
	assert.Equal(t, 0.0, *d.RentTotal)
	assert.Equal(t, 12.5, *d.UberPriceDay)
	assert.Nil(t, d.CurrentMomentRating)
}

func TestDraft_Merge(t *testing.T) {
	base := prop("keep-me", "old name", 1000, 5)
	base.Notes = "untouched"

	got := Draft{
		Name:       Ptr("  new name "),
		RentTotal:  Ptr(1250.0),
		UFMGAccess: Ptr(Complex),
		Leisure:    Ptr(2.4),
	}.Merge(base)

	assert.Equal(t, "keep-me", got.ID)
	assert.Equal(t, "new name", got.Name)
	assert.True(t, got.RentTotal.Equal(M(1250)))
	assert.Equal(t, Complex, got.UFMGAccess)
	assert.Equal(t, 2, got.Leisure)
	assert.Equal(t, "untouched", got.Notes)
	assert.Equal(t, 5, got.IdealRating)
}

func TestDraft_MergeKeepsOutOfRange(t *testing.T) {
	got := Draft{IdealRating: Ptr(15.0)}.Merge(prop("a", "a", 0, 5))
	assert.Equal(t, 15, got.IdealRating)
	assert.Error(t, got.Validate())
}

func TestDraft_IsEmpty(t *testing.T) {
	assert.True(t, Draft{}.IsEmpty())
	assert.False(t, Draft{Notes: Ptr("")}.IsEmpty())
}
