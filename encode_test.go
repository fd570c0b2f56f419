package rentals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCollection_Legacy(t *testing.T) {
	// as written by the first version of the tool.
	legacy := `[
	  {"id":"1f2e","name":"Kitnet Ouro Preto","link":"","neighborhoodSecurity":12,"centerAccess":4,
	   "ufmgAccess":"Fácil","busQuantity":"3 linhas","leisure":2.6,"uberPriceDay":15,"uberPriceNight":22.5,
	   "rentTotal":1350,"idealRating":8,"currentMomentRating":0,"notes":"perto da portaria"},
	  {"name":"Casa Santa Tereza","ufmgAccess":"Ruim","rentTotal":2100}
	]`

	props, err := DecodeCollection([]byte(legacy))
	require.NoError(t, err)
	require.Len(t, props, 2)

	first := props[0]
	assert.Equal(t, "1f2e", first.ID)
	assert.Equal(t, Easy, first.UFMGAccess)
	assert.Equal(t, 10, first.NeighborhoodSecurity, "clamped")
	assert.Equal(t, 3, first.Leisure, "rounded")
	assert.Equal(t, 1, first.CurrentMomentRating, "clamped")
	assert.True(t, first.UberPriceNight.Equal(M(22.5)))
	assert.Equal(t, "perto da portaria", first.Notes)

	second := props[1]
	assert.NotEmpty(t, second.ID, "missing ids are assigned")
	assert.Equal(t, Poor, second.UFMGAccess)
	assert.Equal(t, 5, second.IdealRating, "defaults apply")
	assert.True(t, second.RentTotal.Equal(M(2100)))
}

func TestEncodeCollection_Empty(t *testing.T) {
	data, err := EncodeCollection(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":2,"properties":[]}`, string(data))

	props, err := DecodeCollection(data)
	require.NoError(t, err)
	assert.Empty(t, props)
}

func TestDecodeCollection_Blank(t *testing.T) {
	props, err := DecodeCollection([]byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, props)
}

func TestEncodeCollection_Migrated(t *testing.T) {
	props, err := DecodeCollection([]byte(`[{"id":"x","name":"Loft","ufmgAccess":"Complexo","rentTotal":900}]`))
	require.NoError(t, err)

	data, err := EncodeCollection(props)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ufmgAccess": "Complex"`)

	again, err := DecodeCollection(data)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.True(t, props[0].Equal(again[0]))
}
