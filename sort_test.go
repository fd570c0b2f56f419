package rentals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort_Stable(t *testing.T) {
	props := []Property{
		prop("A", "a", 1000, 7),
		prop("B", "b", 2000, 9),
		prop("C", "c", 1500, 7),
		prop("D", "d", 900, 9),
	}

	assert.Equal(t, []string{"B", "D", "A", "C"}, ids(Sort(props, SortByIdealRating, Descending)))
	assert.Equal(t, []string{"A", "C", "B", "D"}, ids(Sort(props, SortByIdealRating, Ascending)))
	assert.Equal(t, []string{"D", "A", "C", "B"}, ids(Sort(props, SortByRentTotal, Ascending)))
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids(props), "input must not be modified")
}

func TestSort_Text(t *testing.T) {
	a := prop("A", "Savassi", 0, 5)
	a.UFMGAccess = Poor
	b := prop("B", "Pampulha", 0, 5)
	b.UFMGAccess = Easy
	props := []Property{a, b}

	assert.Equal(t, []string{"B", "A"}, ids(Sort(props, SortByName, Ascending)))
	assert.Equal(t, []string{"B", "A"}, ids(Sort(props, SortByUFMGAccess, Ascending)))
}

func TestSortState_Select(t *testing.T) {
	var s SortState
	assert.False(t, s.Active)

	s.Select(SortByRentTotal)
	assert.Equal(t, SortState{Key: SortByRentTotal, Direction: Descending, Active: true}, s)

	s.Select(SortByRentTotal)
	assert.Equal(t, Ascending, s.Direction)

	s.Select(SortByRentTotal)
	assert.Equal(t, Descending, s.Direction)

	s.Select(SortByRentTotal)
	s.Select(SortByName)
	assert.Equal(t, SortState{Key: SortByName, Direction: Descending, Active: true}, s, "a new key starts descending")
}

func TestSortState_ApplyInactive(t *testing.T) {
	props := []Property{prop("B", "b", 2, 1), prop("A", "a", 1, 1)}
	assert.Equal(t, []string{"B", "A"}, ids(SortState{}.Apply(props)))
}

func TestParseSortKey(t *testing.T) {
	testCases := []struct {
		in   string
		want SortKey
	}{
		{in: "rentTotal", want: SortByRentTotal},
		{in: "RENTTOTAL", want: SortByRentTotal},
		{in: "rent", want: SortByRentTotal},
		{in: "uber", want: SortByAverageUber},
		{in: "score", want: SortByScore},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseSortKey(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseSortKey("price")
	assert.ErrorContains(t, err, "unknown sort key")
}
