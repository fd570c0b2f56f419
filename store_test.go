package rentals

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMem(t *testing.T, props ...Property) (*Store, *MemSlot) {
	t.Helper()
	slot := &MemSlot{}
	if len(props) > 0 {
		data, err := EncodeCollection(props)
		require.NoError(t, err)
		slot.Set(data)
	}
	s, err := Open(context.Background(), slot)
	require.NoError(t, err)
	return s, slot
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, slot := openMem(t)

	p := NewProperty()
	p.Name = "Apartamento Pampulha"
	p.Link = "https://example.com/a/1"
	p.NeighborhoodSecurity = 8
	p.CenterAccess = 2
	p.Leisure = 6
	p.UFMGAccess = Easy
	p.BusQuantity = "5 lines, 10 min walk"
	p.UberPriceDay = M(12.5)
	p.UberPriceNight = M(18.9)
	p.RentTotal = M(1750.75)
	p.IdealRating = 9
	p.CurrentMomentRating = 7
	p.Notes = "noisy street"

	_, err := s.Upsert(ctx, p)
	require.NoError(t, err)

	reloaded, err := Open(ctx, slot)
	require.NoError(t, err)
	got := reloaded.All()
	require.Len(t, got, 1)
	assert.True(t, p.Equal(got[0]), "round trip mismatch:\n%+v\n%+v", p, got[0])
}

func TestStore_UpsertReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	s, _ := openMem(t, prop("A", "a", 1000, 3), prop("B", "b", 2000, 9), prop("C", "c", 3000, 9))

	edited := prop("B", "b renamed", 2100, 4)
	got, err := s.Upsert(ctx, edited)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, ids(got))
	assert.Equal(t, "b renamed", got[1].Name)
	assert.Equal(t, 3, s.Len())
}

func TestStore_UpsertAppends(t *testing.T) {
	ctx := context.Background()
	s, _ := openMem(t, prop("A", "a", 1000, 3))

	got, err := s.Upsert(ctx, prop("B", "b", 2000, 9))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ids(got))
}

func TestStore_UpsertInvalid(t *testing.T) {
	ctx := context.Background()
	s, slot := openMem(t, prop("A", "a", 1000, 3))
	before, _ := slot.Read(ctx)

	bad := prop("A", "", 1000, 3)
	got, err := s.Upsert(ctx, bad)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "a", got[0].Name, "collection must be untouched")
	after, _ := slot.Read(ctx)
	assert.Equal(t, before, after, "nothing must be saved")
}

func TestStore_Remove(t *testing.T) {
	ctx := context.Background()
	s, slot := openMem(t, prop("A", "a", 1000, 3), prop("B", "b", 2000, 9))

	got, err := s.Remove(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, ids(got))

	reloaded, err := Open(ctx, slot)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, ids(reloaded.All()))
}

func TestStore_RemoveUnknownIsNoop(t *testing.T) {
	ctx := context.Background()
	s, slot := openMem(t, prop("A", "a", 1000, 3), prop("B", "b", 2000, 9))
	slot.Err = errors.New("must not be written")

	got, err := s.Remove(ctx, "Z")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ids(got))
}

func TestStore_SaveFailureKeepsMemory(t *testing.T) {
	ctx := context.Background()
	s, slot := openMem(t)
	slot.Err = errors.New("disk full")

	got, err := s.Upsert(ctx, prop("A", "a", 1000, 3))

	var perr *PersistenceError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "save", perr.Op)
	assert.Equal(t, []string{"A"}, ids(got))
	assert.Equal(t, 1, s.Len())
}

func TestStore_LoadMalformed(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "not json", data: "hello"},
		{name: "truncated", data: `{"version":2,"properties":[`},
		{name: "unknown version", data: `{"version":7,"properties":[]}`},
		{name: "out of range", data: `{"version":2,"properties":[{"id":"a","name":"x","neighborhoodSecurity":15,"centerAccess":3,"leisure":3,"ufmgAccess":"Easy","uberPriceDay":0,"uberPriceNight":0,"rentTotal":0,"idealRating":5,"currentMomentRating":5}]}`},
		{name: "duplicate ids", data: `[{"id":"a","name":"x","ufmgAccess":"Fácil"},{"id":"a","name":"y","ufmgAccess":"Ruim"}]`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			slot := &MemSlot{}
			slot.Set([]byte(tc.data))

			s, err := Open(context.Background(), slot)

			var perr *PersistenceError
			require.True(t, errors.As(err, &perr), "expected a persistence warning, got %v", err)
			assert.Equal(t, "load", perr.Op)
			require.NotNil(t, s)
			assert.Equal(t, 0, s.Len())
		})
	}
}

func TestStore_FileSlot(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "properties.json")

	s, err := Open(ctx, NewFileSlot(path))
	require.NoError(t, err, "a missing file is an empty collection")
	assert.Equal(t, 0, s.Len())

	_, err = s.Upsert(ctx, prop("A", "a", 1000, 3))
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"version": 2`)

	reloaded, err := Open(ctx, NewFileSlot(path))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, ids(reloaded.All()))
}

func TestStore_Find(t *testing.T) {
	s, _ := openMem(t, prop("abc-1", "a", 1000, 3), prop("abd-2", "b", 2000, 9))

	p, err := s.Find("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc-1", p.ID)

	_, err = s.Find("ab")
	assert.ErrorContains(t, err, "ambiguous")

	_, err = s.Find("zz")
	assert.ErrorIs(t, err, ErrNotFound)
}
