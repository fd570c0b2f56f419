package sqlite

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/etnz/rentals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot_ReadWrite(t *testing.T) {
	ctx := context.Background()
	slot, err := Open(filepath.Join(t.TempDir(), "rentals.db"))
	require.NoError(t, err)
	defer slot.Close()

	_, err = slot.Read(ctx)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	require.NoError(t, slot.Write(ctx, []byte("first")))
	require.NoError(t, slot.Write(ctx, []byte("second")))

	got, err := slot.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	_, err = slot.WithKey("other").Read(ctx)
	assert.ErrorIs(t, err, fs.ErrNotExist, "keys are independent")
}

func TestSlot_Store(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "rentals.db")
	slot, err := Open(path)
	require.NoError(t, err)

	s, err := rentals.Open(ctx, slot)
	require.NoError(t, err)
	p := rentals.NewProperty()
	p.Name = "Kitnet Pampulha"
	p.RentTotal = rentals.M(1150.5)
	_, err = s.Upsert(ctx, p)
	require.NoError(t, err)
	require.NoError(t, slot.Close())

	// reopen the database from disk.
	slot, err = Open(path)
	require.NoError(t, err)
	defer slot.Close()
	s, err = rentals.Open(ctx, slot)
	require.NoError(t, err)
	got := s.All()
	require.Len(t, got, 1)
	assert.True(t, p.Equal(got[0]))
}
