package rentals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChart_TooFew(t *testing.T) {
	_, ok := NewChart(nil)
	assert.False(t, ok)
	_, ok = NewChart([]Property{prop("A", "a", 1000, 5)})
	assert.False(t, ok)
}

func TestNewChart_Bounds(t *testing.T) {
	a := prop("A", "a", 1000, 9)
	a.CurrentMomentRating = 9
	a.NeighborhoodSecurity = 9
	b := prop("B", "b", 2000, 1)
	b.CurrentMomentRating = 1
	b.NeighborhoodSecurity = 1

	c, ok := NewChart([]Property{a, b})
	require.True(t, ok)

	assert.InDelta(t, 900, c.Rent.Min, 1e-9)
	assert.InDelta(t, 2200, c.Rent.Max, 1e-9)
	assert.Equal(t, Axis{Min: 1, Max: 10}, c.Score)

	require.Len(t, c.Points, 2)
	assert.Equal(t, "A", c.Points[0].Property.ID)
	assert.InDelta(t, 100.0/1300, c.Points[0].X, 1e-9)
	assert.InDelta(t, 8.0/9, c.Points[0].Y, 1e-9)
	assert.InDelta(t, 0, c.Points[1].Y, 1e-9)
}

func TestNewChart_EqualRents(t *testing.T) {
	c, ok := NewChart([]Property{prop("A", "a", 0, 5), prop("B", "b", 0, 5)})
	require.True(t, ok)
	assert.InDelta(t, 0.5, c.Points[0].X, 1e-9)
	assert.InDelta(t, 0.5, c.Points[1].X, 1e-9)
}

func TestChart_Position(t *testing.T) {
	c, ok := NewChart([]Property{prop("A", "a", 1000, 5), prop("B", "b", 2000, 5)})
	require.True(t, ok)
	x, y := c.Position(c.Points[1].Property)
	assert.InDelta(t, c.Points[1].X, x, 1e-9)
	assert.InDelta(t, c.Points[1].Y, y, 1e-9)
}
