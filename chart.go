package rentals

import (
	"math"

	"github.com/paulmach/orb"
)

// MaxScore is the top of the score axis.
const MaxScore = 10

// Axis is the closed range of values shown on one chart axis.
type Axis struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Scale maps v to [0,1] along the axis. An axis whose bounds are equal maps
// every value to the midpoint.
func (a Axis) Scale(v float64) float64 {
	if a.Max == a.Min {
		return 0.5
	}
	return (v - a.Min) / (a.Max - a.Min)
}

// ChartPoint is a property placed on the cost-vs-quality chart.
type ChartPoint struct {
	Property Property `json:"property"`
	// Point is (rent, combined score).
	Point orb.Point `json:"point"`
	// X and Y are the position scaled to [0,1].
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Chart is the cost-vs-quality view: the lower the rent and the higher the
// combined score, the better the property.
type Chart struct {
	Rent   Axis         `json:"rent"`
	Score  Axis         `json:"score"`
	Points []ChartPoint `json:"points"`
}

// NewChart places props on the chart. It returns false when there are fewer
// than 2 properties, in which case the chart is not shown.
//
// The rent axis spans [min×0.9, max×1.1] and the score axis [min(1, min), 10].
func NewChart(props []Property) (*Chart, bool) {
	if len(props) < 2 {
		return nil, false
	}
	mp := make(orb.MultiPoint, 0, len(props))
	for _, p := range props {
		mp = append(mp, orb.Point{p.RentTotal.Float64(), CombinedScore(p)})
	}
	bound := mp.Bound()

	c := &Chart{
		Rent:   Axis{Min: bound.Min.X() * 0.9, Max: bound.Max.X() * 1.1},
		Score:  Axis{Min: math.Min(1, bound.Min.Y()), Max: MaxScore},
		Points: make([]ChartPoint, 0, len(props)),
	}
	for i, p := range props {
		c.Points = append(c.Points, ChartPoint{
			Property: p,
			Point:    mp[i],
			X:        c.Rent.Scale(mp[i].X()),
			Y:        c.Score.Scale(mp[i].Y()),
		})
	}
	return c, true
}

// Position maps p into [0,1]×[0,1] on c.
func (c *Chart) Position(p Property) (x, y float64) {
	return c.Rent.Scale(p.RentTotal.Float64()), c.Score.Scale(CombinedScore(p))
}
