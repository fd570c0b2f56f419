package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/etnz/rentals"
)

// markers label the points of a chart, in collection order.
const markers = "123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ChartText renders c as a character scatter plot of width×height cells:
// rent grows to the right, the combined score grows upward. Points sharing a
// cell are drawn as '*'. A legend follows the plot.
func ChartText(c *rentals.Chart, width, height int, currency string) string {
	width = max(width, 10)
	height = max(height, 5)

	grid := make([][]byte, height)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", width))
	}
	for i, pt := range c.Points {
		col := int(math.Round(pt.X * float64(width-1)))
		row := height - 1 - int(math.Round(pt.Y*float64(height-1)))
		m := marker(i)
		if grid[row][col] != ' ' {
			m = '*'
		}
		grid[row][col] = m
	}

	var b strings.Builder
	b.WriteString("```\n")
	for i, line := range grid {
		label := "     "
		switch i {
		case 0:
			label = fmt.Sprintf("%4.1f ", c.Score.Max)
		case height - 1:
			label = fmt.Sprintf("%4.1f ", c.Score.Min)
		}
		fmt.Fprintf(&b, "%s|%s\n", label, strings.TrimRight(string(line), " "))
	}
	fmt.Fprintf(&b, "     +%s\n", strings.Repeat("-", width))
	lo := rentals.M(c.Rent.Min).Format(currency)
	hi := rentals.M(c.Rent.Max).Format(currency)
	gap := max(width-len(lo)-len(hi), 1)
	fmt.Fprintf(&b, "      %s%s%s\n", lo, strings.Repeat(" ", gap), hi)
	b.WriteString("```\n\n")

	for i, pt := range c.Points {
		fmt.Fprintf(&b, "- `%c` %s: %s, score %.1f\n", marker(i), pt.Property.Name, pt.Property.RentTotal.Format(currency), pt.Point.Y())
	}
	return b.String()
}

func marker(i int) byte {
	if i < len(markers) {
		return markers[i]
	}
	return '.'
}
