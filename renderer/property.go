package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/rentals"
	md "github.com/nao1215/markdown"
)

// TableMarkdown renders props as a table, one row per property in the given
// order.
func TableMarkdown(props []rentals.Property, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	if len(props) == 0 {
		doc.PlainText("No properties yet.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"ID", "Name", "Rent", "UFMG", "Bus", "Ride", "Ideal", "Moment", "Security", "Center"},
		Rows:   make([][]string, 0, len(props)),
	}
	for _, p := range props {
		table.Rows = append(table.Rows, []string{
			p.ShortID(),
			cell(p.Name),
			p.RentTotal.Format(currency),
			p.UFMGAccess.String(),
			cell(p.BusQuantity),
			p.AverageUber().Format(currency),
			fmt.Sprint(p.IdealRating),
			fmt.Sprint(p.CurrentMomentRating),
			fmt.Sprint(p.NeighborhoodSecurity),
			fmt.Sprint(p.CenterAccess),
		})
	}
	doc.Table(table)
	return doc.String()
}

// StatsMarkdown renders the aggregate figures of a collection.
func StatsMarkdown(s rentals.Stats, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	top := "-"
	if s.TopPick != nil {
		top = fmt.Sprintf("%s (%d/10)", cell(s.TopPick.Name), s.TopPick.IdealRating)
	}
	doc.Table(md.TableSet{
		Header: []string{"Properties", "Average rent", "Top pick"},
		Rows:   [][]string{{fmt.Sprint(s.Count), s.AverageRent.Format(currency), top}},
	})
	return doc.String()
}

// propertyView is the data of the property template.
type propertyView struct {
	rentals.Property
	Rent        string
	UberDay     string
	UberNight   string
	UberAverage string
	Score       float64
}

// PropertyMarkdown renders the detail view of p.
func PropertyMarkdown(p rentals.Property, currency string) string {
	v := propertyView{
		Property:    p,
		Rent:        p.RentTotal.Format(currency),
		UberDay:     p.UberPriceDay.Format(currency),
		UberNight:   p.UberPriceNight.Format(currency),
		UberAverage: p.AverageUber().Format(currency),
		Score:       rentals.CombinedScore(p),
	}
	partials := map[string]string{
		"property_ratings": "property_ratings.md",
	}
	return renderTemplate("property", "property.md", partials, v)
}
