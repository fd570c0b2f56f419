package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/rentals"
)

// draftFlags are the property fields settable from the command line. Only
// the flags actually given end up in the draft.
type draftFlags struct {
	name, link, access, bus, notes string
	security, center, leisure      float64
	ideal, moment                  float64
	uberDay, uberNight, rent       float64
}

func (d *draftFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&d.name, "name", "", "Short display name")
	f.StringVar(&d.link, "link", "", "URL of the listing")
	f.Float64Var(&d.security, "security", 5, "Neighborhood security, 1 to 10")
	f.Float64Var(&d.center, "center", 3, "Access to the city center, 1 to 6")
	f.Float64Var(&d.leisure, "leisure", 3, "Leisure nearby, 1 to 6")
	f.StringVar(&d.access, "access", "Acceptable", "Access to UFMG: "+strings.Join(rentals.AccessNames(), ", "))
	f.StringVar(&d.bus, "bus", "", "Bus lines available")
	f.Float64Var(&d.uberDay, "uber-day", 0, "Ride-hailing price during the day")
	f.Float64Var(&d.uberNight, "uber-night", 0, "Ride-hailing price at night")
	f.Float64Var(&d.rent, "rent", 0, "Total monthly rent")
	f.Float64Var(&d.ideal, "ideal", 5, "Rating as the ideal place, 1 to 10")
	f.Float64Var(&d.moment, "moment", 5, "Rating for the current moment, 1 to 10")
	f.StringVar(&d.notes, "notes", "", "Free notes")
}

// Draft returns the fields explicitly set on f.
func (d *draftFlags) Draft(f *flag.FlagSet) (rentals.Draft, error) {
	var out rentals.Draft
	var err error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			out.Name = rentals.Ptr(d.name)
		case "link":
			out.Link = rentals.Ptr(d.link)
		case "security":
			out.NeighborhoodSecurity = rentals.Ptr(d.security)
		case "center":
			out.CenterAccess = rentals.Ptr(d.center)
		case "leisure":
			out.Leisure = rentals.Ptr(d.leisure)
		case "access":
			a, perr := rentals.ParseAccess(d.access)
			if perr != nil {
				err = perr
				return
			}
			out.UFMGAccess = &a
		case "bus":
			out.BusQuantity = rentals.Ptr(d.bus)
		case "uber-day":
			out.UberPriceDay = rentals.Ptr(d.uberDay)
		case "uber-night":
			out.UberPriceNight = rentals.Ptr(d.uberNight)
		case "rent":
			out.RentTotal = rentals.Ptr(d.rent)
		case "ideal":
			out.IdealRating = rentals.Ptr(d.ideal)
		case "moment":
			out.CurrentMomentRating = rentals.Ptr(d.moment)
		case "notes":
			out.Notes = rentals.Ptr(d.notes)
		}
	})
	if err != nil {
		return rentals.Draft{}, fmt.Errorf("invalid -access: %w", err)
	}
	return out, nil
}
