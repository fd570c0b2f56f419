package rentals

// prop is a helper for tests to create a valid property with a fixed ID.
func prop(id, name string, rent float64, ideal int) Property {
	p := NewProperty()
	p.ID = id
	p.Name = name
	p.RentTotal = M(rent)
	p.IdealRating = ideal
	return p
}

// ids returns the IDs of props in order.
func ids(props []Property) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p.ID)
	}
	return out
}
