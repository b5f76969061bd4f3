package ctdf

// FareEstimate carries the price points for a single leg. Which fields are
// populated depends on the leg's transport mode - rail legs get the two
// carriage classes, bus legs the AC split, ride-hail legs one price per
// offered vehicle type. All values are whole currency units.
type FareEstimate struct {
	SecondClass *int `json:"secondClass,omitempty" groups:"basic"`
	FirstClass  *int `json:"firstClass,omitempty" groups:"basic"`

	NonAC *int `json:"nonAC,omitempty" groups:"basic"`
	AC    *int `json:"ac,omitempty" groups:"basic"`

	Auto *int `json:"auto,omitempty" groups:"basic"`
	Car  *int `json:"car,omitempty" groups:"basic"`
	Moto *int `json:"moto,omitempty" groups:"basic"`
}

// Cheapest returns the lowest populated price point, or 0 when the estimate
// carries no prices at all.
func (f *FareEstimate) Cheapest() int {
	return f.fold(func(best int, price int) bool { return price < best })
}

// Priciest returns the highest populated price point, or 0 when the estimate
// carries no prices at all.
func (f *FareEstimate) Priciest() int {
	return f.fold(func(best int, price int) bool { return price > best })
}

func (f *FareEstimate) fold(better func(best int, price int) bool) int {
	if f == nil {
		return 0
	}

	found := false
	best := 0

	for _, price := range []*int{f.SecondClass, f.FirstClass, f.NonAC, f.AC, f.Auto, f.Car, f.Moto} {
		if price == nil {
			continue
		}

		if !found || better(best, *price) {
			best = *price
			found = true
		}
	}

	return best
}
