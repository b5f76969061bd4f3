package ctdf

import "time"

type Itinerary struct {
	StartTime time.Time `json:"startTime" groups:"basic"`
	EndTime   time.Time `json:"endTime" groups:"basic"`

	DurationSeconds float64 `json:"duration" groups:"basic"`

	Legs []Leg `json:"legs" groups:"basic"`

	// Display aggregates filled in by the ranker.
	TotalFareMin int `json:"totalFareMin" groups:"basic"`
	TotalFareMax int `json:"totalFareMax" groups:"basic"`
	Transfers    int `json:"transfers" groups:"basic"`
}

// RecalculateDuration re-establishes the duration invariant after any leg has
// been replaced or re-timed.
func (i *Itinerary) RecalculateDuration() {
	var total float64

	for _, leg := range i.Legs {
		total += leg.DurationSeconds
	}

	i.DurationSeconds = total
}
