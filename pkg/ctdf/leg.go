package ctdf

import "time"

type Leg struct {
	Mode TransportMode `json:"mode" groups:"basic"`

	From Location `json:"from" groups:"basic"`
	To   Location `json:"to" groups:"basic"`

	DistanceMeters  float64 `json:"distance" groups:"basic"`
	DurationSeconds float64 `json:"duration" groups:"basic"`

	StartTime time.Time `json:"startTime,omitempty" groups:"basic"`
	EndTime   time.Time `json:"endTime,omitempty" groups:"basic"`

	// Route & headsign come straight from the routing engine for vehicle legs.
	Route    string `json:"route,omitempty" groups:"detailed"`
	Headsign string `json:"headsign,omitempty" groups:"detailed"`

	WalkSteps []WalkStep `json:"steps,omitempty" groups:"detailed"`

	// Populated by the enricher.
	Fares       *FareEstimate `json:"fares,omitempty" groups:"basic"`
	ServiceTier ServiceTier   `json:"serviceTier,omitempty" groups:"basic"`
}

type WalkStep struct {
	DistanceMeters    float64 `json:"distance" groups:"detailed"`
	RelativeDirection string  `json:"relativeDirection,omitempty" groups:"detailed"`
	StreetName        string  `json:"streetName,omitempty" groups:"detailed"`
}

// IsVehicle reports whether the leg counts towards the itinerary's transfer
// total. Walking and ride-hail connections are not transfers.
func (l *Leg) IsVehicle() bool {
	return l.Mode == TransportModeRail || l.Mode == TransportModeBus
}
