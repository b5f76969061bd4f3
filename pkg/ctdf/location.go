package ctdf

import "math"

const earthRadiusMeters = 6371000

type Location struct {
	Name      string  `json:"name,omitempty" groups:"basic"`
	Latitude  float64 `json:"lat" groups:"basic"`
	Longitude float64 `json:"lon" groups:"basic"`

	// Position of the stop within the vehicle's stop sequence, where the
	// routing engine provides one. Only meaningful on RAIL & BUS legs.
	StopIndex *int `json:"stopIndex,omitempty" groups:"detailed"`
}

// DistanceTo returns the great-circle distance in meters between two points
// using the haversine formula.
func (l Location) DistanceTo(other Location) float64 {
	lat1 := degreesToRadians(l.Latitude)
	lat2 := degreesToRadians(other.Latitude)
	deltaLat := degreesToRadians(other.Latitude - l.Latitude)
	deltaLon := degreesToRadians(other.Longitude - l.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

type TravelEstimate struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// EstimateTravel models a direct road trip between two points at a fixed
// average speed. The speed is a tariff tuning parameter rather than a global
// constant so regional deployments can override it.
func EstimateTravel(from Location, to Location, speedMetersPerSecond float64) TravelEstimate {
	distance := from.DistanceTo(to)

	return TravelEstimate{
		DistanceMeters:  distance,
		DurationSeconds: distance / speedMetersPerSecond,
	}
}
