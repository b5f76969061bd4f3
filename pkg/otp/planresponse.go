package otp

import (
	"time"

	"github.com/yatrigo/yatrigo/pkg/ctdf"
)

// Wire format of the OTP REST /plan endpoint. Timestamps are epoch
// milliseconds, distances meters, durations seconds.
type planResponse struct {
	Plan *struct {
		Itineraries []planItinerary `json:"itineraries"`
	} `json:"plan"`

	Error *planError `json:"error"`
}

type planError struct {
	ID      int    `json:"id"`
	Message string `json:"msg"`
}

type planItinerary struct {
	StartTime       int64     `json:"startTime"`
	EndTime         int64     `json:"endTime"`
	DurationSeconds float64   `json:"duration"`
	Legs            []planLeg `json:"legs"`
}

type planLeg struct {
	Mode            string    `json:"mode"`
	StartTime       int64     `json:"startTime"`
	EndTime         int64     `json:"endTime"`
	DistanceMeters  float64   `json:"distance"`
	DurationSeconds float64   `json:"duration"`
	From            planPlace `json:"from"`
	To              planPlace `json:"to"`
	Route           string    `json:"route"`
	Headsign        string    `json:"headsign"`
	Steps           []struct {
		DistanceMeters    float64 `json:"distance"`
		RelativeDirection string  `json:"relativeDirection"`
		StreetName        string  `json:"streetName"`
	} `json:"steps"`
}

type planPlace struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	StopIndex *int    `json:"stopIndex"`
}

func (r planResponse) Itineraries() []ctdf.Itinerary {
	if r.Plan == nil {
		return []ctdf.Itinerary{}
	}

	itineraries := make([]ctdf.Itinerary, 0, len(r.Plan.Itineraries))
	for _, wireItinerary := range r.Plan.Itineraries {
		itineraries = append(itineraries, wireItinerary.toCTDF())
	}

	return itineraries
}

func (i planItinerary) toCTDF() ctdf.Itinerary {
	itinerary := ctdf.Itinerary{
		StartTime:       time.UnixMilli(i.StartTime),
		EndTime:         time.UnixMilli(i.EndTime),
		DurationSeconds: i.DurationSeconds,
		Legs:            make([]ctdf.Leg, 0, len(i.Legs)),
	}

	for _, wireLeg := range i.Legs {
		itinerary.Legs = append(itinerary.Legs, wireLeg.toCTDF())
	}

	return itinerary
}

func (l planLeg) toCTDF() ctdf.Leg {
	leg := ctdf.Leg{
		// Unrecognised engine modes are carried through verbatim; the
		// enricher leaves them alone.
		Mode: ctdf.TransportMode(l.Mode),

		From: l.From.toCTDF(),
		To:   l.To.toCTDF(),

		DistanceMeters:  l.DistanceMeters,
		DurationSeconds: l.DurationSeconds,

		StartTime: time.UnixMilli(l.StartTime),
		EndTime:   time.UnixMilli(l.EndTime),

		Route:    l.Route,
		Headsign: l.Headsign,
	}

	for _, wireStep := range l.Steps {
		leg.WalkSteps = append(leg.WalkSteps, ctdf.WalkStep{
			DistanceMeters:    wireStep.DistanceMeters,
			RelativeDirection: wireStep.RelativeDirection,
			StreetName:        wireStep.StreetName,
		})
	}

	return leg
}

func (p planPlace) toCTDF() ctdf.Location {
	return ctdf.Location{
		Name:      p.Name,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		StopIndex: p.StopIndex,
	}
}
