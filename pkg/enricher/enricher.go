// Package enricher turns the routing engine's raw itineraries into priced,
// classified ones: long walks become modelled ride-hail legs, rail & bus legs
// get fare estimates, rail legs get an express/local tier.
package enricher

import (
	"math"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/yatrigo/yatrigo/pkg/config"
	"github.com/yatrigo/yatrigo/pkg/ctdf"
	"github.com/yatrigo/yatrigo/pkg/fares"
)

const maxConcurrentItineraries = 16

type Enricher struct {
	Tariff config.Tariff
}

func NewEnricher(tariff config.Tariff) *Enricher {
	return &Enricher{Tariff: tariff}
}

// EnrichAll enriches a batch. Itineraries are independent of each other so
// they are processed in parallel; input order is preserved as it is the final
// tie-break for the ranker.
func (e *Enricher) EnrichAll(itineraries []ctdf.Itinerary) []ctdf.Itinerary {
	enriched := make([]ctdf.Itinerary, len(itineraries))

	p := pool.New()
	p.WithMaxGoroutines(maxConcurrentItineraries)

	for index := range itineraries {
		index := index // per-iteration copy: go.mod's go directive predates Go 1.22 loopvar scoping
		p.Go(func() {
			enriched[index] = e.EnrichItinerary(itineraries[index])
		})
	}
	p.Wait()

	return enriched
}

// EnrichItinerary returns an enriched deep copy of the itinerary. The input
// value is never modified and shares no leg objects with the result.
func (e *Enricher) EnrichItinerary(itinerary ctdf.Itinerary) ctdf.Itinerary {
	var enriched ctdf.Itinerary

	err := copier.CopyWithOption(&enriched, &itinerary, copier.Option{DeepCopy: true})
	if err != nil {
		log.Error().Err(err).Msg("Failed to copy itinerary, returning it unenriched")
		return itinerary
	}

	for index := range enriched.Legs {
		e.enrichLeg(&enriched.Legs[index])
	}

	enriched.RecalculateDuration()

	return enriched
}

// enrichLeg applies the per-mode transformation in place. A leg missing the
// fields a transformation needs is left untouched rather than failing the
// whole itinerary.
func (e *Enricher) enrichLeg(leg *ctdf.Leg) {
	switch leg.Mode {
	case ctdf.TransportModeWalk:
		if leg.DistanceMeters <= e.Tariff.WalkToRidehailMeters {
			return
		}

		if !legHasEndpoints(leg) {
			log.Warn().Str("from", leg.From.Name).Str("to", leg.To.Name).
				Msg("Walking leg exceeds ride-hail threshold but has no endpoint coordinates")
			return
		}

		estimate := ctdf.EstimateTravel(leg.From, leg.To, e.Tariff.RidehailSpeedMetersPerSecond)

		rideFares := fares.CalculateRidehail(e.Tariff.Ridehail, estimate.DistanceMeters/1000, estimate.DurationSeconds)

		leg.Mode = ctdf.TransportModeRidehail
		leg.DistanceMeters = estimate.DistanceMeters
		leg.DurationSeconds = estimate.DurationSeconds
		leg.WalkSteps = nil
		leg.Fares = &rideFares
	case ctdf.TransportModeRail:
		if !legDistanceUsable(leg) {
			log.Warn().Str("route", leg.Route).Msg("Skipping fare estimate for rail leg with unusable distance")
			return
		}

		railFares := fares.CalculateRail(e.Tariff.Rail, leg.DistanceMeters/1000)
		leg.Fares = &railFares

		if tier := ClassifyRailLeg(*leg, e.Tariff); tier != ctdf.ServiceTierUnknown {
			leg.ServiceTier = tier
		}
	case ctdf.TransportModeBus:
		if !legDistanceUsable(leg) {
			log.Warn().Str("route", leg.Route).Msg("Skipping fare estimate for bus leg with unusable distance")
			return
		}

		busFares := fares.CalculateBus(e.Tariff.Bus, leg.DistanceMeters/1000)
		leg.Fares = &busFares
	}
}

func legHasEndpoints(leg *ctdf.Leg) bool {
	return leg.From != (ctdf.Location{}) && leg.To != (ctdf.Location{})
}

func legDistanceUsable(leg *ctdf.Leg) bool {
	return !math.IsNaN(leg.DistanceMeters) && leg.DistanceMeters >= 0
}
