package enricher

import (
	"github.com/yatrigo/yatrigo/pkg/config"
	"github.com/yatrigo/yatrigo/pkg/ctdf"
)

// ClassifyRailLeg decides whether a rail leg ran as an express or local
// service. This is a heuristic: an express skips intermediate stations, so it
// crosses few stop-sequence positions while sustaining a high average speed.
// It is approximate by construction and should not be treated as ground
// truth.
//
// Missing stop indices are treated as zero stops crossed, deferring the call
// to the speed gate. Reversed indices produce a negative difference which
// still passes the stops gate - kept as-is until there is evidence of what
// the engine means by them.
func ClassifyRailLeg(leg ctdf.Leg, tariff config.Tariff) ctdf.ServiceTier {
	if leg.Mode != ctdf.TransportModeRail {
		return ctdf.ServiceTierUnknown
	}

	if leg.From == (ctdf.Location{}) || leg.To == (ctdf.Location{}) {
		return ctdf.ServiceTierUnknown
	}

	if leg.DurationSeconds <= 0 {
		return ctdf.ServiceTierUnknown
	}

	averageSpeedKmh := (leg.DistanceMeters / 1000) / (leg.DurationSeconds / 3600)

	stopsCrossed := 0
	if leg.From.StopIndex != nil && leg.To.StopIndex != nil {
		stopsCrossed = *leg.To.StopIndex - *leg.From.StopIndex
	}

	if stopsCrossed <= tariff.ExpressMaxStopsCrossed && averageSpeedKmh >= tariff.ExpressMinSpeedKmh {
		return ctdf.ServiceTierExpress
	}

	return ctdf.ServiceTierLocal
}
