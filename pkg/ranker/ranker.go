// Package ranker orders enriched itineraries for presentation. Each ranking
// criterion maps to a pure comparator; sorting is stable so equal keys keep
// their input order.
package ranker

import (
	"golang.org/x/exp/slices"

	"github.com/yatrigo/yatrigo/pkg/ctdf"
)

type comparator func(a ctdf.Itinerary, b ctdf.Itinerary) int

// Rank returns a new, deterministically ordered slice containing exactly the
// input itineraries with their display aggregates (fare totals & transfer
// count) filled in. The input slice is never reordered or mutated.
func Rank(itineraries []ctdf.Itinerary, criterion ctdf.RankingCriterion, transferPenaltySeconds float64) []ctdf.Itinerary {
	ranked := make([]ctdf.Itinerary, len(itineraries))
	copy(ranked, itineraries)

	for index := range ranked {
		ranked[index].TotalFareMin = TotalFareMin(ranked[index])
		ranked[index].TotalFareMax = TotalFareMax(ranked[index])
		ranked[index].Transfers = TransferCount(ranked[index])
	}

	slices.SortStableFunc(ranked, comparatorFor(criterion, transferPenaltySeconds))

	return ranked
}

// comparatorFor builds a fresh comparator per call; no sort state is shared
// across requests.
func comparatorFor(criterion ctdf.RankingCriterion, transferPenaltySeconds float64) comparator {
	switch criterion {
	case ctdf.RankingCriterionDurationAsc:
		return func(a ctdf.Itinerary, b ctdf.Itinerary) int {
			return compareFloats(a.DurationSeconds, b.DurationSeconds)
		}
	case ctdf.RankingCriterionTransfersAsc:
		return func(a ctdf.Itinerary, b ctdf.Itinerary) int {
			if result := a.Transfers - b.Transfers; result != 0 {
				return result
			}
			return compareFloats(a.DurationSeconds, b.DurationSeconds)
		}
	case ctdf.RankingCriterionFareAsc:
		return func(a ctdf.Itinerary, b ctdf.Itinerary) int {
			return a.TotalFareMin - b.TotalFareMin
		}
	default:
		return func(a ctdf.Itinerary, b ctdf.Itinerary) int {
			return compareFloats(recommendedScore(a, transferPenaltySeconds), recommendedScore(b, transferPenaltySeconds))
		}
	}
}

// recommendedScore trades journey time off against changing vehicles: every
// transfer costs a fixed number of penalty seconds on top of the duration.
func recommendedScore(itinerary ctdf.Itinerary, transferPenaltySeconds float64) float64 {
	return itinerary.DurationSeconds + float64(itinerary.Transfers)*transferPenaltySeconds
}

// TotalFareMin sums the cheapest price point of every priced leg. Legs
// without fares contribute nothing.
func TotalFareMin(itinerary ctdf.Itinerary) int {
	total := 0
	for _, leg := range itinerary.Legs {
		total += leg.Fares.Cheapest()
	}

	return total
}

// TotalFareMax sums the most expensive price point of every priced leg.
func TotalFareMax(itinerary ctdf.Itinerary) int {
	total := 0
	for _, leg := range itinerary.Legs {
		total += leg.Fares.Priciest()
	}

	return total
}

// TransferCount is the number of changes between vehicle legs - one less
// than the vehicle leg count, never negative.
func TransferCount(itinerary ctdf.Itinerary) int {
	vehicleLegs := 0
	for _, leg := range itinerary.Legs {
		if leg.IsVehicle() {
			vehicleLegs += 1
		}
	}

	if vehicleLegs == 0 {
		return 0
	}

	return vehicleLegs - 1
}

func compareFloats(a float64, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
