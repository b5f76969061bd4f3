// Package fares prices individual legs against a market tariff. All
// calculations are pure functions of the tariff and the leg's distance (plus
// duration for ride-hail) - there is no live pricing here.
package fares

import (
	"math"

	"github.com/yatrigo/yatrigo/pkg/config"
	"github.com/yatrigo/yatrigo/pkg/ctdf"
)

// CalculateRidehail prices a ride-hail trip for each vehicle type using the
// usual base + per-km + per-minute model, rounded to whole currency units.
func CalculateRidehail(tariff config.RidehailTariff, distanceKm float64, durationSeconds float64) ctdf.FareEstimate {
	return ctdf.FareEstimate{
		Auto: intRef(ridehailPrice(tariff.Auto, distanceKm, durationSeconds)),
		Car:  intRef(ridehailPrice(tariff.Car, distanceKm, durationSeconds)),
		Moto: intRef(ridehailPrice(tariff.Moto, distanceKm, durationSeconds)),
	}
}

func ridehailPrice(rates config.RidehailRates, distanceKm float64, durationSeconds float64) int {
	price := rates.BaseFare + rates.PerKm*distanceKm + rates.PerMinute*(durationSeconds/60)

	return int(math.Round(price))
}

// CalculateRail prices both carriage classes for a rail leg. The two classes
// use independent band tables.
func CalculateRail(tariff config.RailTariff, distanceKm float64) ctdf.FareEstimate {
	return ctdf.FareEstimate{
		SecondClass: intRef(TieredPrice(tariff.SecondClass, distanceKm)),
		FirstClass:  intRef(TieredPrice(tariff.FirstClass, distanceKm)),
	}
}

// CalculateBus prices the non-AC and AC service classes for a bus leg.
func CalculateBus(tariff config.BusTariff, distanceKm float64) ctdf.FareEstimate {
	return ctdf.FareEstimate{
		NonAC: intRef(TieredPrice(tariff.NonAC, distanceKm)),
		AC:    intRef(TieredPrice(tariff.AC, distanceKm)),
	}
}

// TieredPrice evaluates a distance band step function. A distance exactly on
// a band boundary belongs to the lower band, and anything at or below the
// first bound (including zero) pays the minimum-fare floor. Beyond the last
// band the price grows by the overflow increment per started block.
func TieredPrice(table config.TieredTable, distanceKm float64) int {
	for _, band := range table.Bands {
		if distanceKm <= band.UpToKm {
			return band.Price
		}
	}

	lastBand := table.Bands[len(table.Bands)-1]
	blocks := int(math.Ceil((distanceKm - lastBand.UpToKm) / table.OverflowBlockKm))

	return lastBand.Price + blocks*table.OverflowIncrement
}

func intRef(value int) *int {
	return &value
}
