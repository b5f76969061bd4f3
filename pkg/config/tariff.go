package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tariff is the full pricing & heuristic configuration for one market.
// Everything the enrichment pipeline treats as a constant lives here so that
// regional deployments can override it without code changes.
type Tariff struct {
	// Walking legs longer than this get replaced with a modelled ride-hail leg.
	WalkToRidehailMeters float64 `yaml:"walk_to_ridehail_meters"`

	// Assumed average urban ride-hail speed, used to model the duration of a
	// substituted leg. Default 8.3 m/s (~30 km/h).
	RidehailSpeedMetersPerSecond float64 `yaml:"ridehail_speed_mps"`

	Ridehail RidehailTariff `yaml:"ridehail"`
	Rail     RailTariff     `yaml:"rail"`
	Bus      BusTariff      `yaml:"bus"`

	// Express classification gates. A rail leg is express when it crossed at
	// most ExpressMaxStopsCrossed stops and averaged at least
	// ExpressMinSpeedKmh.
	ExpressMinSpeedKmh     float64 `yaml:"express_min_speed_kmh"`
	ExpressMaxStopsCrossed int     `yaml:"express_max_stops_crossed"`

	// Recommended-sort penalty added to an itinerary's duration per transfer.
	TransferPenaltySeconds float64 `yaml:"transfer_penalty_seconds"`
}

type RidehailTariff struct {
	Auto RidehailRates `yaml:"auto"`
	Car  RidehailRates `yaml:"car"`
	Moto RidehailRates `yaml:"moto"`
}

type RidehailRates struct {
	BaseFare  float64 `yaml:"base_fare"`
	PerKm     float64 `yaml:"per_km"`
	PerMinute float64 `yaml:"per_minute"`
}

type RailTariff struct {
	SecondClass TieredTable `yaml:"second_class"`
	FirstClass  TieredTable `yaml:"first_class"`
}

type BusTariff struct {
	NonAC TieredTable `yaml:"non_ac"`
	AC    TieredTable `yaml:"ac"`
}

// TieredTable is a step function of distance. Bands must be ordered by
// ascending upper bound; a distance on a boundary belongs to the lower band.
// Beyond the last band the price grows by OverflowIncrement per started
// OverflowBlockKm block.
type TieredTable struct {
	Bands             []FareBand `yaml:"bands"`
	OverflowBlockKm   float64    `yaml:"overflow_block_km"`
	OverflowIncrement int        `yaml:"overflow_increment"`
}

type FareBand struct {
	UpToKm float64 `yaml:"up_to_km"`
	Price  int     `yaml:"price"`
}

// LoadTariff reads a market tariff overrides file. An empty path returns the
// built-in default tables.
func LoadTariff(path string) (Tariff, error) {
	if path == "" {
		return DefaultTariff(), nil
	}

	tariffYaml, err := os.ReadFile(path)
	if err != nil {
		return Tariff{}, err
	}

	tariff := DefaultTariff()
	if err := yaml.Unmarshal(tariffYaml, &tariff); err != nil {
		return Tariff{}, err
	}

	if err := tariff.Validate(); err != nil {
		return Tariff{}, fmt.Errorf("tariff file %s: %w", path, err)
	}

	return tariff, nil
}

func (t Tariff) Validate() error {
	switch {
	case t.WalkToRidehailMeters <= 0:
		return errors.New("walk_to_ridehail_meters should be greater than 0")
	case t.RidehailSpeedMetersPerSecond <= 0:
		return errors.New("ridehail_speed_mps should be greater than 0")
	case t.ExpressMinSpeedKmh <= 0:
		return errors.New("express_min_speed_kmh should be greater than 0")
	case t.TransferPenaltySeconds < 0:
		return errors.New("transfer_penalty_seconds should not be negative")
	}

	for name, table := range map[string]TieredTable{
		"rail.second_class": t.Rail.SecondClass,
		"rail.first_class":  t.Rail.FirstClass,
		"bus.non_ac":        t.Bus.NonAC,
		"bus.ac":            t.Bus.AC,
	} {
		if err := table.validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

func (t TieredTable) validate() error {
	if len(t.Bands) == 0 {
		return errors.New("at least one fare band is required")
	}

	previousBound := 0.0
	for _, band := range t.Bands {
		if band.UpToKm <= previousBound {
			return fmt.Errorf("band bounds must be strictly increasing (got %v after %v)", band.UpToKm, previousBound)
		}
		if band.Price < 0 {
			return errors.New("band prices must not be negative")
		}
		previousBound = band.UpToKm
	}

	if t.OverflowBlockKm <= 0 {
		return errors.New("overflow_block_km should be greater than 0")
	}

	return nil
}
