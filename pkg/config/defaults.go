package config

// DefaultTariff returns the built-in tables, tuned for the Mumbai suburban
// network. These are static estimates, not authoritative prices.
func DefaultTariff() Tariff {
	return Tariff{
		WalkToRidehailMeters:         750,
		RidehailSpeedMetersPerSecond: 8.3, // ~30 km/h urban average

		Ridehail: RidehailTariff{
			Auto: RidehailRates{BaseFare: 30, PerKm: 10, PerMinute: 2},
			Car:  RidehailRates{BaseFare: 50, PerKm: 15, PerMinute: 3},
			Moto: RidehailRates{BaseFare: 20, PerKm: 8, PerMinute: 1.5},
		},

		Rail: RailTariff{
			SecondClass: TieredTable{
				Bands: []FareBand{
					{UpToKm: 5, Price: 5},
					{UpToKm: 10, Price: 10},
					{UpToKm: 20, Price: 15},
					{UpToKm: 30, Price: 20},
					{UpToKm: 40, Price: 25},
					{UpToKm: 50, Price: 30},
					{UpToKm: 60, Price: 40},
				},
				OverflowBlockKm:   10,
				OverflowIncrement: 10,
			},
			FirstClass: TieredTable{
				Bands: []FareBand{
					{UpToKm: 5, Price: 25},
					{UpToKm: 10, Price: 50},
					{UpToKm: 20, Price: 75},
					{UpToKm: 30, Price: 100},
					{UpToKm: 40, Price: 130},
					{UpToKm: 50, Price: 160},
					{UpToKm: 60, Price: 190},
				},
				OverflowBlockKm:   10,
				OverflowIncrement: 30,
			},
		},

		Bus: BusTariff{
			NonAC: TieredTable{
				Bands: []FareBand{
					{UpToKm: 5, Price: 10},
					{UpToKm: 10, Price: 15},
					{UpToKm: 15, Price: 20},
					{UpToKm: 20, Price: 30},
					{UpToKm: 25, Price: 35},
					{UpToKm: 30, Price: 40},
					{UpToKm: 35, Price: 45},
					{UpToKm: 40, Price: 50},
					{UpToKm: 45, Price: 55},
					{UpToKm: 50, Price: 60},
				},
				OverflowBlockKm:   5,
				OverflowIncrement: 5,
			},
			AC: TieredTable{
				Bands: []FareBand{
					{UpToKm: 5, Price: 12},
					{UpToKm: 10, Price: 20},
					{UpToKm: 15, Price: 30},
					{UpToKm: 20, Price: 35},
					{UpToKm: 25, Price: 40},
					{UpToKm: 30, Price: 45},
					{UpToKm: 35, Price: 50},
					{UpToKm: 40, Price: 55},
					{UpToKm: 45, Price: 60},
					{UpToKm: 50, Price: 65},
				},
				OverflowBlockKm:   5,
				OverflowIncrement: 5,
			},
		},

		ExpressMinSpeedKmh:     35,
		ExpressMaxStopsCrossed: 1,

		TransferPenaltySeconds: 300,
	}
}
