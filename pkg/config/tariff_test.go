package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTariffIsValid(t *testing.T) {
	if err := DefaultTariff().Validate(); err != nil {
		t.Fatalf("default tariff invalid: %v", err)
	}
}

func TestLoadTariffEmptyPathReturnsDefaults(t *testing.T) {
	tariff, err := LoadTariff("")
	if err != nil {
		t.Fatalf("LoadTariff: %v", err)
	}

	if tariff.WalkToRidehailMeters != 750 {
		t.Errorf("WalkToRidehailMeters = %v, want 750", tariff.WalkToRidehailMeters)
	}
	if tariff.RidehailSpeedMetersPerSecond != 8.3 {
		t.Errorf("RidehailSpeedMetersPerSecond = %v, want 8.3", tariff.RidehailSpeedMetersPerSecond)
	}
}

func TestLoadTariffOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tariff.yaml")

	overrides := `
walk_to_ridehail_meters: 500
transfer_penalty_seconds: 600
ridehail:
  auto:
    base_fare: 25
    per_km: 12
    per_minute: 2
`
	if err := os.WriteFile(path, []byte(overrides), 0644); err != nil {
		t.Fatal(err)
	}

	tariff, err := LoadTariff(path)
	if err != nil {
		t.Fatalf("LoadTariff: %v", err)
	}

	if tariff.WalkToRidehailMeters != 500 {
		t.Errorf("WalkToRidehailMeters = %v, want 500", tariff.WalkToRidehailMeters)
	}
	if tariff.TransferPenaltySeconds != 600 {
		t.Errorf("TransferPenaltySeconds = %v, want 600", tariff.TransferPenaltySeconds)
	}
	if tariff.Ridehail.Auto.BaseFare != 25 {
		t.Errorf("Ridehail.Auto.BaseFare = %v, want 25", tariff.Ridehail.Auto.BaseFare)
	}

	// Untouched sections keep their defaults.
	if tariff.Ridehail.Car.BaseFare != 50 {
		t.Errorf("Ridehail.Car.BaseFare = %v, want default 50", tariff.Ridehail.Car.BaseFare)
	}
	if len(tariff.Bus.NonAC.Bands) != 10 {
		t.Errorf("bus bands = %d, want default 10", len(tariff.Bus.NonAC.Bands))
	}
}

func TestLoadTariffMissingFile(t *testing.T) {
	if _, err := LoadTariff(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestValidateRejectsBrokenTables(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tariff)
	}{
		{"zero walk threshold", func(tariff *Tariff) { tariff.WalkToRidehailMeters = 0 }},
		{"zero ride-hail speed", func(tariff *Tariff) { tariff.RidehailSpeedMetersPerSecond = 0 }},
		{"negative transfer penalty", func(tariff *Tariff) { tariff.TransferPenaltySeconds = -1 }},
		{"no fare bands", func(tariff *Tariff) { tariff.Bus.AC.Bands = nil }},
		{"non-increasing band bounds", func(tariff *Tariff) {
			tariff.Rail.SecondClass.Bands[1].UpToKm = tariff.Rail.SecondClass.Bands[0].UpToKm
		}},
		{"negative band price", func(tariff *Tariff) { tariff.Rail.FirstClass.Bands[0].Price = -5 }},
		{"zero overflow block", func(tariff *Tariff) { tariff.Bus.NonAC.OverflowBlockKm = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tariff := DefaultTariff()
			tt.mutate(&tariff)

			if err := tariff.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
