package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yatrigo/yatrigo/pkg/config"
	"github.com/yatrigo/yatrigo/pkg/ctdf"
)

type stubEngine struct {
	itineraries []ctdf.Itinerary
	err         error
}

func (s stubEngine) Plan(ctx context.Context, origin ctdf.Location, destination ctdf.Location, departAt time.Time) ([]ctdf.Itinerary, error) {
	return s.itineraries, s.err
}

func planApp(engine PlanEngine) *fiber.App {
	app := fiber.New()
	PlannerRouter(app.Group("/plan"), engine, config.DefaultTariff())
	return app
}

func TestPlanEndpoint(t *testing.T) {
	engine := stubEngine{
		itineraries: []ctdf.Itinerary{
			{
				DurationSeconds: 2400,
				Legs: []ctdf.Leg{
					{
						Mode:            ctdf.TransportModeWalk,
						From:            ctdf.Location{Name: "Origin", Latitude: 19.0760, Longitude: 72.8777},
						To:              ctdf.Location{Name: "Dadar", Latitude: 19.0850, Longitude: 72.8777},
						DistanceMeters:  1000,
						DurationSeconds: 600,
					},
					{
						Mode:            ctdf.TransportModeRail,
						From:            ctdf.Location{Name: "Dadar", Latitude: 19.0186, Longitude: 72.8446},
						To:              ctdf.Location{Name: "Borivali", Latitude: 19.2307, Longitude: 72.8567},
						DistanceMeters:  20000,
						DurationSeconds: 1800,
					},
				},
			},
		},
	}

	app := planApp(engine)

	request := httptest.NewRequest("POST", "/plan/", strings.NewReader(
		`{"start": {"lat": 19.0760, "lon": 72.8777}, "destination": {"lat": 19.2307, "lon": 72.8567}}`,
	))
	request.Header.Set("Content-Type", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", response.StatusCode)
	}

	var body struct {
		Sort        string `json:"sort"`
		Itineraries []struct {
			Duration     float64 `json:"duration"`
			TotalFareMin int     `json:"totalFareMin"`
			TotalFareMax int     `json:"totalFareMax"`
			Legs         []struct {
				Mode  string          `json:"mode"`
				Fares json.RawMessage `json:"fares"`
			} `json:"legs"`
		} `json:"itineraries"`
	}
	if err := json.NewDecoder(response.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if body.Sort != "RECOMMENDED" {
		t.Errorf("sort = %q, want RECOMMENDED (default)", body.Sort)
	}
	if len(body.Itineraries) != 1 {
		t.Fatalf("itineraries = %d, want 1", len(body.Itineraries))
	}

	itinerary := body.Itineraries[0]
	if len(itinerary.Legs) != 2 {
		t.Fatalf("legs = %d, want 2", len(itinerary.Legs))
	}
	if itinerary.Legs[0].Mode != "RIDEHAIL" {
		t.Errorf("first leg mode = %q, want RIDEHAIL after substitution", itinerary.Legs[0].Mode)
	}
	if itinerary.Legs[1].Mode != "RAIL" || itinerary.Legs[1].Fares == nil {
		t.Errorf("rail leg should carry fares")
	}
	if itinerary.TotalFareMin <= 0 || itinerary.TotalFareMax < itinerary.TotalFareMin {
		t.Errorf("fare totals = {%d, %d}", itinerary.TotalFareMin, itinerary.TotalFareMax)
	}
	// Walk was replaced with a ~2 minute ride, so 600s disappears from the
	// total.
	if itinerary.Duration >= 2400 {
		t.Errorf("duration = %f, want recomputed below 2400", itinerary.Duration)
	}
}

func TestPlanEndpointRejectsMissingPoints(t *testing.T) {
	app := planApp(stubEngine{})

	request := httptest.NewRequest("POST", "/plan/", strings.NewReader(`{"start": {"lat": 1, "lon": 2}}`))
	request.Header.Set("Content-Type", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if response.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", response.StatusCode)
	}
}

func TestPlanEndpointRejectsUnknownSort(t *testing.T) {
	app := planApp(stubEngine{})

	request := httptest.NewRequest("POST", "/plan/?sort=CHEAPEST", strings.NewReader(
		`{"start": {"lat": 1, "lon": 2}, "destination": {"lat": 3, "lon": 4}}`,
	))
	request.Header.Set("Content-Type", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if response.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", response.StatusCode)
	}
}

func TestPlanEndpointEngineFailure(t *testing.T) {
	app := planApp(stubEngine{err: errors.New("routing engine: connection refused")})

	request := httptest.NewRequest("POST", "/plan/", strings.NewReader(
		`{"start": {"lat": 1, "lon": 2}, "destination": {"lat": 3, "lon": 4}}`,
	))
	request.Header.Set("Content-Type", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if response.StatusCode != fiber.StatusBadGateway {
		t.Errorf("status = %d, want 502", response.StatusCode)
	}
}

func TestPlanEndpointNoRoutes(t *testing.T) {
	app := planApp(stubEngine{itineraries: []ctdf.Itinerary{}})

	request := httptest.NewRequest("POST", "/plan/", strings.NewReader(
		`{"start": {"lat": 1, "lon": 2}, "destination": {"lat": 3, "lon": 4}}`,
	))
	request.Header.Set("Content-Type", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if response.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", response.StatusCode)
	}
}
