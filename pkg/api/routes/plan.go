package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"

	"github.com/yatrigo/yatrigo/pkg/config"
	"github.com/yatrigo/yatrigo/pkg/ctdf"
	"github.com/yatrigo/yatrigo/pkg/enricher"
	"github.com/yatrigo/yatrigo/pkg/ranker"
)

// PlanEngine is the external trip-search engine. It owns the transit graph;
// everything after its answer (pricing, tiers, ranking) happens here.
type PlanEngine interface {
	Plan(ctx context.Context, origin ctdf.Location, destination ctdf.Location, departAt time.Time) ([]ctdf.Itinerary, error)
}

func PlannerRouter(router fiber.Router, engine PlanEngine, tariff config.Tariff) {
	router.Post("/", planBetweenPoints(engine, tariff))
}

type planRequest struct {
	Start       *planPoint `json:"start"`
	Destination *planPoint `json:"destination"`
}

type planPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

func planBetweenPoints(engine PlanEngine, tariff config.Tariff) fiber.Handler {
	itineraryEnricher := enricher.NewEnricher(tariff)

	return func(c *fiber.Ctx) error {
		var request planRequest
		if err := c.BodyParser(&request); err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Request body should be JSON with start and destination points",
			})
		}

		if request.Start == nil || request.Destination == nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Start and destination are required",
			})
		}

		criterion, known := ctdf.ParseRankingCriterion(c.Query("sort"))
		if !known {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter sort should be one of RECOMMENDED, DURATION_ASC, TRANSFERS_ASC, FARE_ASC",
			})
		}

		departAt := time.Now()
		if departAtString := c.Query("datetime"); departAtString != "" {
			var err error
			departAt, err = time.Parse(time.RFC3339, departAtString)

			if err != nil {
				c.SendStatus(fiber.StatusBadRequest)
				return c.JSON(fiber.Map{
					"error": "Parameter datetime should be an RFC3339/ISO8601 datetime",
				})
			}
		}

		origin := ctdf.Location{Latitude: request.Start.Latitude, Longitude: request.Start.Longitude}
		destination := ctdf.Location{Latitude: request.Destination.Latitude, Longitude: request.Destination.Longitude}

		rawItineraries, err := engine.Plan(c.Context(), origin, destination, departAt)
		if err != nil {
			c.SendStatus(fiber.StatusBadGateway)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if len(rawItineraries) == 0 {
			c.SendStatus(fiber.StatusNotFound)
			return c.JSON(fiber.Map{
				"error": "No routes found between origin and destination",
			})
		}

		itineraries := ranker.Rank(itineraryEnricher.EnrichAll(rawItineraries), criterion, tariff.TransferPenaltySeconds)

		itinerariesReduced, err := sheriff.Marshal(&sheriff.Options{
			Groups: []string{"basic", "detailed"},
		}, itineraries)

		if err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": "Sherrif could not reduce itineraries",
			})
		}

		return c.JSON(fiber.Map{
			"sort":        criterion,
			"itineraries": itinerariesReduced,
		})
	}
}
