package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yatrigo/yatrigo/pkg/config"
)

// TariffRouter exposes the active tariff tables so clients can show fare
// breakdowns without hard-coding them.
func TariffRouter(router fiber.Router, tariff config.Tariff) {
	router.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(tariff)
	})
}
