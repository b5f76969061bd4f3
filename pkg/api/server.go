package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yatrigo/yatrigo/pkg/api/routes"
	"github.com/yatrigo/yatrigo/pkg/config"
)

func SetupServer(listen string, engine routes.PlanEngine, tariff config.Tariff) error {
	webApp := NewApp(engine, tariff)

	return webApp.Listen(listen)
}

// NewApp wires the fiber application without binding a listener, so tests
// can drive it directly.
func NewApp(engine routes.PlanEngine, tariff config.Tariff) *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.PlannerRouter(group.Group("/plan"), engine, tariff)
	routes.TariffRouter(group.Group("/tariff"), tariff)

	return webApp
}
