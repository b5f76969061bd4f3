package api

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/yatrigo/yatrigo/pkg/config"
	"github.com/yatrigo/yatrigo/pkg/otp"
	"github.com/yatrigo/yatrigo/pkg/redis_client"
	"github.com/yatrigo/yatrigo/pkg/util"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					env := util.GetEnvironmentVariables()

					otpBaseURL := env["YATRIGO_OTP_URL"]
					if otpBaseURL == "" {
						return errors.New("YATRIGO_OTP_URL must point at an OpenTripPlanner instance")
					}

					tariff, err := config.LoadTariff(env["YATRIGO_TARIFF_FILE"])
					if err != nil {
						return err
					}

					if err := redis_client.Connect(); err != nil {
						log.Error().Err(err).Msg("Failed to connect to redis, continuing without plan cache")
					}

					engine := otp.NewClient(otpBaseURL)

					return SetupServer(c.String("listen"), engine, tariff)
				},
			},
		},
	}
}
