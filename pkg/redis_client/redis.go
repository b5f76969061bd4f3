package redis_client

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/yatrigo/yatrigo/pkg/util"
)

var Client *redis.Client

const defaultDatabase = 0

// Connect establishes the shared redis connection. Redis is optional - it
// only backs the journey plan response cache - so when no address is
// configured Connect is a no-op and callers fall back to uncached lookups.
func Connect() error {
	env := util.GetEnvironmentVariables()

	address := env["YATRIGO_REDIS_ADDRESS"]
	if address == "" {
		return nil
	}

	database := defaultDatabase
	if env["YATRIGO_REDIS_DATABASE"] != "" {
		if n, err := strconv.Atoi(env["YATRIGO_REDIS_DATABASE"]); err == nil {
			database = n
		} else {
			return err
		}
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: env["YATRIGO_REDIS_PASSWORD"],
		DB:       database,
	})

	statusCmd := Client.Ping(context.Background())

	return statusCmd.Err()
}

func Connected() bool {
	return Client != nil
}
