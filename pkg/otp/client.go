// Package otp talks to the OpenTripPlanner instance that performs the actual
// transit graph search. The engine is a black box here - it hands back raw
// itineraries which the enricher and ranker then take over.
package otp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/rs/zerolog/log"

	"github.com/yatrigo/yatrigo/pkg/ctdf"
	"github.com/yatrigo/yatrigo/pkg/redis_client"
)

const (
	maxPlanRetries  = 3
	planCacheExpiry = 2 * time.Minute
)

type Client struct {
	BaseURL string

	httpClient *http.Client
	planCache  *cache.Cache[string]
}

// NewClient creates a planner client. When the shared redis connection is up,
// plan responses are cached briefly so repeated searches for the same pair
// don't hammer the engine.
func NewClient(baseURL string) *Client {
	client := &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}

	if redis_client.Connected() {
		redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(planCacheExpiry))
		client.planCache = cache.New[string](redisStore)
	}

	return client
}

// Plan asks the engine for itineraries between two points, departing at the
// given time.
func (c *Client) Plan(ctx context.Context, origin ctdf.Location, destination ctdf.Location, departAt time.Time) ([]ctdf.Itinerary, error) {
	requestURL := c.planURL(origin, destination, departAt)

	body, fromCache := c.cachedResponse(ctx, requestURL)

	if body == nil {
		var err error
		body, err = c.fetch(ctx, requestURL)
		if err != nil {
			return nil, err
		}
	}

	response := planResponse{}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decode plan response: %w", err)
	}

	if response.Error != nil {
		return nil, fmt.Errorf("routing engine: %s", response.Error.Message)
	}

	if !fromCache {
		c.storeResponse(ctx, requestURL, body)
	}

	return response.Itineraries(), nil
}

func (c *Client) planURL(origin ctdf.Location, destination ctdf.Location, departAt time.Time) string {
	query := url.Values{}
	query.Set("fromPlace", fmt.Sprintf("%f,%f", origin.Latitude, origin.Longitude))
	query.Set("toPlace", fmt.Sprintf("%f,%f", destination.Latitude, destination.Longitude))
	query.Set("mode", "TRANSIT,WALK")
	query.Set("date", departAt.Format("2006-01-02"))
	query.Set("time", departAt.Format("15:04"))

	return fmt.Sprintf("%s/plan?%s", c.BaseURL, query.Encode())
}

func (c *Client) fetch(ctx context.Context, requestURL string) ([]byte, error) {
	retryPolicy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxPlanRetries), ctx)

	return backoff.RetryWithData(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode >= 500 {
			return nil, fmt.Errorf("routing engine returned %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, backoff.Permanent(fmt.Errorf("routing engine returned %d", resp.StatusCode))
		}

		return body, nil
	}, retryPolicy)
}

func (c *Client) cachedResponse(ctx context.Context, requestURL string) ([]byte, bool) {
	if c.planCache == nil {
		return nil, false
	}

	cached, err := c.planCache.Get(ctx, cacheKey(requestURL))
	if err != nil || cached == "" {
		return nil, false
	}

	return []byte(cached), true
}

func (c *Client) storeResponse(ctx context.Context, requestURL string, body []byte) {
	if c.planCache == nil {
		return
	}

	if err := c.planCache.Set(ctx, cacheKey(requestURL), string(body)); err != nil {
		log.Debug().Err(err).Msg("Failed to cache plan response")
	}
}

func cacheKey(requestURL string) string {
	return fmt.Sprintf("yatrigo:plan:%s", requestURL)
}
