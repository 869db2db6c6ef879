package config

import (
	"errors"
	"os"

	"github.com/adrianliechti/tryon/pkg/provider/pixelcut"
	"github.com/adrianliechti/tryon/pkg/ratelimit"
	"github.com/adrianliechti/tryon/pkg/tryon"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	Address string

	generator tryon.Generator
	limiter   ratelimit.Limiter
}

func New(generator tryon.Generator, limiter ratelimit.Limiter) *Config {
	return &Config{
		Address: ":8080",

		generator: generator,
		limiter:   limiter,
	}
}

// FromEnvironment builds the configuration from environment variables,
// loading a .env file when present. Missing upstream credentials are a
// startup failure, not a request-time one.
func FromEnvironment() (*Config, error) {
	godotenv.Load()

	key := os.Getenv("PIXEL_CUT_API_KEY")

	if key == "" {
		return nil, errors.New("PIXEL_CUT_API_KEY must be set")
	}

	endpoint := os.Getenv("PIXEL_CUT_API_ENDPOINT")

	if endpoint == "" {
		return nil, errors.New("PIXEL_CUT_API_ENDPOINT must be set")
	}

	client, err := pixelcut.New(endpoint, key)

	if err != nil {
		return nil, err
	}

	limiter, err := parseLimiter()

	if err != nil {
		return nil, err
	}

	c := New(client, limiter)

	if address := os.Getenv("ADDRESS"); address != "" {
		c.Address = address
	}

	return c, nil
}

func parseLimiter() (ratelimit.Limiter, error) {
	url := os.Getenv("REDIS_URL")

	if url == "" {
		return ratelimit.NewMemory(ratelimit.DefaultPolicy), nil
	}

	options, err := redis.ParseURL(url)

	if err != nil {
		return nil, err
	}

	return ratelimit.NewRedis(redis.NewClient(options), ratelimit.DefaultPolicy), nil
}

func (c *Config) Generator() tryon.Generator {
	return c.generator
}

func (c *Config) Limiter() ratelimit.Limiter {
	return c.limiter
}
