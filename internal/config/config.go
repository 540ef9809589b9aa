package config

import (
	"os"
	"strings"
)

// Config carries everything the app reads from the environment. Values are
// loaded once at startup; optional values fall back to dev defaults.
type Config struct {
	Addr        string
	DatabaseURL string
	RedisURL    string

	// JWTSecret verifies identity-provider tokens. Authentication itself is
	// delegated; the app only reads the customer_id claim.
	JWTSecret string

	// BaseURL is the public storefront origin used to build the payment
	// success/cancel redirect URLs.
	BaseURL string

	StripeSecretKey string

	ShipEngineAPIKey  string
	ShipEngineBaseURL string
	CarrierIDs        []string
}

func Load() Config {
	addr := os.Getenv("STOREFRONT_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	shipBase := os.Getenv("SHIPENGINE_BASE_URL")
	if shipBase == "" {
		shipBase = "https://api.shipengine.com"
	}

	return Config{
		Addr:              addr,
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		BaseURL:           baseURL,
		StripeSecretKey:   os.Getenv("STRIPE_SECRET_KEY"),
		ShipEngineAPIKey:  os.Getenv("SHIPENGINE_API_KEY"),
		ShipEngineBaseURL: shipBase,
		CarrierIDs:        splitCarriers(os.Getenv("SHIPENGINE_CARRIER_IDS")),
	}
}

func splitCarriers(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
