package config

import (
	"fmt"
	"os"
)

// Config holds every environment-sourced value the app needs. It is loaded
// once in main and passed down; nothing below main reads os.Getenv directly.
type Config struct {
	DatabaseURL string

	// Payment gateway credentials. The API key is part of the signed
	// message, the HMAC secret is the signing key. Both are required and
	// must never be logged.
	GatewayAPIKey     string
	GatewayHMACSecret string
	GatewayBaseURL    string

	JWTSecret string

	// Order-sync target (spreadsheet webhook).
	SheetsWebhookURL string

	// Object storage for delivery photos.
	StorageURL        string
	StorageServiceKey string
	StorageBucket     string

	ResendAPIKey string

	Port string

	// When true (default), a failed reconciliation write is logged and the
	// gateway still gets a 200 so it stops retrying. When false the fault
	// surfaces as a 500.
	MaskStoreFailures bool

	UseEmailReputation bool
	AbstractAPIKey     string
}

// Load reads the environment and fails fast on any missing required value.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		GatewayAPIKey:      os.Getenv("GATEWAY_API_KEY"),
		GatewayHMACSecret:  os.Getenv("GATEWAY_HMAC_SECRET"),
		GatewayBaseURL:     os.Getenv("GATEWAY_BASE_URL"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		SheetsWebhookURL:   os.Getenv("SHEETS_WEBHOOK_URL"),
		StorageURL:         os.Getenv("STORAGE_URL"),
		StorageServiceKey:  os.Getenv("STORAGE_SERVICE_KEY"),
		StorageBucket:      os.Getenv("STORAGE_BUCKET"),
		ResendAPIKey:       os.Getenv("RESEND_API_KEY"),
		Port:               os.Getenv("PORT"),
		MaskStoreFailures:  os.Getenv("SURFACE_STORE_FAILURES") != "true",
		UseEmailReputation: os.Getenv("USE_EMAIL_REPUTATION") == "true",
		AbstractAPIKey:     os.Getenv("ABSTRACT_EMAIL_API_KEY"),
	}

	required := map[string]string{
		"DATABASE_URL":        cfg.DatabaseURL,
		"GATEWAY_API_KEY":     cfg.GatewayAPIKey,
		"GATEWAY_HMAC_SECRET": cfg.GatewayHMACSecret,
		"JWT_SECRET":          cfg.JWTSecret,
	}
	for name, v := range required {
		if v == "" {
			return nil, fmt.Errorf("%s not set", name)
		}
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StorageBucket == "" {
		cfg.StorageBucket = "delivery-photos"
	}

	return cfg, nil
}
