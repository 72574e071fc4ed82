// Package orderapi provides a client for a remote order search API.
package orderapi

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration for the order search API client.
type Config struct {
	APIKey         string        // API key sent as X-API-Key
	BaseURL        string        // Base URL for the API (e.g., "https://orders.example.com")
	Timeout        time.Duration // HTTP request timeout
	RequestsPerMin int           // client-side pacing; 0 disables it
}

// LoadConfig loads order API configuration from environment variables.
func LoadConfig() Config {
	rpm, err := strconv.Atoi(os.Getenv("ORDER_API_RPM"))
	if err != nil || rpm < 0 {
		rpm = 60
	}
	return Config{
		APIKey:         os.Getenv("ORDER_API_KEY"),
		BaseURL:        os.Getenv("ORDER_API_BASE_URL"),
		Timeout:        10 * time.Second,
		RequestsPerMin: rpm,
	}
}
