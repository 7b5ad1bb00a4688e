package config

import "os"

// CORSConfig holds the cross-origin header values attached to every response.
// The defaults are the deployed contract; overrides via environment are
// possible, but once loaded the values are treated as immutable.
type CORSConfig struct {
	AllowOrigin  string
	AllowMethods string
	AllowHeaders string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost string
	Port    string
	CORS    CORSConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"), // default only for non-sensitive value
		CORS: CORSConfig{
			AllowOrigin:  getEnv("CORS_ALLOW_ORIGIN", "*"),
			AllowMethods: getEnv("CORS_ALLOW_METHODS", "GET, POST, OPTIONS"),
			AllowHeaders: getEnv("CORS_ALLOW_HEADERS", "Content-Type, Authorization, apikey"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
