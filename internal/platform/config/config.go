package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	DBMaxConns    int32
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string
	JWTIssuer     string // Empty disables the issuer check

	// Result cache. An empty RedisAddr selects the in-process cache.
	RedisAddr string
	CacheTTL  time.Duration

	RateLimit          string // ulule formatted rate, e.g. "60-M"
	CORSAllowedOrigins []string

	// Rounding policy
	MoneyPlaces int32
	RatePlaces  int32

	MaxCompareScenarios int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("CACHE_TTL", "15m")
	v.SetDefault("RATE_LIMIT", "60-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("MONEY_PLACES", 0)
	v.SetDefault("RATE_PLACES", 4)
	v.SetDefault("MAX_COMPARE_SCENARIOS", 10)

	// Environment variables override the defaults and the .env file
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:         v.GetString("PGSQL_URL"),
		DBMaxConns:          v.GetInt32("DB_MAX_CONNS"),
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:       v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		JWTIssuer:           v.GetString("JWT_ISSUER"),
		RedisAddr:           v.GetString("REDIS_ADDR"),
		RateLimit:           v.GetString("RATE_LIMIT"),
		MoneyPlaces:         v.GetInt32("MONEY_PLACES"),
		RatePlaces:          v.GetInt32("RATE_PLACES"),
		MaxCompareScenarios: v.GetInt("MAX_COMPARE_SCENARIOS"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load cache TTL (e.g., "15m", "1h")
	cacheTTLStr := v.GetString("CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil || cacheTTL <= 0 {
		cacheTTL = 15 * time.Minute
		log.Printf("Warning: Invalid value for CACHE_TTL ('%s'). Defaulting to %s.\n", cacheTTLStr, cacheTTL.String())
	}
	cfg.CacheTTL = cacheTTL

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.MoneyPlaces < 0 || cfg.MoneyPlaces > 4 {
		return nil, fmt.Errorf("MONEY_PLACES must be between 0 and 4, got %d", cfg.MoneyPlaces)
	}
	if cfg.RatePlaces < 2 || cfg.RatePlaces > 8 {
		return nil, fmt.Errorf("RATE_PLACES must be between 2 and 8, got %d", cfg.RatePlaces)
	}
	if cfg.MaxCompareScenarios <= 0 {
		cfg.MaxCompareScenarios = 10
		log.Printf("Warning: MAX_COMPARE_SCENARIOS must be positive. Defaulting to %d.\n", cfg.MaxCompareScenarios)
	}

	return cfg, nil
}
