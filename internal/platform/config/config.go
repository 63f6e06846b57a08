package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Remote CRUD gateway. Empty base URL disables the remote path entirely
	// and auth runs against the local fallback directory only.
	GatewayBaseURL string
	GatewayTimeout time.Duration

	// Path of the sqlite file holding the persisted session snapshot.
	SessionDBPath string

	// Rate limit applied to login/register, in ulule/limiter format (e.g. "5-M").
	AuthRateLimit string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "financeflow-backend")
	viper.SetDefault("GATEWAY_BASE_URL", "")
	viper.SetDefault("GATEWAY_TIMEOUT", "10s")
	viper.SetDefault("SESSION_DB_PATH", "financeflow_session.db")
	viper.SetDefault("AUTH_RATE_LIMIT", "5-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.GatewayBaseURL = viper.GetString("GATEWAY_BASE_URL")
	if cfg.GatewayBaseURL == "" {
		log.Println("Warning: GATEWAY_BASE_URL not set. Remote gateway disabled, using local fallback auth only.")
	}

	gatewayTimeoutStr := viper.GetString("GATEWAY_TIMEOUT")
	gatewayTimeout, err := time.ParseDuration(gatewayTimeoutStr)
	if err != nil {
		gatewayTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for GATEWAY_TIMEOUT ('%s'). Defaulting to %s.\n", gatewayTimeoutStr, gatewayTimeout.String())
	}
	cfg.GatewayTimeout = gatewayTimeout

	cfg.SessionDBPath = viper.GetString("SESSION_DB_PATH")
	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")
	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")

	return cfg, nil
}
