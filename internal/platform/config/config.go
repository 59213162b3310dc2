package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ServiceToken is one configured machine-to-machine API key. The secret
// is stored as a bcrypt hash; the plaintext never lives in config.
type ServiceToken struct {
	TokenID    string
	SecretHash string
	UserID     string
	TenantIDs  []string
}

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Rate limiting, e.g. "100-M" for 100 requests per minute per IP.
	RateLimit string

	// ServiceTokens authenticate integration clients via x-api-key.
	ServiceTokens []ServiceToken
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "fleet-backoffice")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("SERVICE_TOKENS", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION (%q). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.ServiceTokens = parseServiceTokens(viper.GetString("SERVICE_TOKENS"))

	return cfg, nil
}

// parseServiceTokens parses the SERVICE_TOKENS variable. Format:
// tokenID:bcryptHash:userID:tenantA|tenantB, entries separated by commas.
func parseServiceTokens(raw string) []ServiceToken {
	if raw == "" {
		return nil
	}
	var tokens []ServiceToken
	for _, entry := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(entry), ":", 4)
		if len(parts) != 4 {
			log.Printf("Warning: malformed SERVICE_TOKENS entry %q, skipping.\n", entry)
			continue
		}
		tokens = append(tokens, ServiceToken{
			TokenID:    parts[0],
			SecretHash: parts[1],
			UserID:     parts[2],
			TenantIDs:  strings.Split(parts[3], "|"),
		})
	}
	return tokens
}
