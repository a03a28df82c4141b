package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port              string
	DBPath            string
	ExportDir         string
	LogoPath          string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	FrontendBaseURL   string

	// Seed admin created on first boot when the admins table is empty.
	SeedAdminUsername    string
	SeedAdminPassword    string
	SeedAdminDisplayName string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_PATH", "data/kabitalok.db")
	viper.SetDefault("EXPORT_DIR", "exports")
	viper.SetDefault("LOGO_PATH", "assets/logo.jpeg")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "kabitalok-payments")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:5173")
	viper.SetDefault("SEED_ADMIN_USERNAME", "kabitalok")
	viper.SetDefault("SEED_ADMIN_PASSWORD", "")
	viper.SetDefault("SEED_ADMIN_DISPLAY_NAME", "Kabitalok Admin")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.DBPath = viper.GetString("DB_PATH")
	cfg.ExportDir = viper.GetString("EXPORT_DIR")
	cfg.LogoPath = viper.GetString("LOGO_PATH")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.SeedAdminUsername = viper.GetString("SEED_ADMIN_USERNAME")
	cfg.SeedAdminPassword = viper.GetString("SEED_ADMIN_PASSWORD")
	cfg.SeedAdminDisplayName = viper.GetString("SEED_ADMIN_DISPLAY_NAME")
	if cfg.SeedAdminPassword == "" {
		log.Println("Warning: SEED_ADMIN_PASSWORD not set. No seed admin will be created on an empty database.")
	}

	return cfg, nil
}
