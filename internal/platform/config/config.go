package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Session cookie settings
	AuthCookieName     string
	ProviderCookieName string
	CookieMaxAge       time.Duration

	// RingCentral OAuth / REST settings
	RingCentralServerURL    string `mapstructure:"RINGCENTRAL_SERVER"`
	RingCentralClientID     string `mapstructure:"RINGCENTRAL_CLIENT_ID"`
	RingCentralClientSecret string `mapstructure:"RINGCENTRAL_CLIENT_SECRET"`
	RingCentralRedirectURL  string `mapstructure:"RINGCENTRAL_REDIRECT_URI"`
	RingCentralAuthState    string `mapstructure:"RINGCENTRAL_AUTH_STATE"`
	ProviderHTTPTimeout     time.Duration

	// Where OAuth callbacks send the browser back to
	AppBaseURL      string `mapstructure:"APP_BASE_URL"`
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "activity-tracker-secret-key-change-in-production")
	viper.SetDefault("JWT_EXPIRY_DURATION", "168h")
	viper.SetDefault("JWT_ISSUER", "activity-dashboard")
	viper.SetDefault("AUTH_COOKIE_NAME", "auth-token")
	viper.SetDefault("PROVIDER_COOKIE_NAME", "rc_token")
	viper.SetDefault("COOKIE_MAX_AGE", "168h")
	viper.SetDefault("RINGCENTRAL_SERVER", "https://platform.ringcentral.com")
	viper.SetDefault("RINGCENTRAL_CLIENT_ID", "")
	viper.SetDefault("RINGCENTRAL_CLIENT_SECRET", "")
	viper.SetDefault("RINGCENTRAL_REDIRECT_URI", "")
	viper.SetDefault("RINGCENTRAL_AUTH_STATE", "ringcentral-auth")
	viper.SetDefault("PROVIDER_HTTP_TIMEOUT", "15s")
	viper.SetDefault("APP_BASE_URL", "http://localhost:8080")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "activity-tracker-secret-key-change-in-production" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 24 * 7
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AuthCookieName = viper.GetString("AUTH_COOKIE_NAME")
	cfg.ProviderCookieName = viper.GetString("PROVIDER_COOKIE_NAME")

	cookieMaxAgeStr := viper.GetString("COOKIE_MAX_AGE")
	cookieMaxAge, err := time.ParseDuration(cookieMaxAgeStr)
	if err != nil {
		cookieMaxAge = time.Hour * 24 * 7
		log.Printf("Warning: Invalid value for COOKIE_MAX_AGE ('%s'). Defaulting to %s.\n", cookieMaxAgeStr, cookieMaxAge.String())
	}
	cfg.CookieMaxAge = cookieMaxAge

	cfg.RingCentralServerURL = viper.GetString("RINGCENTRAL_SERVER")
	cfg.RingCentralClientID = viper.GetString("RINGCENTRAL_CLIENT_ID")
	cfg.RingCentralClientSecret = viper.GetString("RINGCENTRAL_CLIENT_SECRET")
	cfg.RingCentralRedirectURL = viper.GetString("RINGCENTRAL_REDIRECT_URI")
	cfg.RingCentralAuthState = viper.GetString("RINGCENTRAL_AUTH_STATE")

	providerTimeoutStr := viper.GetString("PROVIDER_HTTP_TIMEOUT")
	providerTimeout, err := time.ParseDuration(providerTimeoutStr)
	if err != nil {
		providerTimeout = 15 * time.Second
		log.Printf("Warning: Invalid value for PROVIDER_HTTP_TIMEOUT ('%s'). Defaulting to %s.\n", providerTimeoutStr, providerTimeout.String())
	}
	cfg.ProviderHTTPTimeout = providerTimeout

	cfg.AppBaseURL = viper.GetString("APP_BASE_URL")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	if cfg.RingCentralClientID == "" {
		log.Println("Warning: RINGCENTRAL_CLIENT_ID not set. RingCentral OAuth will not function.")
	}
	if cfg.RingCentralClientSecret == "" {
		log.Println("Warning: RINGCENTRAL_CLIENT_SECRET not set. RingCentral OAuth will not function.")
	}
	if cfg.RingCentralRedirectURL == "" {
		log.Println("Warning: RINGCENTRAL_REDIRECT_URI not set. RingCentral OAuth will not function.")
	}

	return cfg, nil
}
