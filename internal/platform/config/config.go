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

	// Google social login
	GoogleClientID string

	// Push notifications (Firebase Cloud Messaging)
	FCMCredentialsFile string

	// Outbound mail
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	// Event notification scheduling
	NotifyInterval   time.Duration
	NotifyLeadWindow time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "personal-management-app")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("FCM_CREDENTIALS_FILE", "")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", "587")
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "")
	viper.SetDefault("NOTIFY_INTERVAL", "15m")
	viper.SetDefault("NOTIFY_LEAD_WINDOW", "15m")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "24h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 24
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}

	jwtIssuer := viper.GetString("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "personal-management-app"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", jwtIssuer)
	}

	notifyIntervalStr := viper.GetString("NOTIFY_INTERVAL")
	notifyInterval, err := time.ParseDuration(notifyIntervalStr)
	if err != nil {
		notifyInterval = 15 * time.Minute
		log.Printf("Warning: Invalid value for NOTIFY_INTERVAL ('%s'). Defaulting to %s.\n", notifyIntervalStr, notifyInterval.String())
	}

	notifyLeadStr := viper.GetString("NOTIFY_LEAD_WINDOW")
	notifyLead, err := time.ParseDuration(notifyLeadStr)
	if err != nil {
		notifyLead = 15 * time.Minute
		log.Printf("Warning: Invalid value for NOTIFY_LEAD_WINDOW ('%s'). Defaulting to %s.\n", notifyLeadStr, notifyLead.String())
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.JWTSecret = jwtSecret
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = jwtIssuer
	cfg.NotifyInterval = notifyInterval
	cfg.NotifyLeadWindow = notifyLead

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google login will not function.")
	}

	cfg.FCMCredentialsFile = viper.GetString("FCM_CREDENTIALS_FILE")
	if cfg.FCMCredentialsFile == "" {
		log.Println("Warning: FCM_CREDENTIALS_FILE not set. Push notifications will not function.")
	}

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetString("SMTP_PORT")
	cfg.SMTPUser = viper.GetString("SMTP_USER")
	cfg.SMTPPassword = viper.GetString("SMTP_PASSWORD")
	cfg.SMTPFrom = viper.GetString("SMTP_FROM")
	if cfg.SMTPUser == "" || cfg.SMTPPassword == "" {
		log.Println("Warning: SMTP_USER/SMTP_PASSWORD not set. Welcome mails will not be sent.")
	}

	return cfg, nil
}
