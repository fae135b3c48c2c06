package configs

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	GoogleClientID   string

	// Current holds the configuration parsed by LoadEnv.
	Current Config
)

type DBConfig struct {
	Host        string `env:"HOST" envDefault:"localhost"`
	Port        string `env:"PORT" envDefault:"5432"`
	User        string `env:"USER"`
	Password    string `env:"PASSWORD"`
	Name        string `env:"NAME"`
	SSLMode     string `env:"SSLMODE" envDefault:"require"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"false"`
}

type AuthConfig struct {
	JWTSecret        string        `env:"JWT_SECRET"`
	JWTRefreshSecret string        `env:"JWT_REFRESH_SECRET"`
	AccessTokenTTL   time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"24h"`
	RefreshTokenTTL  time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"168h"`
	BlacklistTTLDays int           `env:"TOKEN_BLACKLIST_TTL_DAYS" envDefault:"7"`
	GoogleClientID   string        `env:"GOOGLE_CLIENT_ID"`
	SecureCookies    bool          `env:"COOKIE_SECURE" envDefault:"true"`
	CleanupInterval  time.Duration `env:"TOKEN_CLEANUP_INTERVAL" envDefault:"24h"`
}

type MailConfig struct {
	SendgridAPIKey     string `env:"SENDGRID_API_KEY"`
	FromName           string `env:"MAIL_FROM_NAME" envDefault:"Course Desk"`
	FromAddress        string `env:"MAIL_FROM_ADDRESS" envDefault:"no-reply@coursedesk.local"`
	ContactNotifyEmail string `env:"CONTACT_NOTIFY_EMAIL"`
}

type Config struct {
	Port        string   `env:"PORT" envDefault:"3000"`
	AppEnv      string   `env:"APP_ENV" envDefault:"development"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string   `env:"LOG_FORMAT" envDefault:"text"`
	CorsOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:3001"`
	SeedFile    string   `env:"SEED_FILE" envDefault:"internals/seeds/data_seed.json"`

	DB   DBConfig   `envPrefix:"DB_"`
	Auth AuthConfig
	Mail MailConfig
}

// LoadEnv reads .env (outside Railway), parses the environment into Current
// and configures the logger.
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Warn("⚠️ .env not found, using system environment")
		} else {
			log.Info("✅ .env loaded")
		}
	} else {
		log.Info("🚀 Running in Railway, using system environment")
	}

	cfg, err := Parse()
	if err != nil {
		log.Fatalf("❌ invalid configuration: %v", err)
	}
	Apply(cfg)
	SetupLogger(cfg.LogLevel, cfg.LogFormat)

	if JWTSecret == "" {
		log.Error("❌ JWT_SECRET is not set")
	}
	if JWTRefreshSecret == "" {
		log.Error("❌ JWT_REFRESH_SECRET is not set")
	}
	if GoogleClientID == "" {
		log.Warn("GOOGLE_CLIENT_ID is not set, google login disabled")
	}
}

// Parse reads the process environment into a Config.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Apply makes cfg the active configuration.
func Apply(cfg Config) {
	Current = cfg
	JWTSecret = strings.TrimSpace(cfg.Auth.JWTSecret)
	JWTRefreshSecret = strings.TrimSpace(cfg.Auth.JWTRefreshSecret)
	GoogleClientID = strings.TrimSpace(cfg.Auth.GoogleClientID)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func IsProduction() bool {
	return strings.EqualFold(Current.AppEnv, "production")
}
