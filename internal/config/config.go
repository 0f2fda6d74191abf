package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvProduction is the runtime mode in which stack traces are suppressed
// from error responses and a signing secret is mandatory.
const EnvProduction = "production"

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Postgres     PostgresConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	Auth         AuthConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret                    string
	AccessTokenTTLMinutes        int
	IdentityLookupTimeoutSeconds int
	BcryptCost                   int
	LoginRateLimitAttempts       int
	LoginRateLimitWindowSeconds  int
}

// NotificationConfig holds the stub webhook endpoint.
type NotificationConfig struct {
	WebhookURL string
}

// Load reads configuration from environment variables, applying defaults
// where possible. In production mode a JWT secret must be provided.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	env := getEnv("APP_ENV", "development")
	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		if env == EnvProduction {
			return nil, fmt.Errorf("AUTH_JWT_SECRET is required in %s mode", EnvProduction)
		}
		secret = "dev-secret"
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "placement-service"),
			Env:                   env,
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:                    secret,
			AccessTokenTTLMinutes:        getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
			IdentityLookupTimeoutSeconds: getEnvAsInt("AUTH_IDENTITY_LOOKUP_TIMEOUT_SECONDS", 20),
			BcryptCost:                   getEnvAsInt("AUTH_BCRYPT_COST", 12),
			LoginRateLimitAttempts:       getEnvAsInt("AUTH_LOGIN_RATE_LIMIT_ATTEMPTS", 10),
			LoginRateLimitWindowSeconds:  getEnvAsInt("AUTH_LOGIN_RATE_LIMIT_WINDOW_SECONDS", 300),
		},
		Notification: NotificationConfig{
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// IsProduction reports whether the service runs in production mode.
func (a AppConfig) IsProduction() bool {
	return a.Env == EnvProduction
}

// IdentityLookupTimeout returns the ceiling for identity-store lookups.
func (a AuthConfig) IdentityLookupTimeout() time.Duration {
	if a.IdentityLookupTimeoutSeconds <= 0 {
		return 20 * time.Second
	}
	return time.Duration(a.IdentityLookupTimeoutSeconds) * time.Second
}

// LoginRateLimitWindow returns the rolling window for login throttling.
func (a AuthConfig) LoginRateLimitWindow() time.Duration {
	if a.LoginRateLimitWindowSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(a.LoginRateLimitWindowSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
