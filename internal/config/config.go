package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Auth     AuthConfig
	Mail     MailConfig
	App      AppConfig
}

type DatabaseConfig struct {
	Host              string
	Port              int
	User              string
	Password          string
	Name              string
	SSLMode           string
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

type ServerConfig struct {
	Port           string
	Env            string
	LogLevel       string
	AllowedOrigins []string
	RequestTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
}

type AuthConfig struct {
	JWTSecret      string
	TokenTTL       time.Duration
	CodeTTL        time.Duration
	BcryptCost     int
	FailureDelay   time.Duration
	AdminEmail     string
	AdminPassword  string
	AuthRateLimit  int
	AuthRateWindow time.Duration
}

// MailConfig selects and configures the outbound verification mail transport.
type MailConfig struct {
	Driver    string // smtp, ses or log
	Host      string
	Port      int
	User      string
	Password  string
	From      string
	AWSRegion string
}

type AppConfig struct {
	Name string
	URL  string
}

const (
	MailDriverSMTP = "smtp"
	MailDriverSES  = "ses"
	MailDriverLog  = "log"
)

func Load() (*Config, error) {
	_ = godotenv.Load()

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	env := getEnv("ENV", "development")

	db, err := LoadDatabase()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Database: *db,
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			Env:            env,
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			AllowedOrigins: parseAllowedOrigins(env),
			RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", 60*time.Second),
			ReadTimeout:    getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:    getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret:      jwtSecret,
			TokenTTL:       getEnvAsDuration("TOKEN_TTL", 365*24*time.Hour),
			CodeTTL:        time.Duration(getEnvAsInt("EMAIL_CODE_TTL_MIN", 15)) * time.Minute,
			BcryptCost:     getEnvAsInt("BCRYPT_COST", 10),
			FailureDelay:   getEnvAsDuration("AUTH_FAILURE_DELAY", 200*time.Millisecond),
			AdminEmail:     getEnv("ADMIN_EMAIL", ""),
			AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
			AuthRateLimit:  getEnvAsInt("AUTH_RATE_LIMIT", 10),
			AuthRateWindow: getEnvAsDuration("AUTH_RATE_WINDOW", time.Minute),
		},
		Mail: MailConfig{
			Driver:    strings.ToLower(getEnv("MAIL_DRIVER", MailDriverSMTP)),
			Host:      getEnv("MAIL_HOST", "smtp.gmail.com"),
			Port:      getEnvAsInt("MAIL_PORT", 587),
			User:      getEnv("MAIL_USER", ""),
			Password:  getEnv("MAIL_PASS", ""),
			From:      getEnv("MAIL_FROM", ""),
			AWSRegion: getEnv("AWS_REGION", "us-east-1"),
		},
		App: AppConfig{
			Name: getEnv("APP_NAME", "XON's Garden"),
			URL:  strings.TrimRight(getEnv("APP_URL", ""), "/"),
		},
	}

	if err := validateJWTSecret(jwtSecret, env); err != nil {
		return nil, err
	}

	if cfg.Auth.CodeTTL <= 0 {
		return nil, fmt.Errorf("EMAIL_CODE_TTL_MIN must be positive")
	}

	if err := cfg.Mail.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDatabase reads only the DB_* settings. Tools that touch the schema
// use it so they do not need the API's secrets.
func LoadDatabase() (*DatabaseConfig, error) {
	_ = godotenv.Load()

	db := &DatabaseConfig{
		Host:              getEnv("DB_HOST", "localhost"),
		Port:              getEnvAsInt("DB_PORT", 5432),
		User:              getEnv("DB_USER", "postgres"),
		Password:          getEnv("DB_PASSWORD", ""),
		Name:              getEnv("DB_NAME", "gardenbook"),
		SSLMode:           getEnv("DB_SSLMODE", "disable"),
		MaxConns:          int32(getEnvAsInt("DB_MAX_CONNS", 25)),
		MinConns:          int32(getEnvAsInt("DB_MIN_CONNS", 2)),
		MaxConnLifetime:   getEnvAsDuration("DB_MAX_CONN_LIFETIME", 5*time.Minute),
		MaxConnIdleTime:   getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 1*time.Minute),
		HealthCheckPeriod: getEnvAsDuration("DB_HEALTH_CHECK_PERIOD", 1*time.Minute),
	}

	if db.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	return db, nil
}

// validateJWTSecret enforces minimum security standards for JWT secret
func validateJWTSecret(secret, env string) error {
	minLength := 16
	if env == "production" {
		minLength = 32
	}

	if len(secret) < minLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters in %s environment (got %d)",
			minLength, env, len(secret))
	}

	weakSecrets := []string{
		"secret", "test", "password", "12345", "changeme",
		"admin", "root", "default", "example",
	}

	secretLower := strings.ToLower(secret)
	for _, weak := range weakSecrets {
		if secretLower == weak {
			return fmt.Errorf("JWT_SECRET cannot be a common weak value")
		}
	}

	return nil
}

func (m *MailConfig) validate() error {
	switch m.Driver {
	case MailDriverSMTP:
		if m.User == "" || m.Password == "" {
			return fmt.Errorf("MAIL_USER and MAIL_PASS are required for the smtp mail driver")
		}
		if m.From == "" {
			m.From = m.User
		}
	case MailDriverSES:
		if m.From == "" {
			return fmt.Errorf("MAIL_FROM is required for the ses mail driver")
		}
	case MailDriverLog:
	default:
		return fmt.Errorf("unknown MAIL_DRIVER %q", m.Driver)
	}
	return nil
}

// DSN renders the keyword/value connection string used by pgx. Values are
// quoted so passwords may contain spaces and quotes.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dsnQuote(c.Host), c.Port, dsnQuote(c.User), dsnQuote(c.Password), dsnQuote(c.Name), dsnQuote(c.SSLMode),
	)
}

func dsnQuote(v string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v) + "'"
}

// URL renders the connection string in URL form for database/sql drivers.
func (c *DatabaseConfig) URL() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultVal
}

func parseAllowedOrigins(env string) []string {
	if env == "production" {
		originsStr := getEnv("ALLOWED_ORIGINS", "")
		if originsStr == "" {
			return []string{}
		}
		origins := strings.Split(originsStr, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		return origins
	}

	return []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
	}
}
