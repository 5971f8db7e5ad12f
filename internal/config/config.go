package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultPort is used when PORT is not set.
const DefaultPort = "8000"

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Only the port has a meaningful default; the
// database settings are optional and their absence is reported by the
// diagnostic endpoint rather than treated as an error.
type Config struct {
	AppName        string // service name used in logs and metrics
	Version        string // service version reported at startup
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	LogLevel       string // zap level name (debug, info, warn, error)
	DatabaseDriver string // optional database module: "mysql", "sqlite" or empty
	DatabaseURL    string // connection URL for the database module
	DatabaseName   string // database (schema) name
	EventsEnabled  bool   // publish diagnostic.checked events to RabbitMQ
	BrokerURL      string // AMQP URL for diagnostic events
	ShutdownGrace  time.Duration
}

// Load reads an optional .env file and then builds a Config from the
// process environment.  Values already present in the environment win
// over the .env file.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: ignoring .env: %v", err)
	}
	return Config{
		AppName:        getenv("APP_NAME", "ruva-backend"),
		Version:        getenv("APP_VERSION", "0.1.0"),
		Env:            getenv("APP_ENV", "dev"),
		Port:           getenv("PORT", DefaultPort),
		LogLevel:       strings.ToLower(getenv("LOG_LEVEL", "info")),
		DatabaseDriver: strings.ToLower(strings.TrimSpace(os.Getenv("DATABASE_DRIVER"))),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DatabaseName:   os.Getenv("DATABASE_NAME"),
		EventsEnabled:  envBool("DIAGNOSTIC_EVENTS_ENABLED", false),
		BrokerURL:      BrokerURL(),
		ShutdownGrace:  envDur("SHUTDOWN_GRACE", 10*time.Second),
	}
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Development reports whether the service runs in a local environment.
func (c Config) Development() bool {
	return c.Env == "dev" || c.Env == "local"
}

// BrokerURL returns the AMQP URL from RABBITMQ_URL, falling back to
// AMQP_URL.  Unlike the database settings there is no localhost default:
// an empty result means the broker is not configured.
func BrokerURL() string {
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		return url
	}
	return os.Getenv("AMQP_URL")
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
