package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Gateway   GatewayConfig
	Events    EventsConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Driver          string // "sqlite" or "mysql"
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// GatewayConfig tunes the simulated payment gateway. Latency models the
// provider round-trip; SuccessRate is the approval probability in [0,1].
type GatewayConfig struct {
	Latency     time.Duration
	SuccessRate float64
}

// EventsConfig configures the Kafka publisher. Empty Brokers disables
// event publishing entirely.
type EventsConfig struct {
	Brokers []string
}

// RateLimitConfig caps requests per client IP: Limit requests per Window.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

func Load() *Config {
	// Missing .env is fine; env vars win either way.
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:         getenv("PORT", "8080"),
			Env:          getenv("APP_ENV", "development"),
			ReadTimeout:  getduration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getduration("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          getenv("DB_DRIVER", "sqlite"),
			DSN:             getenv("DB_DSN", "data/rental.db"),
			MaxIdleConns:    getint("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getint("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getduration("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Gateway: GatewayConfig{
			Latency:     getduration("GATEWAY_LATENCY", 2*time.Second),
			SuccessRate: getfloat("GATEWAY_SUCCESS_RATE", 0.9),
		},
		Events: EventsConfig{
			Brokers: getlist("KAFKA_BROKERS"),
		},
		RateLimit: RateLimitConfig{
			Limit:  getint("RATE_LIMIT", 100),
			Window: getduration("RATE_LIMIT_WINDOW", time.Minute),
		},
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getfloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getduration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getlist(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
