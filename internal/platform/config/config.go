package config

import (
	"os"
	"strings"
	"time"
)

// Config captures everything the server needs from the environment.
// Optional backends (Postgres, Redis, Kafka) fall back to in-process
// implementations when their URLs are absent.
type Config struct {
	Addr          string
	JWTSigningKey string
	JWTIssuer     string

	PostgresURL string
	RedisURL    string

	KafkaBrokers []string
	KafkaTopic   string

	EventBuffer     int
	ShutdownTimeout time.Duration
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	cfg := Config{
		Addr:            getEnv("ATTEST_ADDR", ":8080"),
		JWTIssuer:       getEnv("ATTEST_JWT_ISSUER", "attest"),
		PostgresURL:     os.Getenv("ATTEST_POSTGRES_URL"),
		RedisURL:        os.Getenv("ATTEST_REDIS_URL"),
		KafkaTopic:      getEnv("ATTEST_KAFKA_TOPIC", "attest.registry.events"),
		EventBuffer:     256,
		ShutdownTimeout: 10 * time.Second,
	}

	cfg.JWTSigningKey = os.Getenv("ATTEST_JWT_SIGNING_KEY")
	if cfg.JWTSigningKey == "" {
		// Dev default - must be overridden in production.
		cfg.JWTSigningKey = "dev-secret-key-change-in-production"
	}

	if brokers := os.Getenv("ATTEST_KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
