package config

import (
	"os"

	"github.com/kitlab/jersey-shop/pkg/config"
)

// Admin holds the fixed credential pair the storefront dashboard logs in
// with. Comparison is plain string equality, matching the contract the
// frontend was built against. Known insecure, kept until the owner signs
// off on a credential scheme change.
type Admin struct {
	Username string
	Password string
}

type Config struct {
	ServiceName string
	ServerPort  int

	DatabaseURL string

	Admin Admin

	CORSOrigins []string

	KafkaBrokers []string

	ESURL      string
	ESUser     string
	ESPassword string

	LogLevel string
}

func Load() Config {
	cfg := Config{
		ServiceName: config.EnvDefault("SERVICE_NAME", "jersey-shop"),
		ServerPort:  config.EnvIntDefault("SERVER_PORT", 8080),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		Admin: Admin{
			Username: os.Getenv("ADMIN_USER"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},

		CORSOrigins: config.CSV(os.Getenv("CORS_ORIGINS")),

		KafkaBrokers: config.CSV(os.Getenv("KAFKA_BROKERS")),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),

		LogLevel: config.EnvDefault("LOG_LEVEL", "info"),
	}

	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmpty(cfg.Admin.Username, "ADMIN_USER")
	config.MustNonEmpty(cfg.Admin.Password, "ADMIN_PASSWORD")

	return cfg
}
