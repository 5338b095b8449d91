package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
	DriverS3     = "s3"
)

type Config struct {
	Port int

	StoreDriver string
	DataFile    string
	SQLitePath  string

	S3Bucket          string
	S3Key             string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string

	MercadoPagoAccessToken string
	MercadoPagoBaseURL     string
	PaymentMethodID        string

	AllowedOrigins []string
}

// Load reads the environment, picking up a .env file when there is one.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	port, err := strconv.Atoi(get("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got %d", port)
	}

	cfg := &Config{
		Port:                   port,
		StoreDriver:            strings.ToLower(get("STORE_DRIVER", DriverJSON)),
		DataFile:               get("DATA_FILE", "torneio_lol_data.json"),
		SQLitePath:             get("SQLITE_PATH", "torneio_lol.db"),
		S3Bucket:               get("S3_BUCKET", ""),
		S3Key:                  get("S3_KEY", "torneio_lol_data.json"),
		S3Region:               get("S3_REGION", ""),
		S3Endpoint:             get("S3_ENDPOINT", ""),
		S3AccessKeyID:          get("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey:      get("S3_SECRET_ACCESS_KEY", ""),
		MercadoPagoAccessToken: get("MERCADOPAGO_ACCESS_TOKEN", ""),
		MercadoPagoBaseURL:     get("MERCADOPAGO_BASE_URL", ""),
		PaymentMethodID:        get("PAYMENT_METHOD_ID", "pix"),
		AllowedOrigins:         splitList(get("ALLOWED_ORIGINS", "*")),
	}

	switch cfg.StoreDriver {
	case DriverJSON, DriverSQLite:
	case DriverS3:
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("S3_BUCKET environment variable is required for the s3 store")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

func (c *Config) PaymentsEnabled() bool {
	return c.MercadoPagoAccessToken != ""
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
