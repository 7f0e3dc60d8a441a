package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

// Config is read once at startup from the environment (.env is autoloaded).
type Config struct {
	Port              string
	AppEnv            string
	LogMode           string
	AccessTokenSecret string

	StorageDriver      string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	ShoppingListsTable string

	ConflictRetries    int
	CORSAllowedOrigins []string

	RedisAddr    string
	RedisChannel string

	OTelEnabled     bool
	OTelEndpoint    string
	OTelServiceName string
	OTelSampleRatio float64
	OTelInsecure    bool
}

// Load reads the environment, applying defaults. ACCESS_TOKEN_SECRET is the
// only required variable.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getenvDefault("PORT", "8080"),
		AppEnv:             getenvDefault("APP_ENV", "development"),
		LogMode:            getenvDefault("LOG_MODE", "dev"),
		AccessTokenSecret:  strings.TrimSpace(os.Getenv("ACCESS_TOKEN_SECRET")),
		StorageDriver:      strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
		ShoppingListsTable: getenvDefault("SHOPPING_LISTS_TABLE", "shopping_lists"),
		CORSAllowedOrigins: splitCSV(os.Getenv("CORS_ALLOWED_ORIGINS")),
		RedisAddr:          strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisChannel:       getenvDefault("REDIS_CHANNEL", "shopping-events"),
		OTelEnabled:        parseBool(os.Getenv("OTEL_ENABLED")),
		OTelEndpoint:       strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")),
		OTelServiceName:    getenvDefault("OTEL_SERVICE_NAME", "productivity-api"),
		OTelInsecure:       parseBool(os.Getenv("OTEL_EXPORTER_OTLP_INSECURE")),
	}

	if cfg.AccessTokenSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET environment variable not set")
	}
	switch cfg.StorageDriver {
	case StorageDynamoDB, StorageMemory:
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageDynamoDB, StorageMemory, cfg.StorageDriver)
	}

	retries, err := strconv.Atoi(getenvDefault("SHOPPING_CONFLICT_RETRIES", "3"))
	if err != nil || retries < 0 {
		return nil, fmt.Errorf("SHOPPING_CONFLICT_RETRIES must be a non-negative integer")
	}
	cfg.ConflictRetries = retries

	ratio, err := strconv.ParseFloat(getenvDefault("OTEL_SAMPLER_RATIO", "1"), 64)
	if err != nil || ratio < 0 || ratio > 1 {
		return nil, fmt.Errorf("OTEL_SAMPLER_RATIO must be a number between 0 and 1")
	}
	cfg.OTelSampleRatio = ratio

	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func splitCSV(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
