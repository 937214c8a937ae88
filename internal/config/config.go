package config

import (
	"time"
)

type Config struct {
	AppEnv             string        `json:"app_env"`
	LogLevel           string        `json:"log_level"`
	ServerPort         int           `json:"server_port"`
	DefaultRateLimit   int           `json:"default_rate_limit"`
	GlobalRateLimit    int           `json:"global_rate_limit"`
	AggregationTimeout time.Duration `json:"aggregation_timeout"`
	MaxUploadSize      int64         `json:"max_upload_size"`
	InvoiceIssuer      string        `json:"invoice_issuer"`
}

func Load() (*Config, error) {
	return &Config{
		AppEnv:             getEnvWithDefault("APP_ENV", "development"),
		LogLevel:           getEnvWithDefault("LOG_LEVEL", ""),
		ServerPort:         getEnvIntWithDefault("SERVER_PORT", 10000),
		DefaultRateLimit:   getEnvIntWithDefault("DEFAULT_RATE_LIMIT", 1000),  // per tenant per minute
		GlobalRateLimit:    getEnvIntWithDefault("GLOBAL_RATE_LIMIT", 10000), // per IP per minute
		AggregationTimeout: getEnvDurationWithDefault("AGGREGATION_TIMEOUT", 10*time.Second),
		MaxUploadSize:      int64(getEnvIntWithDefault("MAX_UPLOAD_SIZE", 10*1024*1024)),
		InvoiceIssuer:      getEnvWithDefault("INVOICE_ISSUER", "Usage Billing"),
	}, nil
}
