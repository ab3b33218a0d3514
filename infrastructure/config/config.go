package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion     string
	DogsTable     string
	VotesTable    string
	ImagesTable   string
	SheltersTable string
	UsersTable    string
	ImagesBucket  string

	// Classification
	MinConfidence float64
	// FallbackAccept accepts uploads when the classifier is
	// unreachable instead of rejecting them
	FallbackAccept bool

	// Lambda configuration
	IsLambda bool

	// Logging
	LogLevel   string
	EnableCORS bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),

		DogsTable:     getEnv("DOGS_TABLE", "pupper-dogs"),
		VotesTable:    getEnv("VOTES_TABLE", "pupper-votes"),
		ImagesTable:   getEnv("IMAGES_TABLE", "pupper-images"),
		SheltersTable: getEnv("SHELTERS_TABLE", "pupper-shelters"),
		UsersTable:    getEnv("USERS_TABLE", "pupper-users"),
		ImagesBucket:  getEnv("IMAGES_BUCKET", "pupper-images"),

		MinConfidence:  getEnvFloat("MIN_CONFIDENCE", 70.0),
		FallbackAccept: getEnvBool("CLASSIFIER_FALLBACK_ACCEPT", true),

		IsLambda: os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "",

		LogLevel:   getEnv("LOG_LEVEL", "info"),
		EnableCORS: getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.DogsTable == "" {
			return fmt.Errorf("DOGS_TABLE is required")
		}
		if c.ImagesBucket == "" {
			return fmt.Errorf("IMAGES_BUCKET is required")
		}
	}
	if c.MinConfidence < 0 || c.MinConfidence > 100 {
		return fmt.Errorf("MIN_CONFIDENCE must be between 0 and 100")
	}
	return nil
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvFloat gets a float environment variable with a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
