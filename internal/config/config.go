package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults match the calibration the service shipped with: the one-shot
// verification path gates enrollment and is strict, the proctoring path is
// sampled many times per session and tolerates noisier capture conditions.
const (
	DefaultVerifyThreshold  = 0.5
	DefaultProctorThreshold = 0.65
	DefaultEmbeddingDim     = 128
)

// Config carries all runtime settings for the service.
type Config struct {
	HTTPAddr      string
	DatabaseDSN   string
	RedisAddr     string
	ExtractorAddr string

	JWTSecret   string
	JWTAudience string

	// VerifyThreshold is the distance cutoff for the one-shot identity check.
	VerifyThreshold float64
	// ProctorThreshold is the distance cutoff for per-frame session checks.
	ProctorThreshold float64
	// EmbeddingDim is the extractor model's output dimensionality. A stored
	// reference of any other length is treated as not enrolled.
	EmbeddingDim int
}

// Load reads configuration from the environment. A .env file is loaded first
// when present, so local development does not need exported variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		DatabaseDSN:      getEnv("DATABASE_DSN", "host=postgres user=postgres password=postgres dbname=proctorguard port=5432 sslmode=disable"),
		RedisAddr:        getEnv("REDIS_ADDR", "redis:6379"),
		ExtractorAddr:    getEnv("EXTRACTOR_ADDR", "face-extractor:50051"),
		JWTSecret:        getEnv("JWT_SECRET", "dev-secret"),
		JWTAudience:      os.Getenv("JWT_AUDIENCE"),
		VerifyThreshold:  DefaultVerifyThreshold,
		ProctorThreshold: DefaultProctorThreshold,
		EmbeddingDim:     DefaultEmbeddingDim,
	}

	var err error
	if cfg.VerifyThreshold, err = getEnvFloat("VERIFY_THRESHOLD", DefaultVerifyThreshold); err != nil {
		return nil, err
	}
	if cfg.ProctorThreshold, err = getEnvFloat("PROCTOR_THRESHOLD", DefaultProctorThreshold); err != nil {
		return nil, err
	}
	if cfg.EmbeddingDim, err = getEnvInt("EMBEDDING_DIM", DefaultEmbeddingDim); err != nil {
		return nil, err
	}
	if cfg.EmbeddingDim <= 0 {
		return nil, fmt.Errorf("config: EMBEDDING_DIM must be positive, got %d", cfg.EmbeddingDim)
	}
	if cfg.VerifyThreshold <= 0 || cfg.ProctorThreshold <= 0 {
		return nil, fmt.Errorf("config: thresholds must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s: %w", key, err)
	}
	return parsed, nil
}
