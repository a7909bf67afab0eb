// Package config loads runtime settings from the environment, with an
// optional .env file.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full runtime configuration.
type Config struct {
	App       AppConfig
	Reference ReferenceConfig
	Feedback  FeedbackConfig
	Surface   SurfaceConfig
}

// AppConfig holds process-level settings.
type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

// ReferenceConfig locates demonstration CSVs.
type ReferenceConfig struct {
	Dir      string
	CacheTTL time.Duration
}

// FeedbackConfig tunes the comparator. CompareMaxFrames bounds the batch
// size accepted by the compare endpoint; 0 disables the bound.
type FeedbackConfig struct {
	Threshold        float64
	MaxWindow        int
	CompareMaxFrames int
}

// SurfaceConfig is the drawing surface size in pixels.
type SurfaceConfig struct {
	Width  int
	Height int
}

// IsProduction reports whether GO_ENV is "production".
func (a AppConfig) IsProduction() bool { return a.Environment == "production" }

// Load reads .env when present and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() *Config {
	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "posematch.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Reference: ReferenceConfig{
			Dir:      getEnv("REFERENCE_DIR", "./references"),
			CacheTTL: getEnvAsDuration("REFERENCE_CACHE_TTL", time.Hour),
		},
		Feedback: FeedbackConfig{
			Threshold:        getEnvAsFloat("FEEDBACK_THRESHOLD", 2.5),
			MaxWindow:        getEnvAsInt("FEEDBACK_MAX_WINDOW", 0),
			CompareMaxFrames: getEnvAsInt("COMPARE_MAX_FRAMES", 300),
		},
		Surface: SurfaceConfig{
			Width:  getEnvAsInt("SURFACE_WIDTH", 640),
			Height: getEnvAsInt("SURFACE_HEIGHT", 480),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
