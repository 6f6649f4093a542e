// SPDX-License-Identifier: EPL-2.0

// Package config loads runtime settings for the wavepeaks binaries.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	// Server
	Port           int
	MaxUploadBytes int64
	// MaxPathBodyBytes bounds the JSON body of the path routes.
	MaxPathBodyBytes int64

	// Overview extraction
	Resolution float64

	// Path rendering
	PathWidth       float64
	PathHeight      float64
	ViewportSamples int
	// MaxViewportSamples is the largest sampleCount a request may ask for.
	MaxViewportSamples int
}

// Load reads the given .env files (".env" when none are named) and then
// configuration from environment variables with defaults. Variables already
// set in the environment win over the files, and a missing file is skipped.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	return FromEnv(), nil
}

// FromEnv reads configuration from environment variables only.
func FromEnv() Config {
	return Config{
		Port:             envInt("WAVEPEAKS_PORT", 8080),
		MaxUploadBytes:   int64(envInt("WAVEPEAKS_MAX_UPLOAD_BYTES", 256<<20)),
		MaxPathBodyBytes: int64(envInt("WAVEPEAKS_MAX_PATH_BODY_BYTES", 8<<20)),

		Resolution: envFloat("WAVEPEAKS_RESOLUTION", 2400),

		PathWidth:          envFloat("WAVEPEAKS_PATH_WIDTH", 1000),
		PathHeight:         envFloat("WAVEPEAKS_PATH_HEIGHT", 100),
		ViewportSamples:    envInt("WAVEPEAKS_VIEWPORT_SAMPLES", 1400),
		MaxViewportSamples: envInt("WAVEPEAKS_MAX_VIEWPORT_SAMPLES", 16384),
	}
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
