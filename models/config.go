package models

import (
	"os"

	"github.com/ritujane78/web-mapping-assignment2/geo"
)

// Config holds the application configuration, read from the environment
// (godotenv populates it from .env in main).
type Config struct {
	CSVPath       string `json:"csv_path"`
	BoundariesURL string `json:"boundaries_url"`
	GeocoderURL   string `json:"geocoder_url"`
	Port          string `json:"port"`
	DataDir       string `json:"data_dir"`
}

// ConfigFromEnv reads the configuration, filling defaults for anything
// unset. An empty CSVPath means the embedded sample dataset.
func ConfigFromEnv() Config {
	cfg := Config{
		CSVPath:       os.Getenv("CANCER_CSV"),
		BoundariesURL: os.Getenv("BOUNDARIES_URL"),
		GeocoderURL:   os.Getenv("GEOCODER_URL"),
		Port:          os.Getenv("PORT"),
		DataDir:       os.Getenv("DATA_DIR"),
	}
	if cfg.BoundariesURL == "" {
		cfg.BoundariesURL = geo.DefaultBoundariesURL
	}
	if cfg.GeocoderURL == "" {
		cfg.GeocoderURL = geo.DefaultGeocoderURL
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "dashboard_data"
	}
	return cfg
}
