package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration
type Config struct {
	Port   string
	DBPath string

	// Engine defaults, overridable per request
	HeatmapCellMeters  float64
	SafeAreaCellMeters float64
	ClusterRadiusM     float64
}

// Load reads configuration from the environment
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/journeys/journeys.db"
	}

	return &Config{
		Port:               port,
		DBPath:             dbPath,
		HeatmapCellMeters:  envFloat("HEATMAP_CELL_METERS", 100),
		SafeAreaCellMeters: envFloat("SAFE_AREA_CELL_METERS", 50),
		ClusterRadiusM:     envFloat("CLUSTER_RADIUS_METERS", 50),
	}
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
