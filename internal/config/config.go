package config

import (
	"os"
)

type Config struct {
	ServerPort   string
	SnapshotPath string
	JWTSecret    string
	Env          string
}

func Load() *Config {
	return &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		SnapshotPath: getEnv("SNAPSHOT_PATH", "jackut.db"),
		JWTSecret:    getEnv("JWT_SECRET", "dev-secret-change-me"),
		Env:          getEnv("ENV", "development"),
	}
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}
