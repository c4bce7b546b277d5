package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	DashboardPath string
	DataPath      string
	DbDsn         string
	DbTable       string
	TgToken       string
	OutputDir     string
	ListenAddr    string
	LogLevel      string
	LogFormat     string
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the process-wide configuration, loading .env on first use.
func GetConfig() *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("Error loading .env file: ", err)
		}
		config = FromEnv()
	})
	return config
}

// FromEnv reads the process environment, applying defaults for unset values.
func FromEnv() *Config {
	return &Config{
		DashboardPath: getEnv("DASHBOARD_CONFIG", "config.yaml"),
		DataPath:      os.Getenv("DATA_PATH"),
		DbDsn:         os.Getenv("DB_DSN"),
		DbTable:       getEnv("DB_TABLE", "respuestas_informe"),
		TgToken:       os.Getenv("TG_TOKEN"),
		OutputDir:     getEnv("OUTPUT_DIR", "output"),
		ListenAddr:    getEnv("LISTEN_ADDR", ":8005"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
