package config

import (
	"os"
	"path/filepath"
)

// Config holds the whole application configuration,
// populated from environment variables.
type Config struct {
	App     AppConfig
	Storage StorageConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// StorageConfig points at the JSON snapshot files backing the two
// record collections. Each collection is one self-contained file.
type StorageConfig struct {
	DataDir     string
	AuthorsFile string
	BooksFile   string
}

// AuthorsPath returns the absolute-ish path of the authors snapshot.
func (s StorageConfig) AuthorsPath() string {
	return filepath.Join(s.DataDir, s.AuthorsFile)
}

// BooksPath returns the path of the books snapshot.
func (s StorageConfig) BooksPath() string {
	return filepath.Join(s.DataDir, s.BooksFile)
}

// Load reads config from environment variables with sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Bookrelay API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Storage: StorageConfig{
			DataDir:     getEnv("STORAGE_DATA_DIR", "database"),
			AuthorsFile: getEnv("STORAGE_AUTHORS_FILE", "authors.json"),
			BooksFile:   getEnv("STORAGE_BOOKS_FILE", "books.json"),
		},
	}

	return cfg, nil
}

// getEnv reads an environment variable with a fallback default value.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
