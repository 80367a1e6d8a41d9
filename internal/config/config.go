package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all runtime parameters for a single import run, loaded from
// environment variables. It is the single source of truth for the process.
type Config struct {
	Env string

	DB     DatabaseConfig
	Import ImportConfig
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// ImportConfig names every knob of the import itself. The original batch tool
// hardcoded these values; they are environment-supplied here so the same
// binary can serve other workbooks and catalogs.
type ImportConfig struct {
	FilePath     string
	SheetKeyword string
	CategoryName string
	SubTypeName  string
	Currency     string
	BasePrice    decimal.Decimal
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Env = getEnv("ENV", "development")

	cfg.DB = DatabaseConfig{
		Host:     getEnv("PG_HOST", "localhost"),
		Port:     getEnv("PG_PORT", "5432"),
		User:     getEnv("PG_USERNAME", ""),
		Password: getEnv("PG_PASSWORD", ""),
		Name:     getEnv("PG_DATABASE", ""),
		SSLMode:  getEnv("PG_SSLMODE", "disable"),
	}

	cfg.Import = ImportConfig{
		FilePath:     getEnv("IMPORT_FILE", ""),
		SheetKeyword: getEnv("IMPORT_SHEET_KEYWORD", "engagement"),
		CategoryName: getEnv("IMPORT_CATEGORY", "Rings"),
		SubTypeName:  getEnv("IMPORT_SUB_TYPE", "Engagement Rings"),
		Currency:     getEnv("IMPORT_CURRENCY", "GBP"),
	}

	price, err := getEnvDecimal("IMPORT_BASE_PRICE", "1000.00")
	if err != nil {
		return nil, fmt.Errorf("invalid IMPORT_BASE_PRICE: %w", err)
	}
	cfg.Import.BasePrice = price

	if cfg.DB.Name == "" || cfg.DB.User == "" {
		return nil, errors.New("database configuration incomplete: ensure PG_DATABASE and PG_USERNAME are set")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvDecimal reads an environment variable and parses it as a decimal.
// If the variable is empty, it falls back to the provided default value.
func getEnvDecimal(key, def string) (decimal.Decimal, error) {
	raw := getEnv(key, def)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("value must be >= 0")
	}
	return d, nil
}
