package config

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

// setRequiredEnv sets the minimum environment for Load to succeed and clears
// every optional knob so defaults are observable.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENV", "PG_HOST", "PG_PORT", "PG_PASSWORD", "PG_SSLMODE",
		"IMPORT_FILE", "IMPORT_SHEET_KEYWORD", "IMPORT_CATEGORY",
		"IMPORT_SUB_TYPE", "IMPORT_CURRENCY", "IMPORT_BASE_PRICE",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("PG_DATABASE", "jewelry")
	t.Setenv("PG_USERNAME", "catalog")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Env != "development" {
		t.Fatalf("env want development got %s", cfg.Env)
	}
	if cfg.DB.Host != "localhost" || cfg.DB.Port != "5432" || cfg.DB.SSLMode != "disable" {
		t.Fatalf("db defaults wrong: %+v", cfg.DB)
	}
	if cfg.DB.Name != "jewelry" || cfg.DB.User != "catalog" {
		t.Fatalf("db credentials wrong: %+v", cfg.DB)
	}
	if cfg.Import.SheetKeyword != "engagement" {
		t.Fatalf("sheet keyword want engagement got %s", cfg.Import.SheetKeyword)
	}
	if cfg.Import.CategoryName != "Rings" || cfg.Import.SubTypeName != "Engagement Rings" {
		t.Fatalf("catalog defaults wrong: %+v", cfg.Import)
	}
	if cfg.Import.Currency != "GBP" {
		t.Fatalf("currency want GBP got %s", cfg.Import.Currency)
	}
	if !cfg.Import.BasePrice.Equal(decimal.RequireFromString("1000.00")) {
		t.Fatalf("base price want 1000.00 got %s", cfg.Import.BasePrice)
	}
	if cfg.Import.FilePath != "" {
		t.Fatalf("file path want empty got %s", cfg.Import.FilePath)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("PG_HOST", "db.internal")
	t.Setenv("IMPORT_FILE", "/data/catalog.xlsx")
	t.Setenv("IMPORT_CURRENCY", "USD")
	t.Setenv("IMPORT_BASE_PRICE", "1250.50")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Env != "production" || cfg.DB.Host != "db.internal" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Import.FilePath != "/data/catalog.xlsx" || cfg.Import.Currency != "USD" {
		t.Fatalf("import overrides not applied: %+v", cfg.Import)
	}
	if !cfg.Import.BasePrice.Equal(decimal.RequireFromString("1250.50")) {
		t.Fatalf("base price want 1250.50 got %s", cfg.Import.BasePrice)
	}
}

func TestLoadMissingDatabase(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PG_DATABASE", "")

	if _, err := Load(); err == nil {
		t.Fatal("missing PG_DATABASE must fail")
	} else if !strings.Contains(err.Error(), "PG_DATABASE") {
		t.Fatalf("error should name the missing variable, got %v", err)
	}
}

func TestLoadInvalidBasePrice(t *testing.T) {
	setRequiredEnv(t)

	t.Setenv("IMPORT_BASE_PRICE", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("unparseable base price must fail")
	}

	t.Setenv("IMPORT_BASE_PRICE", "-5")
	if _, err := Load(); err == nil {
		t.Fatal("negative base price must fail")
	}
}
