package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aureliajewels/catalog-importer/internal/config"
	"github.com/aureliajewels/catalog-importer/internal/database"
	"github.com/aureliajewels/catalog-importer/internal/importer"
	"github.com/aureliajewels/catalog-importer/internal/spreadsheet"
)

// main is the entrypoint for the engagement-ring catalog importer.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)

	// 3. Resolve the workbook path; a CLI argument overrides IMPORT_FILE.
	if len(os.Args) > 1 {
		cfg.Import.FilePath = os.Args[1]
	}
	if cfg.Import.FilePath == "" {
		fatal(fmt.Errorf("no workbook given: set IMPORT_FILE or pass the path as the first argument"))
	}
	log.Info().Str("file", cfg.Import.FilePath).Str("keyword", cfg.Import.SheetKeyword).Msg("starting catalog import")

	// 4. Open the workbook and locate the sheet. This happens before any
	// database work: a missing sheet must abort with no connection attempted.
	sheet, err := spreadsheet.OpenSheet(cfg.Import.FilePath, cfg.Import.SheetKeyword)
	if err != nil {
		fatal(err)
	}

	// 5. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		fatal(fmt.Errorf("database connection failed: %w", err))
	}
	defer db.Close()

	// 6. Run the import
	opts := importer.Options{
		CategoryName: cfg.Import.CategoryName,
		SubTypeName:  cfg.Import.SubTypeName,
		Currency:     cfg.Import.Currency,
		BasePrice:    cfg.Import.BasePrice,
		Layout:       importer.DefaultLayout(),
	}
	if _, err := importer.Run(db, sheet, opts, os.Stdout); err != nil {
		fatal(err)
	}
}

// fatal reports a run-level failure and exits non-zero. Successful runs are
// the only path that returns exit code 0.
func fatal(err error) {
	log.Error().Err(err).Msg("import failed")
	fmt.Fprintf(os.Stderr, "\nFATAL ERROR: %v\n", err)
	os.Exit(1)
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}
