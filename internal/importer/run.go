package importer

import (
	"fmt"
	"io"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/aureliajewels/catalog-importer/internal/repository"
	"github.com/aureliajewels/catalog-importer/internal/spreadsheet"
)

// Run executes the whole import: one transaction for the run, lookups loaded
// once, every data row through the extractor and the per-row state machine,
// a single commit on success, and the summary block. Any error escaping the
// row loop rolls back every insert of the run.
func Run(db *sqlx.DB, sheet *spreadsheet.Sheet, opts Options, out io.Writer) (Counters, error) {
	report := NewReport(out)
	report.Banner("PRODUCT IMPORT")

	rows := sheet.DataRows()
	report.SheetFound(sheet.Name, len(rows))

	layout := opts.Layout
	if layout == (ColumnLayout{}) {
		layout = DefaultLayout()
	}

	tx, err := db.Beginx()
	if err != nil {
		return Counters{}, fmt.Errorf("begin transaction: %w", err)
	}
	committed := false
	defer func() {
		// The transaction is finished exactly once on every exit path.
		if !committed {
			_ = tx.Rollback()
		}
	}()

	lookups, err := LoadLookups(repository.NewReferenceRepository(tx), opts.CategoryName, opts.SubTypeName)
	if err != nil {
		return Counters{}, err
	}
	report.LookupsLoaded(lookups)

	imp := NewImporter(
		repository.NewProductRepository(tx),
		repository.NewSavepoint(tx),
		lookups,
		opts,
		report,
	)

	var counters Counters
	for idx, cells := range rows {
		n := idx + 1
		outcome, err := imp.ProcessRow(n, len(rows), ExtractRow(cells, layout))
		if err != nil {
			return counters, fmt.Errorf("row %d: %w", n, err)
		}
		counters.record(outcome)
	}

	if err := tx.Commit(); err != nil {
		return counters, fmt.Errorf("commit import: %w", err)
	}
	committed = true

	log.Info().
		Int("total", len(rows)).
		Int("imported", counters.Imported).
		Int("skipped", counters.Skipped).
		Int("errored", counters.Errored).
		Msg("import committed")
	report.Summary(len(rows), counters)
	return counters, nil
}
