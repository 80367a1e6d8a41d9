package importer

import (
	"fmt"
	"io"
	"strings"
)

const bannerWidth = 80

// Report writes the operator-facing import report: banners, per-row lines and
// the summary block. Structured diagnostics go through the logger instead.
type Report struct {
	w io.Writer
}

// NewReport creates a Report writing to w.
func NewReport(w io.Writer) *Report {
	return &Report{w: w}
}

// Banner prints a ruled title block.
func (r *Report) Banner(title string) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(r.w, rule)
	fmt.Fprintln(r.w, title)
	fmt.Fprintln(r.w, rule)
	fmt.Fprintln(r.w)
}

// SheetFound reports which worksheet was selected and its size.
func (r *Report) SheetFound(name string, dataRows int) {
	fmt.Fprintf(r.w, "Found sheet: %s\n", name)
	fmt.Fprintf(r.w, "Sheet has %d data rows\n\n", dataRows)
}

// LookupsLoaded reports the resolved prerequisite ids and lookup map sizes.
func (r *Report) LookupsLoaded(lk *Lookups) {
	fmt.Fprintln(r.w, "Loaded database mappings:")
	fmt.Fprintf(r.w, "  - Category ID: %d\n", lk.CategoryID)
	fmt.Fprintf(r.w, "  - Jewelry Sub Type ID: %d\n", lk.SubTypeID)
	fmt.Fprintf(r.w, "  - Ring Styles: %d loaded\n", len(lk.RingStyles))
	fmt.Fprintf(r.w, "  - Stone Shapes: %d loaded\n", len(lk.StoneShapes))
	fmt.Fprintf(r.w, "  - Stone Types: %d loaded\n\n", len(lk.StoneTypes))
}

// RowImported prints the progress line for an imported row.
func (r *Report) RowImported(n, total int, sku, name string) {
	fmt.Fprintf(r.w, "  [%d/%d] IMPORTED: %s - %s\n", n, total, sku, name)
}

// RowSkipped prints the progress line for a skipped row with its reason.
func (r *Report) RowSkipped(n, total int, sku, name, reason string) {
	fmt.Fprintf(r.w, "  [%d/%d] SKIPPED: %s - %s (%s)\n", n, total, sku, name, reason)
}

// RowError prints the progress line for an errored row.
func (r *Report) RowError(n, total int, sku, name string, err error) {
	fmt.Fprintf(r.w, "  [%d/%d] ERROR: %s - %s: %v\n", n, total, sku, name, err)
}

// Summary prints the final totals block.
func (r *Report) Summary(total int, c Counters) {
	fmt.Fprintln(r.w)
	r.Banner("IMPORT SUMMARY")
	fmt.Fprintf(r.w, "Total rows processed: %d\n", total)
	fmt.Fprintf(r.w, "Successfully imported: %d\n", c.Imported)
	fmt.Fprintf(r.w, "Skipped (already exists or invalid): %d\n", c.Skipped)
	fmt.Fprintf(r.w, "Errors: %d\n\n", c.Errored)
	fmt.Fprintln(r.w, "Import completed successfully!")
}
