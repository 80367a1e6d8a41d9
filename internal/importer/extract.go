package importer

import "strings"

// placeholderName marks rows whose name lookup failed in the source workbook.
const placeholderName = "#N/A"

// ColumnLayout names the 0-indexed column positions of the source sheet.
// Column 1 is reserved in the workbook and never read.
type ColumnLayout struct {
	SKU         int
	Name        int
	Description int
	RingStyles  [5]int
	StoneShape  int
	StoneType   int
}

// DefaultLayout matches the workbook the catalog team produces.
func DefaultLayout() ColumnLayout {
	return ColumnLayout{
		SKU:         0,
		Name:        2,
		Description: 3,
		RingStyles:  [5]int{4, 5, 6, 7, 8},
		StoneShape:  9,
		StoneType:   10,
	}
}

// ProductRow is one extracted spreadsheet line. Nil fields were empty cells.
// Ring style slots are ordered; positions are significant.
type ProductRow struct {
	SKU         *string
	Name        *string
	Description *string
	RingStyles  [5]*string
	StoneShape  *string
	StoneType   *string
}

// ExtractRow reads one raw row into a ProductRow using the given layout.
// Each cell is stripped of surrounding whitespace; empty or missing cells
// become nil.
func ExtractRow(cells []string, layout ColumnLayout) ProductRow {
	row := ProductRow{
		SKU:         cellAt(cells, layout.SKU),
		Name:        cellAt(cells, layout.Name),
		Description: cellAt(cells, layout.Description),
		StoneShape:  cellAt(cells, layout.StoneShape),
		StoneType:   cellAt(cells, layout.StoneType),
	}
	for i, col := range layout.RingStyles {
		row.RingStyles[i] = cellAt(cells, col)
	}
	return row
}

// Valid reports whether the row carries enough data to import. Rows without
// a sku or name, or whose name is the workbook's lookup placeholder, are
// skipped rather than errored.
func (r ProductRow) Valid() bool {
	return r.SKU != nil && r.Name != nil && *r.Name != placeholderName
}

// cellAt returns the stripped cell value at idx, or nil when the cell is
// absent or blank. Sheets hand us ragged rows, so out-of-range is normal.
func cellAt(cells []string, idx int) *string {
	if idx < 0 || idx >= len(cells) {
		return nil
	}
	v := strings.TrimSpace(cells[idx])
	if v == "" {
		return nil
	}
	return &v
}
