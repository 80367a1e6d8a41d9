package spreadsheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet is a fully read worksheet: its name and all rows as string cells.
// Rows may be ragged; trailing empty cells are not padded.
type Sheet struct {
	Name string
	Rows [][]string
}

// OpenSheet opens the workbook at path and reads the first sheet whose name
// contains keyword (case-insensitive). It returns an error when the file
// cannot be opened or no sheet name matches.
func OpenSheet(path, keyword string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	name := matchSheet(f.GetSheetList(), keyword)
	if name == "" {
		return nil, fmt.Errorf("no sheet name contains %q", keyword)
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", name, err)
	}
	return &Sheet{Name: name, Rows: rows}, nil
}

// DataRows returns every row after the header row.
func (s *Sheet) DataRows() [][]string {
	if len(s.Rows) <= 1 {
		return nil
	}
	return s.Rows[1:]
}

// matchSheet returns the first name containing keyword, ignoring case.
func matchSheet(names []string, keyword string) string {
	k := strings.ToLower(keyword)
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), k) {
			return n
		}
	}
	return ""
}
