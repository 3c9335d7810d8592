package workbook

import (
	"io"
	"os"

	"github.com/xuri/excelize/v2"
)

// Parse reads an .xlsx workbook. Every sheet becomes one Sheet, with the
// first row taken as column labels and every cell coerced to text. A file
// that cannot be read as a spreadsheet yields a *ParseError; the caller is
// expected to surface it and continue without context rather than abort.
func Parse(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	defer f.Close()

	wb := &Workbook{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, &ParseError{Err: err}
		}

		sheet := Sheet{Name: name}
		if len(rows) > 0 {
			sheet.Columns = rows[0]
			sheet.Rows = rows[1:]
		}
		// Ragged rows come back short from excelize; pad so every row
		// matches the column count and renders aligned.
		for i, row := range sheet.Rows {
			for len(row) < len(sheet.Columns) {
				row = append(row, "")
			}
			sheet.Rows[i] = row
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}

	return wb, nil
}

// ParseFile is the path-based convenience wrapper around Parse.
func ParseFile(path string) (*Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	defer f.Close()
	return Parse(f)
}
