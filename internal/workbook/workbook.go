// Package workbook converts uploaded spreadsheets into the flat text
// context that gets interpolated into model prompts.
package workbook

import (
	"fmt"
	"strings"
)

// Sheet is one named table of an uploaded workbook. Columns keep their
// original order; rows keep their original order and are already
// stringified.
type Sheet struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Workbook is an ordered collection of sheets. Sheet order follows the
// order the file exposes them; Flatten output depends on it.
type Workbook struct {
	Sheets []Sheet
}

// Mode selects how much of each sheet Flatten renders.
type Mode int

const (
	// Compact emits only sheet name, column list and row count.
	Compact Mode = iota
	// Verbose additionally emits every row of every sheet.
	Verbose
)

// ParseError wraps the underlying cause when a file cannot be read as
// tabular data. Callers decide whether to continue without context.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no se pudo procesar el archivo: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Flatten renders the workbook as the text context handed to the model.
// Pure function of its input: same workbook and mode, same output.
func Flatten(wb *Workbook, mode Mode) string {
	var b strings.Builder
	b.WriteString("Datos financieros disponibles:\n\n")

	for _, sheet := range wb.Sheets {
		fmt.Fprintf(&b, "Hoja: %s\n", sheet.Name)
		fmt.Fprintf(&b, "Columnas: %s\n", strings.Join(sheet.Columns, ", "))
		fmt.Fprintf(&b, "Número de filas: %d\n", len(sheet.Rows))

		if mode == Verbose {
			b.WriteString("Contenido:\n")
			b.WriteString(strings.Join(sheet.Columns, "  "))
			b.WriteString("\n")
			for _, row := range sheet.Rows {
				b.WriteString(strings.Join(row, "  "))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
