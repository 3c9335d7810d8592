package workbook

import (
	"errors"
	"strings"
	"testing"
)

func sample() *Workbook {
	return &Workbook{Sheets: []Sheet{
		{
			Name:    "Balance",
			Columns: []string{"Cuenta", "Monto"},
			Rows: [][]string{
				{"Caja", "1500"},
				{"Bancos", "8200"},
			},
		},
		{
			Name:    "Resultados",
			Columns: []string{"Concepto", "2023", "2024"},
			Rows: [][]string{
				{"Ingresos", "100", "120"},
			},
		},
	}}
}

func TestFlatten_CompactHasOneHeaderPerSheet(t *testing.T) {
	out := Flatten(sample(), Compact)

	if got := strings.Count(out, "Hoja: "); got != 2 {
		t.Fatalf("expected 2 sheet headers, got %d", got)
	}
	// Sheet order is part of the contract.
	if strings.Index(out, "Hoja: Balance") > strings.Index(out, "Hoja: Resultados") {
		t.Error("sheets rendered out of workbook order")
	}
	if !strings.Contains(out, "Columnas: Cuenta, Monto") {
		t.Error("missing column list for Balance")
	}
	if !strings.Contains(out, "Número de filas: 2") {
		t.Error("missing row count for Balance")
	}
	if strings.Contains(out, "Caja") {
		t.Error("compact mode must not render row contents")
	}
}

func TestFlatten_VerboseRendersEveryCell(t *testing.T) {
	out := Flatten(sample(), Verbose)

	for _, cell := range []string{"Caja", "1500", "Bancos", "8200", "Ingresos", "120"} {
		if !strings.Contains(out, cell) {
			t.Errorf("verbose output missing cell %q", cell)
		}
	}
	if got := strings.Count(out, "Contenido:"); got != 2 {
		t.Errorf("expected Contenido: per sheet, got %d", got)
	}
}

func TestFlatten_Deterministic(t *testing.T) {
	wb := sample()
	if Flatten(wb, Verbose) != Flatten(wb, Verbose) {
		t.Error("flatten is not deterministic")
	}
}

func TestFlatten_EmptyWorkbook(t *testing.T) {
	out := Flatten(&Workbook{}, Verbose)
	if !strings.HasPrefix(out, "Datos financieros disponibles:") {
		t.Errorf("unexpected preamble: %q", out)
	}
	if strings.Contains(out, "Hoja:") {
		t.Error("empty workbook should have no sheet headers")
	}
}

func TestParse_CorruptInputSignalsParseError(t *testing.T) {
	_, err := Parse(strings.NewReader("this is not a spreadsheet"))
	if err == nil {
		t.Fatal("expected error for corrupt input")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Unwrap() == nil {
		t.Error("ParseError should carry the underlying cause")
	}
}

func TestParseFile_MissingFile(t *testing.T) {
	_, err := ParseFile("does/not/exist.xlsx")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}
