package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	today := time.Now().Format("2006-01-02")

	assert.Equal(t, "students.csv", Filename("students", "csv", false))
	assert.Equal(t, "students_"+today+".xlsx", Filename("students", "xlsx", true))
	// extension already present: not doubled
	assert.Equal(t, "report.csv", Filename("report.csv", "csv", false))
	assert.Equal(t, "Report.CSV", Filename("Report.CSV", "csv", false))
}

func TestFormatCell(t *testing.T) {
	when := time.Date(2024, 8, 20, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name string
		v    any
		col  Column
		want any
	}{
		{name: "nil renders empty", v: nil, col: Column{Type: TypeNumber}, want: ""},
		{name: "string", v: 42, col: Column{Type: TypeString}, want: "42"},
		{name: "number passes through", v: 3.14, col: Column{Type: TypeNumber}, want: 3.14},
		{name: "date", v: when, col: Column{Type: TypeDate}, want: "2024-08-20"},
		{name: "date fallback", v: "n/a", col: Column{Type: TypeDate}, want: "n/a"},
		{name: "currency float", v: 1234.5, col: Column{Type: TypeCurrency}, want: "1234.50"},
		{name: "currency int", v: 90, col: Column{Type: TypeCurrency}, want: "90.00"},
		{name: "bool yes", v: true, col: Column{Type: TypeBoolean}, want: "Yes"},
		{name: "bool no", v: false, col: Column{Type: TypeBoolean}, want: "No"},
		{name: "unknown type", v: 7, col: Column{}, want: "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCell(tt.v, tt.col))
		})
	}
}

func TestFormatCellCallbackWins(t *testing.T) {
	col := Column{
		Type:   TypeCurrency,
		Format: func(v any) string { return strings.ToUpper(v.(string)) },
	}
	assert.Equal(t, "PAID", FormatCell("paid", col))
}

func TestToWorkbookSkipsEmptySheets(t *testing.T) {
	cols := []Column{{Key: "name", Header: "Name"}}
	sheets := []Sheet{
		{SheetName: "Empty", Columns: cols},
		{SheetName: "Students", Columns: cols, Data: []map[string]any{{"name": "Amina"}}},
		{SheetName: "Staff", Columns: cols, Data: []map[string]any{{"name": "Bola"}}},
	}

	f, err := ToWorkbook(sheets)
	assert.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Students", "Staff"}, f.GetSheetList())

	header, err := f.GetCellValue("Students", "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Name", header)

	cell, err := f.GetCellValue("Students", "A2")
	assert.NoError(t, err)
	assert.Equal(t, "Amina", cell)
}
