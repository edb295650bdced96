// file: internals/helpers/export/excel.go
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

type ColumnType string

const (
	TypeString   ColumnType = "string"
	TypeNumber   ColumnType = "number"
	TypeDate     ColumnType = "date"
	TypeCurrency ColumnType = "currency"
	TypeBoolean  ColumnType = "boolean"
)

type Column struct {
	Key    string
	Header string
	Width  float64
	Type   ColumnType
	// Format, when set, overrides type-based formatting entirely.
	Format func(v any) string
}

type Sheet struct {
	Data      []map[string]any
	Columns   []Column
	SheetName string
}

// Filename builds `<base>[_<YYYY-MM-DD>].<ext>`; the extension is appended
// only when missing.
func Filename(base, ext string, stampDate bool) string {
	name := base
	if stampDate {
		name += "_" + time.Now().Format("2006-01-02")
	}
	if !strings.HasSuffix(strings.ToLower(name), "."+ext) {
		name += "." + ext
	}
	return name
}

// ToWorkbook writes one sheet per non-empty input; empty sheets are
// silently skipped. Caller owns closing/serializing the file.
func ToWorkbook(sheets []Sheet) (*excelize.File, error) {
	f := excelize.NewFile()
	wrote := 0
	for _, s := range sheets {
		if len(s.Data) == 0 {
			continue
		}
		name := s.SheetName
		if name == "" {
			name = fmt.Sprintf("Sheet%d", wrote+1)
		}
		if wrote == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, err
			}
		}
		if err := writeSheet(f, name, s); err != nil {
			return nil, err
		}
		wrote++
	}
	return f, nil
}

func writeSheet(f *excelize.File, name string, s Sheet) error {
	for i, col := range s.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, col.Header); err != nil {
			return err
		}
		if col.Width > 0 {
			colName, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return err
			}
			if err := f.SetColWidth(name, colName, colName, col.Width); err != nil {
				return err
			}
		}
	}
	for r, row := range s.Data {
		for ci, col := range s.Columns {
			cell, err := excelize.CoordinatesToCellName(ci+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, cell, FormatCell(row[col.Key], col)); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatCell applies the column's Format callback when present, otherwise
// type-based formatting. nil renders empty; unknown types fall back to
// fmt.Sprint.
func FormatCell(v any, col Column) any {
	if col.Format != nil {
		return col.Format(v)
	}
	if v == nil {
		return ""
	}
	switch col.Type {
	case TypeString:
		return fmt.Sprint(v)
	case TypeNumber:
		return v
	case TypeDate:
		if t, ok := v.(time.Time); ok {
			return t.Format("2006-01-02")
		}
		return fmt.Sprint(v)
	case TypeCurrency:
		switch n := v.(type) {
		case float64:
			return fmt.Sprintf("%.2f", n)
		case int:
			return fmt.Sprintf("%.2f", float64(n))
		case int64:
			return fmt.Sprintf("%.2f", float64(n))
		default:
			return fmt.Sprint(v)
		}
	case TypeBoolean:
		if b, ok := v.(bool); ok {
			if b {
				return "Yes"
			}
			return "No"
		}
		return fmt.Sprint(v)
	default:
		return fmt.Sprint(v)
	}
}
