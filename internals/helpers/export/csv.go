// file: internals/helpers/export/csv.go
package export

import (
	"fmt"
	"sort"
	"strings"
)

// ToCSV serializes uniform rows into CSV text. When headers is nil the
// header set comes from the first row's keys (sorted, maps carry no order).
// Later rows only contribute values under that header set; extra keys are
// dropped, missing keys render empty. Heterogeneous rows are not an error.
func ToCSV(rows []map[string]any, headers []string) string {
	if len(rows) == 0 {
		return ""
	}
	if headers == nil {
		for k := range rows[0] {
			headers = append(headers, k)
		}
		sort.Strings(headers)
	}

	var b strings.Builder
	for i, h := range headers {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(EscapeCell(h))
	}
	b.WriteByte('\n')

	for _, row := range rows {
		for i, h := range headers {
			if i > 0 {
				b.WriteByte(',')
			}
			if v, ok := row[h]; ok && v != nil {
				b.WriteString(EscapeCell(fmt.Sprint(v)))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// EscapeCell quotes a cell when it contains a comma, double quote, or
// newline; inner quotes are doubled.
func EscapeCell(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
