// file: internals/helpers/csvimport/csvimport.go
//
// Upload-side CSV handling: parse text into header-keyed rows, then flag
// the data-entry mistakes we keep seeing before rows reach account
// creation. Deliberately a minimal quoted-CSV reader, not RFC 4180:
// one record per line, doubled quotes inside quoted fields, nothing else.
package csvimport

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

type Row map[string]string

type ValidationError struct {
	Row         int    `json:"row"`
	Field       string `json:"field"`
	Value       string `json:"value"`
	Message     string `json:"message"`
	StudentName string `json:"student_name,omitempty"`
}

type Result struct {
	Valid        []Row             `json:"valid"`
	Errors       []ValidationError `json:"errors"`
	ValidCount   int               `json:"valid_count"`
	InvalidCount int               `json:"invalid_count"`
}

var ErrNoData = errors.New("CSV file must have a header row and at least one data row")

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Parse splits CSV text into rows keyed by the header line. Blank lines
// are dropped. Unknown headers pass through as extra keys.
func Parse(text string) ([]Row, error) {
	var lines []string
	for _, l := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) < 2 {
		return nil, ErrNoData
	}

	headers := splitLine(lines[0])
	for i := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(headers[i]))
	}

	rows := make([]Row, 0, len(lines)-1)
	for _, l := range lines[1:] {
		fields := splitLine(l)
		row := Row{}
		for i, h := range headers {
			if i < len(fields) {
				row[h] = strings.TrimSpace(fields[i])
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// splitLine walks the line once, honoring double-quoted fields so
// `"Doe, John"` stays one field. A doubled quote inside a quoted field
// is a literal quote.
func splitLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

// ValidateRows applies the per-row rules and collects every deviation
// instead of failing fast. A row with several field errors still counts
// once toward InvalidCount.
func ValidateRows(rows []Row) Result {
	res := Result{}
	for i, row := range rows {
		rowNum := i + 2 // 1-based, after the header line
		name := row["name"]
		before := len(res.Errors)

		if name == "" {
			res.Errors = append(res.Errors, ValidationError{
				Row: rowNum, Field: "name", Message: "name is required",
			})
		}

		if email := row["email"]; email != "" && !emailRe.MatchString(email) {
			res.Errors = append(res.Errors, ValidationError{
				Row: rowNum, Field: "email", Value: email,
				Message: "invalid email format", StudentName: name,
			})
		}

		for field, value := range row {
			if !strings.Contains(field, "phone") || value == "" {
				continue
			}
			if msg := checkPhone(value); msg != "" {
				res.Errors = append(res.Errors, ValidationError{
					Row: rowNum, Field: field, Value: value,
					Message: msg, StudentName: name,
				})
			}
		}

		if len(res.Errors) == before {
			res.Valid = append(res.Valid, row)
			res.ValidCount++
		} else {
			res.InvalidCount++
		}
	}
	return res
}

// checkPhone returns a diagnostic message, or "" when the value passes.
func checkPhone(value string) string {
	// tell-tale Excel mangling of a long numeric string
	if strings.Contains(value, "E+") || strings.Contains(value, "e+") {
		return "looks like a number corrupted by Excel (scientific notation); re-export the column as text"
	}
	stripped := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(value)
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return "phone number must contain digits only"
		}
	}
	if n := len(stripped); n < 10 || n > 15 {
		return fmt.Sprintf("phone number has %d digits; expected 10-15", n)
	}
	return ""
}
