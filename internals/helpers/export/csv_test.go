package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"school360_backend/internals/helpers/csvimport"
)

func TestToCSVEmptyInput(t *testing.T) {
	assert.Equal(t, "", ToCSV(nil, []string{"name"}))
	assert.Equal(t, "", ToCSV([]map[string]any{}, nil))
}

func TestToCSVExplicitHeaders(t *testing.T) {
	rows := []map[string]any{
		{"name": "Amina", "class": "JSS1", "ignored": "x"},
		{"name": "Bola"},
	}
	out := ToCSV(rows, []string{"name", "class"})

	assert.Equal(t, "name,class\nAmina,JSS1\nBola,\n", out)
}

func TestToCSVInferredHeadersAreSorted(t *testing.T) {
	rows := []map[string]any{{"zeta": 1, "alpha": 2, "mid": 3}}
	out := ToCSV(rows, nil)

	assert.Equal(t, "alpha,mid,zeta\n2,3,1\n", out)
}

func TestEscapeCell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "hello", want: "hello"},
		{name: "comma", in: "Doe, John", want: `"Doe, John"`},
		{name: "quote", in: `say "hi"`, want: `"say ""hi"""`},
		{name: "newline", in: "a\nb", want: "\"a\nb\""},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeCell(tt.in))
		})
	}
}

// Exported CSV must survive the import-side parser unchanged.
func TestToCSVRoundTripsThroughImporter(t *testing.T) {
	rows := []map[string]any{
		{"name": "Doe, John", "note": `said "later"`},
		{"name": "Amina", "note": "plain"},
	}
	out := ToCSV(rows, []string{"name", "note"})

	parsed, err := csvimport.Parse(out)
	assert.NoError(t, err)
	assert.Len(t, parsed, 2)
	assert.Equal(t, "Doe, John", parsed[0]["name"])
	assert.Equal(t, `said "later"`, parsed[0]["note"])
	assert.Equal(t, "Amina", parsed[1]["name"])
}
