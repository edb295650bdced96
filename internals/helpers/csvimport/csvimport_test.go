package csvimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRejectsHeaderOnlyInput(t *testing.T) {
	for _, text := range []string{"", "name,email", "name,email\n\n\n"} {
		_, err := Parse(text)
		assert.ErrorIs(t, err, ErrNoData, "%q", text)
	}
}

func TestParseKeysRowsByLowercasedHeader(t *testing.T) {
	rows, err := Parse("Name, Email ,Parent Phone\nAmina,amina@example.com,08031234567\n")

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Amina", rows[0]["name"])
	assert.Equal(t, "amina@example.com", rows[0]["email"])
	assert.Equal(t, "08031234567", rows[0]["parent phone"])
}

func TestParseHandlesQuotedFields(t *testing.T) {
	rows, err := Parse("name,note\n\"Doe, John\",\"said \"\"later\"\"\"\n")

	assert.NoError(t, err)
	assert.Equal(t, "Doe, John", rows[0]["name"])
	assert.Equal(t, `said "later"`, rows[0]["note"])
}

func TestParseShortRowsPadEmpty(t *testing.T) {
	rows, err := Parse("name,email,phone\nAmina\n")

	assert.NoError(t, err)
	assert.Equal(t, "Amina", rows[0]["name"])
	assert.Equal(t, "", rows[0]["email"])
	assert.Equal(t, "", rows[0]["phone"])
}

func TestParseDropsBlankLinesAndCRLF(t *testing.T) {
	rows, err := Parse("name\r\nAmina\r\n\r\nBola\r\n")

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Bola", rows[1]["name"])
}

func TestValidateRowsFlagsScientificNotationPhones(t *testing.T) {
	res := ValidateRows([]Row{
		{"name": "Amina", "parent_phone": "2.35E+12"},
	})

	assert.Equal(t, 0, res.ValidCount)
	assert.Equal(t, 1, res.InvalidCount)
	assert.Len(t, res.Errors, 1)
	assert.Equal(t, "parent_phone", res.Errors[0].Field)
	assert.Contains(t, res.Errors[0].Message, "scientific notation")
	assert.Equal(t, "Amina", res.Errors[0].StudentName)
}

func TestValidateRowsPhoneFormats(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantMsg string
	}{
		{name: "plain digits", phone: "08031234567"},
		{name: "dashes and spaces", phone: "0803-123-4567"},
		{name: "parenthesized prefix", phone: "(234) 803 123 4567"},
		{name: "too short", phone: "12345", wantMsg: "phone number has 5 digits; expected 10-15"},
		{name: "too long", phone: "1234567890123456", wantMsg: "phone number has 16 digits; expected 10-15"},
		{name: "letters", phone: "0803-CALL-ME", wantMsg: "digits only"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateRows([]Row{{"name": "X", "phone": tt.phone}})
			if tt.wantMsg == "" {
				assert.Empty(t, res.Errors)
				assert.Equal(t, 1, res.ValidCount)
			} else {
				assert.Len(t, res.Errors, 1)
				assert.Contains(t, res.Errors[0].Message, tt.wantMsg)
			}
		})
	}
}

func TestValidateRowsEmailAndName(t *testing.T) {
	res := ValidateRows([]Row{
		{"name": "", "email": "ok@example.com"},
		{"name": "Bola", "email": "not-an-email"},
		{"name": "Chidi", "email": ""}, // empty email is allowed
	})

	assert.Equal(t, 1, res.ValidCount)
	assert.Equal(t, 2, res.InvalidCount)
	assert.Len(t, res.Errors, 2)
	assert.Equal(t, "name", res.Errors[0].Field)
	assert.Equal(t, "email", res.Errors[1].Field)
	assert.Equal(t, 3, res.Errors[1].Row)
}

// One bad row never hides the others: every deviation is reported and
// clean rows still pass.
func TestValidateRowsCollectsAllErrors(t *testing.T) {
	res := ValidateRows([]Row{
		{"name": "", "email": "bad", "phone": "123"},
		{"name": "Amina", "email": "amina@example.com", "phone": "08031234567"},
		{"name": "Bola", "phone": "2.35E+12"},
	})

	assert.Equal(t, 1, res.ValidCount)
	assert.Equal(t, 2, res.InvalidCount)
	// row 1 contributes three errors, row 3 one
	assert.Len(t, res.Errors, 4)
	assert.Equal(t, "Amina", res.Valid[0]["name"])
}
