package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"school360_backend/internals/features/payroll/model"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 12.35, round2(12.345))
	assert.Equal(t, 12.34, round2(12.344))
	assert.Equal(t, 0.0, round2(0))
	assert.Equal(t, 8000.0, round2(100000*defaultDeductionRate))
}

func TestPayslipHTML(t *testing.T) {
	slip := &model.PayslipModel{
		PayslipStaffName:   "Amina Yusuf",
		PayslipBankName:    "GTBank",
		PayslipBankAccount: "0123456789",
		PayslipGross:       250000,
		PayslipDeductions:  20000,
		PayslipNet:         230000,
	}
	month := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)

	html := payslipHTML(slip, month)

	assert.Contains(t, html, "August 2024")
	assert.Contains(t, html, "Amina Yusuf")
	assert.Contains(t, html, "250000.00")
	assert.Contains(t, html, "20000.00")
	assert.Contains(t, html, "230000.00")
	assert.Contains(t, html, "0123456789")
}

func TestPayslipHTMLOmitsMissingBankDetails(t *testing.T) {
	slip := &model.PayslipModel{PayslipStaffName: "Bola", PayslipGross: 100}
	html := payslipHTML(slip, time.Now())

	assert.NotContains(t, html, "Paid to")
}
