package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"school360_backend/internals/features/payroll/model"
)

func TestToPayrollRunResponseTotals(t *testing.T) {
	run := &model.PayrollRunModel{
		PayrollRunID:     uuid.New(),
		PayrollRunMonth:  time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		PayrollRunStatus: model.RunStatusDraft,
		Payslips: []model.PayslipModel{
			{PayslipID: uuid.New(), PayslipStaffName: "Amina", PayslipGross: 250000, PayslipDeductions: 20000, PayslipNet: 230000},
			{PayslipID: uuid.New(), PayslipStaffName: "Bola", PayslipGross: 180000, PayslipDeductions: 14400, PayslipNet: 165600},
		},
	}

	out := ToPayrollRunResponse(run)

	assert.Equal(t, "2024-08", out.PayrollRunMonth)
	assert.Equal(t, model.RunStatusDraft, out.PayrollRunStatus)
	assert.Len(t, out.Payslips, 2)
	assert.InDelta(t, 430000, out.TotalGross, 1e-9)
	assert.InDelta(t, 395600, out.TotalNet, 1e-9)
}

func TestToPayrollRunResponseEmptyRun(t *testing.T) {
	out := ToPayrollRunResponse(&model.PayrollRunModel{
		PayrollRunMonth:  time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		PayrollRunStatus: model.RunStatusApproved,
	})

	assert.NotNil(t, out.Payslips)
	assert.Empty(t, out.Payslips)
	assert.Zero(t, out.TotalGross)
}
