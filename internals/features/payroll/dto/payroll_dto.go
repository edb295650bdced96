package dto

import (
	"github.com/google/uuid"

	"school360_backend/internals/features/payroll/model"
)

type GenerateRunRequest struct {
	Month string `json:"month" validate:"required,datetime=2006-01"`
}

type PayslipResponse struct {
	PayslipID         uuid.UUID `json:"payslip_id"`
	PayslipStaffID    uuid.UUID `json:"payslip_staff_id"`
	PayslipStaffName  string    `json:"payslip_staff_name"`
	PayslipGross      float64   `json:"payslip_gross"`
	PayslipDeductions float64   `json:"payslip_deductions"`
	PayslipNet        float64   `json:"payslip_net"`
	PayslipPdfURL     string    `json:"payslip_pdf_url,omitempty"`
}

type PayrollRunResponse struct {
	PayrollRunID     uuid.UUID         `json:"payroll_run_id"`
	PayrollRunMonth  string            `json:"payroll_run_month"`
	PayrollRunStatus string            `json:"payroll_run_status"`
	TotalGross       float64           `json:"total_gross"`
	TotalNet         float64           `json:"total_net"`
	Payslips         []PayslipResponse `json:"payslips"`
}

func ToPayrollRunResponse(m *model.PayrollRunModel) *PayrollRunResponse {
	out := &PayrollRunResponse{
		PayrollRunID:     m.PayrollRunID,
		PayrollRunMonth:  m.PayrollRunMonth.Format("2006-01"),
		PayrollRunStatus: m.PayrollRunStatus,
		Payslips:         make([]PayslipResponse, 0, len(m.Payslips)),
	}
	for i := range m.Payslips {
		slip := &m.Payslips[i]
		out.TotalGross += slip.PayslipGross
		out.TotalNet += slip.PayslipNet
		out.Payslips = append(out.Payslips, PayslipResponse{
			PayslipID:         slip.PayslipID,
			PayslipStaffID:    slip.PayslipStaffID,
			PayslipStaffName:  slip.PayslipStaffName,
			PayslipGross:      slip.PayslipGross,
			PayslipDeductions: slip.PayslipDeductions,
			PayslipNet:        slip.PayslipNet,
			PayslipPdfURL:     slip.PayslipPdfURL,
		})
	}
	return out
}
