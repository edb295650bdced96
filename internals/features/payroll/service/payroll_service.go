package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"school360_backend/internals/features/payroll/model"
	staffModel "school360_backend/internals/features/school/staff/model"
	"school360_backend/internals/platform/pdf"
)

// standard deduction rate applied to gross (pension); anything fancier
// is edited on the draft before approval
const defaultDeductionRate = 0.08

type PayrollService struct {
	DB  *gorm.DB
	PDF pdf.Renderer
}

func NewPayrollService(db *gorm.DB, renderer pdf.Renderer) *PayrollService {
	return &PayrollService{DB: db, PDF: renderer}
}

// GenerateRun drafts a run for the month from the school's active staff.
// Idempotent per (school, month): an existing run is returned untouched.
func (s *PayrollService) GenerateRun(schoolID uuid.UUID, month time.Time) (*model.PayrollRunModel, error) {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)

	var existing model.PayrollRunModel
	err := s.DB.Preload("Payslips").
		Where("payroll_run_school_id = ? AND payroll_run_month = ?", schoolID, monthStart).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	var staff []staffModel.StaffModel
	if err := s.DB.
		Where("staff_school_id = ? AND staff_status = ?", schoolID, "active").
		Order("staff_name ASC").
		Find(&staff).Error; err != nil {
		return nil, err
	}
	if len(staff) == 0 {
		return nil, fmt.Errorf("no active staff to run payroll for")
	}

	run := &model.PayrollRunModel{
		PayrollRunSchoolID: schoolID,
		PayrollRunMonth:    monthStart,
		PayrollRunStatus:   model.RunStatusDraft,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(run).Error; err != nil {
			return err
		}
		for i := range staff {
			gross := staff[i].StaffMonthlySalary
			deductions := round2(gross * defaultDeductionRate)
			slip := &model.PayslipModel{
				PayslipRunID:       run.PayrollRunID,
				PayslipStaffID:     staff[i].StaffID,
				PayslipStaffName:   staff[i].StaffName,
				PayslipBankName:    staff[i].StaffBankName,
				PayslipBankAccount: staff[i].StaffBankAccount,
				PayslipGross:       gross,
				PayslipDeductions:  deductions,
				PayslipNet:         round2(gross - deductions),
			}
			if err := tx.Create(slip).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Payslips").First(run, "payroll_run_id = ?", run.PayrollRunID).Error; err != nil {
		return nil, err
	}
	return run, nil
}

// RenderPayslipPDF renders one slip through the PDF vendor and returns
// the bytes for the download response.
func (s *PayrollService) RenderPayslipPDF(ctx context.Context, slip *model.PayslipModel, month time.Time) ([]byte, error) {
	return s.PDF.Render(ctx, payslipHTML(slip, month))
}

func payslipHTML(slip *model.PayslipModel, month time.Time) string {
	var b strings.Builder
	b.WriteString(`<html><body style="font-family:sans-serif">`)
	fmt.Fprintf(&b, `<h2>Payslip - %s</h2>`, month.Format("January 2006"))
	fmt.Fprintf(&b, `<p><strong>%s</strong></p>`, slip.PayslipStaffName)
	b.WriteString(`<table border="1" cellpadding="6" cellspacing="0">`)
	fmt.Fprintf(&b, `<tr><td>Gross</td><td>%.2f</td></tr>`, slip.PayslipGross)
	fmt.Fprintf(&b, `<tr><td>Deductions</td><td>%.2f</td></tr>`, slip.PayslipDeductions)
	fmt.Fprintf(&b, `<tr><td><strong>Net</strong></td><td><strong>%.2f</strong></td></tr>`, slip.PayslipNet)
	b.WriteString(`</table>`)
	if slip.PayslipBankAccount != "" {
		fmt.Fprintf(&b, `<p>Paid to %s (%s)</p>`, slip.PayslipBankAccount, slip.PayslipBankName)
	}
	b.WriteString(`</body></html>`)
	return b.String()
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
