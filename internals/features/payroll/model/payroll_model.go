package model

import (
	"time"

	"github.com/google/uuid"
)

// Payroll run status: draft until approved, paid once disbursed.
const (
	RunStatusDraft    = "draft"
	RunStatusApproved = "approved"
	RunStatusPaid     = "paid"
)

type PayrollRunModel struct {
	PayrollRunID       uuid.UUID `gorm:"column:payroll_run_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payroll_run_id"`
	PayrollRunSchoolID uuid.UUID `gorm:"column:payroll_run_school_id;type:uuid;not null;index:idx_payroll_runs_school_id" json:"payroll_run_school_id"`

	// first day of the month this run covers
	PayrollRunMonth  time.Time `gorm:"column:payroll_run_month;type:date;not null" json:"payroll_run_month"`
	PayrollRunStatus string    `gorm:"column:payroll_run_status;type:varchar(20);not null;default:'draft'" json:"payroll_run_status"`

	PayrollRunCreatedAt time.Time `gorm:"column:payroll_run_created_at;type:timestamptz;autoCreateTime" json:"payroll_run_created_at"`
	PayrollRunUpdatedAt time.Time `gorm:"column:payroll_run_updated_at;type:timestamptz;autoUpdateTime" json:"payroll_run_updated_at"`

	Payslips []PayslipModel `gorm:"foreignKey:PayslipRunID;references:PayrollRunID" json:"payslips,omitempty"`

	// one run per school per month:
	//   CREATE UNIQUE INDEX ux_payroll_runs_school_month
	//   ON payroll_runs (payroll_run_school_id, payroll_run_month);
}

func (PayrollRunModel) TableName() string {
	return "payroll_runs"
}

// PayslipModel snapshots the staff pay data at generation time, so later
// salary edits never rewrite history.
type PayslipModel struct {
	PayslipID    uuid.UUID `gorm:"column:payslip_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payslip_id"`
	PayslipRunID uuid.UUID `gorm:"column:payslip_run_id;type:uuid;not null;index:idx_payslips_run_id" json:"payslip_run_id"`

	PayslipStaffID     uuid.UUID `gorm:"column:payslip_staff_id;type:uuid;not null;index:idx_payslips_staff_id" json:"payslip_staff_id"`
	PayslipStaffName   string    `gorm:"column:payslip_staff_name;type:varchar(255);not null" json:"payslip_staff_name"`
	PayslipBankName    string    `gorm:"column:payslip_bank_name;type:varchar(100)" json:"payslip_bank_name"`
	PayslipBankAccount string    `gorm:"column:payslip_bank_account;type:varchar(30)" json:"payslip_bank_account"`

	PayslipGross      float64 `gorm:"column:payslip_gross;type:numeric(14,2);not null" json:"payslip_gross"`
	PayslipDeductions float64 `gorm:"column:payslip_deductions;type:numeric(14,2);not null;default:0" json:"payslip_deductions"`
	PayslipNet        float64 `gorm:"column:payslip_net;type:numeric(14,2);not null" json:"payslip_net"`

	// set after the PDF vendor rendered the slip
	PayslipPdfURL string `gorm:"column:payslip_pdf_url;type:text" json:"payslip_pdf_url"`

	PayslipCreatedAt time.Time `gorm:"column:payslip_created_at;type:timestamptz;autoCreateTime" json:"payslip_created_at"`
}

func (PayslipModel) TableName() string {
	return "payslips"
}
