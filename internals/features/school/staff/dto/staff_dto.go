package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"school360_backend/internals/features/school/staff/model"
)

type StaffRequest struct {
	StaffName          string   `json:"staff_name" validate:"required,min=2,max=255"`
	StaffEmail         string   `json:"staff_email" validate:"required,email"`
	StaffPhone         string   `json:"staff_phone" validate:"max=20"`
	StaffRoles         []string `json:"staff_roles" validate:"max=10"`
	StaffMonthlySalary float64  `json:"staff_monthly_salary" validate:"gte=0"`
	StaffBankName      string   `json:"staff_bank_name" validate:"max=100"`
	StaffBankAccount   string   `json:"staff_bank_account" validate:"max=30"`
}

type StaffUpdateRequest struct {
	StaffName          *string   `json:"staff_name"`
	StaffPhone         *string   `json:"staff_phone"`
	StaffRoles         *[]string `json:"staff_roles"`
	StaffMonthlySalary *float64  `json:"staff_monthly_salary"`
	StaffBankName      *string   `json:"staff_bank_name"`
	StaffBankAccount   *string   `json:"staff_bank_account"`
	StaffStatus        *string   `json:"staff_status"`
}

type BulkStaffRequest struct {
	Items []StaffRequest `json:"items" validate:"required,min=1,max=200,dive"`
}

// BulkItemResult: one entry per submitted row, success or not.
type BulkItemResult struct {
	Index  int    `json:"index"`
	Email  string `json:"email"`
	Status string `json:"status"` // created | failed
	Error  string `json:"error,omitempty"`
	// only on success, so the admin can hand the credential over
	TempPassword string `json:"temp_password,omitempty"`
}

type StaffResponse struct {
	StaffID            uuid.UUID `json:"staff_id"`
	StaffUserID        uuid.UUID `json:"staff_user_id"`
	StaffName          string    `json:"staff_name"`
	StaffEmail         string    `json:"staff_email"`
	StaffPhone         string    `json:"staff_phone"`
	StaffRoles         []string  `json:"staff_roles"`
	StaffMonthlySalary float64   `json:"staff_monthly_salary"`
	StaffBankName      string    `json:"staff_bank_name"`
	StaffBankAccount   string    `json:"staff_bank_account"`
	StaffStatus        string    `json:"staff_status"`
	StaffCreatedAt     string    `json:"staff_created_at"`
}

func (r *StaffRequest) ToModel(schoolID, userID uuid.UUID) *model.StaffModel {
	return &model.StaffModel{
		StaffSchoolID:      schoolID,
		StaffUserID:        userID,
		StaffName:          r.StaffName,
		StaffEmail:         r.StaffEmail,
		StaffPhone:         r.StaffPhone,
		StaffRoles:         pq.StringArray(r.StaffRoles),
		StaffMonthlySalary: r.StaffMonthlySalary,
		StaffBankName:      r.StaffBankName,
		StaffBankAccount:   r.StaffBankAccount,
		StaffStatus:        "active",
	}
}

func ToStaffResponse(m *model.StaffModel) *StaffResponse {
	return &StaffResponse{
		StaffID:            m.StaffID,
		StaffUserID:        m.StaffUserID,
		StaffName:          m.StaffName,
		StaffEmail:         m.StaffEmail,
		StaffPhone:         m.StaffPhone,
		StaffRoles:         []string(m.StaffRoles),
		StaffMonthlySalary: m.StaffMonthlySalary,
		StaffBankName:      m.StaffBankName,
		StaffBankAccount:   m.StaffBankAccount,
		StaffStatus:        m.StaffStatus,
		StaffCreatedAt:     m.StaffCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToStaffResponseList(models []model.StaffModel) []StaffResponse {
	result := make([]StaffResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToStaffResponse(&m))
	}
	return result
}
