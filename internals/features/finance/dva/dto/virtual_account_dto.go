package dto

import (
	"time"

	"github.com/google/uuid"

	"school360_backend/internals/features/finance/dva/model"
)

type CreateVARequest struct {
	StudentID   string  `json:"student_id" validate:"required,uuid4"`
	Bank        string  `json:"bank" validate:"required,oneof=bca bni bri cimb permata"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"omitempty,max=255"`
}

func (r *CreateVARequest) ToModel(schoolID uuid.UUID) *model.VirtualAccountModel {
	studentID, _ := uuid.Parse(r.StudentID)
	m := &model.VirtualAccountModel{
		VirtualAccountSchoolID:  schoolID,
		VirtualAccountStudentID: studentID,
		VirtualAccountBank:      r.Bank,
		VirtualAccountAmount:    r.Amount,
		VirtualAccountStatus:    model.VAStatusPending,
	}
	if r.Description != "" {
		m.VirtualAccountDescription = &r.Description
	}
	return m
}

type VirtualAccountResponse struct {
	VirtualAccountID        uuid.UUID  `json:"virtual_account_id"`
	VirtualAccountStudentID uuid.UUID  `json:"virtual_account_student_id"`
	VirtualAccountBank      string     `json:"virtual_account_bank"`
	VirtualAccountNumber    string     `json:"virtual_account_number"`
	VirtualAccountAmount    float64    `json:"virtual_account_amount"`
	VirtualAccountStatus    string     `json:"virtual_account_status"`
	VirtualAccountPaidAt    *time.Time `json:"virtual_account_paid_at,omitempty"`
	VirtualAccountCreatedAt time.Time  `json:"virtual_account_created_at"`
}

func ToVirtualAccountResponse(m *model.VirtualAccountModel) *VirtualAccountResponse {
	return &VirtualAccountResponse{
		VirtualAccountID:        m.VirtualAccountID,
		VirtualAccountStudentID: m.VirtualAccountStudentID,
		VirtualAccountBank:      m.VirtualAccountBank,
		VirtualAccountNumber:    m.VirtualAccountNumber,
		VirtualAccountAmount:    m.VirtualAccountAmount,
		VirtualAccountStatus:    string(m.VirtualAccountStatus),
		VirtualAccountPaidAt:    m.VirtualAccountPaidAt,
		VirtualAccountCreatedAt: m.VirtualAccountCreatedAt,
	}
}

// MidtransNotification is the subset of the HTTP notification payload
// the webhook handler reads; the full body is logged as-is.
type MidtransNotification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}
