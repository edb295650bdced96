package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type VAStatus string

const (
	VAStatusPending VAStatus = "pending"
	VAStatusActive  VAStatus = "active"
	VAStatusPaid    VAStatus = "paid"
	VAStatusExpired VAStatus = "expired"
	VAStatusClosed  VAStatus = "closed"
)

// VirtualAccountModel holds one dedicated virtual account issued for a
// student's fees. The order ID fed to the gateway is the row's UUID.
type VirtualAccountModel struct {
	VirtualAccountID        uuid.UUID  `gorm:"column:virtual_account_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"virtual_account_id"`
	VirtualAccountSchoolID  uuid.UUID  `gorm:"column:virtual_account_school_id;type:uuid;not null;index:idx_vas_school_id" json:"virtual_account_school_id"`
	VirtualAccountStudentID uuid.UUID  `gorm:"column:virtual_account_student_id;type:uuid;not null;index:idx_vas_student_id" json:"virtual_account_student_id"`

	VirtualAccountBank   string   `gorm:"column:virtual_account_bank;type:varchar(20);not null" json:"virtual_account_bank"`
	VirtualAccountNumber string   `gorm:"column:virtual_account_number;type:varchar(40)" json:"virtual_account_number"`
	VirtualAccountAmount float64  `gorm:"column:virtual_account_amount;type:numeric(14,2);not null" json:"virtual_account_amount"`
	VirtualAccountStatus VAStatus `gorm:"column:virtual_account_status;type:varchar(20);not null;default:'pending'" json:"virtual_account_status"`

	// Transaction ID as reported by the gateway.
	VirtualAccountExternalRef *string    `gorm:"column:virtual_account_external_ref;type:varchar(100)" json:"virtual_account_external_ref,omitempty"`
	VirtualAccountPaidAt      *time.Time `gorm:"column:virtual_account_paid_at" json:"virtual_account_paid_at,omitempty"`

	VirtualAccountDescription *string `gorm:"column:virtual_account_description;type:text" json:"virtual_account_description,omitempty"`

	VirtualAccountCreatedAt time.Time      `gorm:"column:virtual_account_created_at;autoCreateTime" json:"virtual_account_created_at"`
	VirtualAccountUpdatedAt time.Time      `gorm:"column:virtual_account_updated_at;autoUpdateTime" json:"virtual_account_updated_at"`
	VirtualAccountDeletedAt gorm.DeletedAt `gorm:"column:virtual_account_deleted_at;index" json:"-"`
}

func (VirtualAccountModel) TableName() string { return "virtual_accounts" }

type GatewayEventStatus string

const (
	GatewayEventStatusReceived GatewayEventStatus = "received"
	GatewayEventStatusApplied  GatewayEventStatus = "applied"
	GatewayEventStatusIgnored  GatewayEventStatus = "ignored"
	GatewayEventStatusFailed   GatewayEventStatus = "failed"
)

// GatewayEventModel is an append-only log of payment webhook deliveries,
// kept verbatim so a disputed notification can be replayed.
type GatewayEventModel struct {
	GatewayEventID       uuid.UUID  `gorm:"column:gateway_event_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"gateway_event_id"`
	GatewayEventVAID     *uuid.UUID `gorm:"column:gateway_event_va_id;type:uuid;index:idx_gateway_events_va_id" json:"gateway_event_va_id,omitempty"`
	GatewayEventProvider string     `gorm:"column:gateway_event_provider;type:varchar(20);not null;default:'midtrans'" json:"gateway_event_provider"`

	GatewayEventOrderID           string             `gorm:"column:gateway_event_order_id;type:varchar(100);not null;index:idx_gateway_events_order_id" json:"gateway_event_order_id"`
	GatewayEventTransactionStatus string             `gorm:"column:gateway_event_transaction_status;type:varchar(30);not null" json:"gateway_event_transaction_status"`
	GatewayEventStatus            GatewayEventStatus `gorm:"column:gateway_event_status;type:varchar(20);not null;default:'received'" json:"gateway_event_status"`
	GatewayEventNote              *string            `gorm:"column:gateway_event_note;type:text" json:"gateway_event_note,omitempty"`

	GatewayEventPayload    datatypes.JSON `gorm:"column:gateway_event_payload;type:jsonb" json:"gateway_event_payload"`
	GatewayEventReceivedAt time.Time      `gorm:"column:gateway_event_received_at;autoCreateTime" json:"gateway_event_received_at"`
}

func (GatewayEventModel) TableName() string { return "gateway_events" }
