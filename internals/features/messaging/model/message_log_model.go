package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageStatus string

const (
	MessageStatusQueued    MessageStatus = "queued"
	MessageStatusSent      MessageStatus = "sent"
	MessageStatusDelivered MessageStatus = "delivered"
	MessageStatusFailed    MessageStatus = "failed"
)

// MessageLogModel records one outbound SMS/WhatsApp message per recipient.
// Status moves queued -> sent -> delivered; failures stop it at failed.
type MessageLogModel struct {
	MessageID       uuid.UUID `gorm:"column:message_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"message_id"`
	MessageSchoolID uuid.UUID `gorm:"column:message_school_id;type:uuid;not null;index:idx_messages_school_id" json:"message_school_id"`
	MessageSenderID uuid.UUID `gorm:"column:message_sender_id;type:uuid;not null" json:"message_sender_id"`

	MessageRecipientName  string `gorm:"column:message_recipient_name;type:varchar(255)" json:"message_recipient_name"`
	MessageRecipientPhone string `gorm:"column:message_recipient_phone;type:varchar(30);not null" json:"message_recipient_phone"`
	MessageChannel        string `gorm:"column:message_channel;type:varchar(20);not null;default:'sms'" json:"message_channel"`
	MessageBody           string `gorm:"column:message_body;type:text;not null" json:"message_body"`

	MessageStatus MessageStatus `gorm:"column:message_status;type:varchar(20);not null;default:'queued'" json:"message_status"`
	MessageError  *string       `gorm:"column:message_error;type:text" json:"message_error,omitempty"`

	// ID the vendor assigned; delivery webhooks key on this.
	MessageVendorID *string `gorm:"column:message_vendor_id;type:varchar(100);index:idx_messages_vendor_id" json:"message_vendor_id,omitempty"`

	MessageCreatedAt   time.Time  `gorm:"column:message_created_at;autoCreateTime" json:"message_created_at"`
	MessageDeliveredAt *time.Time `gorm:"column:message_delivered_at" json:"message_delivered_at,omitempty"`
}

func (MessageLogModel) TableName() string { return "message_logs" }
