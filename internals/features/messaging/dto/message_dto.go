package dto

import (
	"time"

	"github.com/google/uuid"

	"school360_backend/internals/features/messaging/model"
)

type Recipient struct {
	Name  string `json:"name" validate:"omitempty,max=255"`
	Phone string `json:"phone" validate:"required,min=7,max=20"`
}

type BulkSendRequest struct {
	Channel    string      `json:"channel" validate:"required,oneof=sms whatsapp"`
	Body       string      `json:"body" validate:"required,max=1600"`
	Recipients []Recipient `json:"recipients" validate:"required,min=1,max=500,dive"`
}

// SendItemResult reports one recipient's outcome; a failed recipient
// never aborts the rest of the batch.
type SendItemResult struct {
	Index     int       `json:"index"`
	Phone     string    `json:"phone"`
	MessageID uuid.UUID `json:"message_id"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
}

type BulkSendSummary struct {
	Sent    int              `json:"sent"`
	Failed  int              `json:"failed"`
	Results []SendItemResult `json:"results"`
}

type MessageResponse struct {
	MessageID             uuid.UUID  `json:"message_id"`
	MessageRecipientName  string     `json:"message_recipient_name"`
	MessageRecipientPhone string     `json:"message_recipient_phone"`
	MessageChannel        string     `json:"message_channel"`
	MessageBody           string     `json:"message_body"`
	MessageStatus         string     `json:"message_status"`
	MessageError          *string    `json:"message_error,omitempty"`
	MessageCreatedAt      time.Time  `json:"message_created_at"`
	MessageDeliveredAt    *time.Time `json:"message_delivered_at,omitempty"`
}

func ToMessageResponse(m *model.MessageLogModel) *MessageResponse {
	return &MessageResponse{
		MessageID:             m.MessageID,
		MessageRecipientName:  m.MessageRecipientName,
		MessageRecipientPhone: m.MessageRecipientPhone,
		MessageChannel:        m.MessageChannel,
		MessageBody:           m.MessageBody,
		MessageStatus:         string(m.MessageStatus),
		MessageError:          m.MessageError,
		MessageCreatedAt:      m.MessageCreatedAt,
		MessageDeliveredAt:    m.MessageDeliveredAt,
	}
}

// DeliveryNotification is the vendor's delivery-status callback body.
type DeliveryNotification struct {
	MessageID string `json:"message_id" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=delivered failed"`
	Reason    string `json:"reason"`
}
