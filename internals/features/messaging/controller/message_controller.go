package controller

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school360_backend/internals/features/messaging/dto"
	"school360_backend/internals/features/messaging/model"
	helper "school360_backend/internals/helpers"
	"school360_backend/internals/platform/sms"
)

type MessageController struct {
	DB     *gorm.DB
	Sender sms.Sender
}

func NewMessageController(db *gorm.DB, sender sms.Sender) *MessageController {
	return &MessageController{DB: db, Sender: sender}
}

// 🟢 POST /api/a/messages/bulk
//
// Recipients are independent: each gets its own log row and its own
// vendor call, and one hard failure never rolls back the others.
func (ctrl *MessageController) BulkSend(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	senderID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.BulkSendRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(c, &req); err != nil {
		return err
	}

	summary := dto.BulkSendSummary{Results: make([]dto.SendItemResult, 0, len(req.Recipients))}
	for i, rcpt := range req.Recipients {
		row := model.MessageLogModel{
			MessageSchoolID:       schoolID,
			MessageSenderID:       senderID,
			MessageRecipientName:  rcpt.Name,
			MessageRecipientPhone: rcpt.Phone,
			MessageChannel:        req.Channel,
			MessageBody:           req.Body,
			MessageStatus:         model.MessageStatusQueued,
		}
		if err := ctrl.DB.Create(&row).Error; err != nil {
			log.Printf("[ERROR] queue message for %s: %v", rcpt.Phone, err)
			summary.Failed++
			summary.Results = append(summary.Results, dto.SendItemResult{
				Index: i, Phone: rcpt.Phone, Status: string(model.MessageStatusFailed), Error: "failed to queue message",
			})
			continue
		}

		vendorID, sendErr := ctrl.Sender.Send(c.UserContext(), rcpt.Phone, req.Body, req.Channel)
		if sendErr != nil {
			log.Printf("[WARN] send to %s failed: %v", rcpt.Phone, sendErr)
			msg := sendErr.Error()
			ctrl.DB.Model(&row).Updates(map[string]any{
				"message_status": model.MessageStatusFailed,
				"message_error":  msg,
			})
			summary.Failed++
			summary.Results = append(summary.Results, dto.SendItemResult{
				Index: i, Phone: rcpt.Phone, MessageID: row.MessageID,
				Status: string(model.MessageStatusFailed), Error: msg,
			})
			continue
		}

		ctrl.DB.Model(&row).Updates(map[string]any{
			"message_status":    model.MessageStatusSent,
			"message_vendor_id": vendorID,
		})
		summary.Sent++
		summary.Results = append(summary.Results, dto.SendItemResult{
			Index: i, Phone: rcpt.Phone, MessageID: row.MessageID,
			Status: string(model.MessageStatusSent),
		})
	}

	return helper.JsonOK(c, "Bulk send finished", summary)
}

// 🟢 GET /api/a/messages?status=&channel=
func (ctrl *MessageController) ListMessages(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Model(&model.MessageLogModel{}).
		Where("message_school_id = ?", schoolID)
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("message_status = ?", strings.ToLower(st))
	}
	if ch := strings.TrimSpace(c.Query("channel")); ch != "" {
		q = q.Where("message_channel = ?", strings.ToLower(ch))
	}

	paging := helper.ResolvePaging(c, 20, 200)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count messages")
	}

	var rows []model.MessageLogModel
	if err := q.Order("message_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load messages")
	}

	out := make([]*dto.MessageResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToMessageResponse(&rows[i]))
	}
	return helper.JsonList(c, "Messages loaded", out, helper.BuildPagination(paging, total))
}

// 🟡 POST /api/webhooks/messaging
func (ctrl *MessageController) HandleDeliveryNotification(c *fiber.Ctx) error {
	var notif dto.DeliveryNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification body")
	}
	if err := helper.Validate(c, &notif); err != nil {
		return err
	}

	var row model.MessageLogModel
	if err := ctrl.DB.Where("message_vendor_id = ?", notif.MessageID).First(&row).Error; err != nil {
		// Answer 200 for unknown IDs so the vendor stops retrying.
		return helper.JsonOK(c, "Notification ignored", nil)
	}

	updates := map[string]any{}
	switch notif.Status {
	case "delivered":
		updates["message_status"] = model.MessageStatusDelivered
		updates["message_delivered_at"] = time.Now()
	case "failed":
		updates["message_status"] = model.MessageStatusFailed
		if notif.Reason != "" {
			updates["message_error"] = notif.Reason
		}
	}
	if err := ctrl.DB.Model(&row).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] apply delivery notification: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to apply notification")
	}
	return helper.JsonOK(c, "Notification applied", nil)
}
