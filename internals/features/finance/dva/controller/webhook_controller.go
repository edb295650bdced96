package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"school360_backend/internals/features/finance/dva/dto"
	"school360_backend/internals/features/finance/dva/model"
	"school360_backend/internals/features/finance/dva/service"
	helper "school360_backend/internals/helpers"
)

type WebhookController struct {
	DB *gorm.DB
	VA *service.VirtualAccountService
}

func NewWebhookController(db *gorm.DB, svc *service.VirtualAccountService) *WebhookController {
	return &WebhookController{DB: db, VA: svc}
}

// 🟡 POST /api/webhooks/midtrans
//
// Every delivery is logged before any decision is made, so disputed
// notifications can be replayed. Unknown order IDs still answer 200,
// otherwise the gateway keeps retrying forever.
func (ctrl *WebhookController) HandleMidtransNotification(c *fiber.Ctx) error {
	var notif dto.MidtransNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification body")
	}

	event := model.GatewayEventModel{
		GatewayEventProvider:          "midtrans",
		GatewayEventOrderID:           notif.OrderID,
		GatewayEventTransactionStatus: notif.TransactionStatus,
		GatewayEventStatus:            model.GatewayEventStatusReceived,
		GatewayEventPayload:           datatypes.JSON(c.Body()),
	}
	if err := ctrl.DB.Create(&event).Error; err != nil {
		log.Printf("[ERROR] log gateway event: %v", err)
	}

	if !ctrl.VA.VerifySignature(notif.OrderID, notif.StatusCode, notif.GrossAmount, notif.SignatureKey) {
		ctrl.closeEvent(&event, model.GatewayEventStatusFailed, "signature mismatch")
		return helper.JsonError(c, fiber.StatusForbidden, "Invalid signature")
	}

	vaID, err := uuid.Parse(notif.OrderID)
	if err != nil {
		ctrl.closeEvent(&event, model.GatewayEventStatusIgnored, "order_id is not a virtual account ID")
		return helper.JsonOK(c, "Notification ignored", nil)
	}

	var va model.VirtualAccountModel
	if err := ctrl.DB.Where("virtual_account_id = ?", vaID).First(&va).Error; err != nil {
		ctrl.closeEvent(&event, model.GatewayEventStatusIgnored, "no matching virtual account")
		return helper.JsonOK(c, "Notification ignored", nil)
	}
	event.GatewayEventVAID = &va.VirtualAccountID

	next, apply := service.StatusForNotification(notif.TransactionStatus, notif.FraudStatus)
	if !apply {
		ctrl.closeEvent(&event, model.GatewayEventStatusIgnored, "no state change for status "+notif.TransactionStatus)
		return helper.JsonOK(c, "Notification acknowledged", nil)
	}

	updates := map[string]any{
		"virtual_account_status":       next,
		"virtual_account_external_ref": notif.TransactionID,
	}
	if next == model.VAStatusPaid {
		updates["virtual_account_paid_at"] = time.Now()
	}
	if err := ctrl.DB.Model(&va).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] apply gateway notification: %v", err)
		ctrl.closeEvent(&event, model.GatewayEventStatusFailed, err.Error())
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to apply notification")
	}

	ctrl.closeEvent(&event, model.GatewayEventStatusApplied, "")
	return helper.JsonOK(c, "Notification applied", fiber.Map{
		"virtual_account_id":     va.VirtualAccountID,
		"virtual_account_status": next,
	})
}

func (ctrl *WebhookController) closeEvent(event *model.GatewayEventModel, status model.GatewayEventStatus, note string) {
	updates := map[string]any{
		"gateway_event_status": status,
		"gateway_event_va_id":  event.GatewayEventVAID,
	}
	if note != "" {
		updates["gateway_event_note"] = note
	}
	if err := ctrl.DB.Model(event).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] close gateway event: %v", err)
	}
}
