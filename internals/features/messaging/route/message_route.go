package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school360_backend/internals/constants"
	"school360_backend/internals/features/messaging/controller"
	authMiddleware "school360_backend/internals/middlewares/auth"
	"school360_backend/internals/platform/sms"
)

// Admin-side: broadcast and history
func MessagingAdminRoutes(api fiber.Router, db *gorm.DB, sender sms.Sender) {
	admin := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("sending broadcasts"),
			constants.AdminAndAbove,
		),
	)

	ctrl := controller.NewMessageController(db, sender)
	messages := admin.Group("/messages")
	messages.Post("/bulk", ctrl.BulkSend)
	messages.Get("/", ctrl.ListMessages)
}

// Unauthenticated vendor callback for delivery status
func MessagingWebhookRoutes(api fiber.Router, db *gorm.DB, sender sms.Sender) {
	ctrl := controller.NewMessageController(db, sender)
	api.Post("/messaging", ctrl.HandleDeliveryNotification)
}
