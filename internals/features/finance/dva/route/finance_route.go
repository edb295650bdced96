package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school360_backend/internals/constants"
	"school360_backend/internals/features/finance/dva/controller"
	"school360_backend/internals/features/finance/dva/service"
	authMiddleware "school360_backend/internals/middlewares/auth"
)

// Bursar-side: virtual account lifecycle
func FinanceAdminRoutes(api fiber.Router, db *gorm.DB, svc *service.VirtualAccountService) {
	bursar := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorBursar("managing virtual accounts"),
			constants.BursarAndAbove,
		),
	)

	ctrl := controller.NewVirtualAccountController(db, svc)
	vas := bursar.Group("/virtual-accounts")
	vas.Post("/", ctrl.CreateVirtualAccount)
	vas.Get("/", ctrl.ListVirtualAccounts)
	vas.Get("/:id", ctrl.GetVirtualAccountByID)
	vas.Patch("/:id/close", ctrl.CloseVirtualAccount)
}

// Unauthenticated gateway callback; signature-checked in the handler.
func FinanceWebhookRoutes(api fiber.Router, db *gorm.DB, svc *service.VirtualAccountService) {
	ctrl := controller.NewWebhookController(db, svc)
	api.Post("/midtrans", ctrl.HandleMidtransNotification)
}
