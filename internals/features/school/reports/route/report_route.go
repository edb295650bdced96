package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school360_backend/internals/constants"
	"school360_backend/internals/features/school/reports/controller"
	"school360_backend/internals/features/school/reports/service"
	authMiddleware "school360_backend/internals/middlewares/auth"
)

// Admin-side: responses and AI drafting
func ReportAdminRoutes(api fiber.Router, db *gorm.DB, aiSvc *service.AIService) {
	admin := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("responding to reports"),
			constants.AdminAndAbove,
		),
	)

	ctrl := controller.NewReportController(db, aiSvc)
	reports := admin.Group("/reports")
	reports.Patch("/:id/response", ctrl.RespondToReport)
	reports.Post("/:id/draft-response", ctrl.DraftResponse)
	reports.Post("/:id/action-plan", ctrl.ActionPlan)
	reports.Post("/summarize", ctrl.Summarize)
}

// Staff-side: submit and read
func ReportUserRoutes(api fiber.Router, db *gorm.DB, aiSvc *service.AIService) {
	ctrl := controller.NewReportController(db, aiSvc)
	reports := api.Group("/reports")
	reports.Post("/", ctrl.CreateReport)
	reports.Get("/", ctrl.ListReports)
	reports.Get("/:id", ctrl.GetReportByID)
}
