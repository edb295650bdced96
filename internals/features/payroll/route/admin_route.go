package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school360_backend/internals/constants"
	"school360_backend/internals/features/payroll/controller"
	"school360_backend/internals/features/payroll/service"
	authMiddleware "school360_backend/internals/middlewares/auth"
)

// Bursar-side: payroll runs and payslips
func PayrollAdminRoutes(api fiber.Router, db *gorm.DB, svc *service.PayrollService) {
	bursar := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorBursar("managing payroll"),
			constants.BursarAndAbove,
		),
	)

	ctrl := controller.NewPayrollController(db, svc)
	payroll := bursar.Group("/payroll")
	payroll.Post("/runs", ctrl.GenerateRun)
	payroll.Get("/runs", ctrl.ListRuns)
	payroll.Patch("/runs/:id/approve", ctrl.ApproveRun)
	payroll.Get("/payslips/:id/pdf", ctrl.DownloadPayslipPDF)
}
