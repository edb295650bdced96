// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsRoute "school360_backend/internals/features/analytics/route"
	financeRoute "school360_backend/internals/features/finance/dva/route"
	financeService "school360_backend/internals/features/finance/dva/service"
	messagingRoute "school360_backend/internals/features/messaging/route"
	payrollRoute "school360_backend/internals/features/payroll/route"
	payrollService "school360_backend/internals/features/payroll/service"
	calendarRoute "school360_backend/internals/features/school/calendar/route"
	reportRoute "school360_backend/internals/features/school/reports/route"
	reportService "school360_backend/internals/features/school/reports/service"
	staffRoute "school360_backend/internals/features/school/staff/route"
	studentRoute "school360_backend/internals/features/school/students/route"
	taskRoute "school360_backend/internals/features/school/tasks/route"
	authRoute "school360_backend/internals/features/users/auth/route"
	authMiddleware "school360_backend/internals/middlewares/auth"
	"school360_backend/internals/platform/sms"
)

// Deps carries the services built during bootstrap. Routes receive them
// ready-made instead of constructing vendor clients themselves.
type Deps struct {
	AI      *reportService.AIService
	Payroll *payrollService.PayrollService
	Finance *financeService.VirtualAccountService
	Sender  sms.Sender
}

func SetupRoutes(app *fiber.App, db *gorm.DB, deps Deps) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app.Group("/api"), db)

	// ===================== WEBHOOKS (unauthenticated) =====================
	log.Println("[INFO] Setting up webhook routes...")
	webhooks := app.Group("/api/webhooks")
	financeRoute.FinanceWebhookRoutes(webhooks, db, deps.Finance)
	messagingRoute.MessagingWebhookRoutes(webhooks, db, deps.Sender)

	// ===================== USER (any signed-in role) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	authRoute.AuthUserRoutes(user, db)
	studentRoute.StudentUserRoutes(user, db)
	staffRoute.StaffUserRoutes(user, db)
	reportRoute.ReportUserRoutes(user, db, deps.AI)
	taskRoute.TaskUserRoutes(user, db)
	calendarRoute.CalendarUserRoutes(user, db)

	// ===================== ADMIN (role-gated per feature) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))
	studentRoute.StudentAdminRoutes(admin, db)
	staffRoute.StaffAdminRoutes(admin, db)
	reportRoute.ReportAdminRoutes(admin, db, deps.AI)
	calendarRoute.CalendarAdminRoutes(admin, db)
	analyticsRoute.AnalyticsAdminRoutes(admin, db)
	payrollRoute.PayrollAdminRoutes(admin, db, deps.Payroll)
	financeRoute.FinanceAdminRoutes(admin, db, deps.Finance)
	messagingRoute.MessagingAdminRoutes(admin, db, deps.Sender)
}
