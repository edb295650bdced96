package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school360_backend/internals/constants"
	"school360_backend/internals/features/analytics/controller"
	authMiddleware "school360_backend/internals/middlewares/auth"
)

func AnalyticsAdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("viewing analytics"),
			constants.AdminAndAbove,
		),
	)

	ctrl := controller.NewAnalyticsController(db)
	analytics := admin.Group("/analytics")
	analytics.Get("/heatmap", ctrl.GetHeatmap)
	analytics.Get("/sentiment-trend", ctrl.GetSentimentTrend)
	analytics.Get("/task-trend", ctrl.GetTaskTrend)
	analytics.Get("/at-risk", ctrl.GetAtRisk)
}
