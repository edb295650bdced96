package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school360_backend/internals/constants"
	"school360_backend/internals/features/school/calendar/controller"
	authMiddleware "school360_backend/internals/middlewares/auth"
)

func CalendarAdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("managing the calendar"),
			constants.AdminAndAbove,
		),
	)

	ctrl := controller.NewCalendarEventController(db)
	events := admin.Group("/calendar-events")
	events.Post("/", ctrl.CreateEvent)
	events.Patch("/:id", ctrl.UpdateEvent)
	events.Delete("/:id", ctrl.DeleteEvent)
}

func CalendarUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCalendarEventController(db)
	events := api.Group("/calendar-events")
	events.Get("/", ctrl.ListEvents)
	events.Get("/ics", ctrl.DownloadCalendarICS)
	events.Get("/:id/ics", ctrl.DownloadEventICS)
}
