package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school360_backend/internals/constants"
	"school360_backend/internals/features/school/staff/controller"
	authMiddleware "school360_backend/internals/middlewares/auth"
)

func StaffAdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("managing staff"),
			constants.AdminAndAbove,
		),
	)

	ctrl := controller.NewStaffController(db)
	staff := admin.Group("/staff")
	staff.Post("/", ctrl.CreateStaff)
	staff.Post("/bulk", ctrl.BulkCreateStaff)
	staff.Patch("/:id", ctrl.UpdateStaff)
	staff.Delete("/:id", ctrl.DeleteStaff)
}

func StaffUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStaffController(db)
	staff := api.Group("/staff")
	staff.Get("/", ctrl.ListStaff)
	staff.Get("/:id", ctrl.GetStaffByID)
}
