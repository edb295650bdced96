package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school360_backend/internals/constants"
	"school360_backend/internals/features/school/students/controller"
	authMiddleware "school360_backend/internals/middlewares/auth"
)

// Login required + admin role
func StudentAdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("managing students"),
			constants.AdminAndAbove,
		),
	)

	ctrl := controller.NewStudentController(db)
	students := admin.Group("/students")
	students.Post("/", ctrl.CreateStudent)
	students.Post("/import", ctrl.ImportStudents)
	students.Patch("/:id", ctrl.UpdateStudent)
	students.Delete("/:id", ctrl.DeleteStudent)
}

// Login required, any role
func StudentUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)
	students := api.Group("/students")
	students.Get("/", ctrl.ListStudents)
	students.Get("/:id", ctrl.GetStudentByID)
}
