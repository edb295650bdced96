package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school360_backend/internals/features/school/tasks/controller"
)

func TaskUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTaskController(db)
	tasks := api.Group("/tasks")
	tasks.Post("/", ctrl.CreateTask)
	tasks.Get("/", ctrl.ListTasks)
	tasks.Get("/board", ctrl.GetBoard)
	tasks.Patch("/:id", ctrl.UpdateTask)
	tasks.Patch("/:id/status", ctrl.UpdateTaskStatus)
	tasks.Delete("/:id", ctrl.ArchiveTask)
}
