package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school360_backend/internals/features/school/tasks/dto"
	"school360_backend/internals/features/school/tasks/model"
	helper "school360_backend/internals/helpers"
)

type TaskController struct {
	DB *gorm.DB
}

func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{DB: db}
}

// 🟢 POST /api/u/tasks
func (ctrl *TaskController) CreateTask(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(c, &req); err != nil {
		return err
	}

	newTask := req.ToModel(schoolID, userID)
	if err := ctrl.DB.Create(newTask).Error; err != nil {
		log.Printf("[ERROR] create task: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save task")
	}
	return helper.JsonCreated(c, "Task created", dto.ToTaskResponse(newTask))
}

// 🟢 GET /api/u/tasks/board?include_archived=true
func (ctrl *TaskController) GetBoard(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var tasks []model.TaskModel
	if err := ctrl.DB.
		Where("task_user_id = ?", userID).
		Order("task_created_at ASC").
		Find(&tasks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load tasks")
	}
	includeArchived := c.Query("include_archived") == "true"
	return helper.JsonOK(c, "Board loaded", dto.ToBoard(tasks, includeArchived))
}

// 🟢 GET /api/u/tasks
func (ctrl *TaskController) ListTasks(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Model(&model.TaskModel{}).Where("task_user_id = ?", userID)
	if status := c.Query("status"); status != "" {
		if !model.ValidStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task status")
		}
		q = q.Where("task_status = ?", status)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count tasks")
	}
	var tasks []model.TaskModel
	if err := q.Order("task_created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&tasks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load tasks")
	}
	return helper.JsonList(c, "Tasks loaded", dto.ToTaskResponseList(tasks), helper.BuildPagination(paging, total))
}

// 🟡 PATCH /api/u/tasks/:id
func (ctrl *TaskController) UpdateTask(c *fiber.Ctx) error {
	task, errResp := ctrl.loadOwnTask(c)
	if task == nil {
		return errResp
	}

	var req dto.TaskUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.TaskTitle != nil {
		updates["task_title"] = *req.TaskTitle
	}
	if req.TaskDescription != nil {
		updates["task_description"] = *req.TaskDescription
	}
	if req.TaskPriority != nil {
		if !model.ValidPriority(*req.TaskPriority) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task priority")
		}
		updates["task_priority"] = *req.TaskPriority
	}
	if req.TaskDueDate != nil {
		updates["task_due_date"] = *req.TaskDueDate
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(task).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update task")
	}
	if err := ctrl.DB.Where("task_id = ?", task.TaskID).First(task).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload task")
	}
	return helper.JsonUpdated(c, "Task updated", dto.ToTaskResponse(task))
}

// 🟡 PATCH /api/u/tasks/:id/status - drag-drop / keyboard transitions
func (ctrl *TaskController) UpdateTaskStatus(c *fiber.Ctx) error {
	task, errResp := ctrl.loadOwnTask(c)
	if task == nil {
		return errResp
	}

	var req dto.TaskStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(c, &req); err != nil {
		return err
	}

	if err := ctrl.DB.Model(task).Update("task_status", req.TaskStatus).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update task status")
	}
	task.TaskStatus = req.TaskStatus
	return helper.JsonUpdated(c, "Task status updated", dto.ToTaskResponse(task))
}

// 🔴 DELETE /api/u/tasks/:id - archives, never deletes
func (ctrl *TaskController) ArchiveTask(c *fiber.Ctx) error {
	task, errResp := ctrl.loadOwnTask(c)
	if task == nil {
		return errResp
	}
	if err := ctrl.DB.Model(task).Update("task_status", model.StatusArchived).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to archive task")
	}
	task.TaskStatus = model.StatusArchived
	return helper.JsonUpdated(c, "Task archived", dto.ToTaskResponse(task))
}

// loadOwnTask fetches :id and checks ownership. On failure the second
// return value is the response already written.
func (ctrl *TaskController) loadOwnTask(c *fiber.Ctx) (*model.TaskModel, error) {
	id := c.Params("id")
	if id == "" {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Task ID is required")
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, helper.FromFiberError(c, err)
	}
	var task model.TaskModel
	if err := ctrl.DB.Where("task_id = ?", id).First(&task).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Task not found")
	}
	if task.TaskUserID != userID {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "Not your task")
	}
	return &task, nil
}
