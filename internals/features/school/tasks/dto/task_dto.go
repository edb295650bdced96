package dto

import (
	"time"

	"github.com/google/uuid"

	"school360_backend/internals/features/school/tasks/model"
)

type TaskRequest struct {
	TaskTitle       string     `json:"task_title" validate:"required,min=1,max=255"`
	TaskDescription string     `json:"task_description"`
	TaskPriority    string     `json:"task_priority" validate:"omitempty,oneof=Low Medium High Critical"`
	TaskDueDate     *time.Time `json:"task_due_date"`
}

type TaskUpdateRequest struct {
	TaskTitle       *string    `json:"task_title"`
	TaskDescription *string    `json:"task_description"`
	TaskPriority    *string    `json:"task_priority"`
	TaskDueDate     *time.Time `json:"task_due_date"`
}

type TaskStatusRequest struct {
	TaskStatus string `json:"task_status" validate:"required,oneof=ToDo InProgress Completed Archived"`
}

type TaskResponse struct {
	TaskID          uuid.UUID  `json:"task_id"`
	TaskUserID      uuid.UUID  `json:"task_user_id"`
	TaskTitle       string     `json:"task_title"`
	TaskDescription string     `json:"task_description"`
	TaskStatus      string     `json:"task_status"`
	TaskPriority    string     `json:"task_priority"`
	TaskDueDate     *time.Time `json:"task_due_date,omitempty"`
	TaskCreatedAt   string     `json:"task_created_at"`
	TaskUpdatedAt   string     `json:"task_updated_at"`
}

func (r *TaskRequest) ToModel(schoolID, userID uuid.UUID) *model.TaskModel {
	priority := r.TaskPriority
	if priority == "" {
		priority = model.PriorityMedium
	}
	return &model.TaskModel{
		TaskSchoolID:    schoolID,
		TaskUserID:      userID,
		TaskTitle:       r.TaskTitle,
		TaskDescription: r.TaskDescription,
		TaskStatus:      model.StatusToDo,
		TaskPriority:    priority,
		TaskDueDate:     r.TaskDueDate,
	}
}

func ToTaskResponse(m *model.TaskModel) *TaskResponse {
	return &TaskResponse{
		TaskID:          m.TaskID,
		TaskUserID:      m.TaskUserID,
		TaskTitle:       m.TaskTitle,
		TaskDescription: m.TaskDescription,
		TaskStatus:      m.TaskStatus,
		TaskPriority:    m.TaskPriority,
		TaskDueDate:     m.TaskDueDate,
		TaskCreatedAt:   m.TaskCreatedAt.Format("2006-01-02 15:04:05"),
		TaskUpdatedAt:   m.TaskUpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToTaskResponseList(models []model.TaskModel) []TaskResponse {
	result := make([]TaskResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToTaskResponse(&m))
	}
	return result
}

// ToBoard groups tasks by status for the kanban view. Archived tasks are
// excluded unless asked for.
func ToBoard(models []model.TaskModel, includeArchived bool) map[string][]TaskResponse {
	board := map[string][]TaskResponse{
		model.StatusToDo:       {},
		model.StatusInProgress: {},
		model.StatusCompleted:  {},
	}
	if includeArchived {
		board[model.StatusArchived] = []TaskResponse{}
	}
	for i := range models {
		if models[i].TaskStatus == model.StatusArchived && !includeArchived {
			continue
		}
		board[models[i].TaskStatus] = append(board[models[i].TaskStatus], *ToTaskResponse(&models[i]))
	}
	return board
}
