package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"school360_backend/internals/features/school/tasks/model"
)

func task(title, status string) model.TaskModel {
	return model.TaskModel{TaskID: uuid.New(), TaskTitle: title, TaskStatus: status}
}

func TestToModelDefaults(t *testing.T) {
	m := (&TaskRequest{TaskTitle: "Mark scripts"}).ToModel(uuid.New(), uuid.New())

	assert.Equal(t, model.StatusToDo, m.TaskStatus)
	assert.Equal(t, model.PriorityMedium, m.TaskPriority)
}

func TestToBoardGroupsByStatus(t *testing.T) {
	tasks := []model.TaskModel{
		task("a", model.StatusToDo),
		task("b", model.StatusInProgress),
		task("c", model.StatusToDo),
		task("d", model.StatusCompleted),
		task("e", model.StatusArchived),
	}

	board := ToBoard(tasks, false)

	assert.Len(t, board, 3, "archived column absent by default")
	assert.Len(t, board[model.StatusToDo], 2)
	assert.Len(t, board[model.StatusInProgress], 1)
	assert.Len(t, board[model.StatusCompleted], 1)
	assert.NotContains(t, board, model.StatusArchived)
}

func TestToBoardIncludesArchivedOnRequest(t *testing.T) {
	board := ToBoard([]model.TaskModel{task("e", model.StatusArchived)}, true)

	assert.Len(t, board[model.StatusArchived], 1)
	// empty columns still present so the UI renders all lanes
	assert.NotNil(t, board[model.StatusToDo])
	assert.Empty(t, board[model.StatusToDo])
}
