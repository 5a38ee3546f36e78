package usecase

import (
	"strings"
	"time"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
	repo "smart-task-manager/internal/task/repository"
	"smart-task-manager/pkg/gcalendar"
)

// priorityColors highlights urgent tasks in the calendar; other priorities keep the calendar colour.
var priorityColors = map[model.Priority]string{
	model.PriorityP1: gcalendar.ColorTomato,
	model.PriorityP2: gcalendar.ColorTangerine,
}

var sortFields = map[string]string{
	task.SortByDueDate:  repo.OrderByDueDate,
	task.SortByPriority: repo.OrderByPriority,
	task.SortByAssignee: repo.OrderByAssignee,
}

// now returns override when set, otherwise the use case clock. Callers capture it once per operation.
func (uc *implUseCase) now(override *time.Time) time.Time {
	if override != nil {
		return *override
	}
	return uc.clock()
}

// coalesce returns newVal when it is non-empty, otherwise existing. Used for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

// priorityOrDefault maps "" to the default priority and rejects unknown values.
func priorityOrDefault(s string) (model.Priority, error) {
	if strings.TrimSpace(s) == "" {
		return model.DefaultPriority, nil
	}
	p, ok := model.ParsePriority(s)
	if !ok {
		return "", task.ErrInvalidPriority
	}
	return p, nil
}
