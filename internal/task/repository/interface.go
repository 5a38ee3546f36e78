package repository

import (
	"context"

	"smart-task-manager/internal/model"
)

// Repository is the data access interface for stored tasks.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	// GetTask returns a zero-value Task (ID == "") when the task does not exist.
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
