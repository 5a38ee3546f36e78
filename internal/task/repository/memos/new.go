package memos

import (
	"fmt"

	"smart-task-manager/internal/task/repository"
	pkgLog "smart-task-manager/pkg/log"
)

const (
	defaultVisibility = "PRIVATE"
	listPageSize      = 100
	// listFilter selects memos carrying TaskTag.
	listFilter = `tag in ["task"]`
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a task Repository backed by a Memos server. Each task is one
// private memo tagged #task.
func New(client *Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/memos.%s", method)
}
