package memory

import (
	"fmt"
	"sync"
	"time"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task/repository"
	"smart-task-manager/pkg/log"
)

type implRepository struct {
	l     log.Logger
	clock func() time.Time

	mu    sync.RWMutex
	tasks map[string]model.Task
	order []string // IDs in insertion order
}

// New creates an in-memory task Repository. Data lives for the lifetime of the process.
func New(l log.Logger) repository.Repository {
	return newRepository(l, time.Now)
}

func newRepository(l log.Logger, clock func() time.Time) *implRepository {
	return &implRepository{
		l:     l,
		clock: clock,
		tasks: make(map[string]model.Task),
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/memory.%s", method)
}
