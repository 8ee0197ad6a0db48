// Package app is the boundary a user interface talks to: the todo operations and the
// reminder worker that keeps notifications flowing while the process runs.
package app

import (
	"context"

	todoService "dueday/internal/domains/todo/service"
	"dueday/transport/worker"
)

type App struct {
	Todos  todoService.Todo
	Worker *worker.Worker
}

func New(todos todoService.Todo, w *worker.Worker) *App {
	return &App{
		Todos:  todos,
		Worker: w,
	}
}

// Run starts the reminder worker and blocks until ctx is done or the process is signalled.
func (a *App) Run(ctx context.Context) error {
	return a.Worker.Run(ctx) //nolint:wrapcheck
}
