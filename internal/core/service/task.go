package service

import (
	"context"

	"usertasks/internal/core/domain"
	"usertasks/internal/core/port"
)

type TaskService struct {
	repo port.TaskRepository
}

func NewTaskService(repo port.TaskRepository) *TaskService {
	return &TaskService{repo}
}

// List returns every task when term is nil, otherwise the tasks whose title
// or description contains term.
func (ts *TaskService) List(ctx context.Context, term *string) ([]domain.Task, error) {
	if term == nil {
		return ts.repo.GetAll(ctx)
	}

	return ts.repo.Search(ctx, *term)
}
