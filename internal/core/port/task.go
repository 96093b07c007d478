package port

import (
	"context"

	"usertasks/internal/core/domain"
)

type TaskRepository interface {
	GetAll(ctx context.Context) ([]domain.Task, error)
	// Search matches term against title or description.
	Search(ctx context.Context, term string) ([]domain.Task, error)
}

type TaskService interface {
	List(ctx context.Context, term *string) ([]domain.Task, error)
}
