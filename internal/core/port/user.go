package port

import (
	"context"

	"usertasks/internal/core/domain"
	"usertasks/internal/core/model/request"
)

type UserRepository interface {
	GetAll(ctx context.Context) ([]domain.User, error)
	SearchByName(ctx context.Context, term string) ([]domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
	// DeleteCascade removes the user and its users_tasks rows atomically.
	DeleteCascade(ctx context.Context, id string) error
}

type UserService interface {
	Ping(ctx context.Context) ([]domain.User, error)
	List(ctx context.Context, term *string) ([]domain.User, error)
	Create(ctx context.Context, req request.CreateUserRequest) (domain.User, error)
	Delete(ctx context.Context, id string) error
}
