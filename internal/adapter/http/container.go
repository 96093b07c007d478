package http

import (
	"usertasks/internal/adapter/database"
	"usertasks/internal/adapter/http/handler"
	"usertasks/internal/core/port"
	"usertasks/internal/core/service"
)

type Container struct {
	UserRepo port.UserRepository
	TaskRepo port.TaskRepository

	UserService port.UserService
	TaskService port.TaskService

	UserHandler *handler.UserHandler
	TaskHandler *handler.TaskHandler
}

func NewContainer(store *database.Store) *Container {
	userSvc := service.NewUserService(store.Users)
	taskSvc := service.NewTaskService(store.Tasks)

	return &Container{
		UserRepo: store.Users,
		TaskRepo: store.Tasks,

		UserService: userSvc,
		TaskService: taskSvc,

		UserHandler: handler.NewUserHandler(userSvc),
		TaskHandler: handler.NewTaskHandler(taskSvc),
	}
}
