package factory

import (
	"time"

	fab "github.com/Goldziher/fabricator"

	"usertasks/internal/core/domain"
)

func NewTask(customData ...map[string]any) domain.Task {
	instance := fab.New(*new(domain.Task))

	defaults := map[string]any{
		"Status":    domain.TaskStatusPending,
		"CreatedAt": time.Now().UTC().Truncate(time.Second),
	}

	return instance.Build(append([]map[string]any{defaults}, customData...)...)
}
