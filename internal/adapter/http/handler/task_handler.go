package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	. "usertasks/internal/adapter/http/helper"
	"usertasks/internal/core/model/response"
	"usertasks/internal/core/port"
	. "usertasks/pkg/tracing"
)

type TaskHandler struct {
	svc port.TaskService
}

func NewTaskHandler(svc port.TaskService) *TaskHandler {
	return &TaskHandler{
		svc: svc,
	}
}

// GetTasks lists every task, or those whose title or description contains
// ?q= when the parameter is present.
func (h *TaskHandler) GetTasks(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.task.GetTasks", []attribute.KeyValue{
		attribute.String("handler.operation", "GetTasks"),
	})
	defer span.End()

	tasks, err := h.svc.List(ctx, searchTerm(c))

	if err != nil {
		AddSpanError(span, err)
		SendError(c, err)
		return
	}

	span.SetAttributes(attribute.Int("tasks.count", len(tasks)))

	SendSuccess(c, http.StatusOK, response.NewTasksResponse(tasks))
}
