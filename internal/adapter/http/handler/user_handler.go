package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	. "usertasks/internal/adapter/http/helper"
	"usertasks/internal/core/domain"
	"usertasks/internal/core/model/request"
	"usertasks/internal/core/model/response"
	"usertasks/internal/core/port"
	. "usertasks/pkg/tracing"
)

type UserHandler struct {
	svc port.UserService
}

func NewUserHandler(svc port.UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

func (h *UserHandler) Ping(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.user.Ping", []attribute.KeyValue{
		attribute.String("handler.operation", "Ping"),
	})
	defer span.End()

	users, err := h.svc.Ping(ctx)

	if err != nil {
		AddSpanError(span, err)
		SendError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, response.PingResponse{
		Message: domain.MsgPong,
		Result:  response.NewUsersResponse(users),
	})
}

// GetUsers lists every user, or those whose name contains ?q= when the
// parameter is present (even empty).
func (h *UserHandler) GetUsers(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.user.GetUsers", []attribute.KeyValue{
		attribute.String("handler.operation", "GetUsers"),
	})
	defer span.End()

	users, err := h.svc.List(ctx, searchTerm(c))

	if err != nil {
		AddSpanError(span, err)
		SendError(c, err)
		return
	}

	span.SetAttributes(attribute.Int("users.count", len(users)))

	SendSuccess(c, http.StatusOK, response.NewUsersResponse(users))
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.user.CreateUser", []attribute.KeyValue{
		attribute.String("handler.operation", "CreateUser"),
	})
	defer span.End()

	var params request.CreateUserRequest

	// an empty body is validated like an empty object
	if err := c.ShouldBindJSON(&params); err != nil && !errors.Is(err, io.EOF) {
		AddSpanError(span, err)
		SendError(c, domain.NewInvalid("body", domain.MsgInvalidRequest))
		return
	}

	user, err := h.svc.Create(ctx, params)

	if err != nil {
		AddSpanError(span, err)
		SendError(c, err)
		return
	}

	span.SetAttributes(attribute.String("user.id", user.ID))

	SendSuccess(c, http.StatusCreated, response.CreateUserResponse{
		Message: domain.MsgUserCreated,
		User:    response.NewUserResponse(user),
	})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	ctx, span := CreateChildSpan(c.Request.Context(), "handler.user.DeleteUser", []attribute.KeyValue{
		attribute.String("handler.operation", "DeleteUser"),
		attribute.String("user.id", id),
	})
	defer span.End()

	if err := h.svc.Delete(ctx, id); err != nil {
		AddSpanError(span, err)
		SendError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, response.MessageResponse{Message: domain.MsgUserDeleted})
}

func searchTerm(c *gin.Context) *string {
	if q, ok := c.GetQuery("q"); ok {
		return &q
	}

	return nil
}
