package handler

import (
	"net/http"

	"washify/internal/delivery/http/response"
	"washify/internal/domain/entity"
	"washify/internal/domain/repository"
	"washify/internal/infra/export"
	"washify/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the customer account list view.
type UserHandler struct {
	*ListHandler[entity.User]

	users repository.UserGateway
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.ListUsecase[entity.User], users repository.UserGateway, archive *export.ArchiveWriter) *UserHandler {
	return &UserHandler{
		ListHandler: newListHandler(uc, archive, "nguoi-dung", "Danh Sách Người Dùng"),
		users:       users,
	}
}

// GetByID returns a single user account.
func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid record id")
	}

	env := h.users.GetByID(c.Request().Context(), id)
	if !env.Success {
		return response.NotFound(c, "NOT_FOUND", env.Message)
	}

	return response.Success(c, http.StatusOK, env.Data, "OK")
}
