package handler

import (
	"net/http"

	"washify/internal/delivery/http/response"
	"washify/internal/domain/entity"
	"washify/internal/domain/repository"
	"washify/internal/infra/export"
	"washify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ServiceHandler serves the laundry service catalog.
type ServiceHandler struct {
	*ListHandler[entity.LaundryService]

	services repository.ServiceGateway
}

// NewServiceHandler is the constructor for ServiceHandler, injected by Fx.
func NewServiceHandler(uc usecase.ListUsecase[entity.LaundryService], services repository.ServiceGateway, archive *export.ArchiveWriter) *ServiceHandler {
	return &ServiceHandler{
		ListHandler: newListHandler(uc, archive, "dich-vu", "Danh Sách Dịch Vụ"),
		services:    services,
	}
}

// ListActive returns only the services customers can order right now.
func (h *ServiceHandler) ListActive(c echo.Context) error {
	env := h.services.ListActive(c.Request().Context())

	return response.Success(c, http.StatusOK, env.Data, env.Message)
}

// GetByID returns a single service.
func (h *ServiceHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid record id")
	}

	env := h.services.GetByID(c.Request().Context(), id)
	if !env.Success {
		return response.NotFound(c, "NOT_FOUND", env.Message)
	}

	return response.Success(c, http.StatusOK, env.Data, "OK")
}

// Create registers a new service.
func (h *ServiceHandler) Create(c echo.Context) error {
	var input repository.ServiceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}

	svc, err := h.services.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.uc.Refresh(c.Request().Context())

	return response.Success(c, http.StatusCreated, svc, "Tạo dịch vụ thành công")
}

// Update edits an existing service.
func (h *ServiceHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid record id")
	}

	var input repository.ServiceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}

	svc, err := h.services.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.uc.Refresh(c.Request().Context())

	return response.Success(c, http.StatusOK, svc, "Cập nhật dịch vụ thành công")
}
