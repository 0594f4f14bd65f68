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

// ShipperHandler serves the delivery staff list view.
type ShipperHandler struct {
	*ListHandler[entity.Shipper]

	shippers repository.ShipperGateway
}

// NewShipperHandler is the constructor for ShipperHandler, injected by Fx.
func NewShipperHandler(uc usecase.ListUsecase[entity.Shipper], shippers repository.ShipperGateway, archive *export.ArchiveWriter) *ShipperHandler {
	return &ShipperHandler{
		ListHandler: newListHandler(uc, archive, "shipper", "Danh Sách Shipper"),
		shippers:    shippers,
	}
}

// GetByID returns a single shipper.
func (h *ShipperHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid record id")
	}

	env := h.shippers.GetByID(c.Request().Context(), id)
	if !env.Success {
		return response.NotFound(c, "NOT_FOUND", env.Message)
	}

	return response.Success(c, http.StatusOK, env.Data, "OK")
}

// Statistics returns a shipper's delivery numbers.
func (h *ShipperHandler) Statistics(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid record id")
	}

	env := h.shippers.Statistics(c.Request().Context(), id)

	return response.Success(c, http.StatusOK, env.Data, env.Message)
}

// Create registers a new shipper.
func (h *ShipperHandler) Create(c echo.Context) error {
	var input repository.ShipperInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shipper input")
	}

	shipper, err := h.shippers.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.uc.Refresh(c.Request().Context())

	return response.Success(c, http.StatusCreated, shipper, "Tạo shipper thành công")
}

// Update edits an existing shipper.
func (h *ShipperHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid record id")
	}

	var input repository.ShipperInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shipper input")
	}

	shipper, err := h.shippers.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.uc.Refresh(c.Request().Context())

	return response.Success(c, http.StatusOK, shipper, "Cập nhật shipper thành công")
}
