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

// OrderHandler serves the order list view and the status workflow.
type OrderHandler struct {
	*ListHandler[entity.Order]

	orders repository.OrderGateway
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.ListUsecase[entity.Order], orders repository.OrderGateway, archive *export.ArchiveWriter) *OrderHandler {
	return &OrderHandler{
		ListHandler: newListHandler(uc, archive, "don-hang", "Danh Sách Đơn Hàng"),
		orders:      orders,
	}
}

// GetByID returns a single order with its items and payment.
func (h *OrderHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid record id")
	}

	env := h.orders.GetByID(c.Request().Context(), id)
	if !env.Success {
		return response.NotFound(c, "NOT_FOUND", env.Message)
	}

	return response.Success(c, http.StatusOK, env.Data, "OK")
}

type updateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus moves an order along its status workflow.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid record id")
	}

	var input updateOrderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.orders.UpdateStatus(c.Request().Context(), id, input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	// The cached list still shows the old status until reloaded.
	h.uc.Refresh(c.Request().Context())

	return response.Success(c, http.StatusOK, order, "Cập nhật trạng thái thành công")
}
