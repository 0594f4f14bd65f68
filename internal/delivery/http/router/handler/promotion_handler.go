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

// PromotionHandler serves the promotion list view and its CRUD surface.
type PromotionHandler struct {
	*ListHandler[entity.Promotion]

	promotions repository.PromotionGateway
}

// NewPromotionHandler is the constructor for PromotionHandler, injected by Fx.
func NewPromotionHandler(uc usecase.ListUsecase[entity.Promotion], promotions repository.PromotionGateway, archive *export.ArchiveWriter) *PromotionHandler {
	return &PromotionHandler{
		ListHandler: newListHandler(uc, archive, "khuyen-mai", "Danh Sách Khuyến Mãi"),
		promotions:  promotions,
	}
}

// ListActive returns only the promotions customers can apply right now.
func (h *PromotionHandler) ListActive(c echo.Context) error {
	env := h.promotions.ListActive(c.Request().Context())

	return response.Success(c, http.StatusOK, env.Data, env.Message)
}

// GetByID returns a single promotion.
func (h *PromotionHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid record id")
	}

	env := h.promotions.GetByID(c.Request().Context(), id)
	if !env.Success {
		return response.NotFound(c, "NOT_FOUND", env.Message)
	}

	return response.Success(c, http.StatusOK, env.Data, "OK")
}

// Create registers a new promotion.
func (h *PromotionHandler) Create(c echo.Context) error {
	var input repository.PromotionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promotion input")
	}

	promo, err := h.promotions.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.uc.Refresh(c.Request().Context())

	return response.Success(c, http.StatusCreated, promo, "Tạo khuyến mãi thành công")
}

// Update edits an existing promotion.
func (h *PromotionHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid record id")
	}

	var input repository.PromotionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promotion input")
	}

	promo, err := h.promotions.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.uc.Refresh(c.Request().Context())

	return response.Success(c, http.StatusOK, promo, "Cập nhật khuyến mãi thành công")
}
