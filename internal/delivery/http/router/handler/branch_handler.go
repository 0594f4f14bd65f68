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

// BranchHandler serves the branch list view and its CRUD surface.
type BranchHandler struct {
	*ListHandler[entity.Branch]

	branches repository.BranchGateway
}

// NewBranchHandler is the constructor for BranchHandler, injected by Fx.
func NewBranchHandler(uc usecase.ListUsecase[entity.Branch], branches repository.BranchGateway, archive *export.ArchiveWriter) *BranchHandler {
	return &BranchHandler{
		ListHandler: newListHandler(uc, archive, "chi-nhanh", "Danh Sách Chi Nhánh"),
		branches:    branches,
	}
}

// ListActive returns only the branches currently accepting orders.
func (h *BranchHandler) ListActive(c echo.Context) error {
	env := h.branches.ListActive(c.Request().Context())

	return response.Success(c, http.StatusOK, env.Data, env.Message)
}

// GetByID returns a single branch.
func (h *BranchHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid record id")
	}

	env := h.branches.GetByID(c.Request().Context(), id)
	if !env.Success {
		return response.NotFound(c, "NOT_FOUND", env.Message)
	}

	return response.Success(c, http.StatusOK, env.Data, "OK")
}

// Create registers a new branch.
func (h *BranchHandler) Create(c echo.Context) error {
	var input repository.BranchInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid branch input")
	}

	branch, err := h.branches.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.uc.Refresh(c.Request().Context())

	return response.Success(c, http.StatusCreated, branch, "Tạo chi nhánh thành công")
}

// Update edits an existing branch.
func (h *BranchHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid record id")
	}

	var input repository.BranchInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid branch input")
	}

	branch, err := h.branches.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.uc.Refresh(c.Request().Context())

	return response.Success(c, http.StatusOK, branch, "Cập nhật chi nhánh thành công")
}
