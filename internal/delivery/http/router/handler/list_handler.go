// Package handler contains the HTTP handlers for the application.
package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"washify/internal/delivery/http/response"
	"washify/internal/domain/entity"
	"washify/internal/infra/export"
	"washify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ListHandler serves the shared list-view surface of one entity
// collection: snapshot with filtering, manual refresh, the optimistic
// mutations, and the export download. Entity-specific handlers embed
// it and add their own endpoints on top.
type ListHandler[T any] struct {
	uc      usecase.ListUsecase[T]
	archive *export.ArchiveWriter

	// name is the export file base name, title the document heading.
	name  string
	title string
}

func newListHandler[T any](uc usecase.ListUsecase[T], archive *export.ArchiveWriter, name, title string) *ListHandler[T] {
	return &ListHandler[T]{
		uc:      uc,
		archive: archive,
		name:    name,
		title:   title,
	}
}

// List returns the current snapshot, loading it on first access.
// Filter criteria come from the query string and narrow the items
// without touching controller state.
func (h *ListHandler[T]) List(c echo.Context) error {
	var criteria entity.FilterCriteria
	if err := c.Bind(&criteria); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter criteria")
	}

	state := h.uc.State()
	if state.Status == usecase.StatusIdle {
		state = h.uc.Refresh(c.Request().Context())
	}

	if !criteria.IsZero() {
		state.Items = h.uc.ApplyFilter(criteria)
	}

	return response.Success(c, http.StatusOK, state, "OK")
}

// Refresh forces a reload from the backend and returns the new state.
func (h *ListHandler[T]) Refresh(c echo.Context) error {
	state := h.uc.Refresh(c.Request().Context())

	return response.Success(c, http.StatusOK, state, "OK")
}

// ToggleActive flips a record's active flag.
func (h *ListHandler[T]) ToggleActive(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid record id")
	}

	if err := h.uc.ToggleActive(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.State(), "OK")
}

// SoftDelete removes a record from the collection.
func (h *ListHandler[T]) SoftDelete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid record id")
	}

	if err := h.uc.SoftDelete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.State(), "OK")
}

// Export renders the (optionally filtered) collection in the requested
// format and offers it as a download. A copy goes to the archive
// bucket best-effort.
func (h *ListHandler[T]) Export(c echo.Context) error {
	var criteria entity.FilterCriteria
	if err := c.Bind(&criteria); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter criteria")
	}

	state := h.uc.State()
	if state.Status == usecase.StatusIdle {
		state = h.uc.Refresh(c.Request().Context())
	}

	items := state.Items
	if !criteria.IsZero() {
		items = h.uc.ApplyFilter(criteria)
	}

	format := export.Format(c.QueryParam("format"))
	if format == "" {
		format = export.FormatCSV
	}

	artifact, err := export.Render(format, h.uc.ExportRows(items), h.title)
	if err != nil {
		return errors.WithStack(err)
	}

	h.archive.Save(c.Request().Context(), h.name, artifact)

	filename := fmt.Sprintf("%s.%s", h.name, artifact.Extension)
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, filename))

	return c.Blob(http.StatusOK, artifact.ContentType, artifact.Content)
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
