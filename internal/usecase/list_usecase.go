package usecase

import (
	"context"

	"washify/internal/domain/entity"
)

// ListStatus is the list controller's state machine position:
// idle -> loading -> loaded | errored, and loaded -> loading again on
// a manual refresh.
type ListStatus string

const (
	StatusIdle    ListStatus = "idle"
	StatusLoading ListStatus = "loading"
	StatusLoaded  ListStatus = "loaded"
	StatusErrored ListStatus = "errored"
)

// ListState is a snapshot of a list controller. Items is never nil;
// an errored state carries the user-facing message and an empty slice.
type ListState[T any] struct {
	Status ListStatus `json:"status"`
	Items  []T        `json:"items"`
	Error  string     `json:"error,omitempty"`
}

// ListUsecase is the stateful core behind every entity list view,
// instantiated once per entity type.
type ListUsecase[T any] interface {
	// Refresh reloads the collection from the gateway and returns the
	// resulting state. A stale response (one overtaken by a newer
	// Refresh) never overwrites the newer result.
	Refresh(ctx context.Context) ListState[T]

	// State returns the current snapshot without touching the network.
	State() ListState[T]

	// ApplyFilter narrows the loaded items by the given criteria. Pure:
	// it never mutates controller state, so it can run on any subset
	// any number of times. All set dimensions combine with AND.
	ApplyFilter(criteria entity.FilterCriteria) []T

	// ToggleActive flips a record's active flag optimistically, then
	// confirms with the backend; on write failure the pre-mutation
	// snapshot is restored and the error returned.
	ToggleActive(ctx context.Context, id int64) error

	// SoftDelete removes a record from the local set optimistically,
	// then confirms with the backend; on write failure the snapshot is
	// restored and the error returned.
	SoftDelete(ctx context.Context, id int64) error

	// ExportRows projects records through the entity's label map with
	// display formatting applied. Pure.
	ExportRows(records []T) []*entity.ExportRow
}
