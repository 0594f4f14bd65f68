// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	deliverycontext "washify/internal/delivery/context"
	"washify/internal/domain/entity"
	domainerrors "washify/internal/domain/errors"
	"washify/internal/errors"
	"washify/internal/usecase"
)

// Descriptor parameterizes the generic list controller for one entity
// type: where its collection comes from, which fields the search term
// matches, how a record classifies for the status filter, and how it
// projects into export rows. One descriptor per entity type replaces
// what would otherwise be six drifting copies of the same state
// machine.
type Descriptor[T any] struct {
	// Name identifies the entity type in logs.
	Name string

	// List fetches the collection. Read failures arrive as a failed
	// envelope, never an error.
	List func(ctx context.Context) entity.Envelope[[]T]

	// ID extracts the record identity.
	ID func(record T) int64

	// SearchText returns the fields the search term matches against.
	SearchText func(record T) []string

	// Status classifies a record for the status filter ("active",
	// "inactive", or a domain-specific multi-state value).
	Status func(record T) string

	// DateField returns the designated timestamp for range filtering.
	// Empty means the record has no value for that field.
	DateField func(record T) string

	// Toggle flips the record's active flag locally.
	Toggle func(record T) T

	// ConfirmToggle persists a toggle; nil means local-only.
	ConfirmToggle func(ctx context.Context, record T) error

	// ConfirmDelete persists a soft delete; nil means local-only.
	ConfirmDelete func(ctx context.Context, id int64) error

	// ExportRow projects a record into a labeled, formatted row.
	ExportRow func(record T) *entity.ExportRow
}

// listController implements usecase.ListUsecase for one entity type.
type listController[T any] struct {
	desc   Descriptor[T]
	logger *slog.Logger

	mu    sync.RWMutex
	state usecase.ListState[T]

	// seq orders refreshes so a stale response can never overwrite a
	// newer one.
	seq atomic.Uint64
}

// NewListController builds the controller for a descriptor.
func NewListController[T any](desc Descriptor[T], logger *slog.Logger) usecase.ListUsecase[T] {
	return &listController[T]{
		desc:   desc,
		logger: logger,
		state: usecase.ListState[T]{
			Status: usecase.StatusIdle,
			Items:  []T{},
		},
	}
}

func (c *listController[T]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// Refresh reloads the collection. Later calls win: each refresh takes
// a sequence ticket, and a result is only committed while its ticket
// is still the newest.
func (c *listController[T]) Refresh(ctx context.Context) usecase.ListState[T] {
	ticket := c.seq.Add(1)

	c.mu.Lock()
	c.state.Status = usecase.StatusLoading
	c.mu.Unlock()

	envelope := c.desc.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seq.Load() != ticket {
		// A newer refresh is in flight or already landed.
		c.log(ctx).Debug("discarding stale list response",
			slog.String("entity", c.desc.Name),
			slog.Uint64("ticket", ticket))

		return c.state
	}

	if !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = domainerrors.ErrGatewayRead.Message()
		}
		c.state = usecase.ListState[T]{
			Status: usecase.StatusErrored,
			Items:  []T{},
			Error:  message,
		}

		return c.state
	}

	items := envelope.Data
	if items == nil {
		items = []T{}
	}
	c.state = usecase.ListState[T]{
		Status: usecase.StatusLoaded,
		Items:  items,
	}
	c.log(ctx).Debug("list refreshed",
		slog.String("entity", c.desc.Name),
		slog.Int("count", len(items)))

	return c.state
}

func (c *listController[T]) State() usecase.ListState[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state
}

// ApplyFilter narrows the loaded items. Pure: the controller's state
// is untouched, every set dimension must match (AND), unset dimensions
// match everything.
func (c *listController[T]) ApplyFilter(criteria entity.FilterCriteria) []T {
	c.mu.RLock()
	items := c.state.Items
	c.mu.RUnlock()

	if criteria.IsZero() {
		out := make([]T, len(items))
		copy(out, items)

		return out
	}

	needle := strings.ToLower(criteria.SearchTerm)
	from, to, hasFrom, hasTo := criteria.DateBounds()

	out := make([]T, 0, len(items))
	for _, record := range items {
		if needle != "" && !c.matchesSearch(record, needle) {
			continue
		}
		if criteria.Status != "" && c.desc.Status(record) != criteria.Status {
			continue
		}
		if hasFrom || hasTo {
			when, ok := entity.ParseTimestamp(c.desc.DateField(record))
			if !ok {
				// A record without the timestamp cannot satisfy a bound.
				continue
			}
			if hasFrom && when.Before(from) {
				continue
			}
			if hasTo && when.After(to) {
				continue
			}
		}
		out = append(out, record)
	}

	return out
}

func (c *listController[T]) matchesSearch(record T, needle string) bool {
	for _, field := range c.desc.SearchText(record) {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}

// ToggleActive flips a record optimistically, keeps the pre-mutation
// snapshot, and restores it if the confirming write fails.
func (c *listController[T]) ToggleActive(ctx context.Context, id int64) error {
	if c.desc.Toggle == nil {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "%s records cannot be toggled", c.desc.Name)
	}

	snapshot, updated, ok := c.mutate(id, c.desc.Toggle)
	if !ok {
		return errors.Wrapf(domainerrors.ErrNotFound, "toggle %s %d", c.desc.Name, id)
	}

	if c.desc.ConfirmToggle == nil {
		return nil
	}

	if err := c.desc.ConfirmToggle(ctx, updated); err != nil {
		c.restore(snapshot)
		c.log(ctx).Warn("toggle rolled back",
			slog.String("entity", c.desc.Name),
			slog.Int64("id", id),
			slog.Any("error", err))

		return errors.Wrapf(err, "toggle %s %d", c.desc.Name, id)
	}

	return nil
}

// SoftDelete removes a record from the local set optimistically and
// restores the snapshot if the confirming write fails.
func (c *listController[T]) SoftDelete(ctx context.Context, id int64) error {
	c.mu.Lock()
	snapshot := c.state.Items
	kept := make([]T, 0, len(snapshot))
	found := false
	for _, record := range snapshot {
		if c.desc.ID(record) == id {
			found = true

			continue
		}
		kept = append(kept, record)
	}
	if found {
		c.state.Items = kept
	}
	c.mu.Unlock()

	if !found {
		return errors.Wrapf(domainerrors.ErrNotFound, "delete %s %d", c.desc.Name, id)
	}

	if c.desc.ConfirmDelete == nil {
		return nil
	}

	if err := c.desc.ConfirmDelete(ctx, id); err != nil {
		c.restore(snapshot)
		c.log(ctx).Warn("delete rolled back",
			slog.String("entity", c.desc.Name),
			slog.Int64("id", id),
			slog.Any("error", err))

		return errors.Wrapf(err, "delete %s %d", c.desc.Name, id)
	}

	return nil
}

// ExportRows projects records through the descriptor's label map.
func (c *listController[T]) ExportRows(records []T) []*entity.ExportRow {
	rows := make([]*entity.ExportRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, c.desc.ExportRow(record))
	}

	return rows
}

// mutate applies fn to the record with the given id and returns the
// pre-mutation item slice alongside the updated record.
func (c *listController[T]) mutate(id int64, fn func(T) T) (snapshot []T, updated T, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot = c.state.Items
	next := make([]T, len(snapshot))
	copy(next, snapshot)

	for i, record := range next {
		if c.desc.ID(record) != id {
			continue
		}
		updated = fn(record)
		next[i] = updated
		c.state.Items = next

		return snapshot, updated, true
	}

	return nil, updated, false
}

func (c *listController[T]) restore(snapshot []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Items = snapshot
}
