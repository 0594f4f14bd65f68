package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"washify/internal/domain/entity"
	domainerrors "washify/internal/domain/errors"
	"washify/internal/errors"
	"washify/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID       int64
	Name     string
	IsActive bool
	Date     string
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testDescriptor(list func(ctx context.Context) entity.Envelope[[]testRecord]) Descriptor[testRecord] {
	return Descriptor[testRecord]{
		Name: "test",
		List: list,
		ID:   func(r testRecord) int64 { return r.ID },
		SearchText: func(r testRecord) []string {
			return []string{r.Name}
		},
		Status: func(r testRecord) string {
			if r.IsActive {
				return "active"
			}

			return "inactive"
		},
		DateField: func(r testRecord) string { return r.Date },
		Toggle: func(r testRecord) testRecord {
			r.IsActive = !r.IsActive

			return r
		},
		ExportRow: func(r testRecord) *entity.ExportRow {
			return entity.NewExportRow().Set("ID", r.ID).Set("Tên", r.Name)
		},
	}
}

func fixedList(records []testRecord) func(ctx context.Context) entity.Envelope[[]testRecord] {
	return func(ctx context.Context) entity.Envelope[[]testRecord] {
		return entity.Ok(records)
	}
}

func TestListController_RefreshMovesIdleToLoaded(t *testing.T) {
	c := NewListController(testDescriptor(fixedList([]testRecord{{ID: 1, Name: "a"}})), testLogger())

	assert.Equal(t, usecase.StatusIdle, c.State().Status)

	state := c.Refresh(context.Background())
	assert.Equal(t, usecase.StatusLoaded, state.Status)
	require.Len(t, state.Items, 1)
	assert.Empty(t, state.Error)
}

func TestListController_FailedReadDegradesToEmptyState(t *testing.T) {
	desc := testDescriptor(func(ctx context.Context) entity.Envelope[[]testRecord] {
		return entity.Fail([]testRecord{}, "Không thể tải dữ liệu")
	})
	c := NewListController(desc, testLogger())

	state := c.Refresh(context.Background())
	assert.Equal(t, usecase.StatusErrored, state.Status)
	assert.NotNil(t, state.Items)
	assert.Empty(t, state.Items)
	assert.Equal(t, "Không thể tải dữ liệu", state.Error)
}

func TestListController_StaleRefreshNeverOverwritesNewer(t *testing.T) {
	// The first refresh blocks until the second one has landed, then
	// answers with data that must be discarded.
	firstStarted := make(chan struct{})
	release := make(chan struct{})
	var calls int
	var mu sync.Mutex

	desc := testDescriptor(func(ctx context.Context) entity.Envelope[[]testRecord] {
		mu.Lock()
		calls++
		call := calls
		mu.Unlock()

		if call == 1 {
			close(firstStarted)
			<-release

			return entity.Ok([]testRecord{{ID: 99, Name: "stale"}})
		}

		return entity.Ok([]testRecord{{ID: 1, Name: "fresh"}})
	})
	c := NewListController(desc, testLogger())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Refresh(context.Background())
	}()

	<-firstStarted
	state := c.Refresh(context.Background())
	require.Len(t, state.Items, 1)
	assert.Equal(t, "fresh", state.Items[0].Name)

	close(release)
	wg.Wait()

	final := c.State()
	require.Len(t, final.Items, 1)
	assert.Equal(t, "fresh", final.Items[0].Name, "stale response must not overwrite the newer one")
}

func TestListController_ApplyFilterIsPureAndConjunctive(t *testing.T) {
	records := []testRecord{
		{ID: 1, Name: "Giặt khô", IsActive: true, Date: "2025-01-10T08:00:00"},
		{ID: 2, Name: "Giặt ướt", IsActive: false, Date: "2025-01-20T08:00:00"},
		{ID: 3, Name: "Sấy", IsActive: true, Date: "2025-02-01T08:00:00"},
		{ID: 4, Name: "Giặt hấp", IsActive: true, Date: ""},
	}
	c := NewListController(testDescriptor(fixedList(records)), testLogger())
	c.Refresh(context.Background())

	// Search is case-insensitive substring match.
	got := c.ApplyFilter(entity.FilterCriteria{SearchTerm: "giặt"})
	assert.Len(t, got, 3)

	// All set dimensions must match.
	got = c.ApplyFilter(entity.FilterCriteria{SearchTerm: "giặt", Status: "active"})
	assert.Len(t, got, 2)

	// The upper bound includes the whole day.
	got = c.ApplyFilter(entity.FilterCriteria{DateFrom: "2025-01-10", DateTo: "2025-01-20"})
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)

	// A record without the timestamp cannot satisfy a date bound.
	got = c.ApplyFilter(entity.FilterCriteria{DateFrom: "2020-01-01"})
	assert.Len(t, got, 3)

	// Filtering twice over the same criteria is idempotent and state
	// is untouched.
	again := c.ApplyFilter(entity.FilterCriteria{SearchTerm: "giặt"})
	assert.Len(t, again, 3)
	assert.Len(t, c.State().Items, 4)
}

func TestListController_ToggleActiveRollsBackOnWriteFailure(t *testing.T) {
	desc := testDescriptor(fixedList([]testRecord{{ID: 1, Name: "a", IsActive: true}}))
	writeErr := errors.New("backend rejected the write")
	desc.ConfirmToggle = func(ctx context.Context, r testRecord) error {
		return writeErr
	}
	c := NewListController(desc, testLogger())
	c.Refresh(context.Background())

	err := c.ToggleActive(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, writeErr)

	state := c.State()
	require.Len(t, state.Items, 1)
	assert.True(t, state.Items[0].IsActive, "failed write must restore the snapshot")
}

func TestListController_ToggleActiveCommitsOnWriteSuccess(t *testing.T) {
	desc := testDescriptor(fixedList([]testRecord{{ID: 1, Name: "a", IsActive: true}}))
	var confirmed testRecord
	desc.ConfirmToggle = func(ctx context.Context, r testRecord) error {
		confirmed = r

		return nil
	}
	c := NewListController(desc, testLogger())
	c.Refresh(context.Background())

	require.NoError(t, c.ToggleActive(context.Background(), 1))
	assert.False(t, confirmed.IsActive, "the confirming write sees the flipped record")
	assert.False(t, c.State().Items[0].IsActive)
}

func TestListController_ToggleActiveOnNonTogglableEntity(t *testing.T) {
	desc := testDescriptor(fixedList([]testRecord{{ID: 1}}))
	desc.Toggle = nil
	c := NewListController(desc, testLogger())
	c.Refresh(context.Background())

	err := c.ToggleActive(context.Background(), 1)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestListController_SoftDeleteRollsBackOnWriteFailure(t *testing.T) {
	desc := testDescriptor(fixedList([]testRecord{{ID: 1}, {ID: 2}}))
	desc.ConfirmDelete = func(ctx context.Context, id int64) error {
		return errors.New("backend down")
	}
	c := NewListController(desc, testLogger())
	c.Refresh(context.Background())

	err := c.SoftDelete(context.Background(), 1)
	require.Error(t, err)
	assert.Len(t, c.State().Items, 2, "failed delete must restore the snapshot")
}

func TestListController_SoftDeleteRemovesTheRecord(t *testing.T) {
	desc := testDescriptor(fixedList([]testRecord{{ID: 1}, {ID: 2}}))
	desc.ConfirmDelete = func(ctx context.Context, id int64) error { return nil }
	c := NewListController(desc, testLogger())
	c.Refresh(context.Background())

	require.NoError(t, c.SoftDelete(context.Background(), 1))

	state := c.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, int64(2), state.Items[0].ID)
}

func TestListController_UnknownIDIsNotFound(t *testing.T) {
	c := NewListController(testDescriptor(fixedList([]testRecord{{ID: 1}})), testLogger())
	c.Refresh(context.Background())

	assert.ErrorIs(t, c.ToggleActive(context.Background(), 42), domainerrors.ErrNotFound)
	assert.ErrorIs(t, c.SoftDelete(context.Background(), 42), domainerrors.ErrNotFound)
}

func TestListController_ExportRowsProjectsEveryRecord(t *testing.T) {
	c := NewListController(testDescriptor(fixedList(nil)), testLogger())

	rows := c.ExportRows([]testRecord{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"ID", "Tên"}, rows[0].Labels())
}
