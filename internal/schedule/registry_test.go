package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"training-schedule-backend/internal/model"
	"training-schedule-backend/internal/store"
)

func TestRegistryCreateWindowValidation(t *testing.T) {
	gdb := newTestDB(t)
	seedCatalog(t, gdb)
	registry := NewRegistry(store.NewGormStore(gdb))

	testCases := []struct {
		name string
		req  CreateWindowRequest
	}{
		{
			name: "inverted window",
			req:  CreateWindowRequest{SubjectKind: model.SubjectTrainer, SubjectID: 9, Start: at(12, 0), End: at(9, 0), IsAvailable: true},
		},
		{
			name: "zero-length window",
			req:  CreateWindowRequest{SubjectKind: model.SubjectTrainer, SubjectID: 9, Start: at(9, 0), End: at(9, 0), IsAvailable: true},
		},
		{
			name: "unset subject kind",
			req:  CreateWindowRequest{SubjectID: 9, Start: at(9, 0), End: at(12, 0), IsAvailable: true},
		},
		{
			name: "unknown subject kind",
			req:  CreateWindowRequest{SubjectKind: "building", SubjectID: 9, Start: at(9, 0), End: at(12, 0), IsAvailable: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := registry.CreateWindow(context.Background(), tc.req)
			assert.Equal(t, KindValidation, kindOf(t, err))
		})
	}
}

func TestRegistryWindowsAreAdvisory(t *testing.T) {
	gdb := newTestDB(t)
	seedCatalog(t, gdb)
	registry := NewRegistry(store.NewGormStore(gdb))
	ctx := context.Background()

	// Overlapping windows for the same trainer are permitted: the registry
	// is a read-side hint, not a reservation.
	first, err := registry.CreateWindow(ctx, CreateWindowRequest{
		SubjectKind: model.SubjectTrainer, SubjectID: 9, Start: at(9, 0), End: at(12, 0), IsAvailable: true,
	})
	require.NoError(t, err)

	second, err := registry.CreateWindow(ctx, CreateWindowRequest{
		SubjectKind: model.SubjectTrainer, SubjectID: 9, Start: at(10, 0), End: at(11, 0), IsAvailable: false,
	})
	require.NoError(t, err)

	windows, err := registry.ListByTrainer(ctx, 9)
	require.NoError(t, err)
	require.Len(t, windows, 2)
	// Both records survive; earlier writes are not invalidated.
	assert.Equal(t, first.ID, windows[0].ID)
	assert.Equal(t, second.ID, windows[1].ID)
}

func TestRegistryListOrdering(t *testing.T) {
	gdb := newTestDB(t)
	seedCatalog(t, gdb)
	registry := NewRegistry(store.NewGormStore(gdb))
	ctx := context.Background()

	for _, hour := range []int{15, 8, 11} {
		_, err := registry.CreateWindow(ctx, CreateWindowRequest{
			SubjectKind: model.SubjectRoom, SubjectID: 5, Start: at(hour, 0), End: at(hour+1, 0), IsAvailable: true,
		})
		require.NoError(t, err)
	}

	windows, err := registry.ListByRoom(ctx, 5)
	require.NoError(t, err)
	require.Len(t, windows, 3)
	assert.True(t, windows[0].StartAt.Equal(at(8, 0)))
	assert.True(t, windows[1].StartAt.Equal(at(11, 0)))
	assert.True(t, windows[2].StartAt.Equal(at(15, 0)))

	kind, id := windows[0].Subject()
	assert.Equal(t, model.SubjectRoom, kind)
	assert.Equal(t, int64(5), id)
}

func TestRegistrySubjectsAreIsolated(t *testing.T) {
	gdb := newTestDB(t)
	seedCatalog(t, gdb)
	registry := NewRegistry(store.NewGormStore(gdb))
	ctx := context.Background()

	_, err := registry.CreateWindow(ctx, CreateWindowRequest{
		SubjectKind: model.SubjectTrainer, SubjectID: 9, Start: at(9, 0), End: at(10, 0), IsAvailable: true,
	})
	require.NoError(t, err)

	// A trainer window must not show up under a room with the same id.
	windows, err := registry.ListByRoom(ctx, 9)
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestRegistryDelete(t *testing.T) {
	gdb := newTestDB(t)
	seedCatalog(t, gdb)
	registry := NewRegistry(store.NewGormStore(gdb))
	ctx := context.Background()

	window, err := registry.CreateWindow(ctx, CreateWindowRequest{
		SubjectKind: model.SubjectRoom, SubjectID: 5, Start: at(9, 0), End: at(10, 0), IsAvailable: false,
	})
	require.NoError(t, err)

	require.NoError(t, registry.Delete(ctx, window.ID))

	windows, err := registry.ListByRoom(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, windows)

	err = registry.Delete(ctx, window.ID)
	assert.Equal(t, KindNotFound, kindOf(t, err))
}
