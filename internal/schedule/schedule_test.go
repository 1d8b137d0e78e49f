package schedule

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"training-schedule-backend/internal/db"
	"training-schedule-backend/internal/model"
	"training-schedule-backend/internal/store"
)

// newTestDB opens a named in-memory SQLite database so each test gets its
// own isolated schema even though gorm pools connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := testDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(testDB))
	return testDB
}

// seedCatalog inserts the catalog rows the scheduling tests resolve against:
// two rooms, one trainer, and two assignments that both resolve to trainer 9.
func seedCatalog(t *testing.T, gdb *gorm.DB) {
	t.Helper()

	require.NoError(t, gdb.Create(&model.Class{ID: 1, Name: "Cohort 2026-1"}).Error)
	require.NoError(t, gdb.Create(&model.Module{ID: 1, Name: "Go Fundamentals", Hours: 24}).Error)
	require.NoError(t, gdb.Create(&model.Module{ID: 2, Name: "Databases", Hours: 16}).Error)
	require.NoError(t, gdb.Create(&model.Trainer{ID: 9, Name: "Ana Martins"}).Error)
	require.NoError(t, gdb.Create(&model.Room{ID: 5, Name: "Room 5", Capacity: 20}).Error)
	require.NoError(t, gdb.Create(&model.Room{ID: 7, Name: "Room 7", Capacity: 12}).Error)
	require.NoError(t, gdb.Create(&model.Assignment{ID: 1, ClassID: 1, ModuleID: 1, TrainerID: 9, Sequence: 1}).Error)
	require.NoError(t, gdb.Create(&model.Assignment{ID: 2, ClassID: 1, ModuleID: 2, TrainerID: 9, Sequence: 2}).Error)
}

func at(hour, min int) time.Time {
	return time.Date(2026, time.March, 2, hour, min, 0, 0, time.UTC)
}

func kindOf(t *testing.T, err error) Kind {
	t.Helper()
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok, "expected a taxonomy error, got %v", err)
	return kind
}

func TestSchedulerRejectsInvalidWindow(t *testing.T) {
	gdb := newTestDB(t)
	seedCatalog(t, gdb)
	sched := NewScheduler(store.NewGormStore(gdb))

	testCases := []struct {
		name       string
		start, end time.Time
	}{
		{name: "zero-length window", start: at(9, 0), end: at(9, 0)},
		{name: "inverted window", start: at(10, 0), end: at(9, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sched.Schedule(context.Background(), ScheduleRequest{
				AssignmentID: 1, RoomID: 5, Start: tc.start, End: tc.end,
			})
			assert.Equal(t, KindValidation, kindOf(t, err))
		})
	}
}

func TestSchedulerRejectsMissingAssignment(t *testing.T) {
	gdb := newTestDB(t)
	seedCatalog(t, gdb)
	sched := NewScheduler(store.NewGormStore(gdb))

	_, err := sched.Schedule(context.Background(), ScheduleRequest{
		AssignmentID: 404, RoomID: 5, Start: at(9, 0), End: at(10, 0),
	})
	assert.Equal(t, KindNotFound, kindOf(t, err))
}

func TestSchedulerResolvesDisplayFields(t *testing.T) {
	gdb := newTestDB(t)
	seedCatalog(t, gdb)
	sched := NewScheduler(store.NewGormStore(gdb))

	detail, err := sched.Schedule(context.Background(), ScheduleRequest{
		AssignmentID: 1, RoomID: 5, Start: at(9, 0), End: at(10, 0),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, detail.ID)
	assert.Equal(t, int64(1), detail.AssignmentID)
	assert.Equal(t, "Cohort 2026-1", detail.ClassName)
	assert.Equal(t, "Go Fundamentals", detail.ModuleName)
	assert.Equal(t, "Ana Martins", detail.TrainerName)
	assert.Equal(t, "Room 5", detail.RoomName)
	assert.True(t, detail.StartAt.Equal(at(9, 0)))
	assert.True(t, detail.EndAt.Equal(at(10, 0)))
}

// TestSchedulerConflictScenario walks the full double-booking scenario:
// overlap in the same room fails, a boundary-touching follow-up succeeds,
// the same trainer in a different room fails, and deleting the blocking
// session frees the window.
func TestSchedulerConflictScenario(t *testing.T) {
	gdb := newTestDB(t)
	seedCatalog(t, gdb)
	sched := NewScheduler(store.NewGormStore(gdb))
	ctx := context.Background()

	// Session A: room 5, trainer 9, 09:00-10:00.
	a, err := sched.Schedule(ctx, ScheduleRequest{AssignmentID: 1, RoomID: 5, Start: at(9, 0), End: at(10, 0)})
	require.NoError(t, err)

	// Session B: room 5, 09:30-10:30 overlaps A.
	_, err = sched.Schedule(ctx, ScheduleRequest{AssignmentID: 2, RoomID: 5, Start: at(9, 30), End: at(10, 30)})
	assert.Equal(t, KindRoomConflict, kindOf(t, err))

	// Session C: room 5, 10:00-11:00 touches A's end and must succeed.
	c, err := sched.Schedule(ctx, ScheduleRequest{AssignmentID: 2, RoomID: 5, Start: at(10, 0), End: at(11, 0)})
	require.NoError(t, err)

	// Session D: room 7 but the assignment resolves to the same trainer as A.
	_, err = sched.Schedule(ctx, ScheduleRequest{AssignmentID: 2, RoomID: 7, Start: at(9, 30), End: at(10, 0)})
	assert.Equal(t, KindTrainerConflict, kindOf(t, err))

	// Deleting A is not enough for the 09:30-10:30 retry: C still holds
	// 10:00-11:00 in the same room. Only after both are gone does it book.
	require.NoError(t, sched.Delete(ctx, a.ID))
	_, err = sched.Schedule(ctx, ScheduleRequest{AssignmentID: 2, RoomID: 5, Start: at(9, 30), End: at(10, 30)})
	assert.Equal(t, KindRoomConflict, kindOf(t, err))

	require.NoError(t, sched.Delete(ctx, c.ID))
	_, err = sched.Schedule(ctx, ScheduleRequest{AssignmentID: 2, RoomID: 5, Start: at(9, 30), End: at(10, 30)})
	require.NoError(t, err)
}

func TestSchedulerDeleteMissingSession(t *testing.T) {
	gdb := newTestDB(t)
	seedCatalog(t, gdb)
	sched := NewScheduler(store.NewGormStore(gdb))

	err := sched.Delete(context.Background(), "no-such-session")
	assert.Equal(t, KindNotFound, kindOf(t, err))
}

func TestQueryRangeSemantics(t *testing.T) {
	gdb := newTestDB(t)
	seedCatalog(t, gdb)
	s := store.NewGormStore(gdb)
	sched := NewScheduler(s)
	query := NewQuery(s)
	ctx := context.Background()

	// Three sessions for trainer 9 in room 5, chronologically out of order.
	_, err := sched.Schedule(ctx, ScheduleRequest{AssignmentID: 1, RoomID: 5, Start: at(14, 0), End: at(15, 0)})
	require.NoError(t, err)
	_, err = sched.Schedule(ctx, ScheduleRequest{AssignmentID: 1, RoomID: 5, Start: at(9, 0), End: at(10, 0)})
	require.NoError(t, err)
	_, err = sched.Schedule(ctx, ScheduleRequest{AssignmentID: 2, RoomID: 5, Start: at(11, 0), End: at(12, 0)})
	require.NoError(t, err)

	t.Run("ascending order by start", func(t *testing.T) {
		details, err := query.ByRoom(ctx, 5, at(0, 0), at(23, 59))
		require.NoError(t, err)
		require.Len(t, details, 3)
		assert.True(t, details[0].StartAt.Equal(at(9, 0)))
		assert.True(t, details[1].StartAt.Equal(at(11, 0)))
		assert.True(t, details[2].StartAt.Equal(at(14, 0)))
	})

	t.Run("bounds are inclusive and match the start instant only", func(t *testing.T) {
		// Range [11:00, 14:00]: includes the 11:00 and 14:00 starts even
		// though the 14:00 session runs past the range end, and excludes
		// the 09:00 session even though it is long gone by 11:00.
		details, err := query.ByTrainer(ctx, 9, at(11, 0), at(14, 0))
		require.NoError(t, err)
		require.Len(t, details, 2)
		assert.True(t, details[0].StartAt.Equal(at(11, 0)))
		assert.True(t, details[1].StartAt.Equal(at(14, 0)))
	})

	t.Run("by class matches through the assignment", func(t *testing.T) {
		details, err := query.ByClass(ctx, 1, at(0, 0), at(23, 59))
		require.NoError(t, err)
		assert.Len(t, details, 3)
	})

	t.Run("empty match returns empty slice", func(t *testing.T) {
		details, err := query.ByRoom(ctx, 7, at(0, 0), at(23, 59))
		require.NoError(t, err)
		assert.Empty(t, details)
	})
}

func TestQueryReflectsDeletes(t *testing.T) {
	gdb := newTestDB(t)
	seedCatalog(t, gdb)
	s := store.NewGormStore(gdb)
	sched := NewScheduler(s)
	query := NewQuery(s)
	ctx := context.Background()

	created, err := sched.Schedule(ctx, ScheduleRequest{AssignmentID: 1, RoomID: 5, Start: at(9, 0), End: at(10, 0)})
	require.NoError(t, err)

	details, err := query.ByRoom(ctx, 5, at(0, 0), at(23, 59))
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, created.ID, details[0].ID)

	require.NoError(t, sched.Delete(ctx, created.ID))

	details, err = query.ByRoom(ctx, 5, at(0, 0), at(23, 59))
	require.NoError(t, err)
	assert.Empty(t, details)
}
