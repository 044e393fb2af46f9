package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/healthtracker/internal/error_values"
	"github.com/limbo/healthtracker/internal/repository"
	"github.com/limbo/healthtracker/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entryColumns = []string{
	"id", "user_id", "entry_date", "steps", "calories", "heart_rate",
	"sleep_hours", "water_intake", "notes", "created_at", "updated_at",
}

func entryRow(rows *pgxmock.Rows, e entity.DailyEntry) *pgxmock.Rows {
	return rows.AddRow(e.ID, e.UserID, e.Date, e.Steps, e.Calories, e.HeartRate,
		e.SleepHours, e.WaterIntake, e.Notes, e.CreatedAt, e.UpdatedAt)
}

func testEntry(uid uuid.UUID, day time.Time) entity.DailyEntry {
	return entity.DailyEntry{
		ID:          uuid.New(),
		UserID:      uid,
		Date:        day,
		Steps:       8000,
		Calories:    2100,
		HeartRate:   72,
		SleepHours:  7.5,
		WaterIntake: 6,
		Notes:       "felt fine",
		CreatedAt:   day.Add(9 * time.Hour),
		UpdatedAt:   day.Add(9 * time.Hour),
	}
}

func TestGetEntryForDate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewEntriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, entry_date, steps, calories, heart_rate, sleep_hours, water_intake, notes, created_at, updated_at FROM daily_entries WHERE user_id = $1 AND entry_date = $2 LIMIT 1;`)
	uid := uuid.New()
	// Any time of the day must be looked up by its UTC day start.
	at := time.Date(2024, 3, 10, 17, 45, 0, 0, time.UTC)
	day := entity.DayStart(at)
	entry := testEntry(uid, day)
	testCases := []struct {
		Desc         string
		Error        error
		Result       *entity.DailyEntry
		MockPrepFunc func()
	}{
		{
			Desc:   "found",
			Result: &entry,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(uid, day).
					WillReturnRows(entryRow(pgxmock.NewRows(entryColumns), entry))
			},
		},
		{
			Desc:   "absent",
			Result: nil,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(uid, day).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting entry for date error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(uid, day).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := repo.GetForDate(ctx, uid, at)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewEntriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO daily_entries (user_id, entry_date, steps, calories, heart_rate, sleep_hours, water_intake, notes) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`)
	uid := uuid.New()
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	entry := testEntry(uid, day)
	entry.Date = day.Add(13 * time.Hour)
	newID := uuid.New()
	args := []any{uid, day, entry.Steps, entry.Calories, entry.HeartRate, entry.SleepHours, entry.WaterIntake, entry.Notes}
	testCases := []struct {
		Desc         string
		Error        error
		ID           uuid.UUID
		MockPrepFunc func()
	}{
		{
			Desc: "created",
			ID:   newID,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(newID))
			},
		},
		{
			Desc:  "fk violation",
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23503"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating entry error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(args...).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			id, err := repo.Create(ctx, &entry)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				assert.Equal(t, uuid.Nil, id)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.ID, id)
		})
	}
}

func TestReplaceEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewEntriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`UPDATE daily_entries SET steps = $1, calories = $2, heart_rate = $3, sleep_hours = $4, water_intake = $5, notes = $6, updated_at = NOW() WHERE id = $7;`)
	entry := testEntry(uuid.New(), time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	args := []any{entry.Steps, entry.Calories, entry.HeartRate, entry.SleepHours, entry.WaterIntake, entry.Notes, entry.ID}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "replaced",
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrEntryNotFound,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("replacing entry error: db error"),
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(args...).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := repo.Replace(ctx, entry.ID, &entry)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetEntriesSince(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewEntriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, entry_date, steps, calories, heart_rate, sleep_hours, water_intake, notes, created_at, updated_at FROM daily_entries WHERE user_id = $1 AND entry_date >= $2 ORDER BY entry_date DESC;`)
	uid := uuid.New()
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	since := today.AddDate(0, 0, -2)
	returned := []entity.DailyEntry{
		testEntry(uid, today),
		testEntry(uid, today.AddDate(0, 0, -1)),
		testEntry(uid, since),
	}
	testCases := []struct {
		Desc         string
		Error        error
		Result       []entity.DailyEntry
		MockPrepFunc func()
	}{
		{
			Desc:   "success",
			Result: returned,
			MockPrepFunc: func() {
				rows := pgxmock.NewRows(entryColumns)
				for _, e := range returned {
					entryRow(rows, e)
				}
				mock.ExpectQuery(query).WithArgs(uid, since).WillReturnRows(rows)
			},
		},
		{
			Desc:   "empty window",
			Result: []entity.DailyEntry{},
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(uid, since).WillReturnRows(pgxmock.NewRows(entryColumns))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting entries for window error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(uid, since).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := repo.GetSince(ctx, uid, since.Add(5*time.Hour))
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Result, result)
		})
	}
}
