package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/healthtracker/internal/service"
	"github.com/limbo/healthtracker/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var streakUser = uuid.New()

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestAdvanceStreakFirstLogin(t *testing.T) {
	now := day(0).Add(10 * time.Hour)
	out := service.AdvanceStreak(nil, streakUser, now)
	assert.Equal(t, service.LoginFirst, out.Kind)
	assert.True(t, out.Changed)
	assert.False(t, out.NewRecord)
	assert.False(t, out.AlreadyLogged)
	assert.Equal(t, 1, out.CurrentStreak)
	assert.Equal(t, entity.StreakState{
		UserID:        streakUser,
		CurrentStreak: 1,
		LongestStreak: 1,
		LastLogin:     now,
		LoginDates:    []time.Time{day(0)},
	}, out.State)
}

func TestAdvanceStreakSameDayIsIdempotent(t *testing.T) {
	first := service.AdvanceStreak(nil, streakUser, day(0).Add(8*time.Hour))
	second := service.AdvanceStreak(&first.State, streakUser, day(0).Add(23*time.Hour))

	assert.Equal(t, service.LoginSameDay, second.Kind)
	assert.True(t, second.AlreadyLogged)
	assert.False(t, second.Changed)
	assert.False(t, second.NewRecord)
	assert.Equal(t, first.State.CurrentStreak, second.CurrentStreak)
	assert.Equal(t, first.State, second.State)
}

func TestAdvanceStreakContinuity(t *testing.T) {
	testCases := []struct {
		Desc            string
		Prev            entity.StreakState
		Now             time.Time
		ExpectedKind    service.LoginKind
		ExpectedCurrent int
		ExpectedLongest int
		ExpectedRecord  bool
	}{
		{
			Desc:            "next day increments",
			Prev:            entity.StreakState{UserID: streakUser, CurrentStreak: 3, LongestStreak: 5, LastLogin: day(9).Add(20 * time.Hour)},
			Now:             day(10).Add(time.Hour),
			ExpectedKind:    service.LoginConsecutive,
			ExpectedCurrent: 4,
			ExpectedLongest: 5,
		},
		{
			Desc:            "next day reaching longest is a record",
			Prev:            entity.StreakState{UserID: streakUser, CurrentStreak: 5, LongestStreak: 5, LastLogin: day(9)},
			Now:             day(10),
			ExpectedKind:    service.LoginConsecutive,
			ExpectedCurrent: 6,
			ExpectedLongest: 6,
			ExpectedRecord:  true,
		},
		{
			Desc:            "one minute across midnight counts as next day",
			Prev:            entity.StreakState{UserID: streakUser, CurrentStreak: 1, LongestStreak: 1, LastLogin: day(9).Add(23*time.Hour + 59*time.Minute)},
			Now:             day(10).Add(time.Minute),
			ExpectedKind:    service.LoginConsecutive,
			ExpectedCurrent: 2,
			ExpectedLongest: 2,
			ExpectedRecord:  true,
		},
		{
			Desc:            "gap resets",
			Prev:            entity.StreakState{UserID: streakUser, CurrentStreak: 4, LongestStreak: 4, LastLogin: day(8)},
			Now:             day(10),
			ExpectedKind:    service.LoginReset,
			ExpectedCurrent: 1,
			ExpectedLongest: 4,
		},
		{
			Desc:            "last login in the future resets",
			Prev:            entity.StreakState{UserID: streakUser, CurrentStreak: 2, LongestStreak: 7, LastLogin: day(12)},
			Now:             day(10),
			ExpectedKind:    service.LoginReset,
			ExpectedCurrent: 1,
			ExpectedLongest: 7,
		},
		{
			Desc:            "non utc timestamps compare as utc days",
			Prev:            entity.StreakState{UserID: streakUser, CurrentStreak: 1, LongestStreak: 3, LastLogin: day(9).Add(22 * time.Hour)},
			Now:             day(10).Add(2 * time.Hour).In(time.FixedZone("UTC-5", -5*3600)),
			ExpectedKind:    service.LoginConsecutive,
			ExpectedCurrent: 2,
			ExpectedLongest: 3,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			out := service.AdvanceStreak(&tc.Prev, streakUser, tc.Now)
			assert.Equal(t, tc.ExpectedKind, out.Kind)
			assert.True(t, out.Changed)
			assert.Equal(t, tc.ExpectedCurrent, out.State.CurrentStreak)
			assert.Equal(t, tc.ExpectedCurrent, out.CurrentStreak)
			assert.Equal(t, tc.ExpectedLongest, out.State.LongestStreak)
			assert.Equal(t, tc.ExpectedRecord, out.NewRecord)
			assert.Equal(t, tc.Now.UTC(), out.State.LastLogin)
			assert.Equal(t, entity.DayStart(tc.Now), out.State.LoginDates[len(out.State.LoginDates)-1])
		})
	}
}

func TestAdvanceStreakLongestNeverDecreases(t *testing.T) {
	// 1 = login that day, 0 = skipped
	pattern := []int{1, 1, 1, 0, 1, 1, 0, 0, 1, 1, 1, 1, 1, 0, 1}
	var state *entity.StreakState
	longest := 0
	for i, logged := range pattern {
		if logged == 0 {
			continue
		}
		for range 2 {
			out := service.AdvanceStreak(state, streakUser, day(i).Add(9*time.Hour))
			require.GreaterOrEqual(t, out.State.LongestStreak, longest)
			require.GreaterOrEqual(t, out.State.LongestStreak, out.State.CurrentStreak)
			longest = out.State.LongestStreak
			s := out.State
			state = &s
		}
	}
	assert.Equal(t, 5, state.LongestStreak)
	assert.Equal(t, 1, state.CurrentStreak)
	assert.Len(t, state.LoginDates, 11)
}

func TestAdvanceStreakBoundsLoginDates(t *testing.T) {
	dates := make([]time.Time, 0, service.MaxLoginDates)
	for i := range service.MaxLoginDates {
		dates = append(dates, day(i))
	}
	prev := entity.StreakState{
		UserID:        streakUser,
		CurrentStreak: service.MaxLoginDates,
		LongestStreak: service.MaxLoginDates,
		LastLogin:     day(service.MaxLoginDates - 1),
		LoginDates:    dates,
	}
	out := service.AdvanceStreak(&prev, streakUser, day(service.MaxLoginDates))

	require.Len(t, out.State.LoginDates, service.MaxLoginDates)
	assert.Equal(t, day(1), out.State.LoginDates[0])
	assert.Equal(t, day(service.MaxLoginDates), out.State.LoginDates[service.MaxLoginDates-1])
	// prev is left untouched
	assert.Equal(t, day(0), prev.LoginDates[0])
	assert.Len(t, prev.LoginDates, service.MaxLoginDates)
}

func TestAdvanceStreakDoesNotDuplicateDates(t *testing.T) {
	// today is already recorded even though last_login says otherwise
	prev := entity.StreakState{
		UserID:        streakUser,
		CurrentStreak: 2,
		LongestStreak: 2,
		LastLogin:     day(3),
		LoginDates:    []time.Time{day(3), day(5)},
	}
	out := service.AdvanceStreak(&prev, streakUser, day(5).Add(time.Hour))
	assert.Equal(t, service.LoginReset, out.Kind)
	assert.Equal(t, []time.Time{day(3), day(5)}, out.State.LoginDates)
}

func TestStreakCalendar(t *testing.T) {
	state := &entity.StreakState{LoginDates: []time.Time{day(0), day(2), day(3)}}
	calendar := service.StreakCalendar(state, day(3).Add(15*time.Hour), 5)
	assert.Equal(t, []entity.CalendarDay{
		{Date: "2023-12-31", LoggedIn: false},
		{Date: "2024-01-01", LoggedIn: true},
		{Date: "2024-01-02", LoggedIn: false},
		{Date: "2024-01-03", LoggedIn: true},
		{Date: "2024-01-04", LoggedIn: true},
	}, calendar)

	assert.Empty(t, service.StreakCalendar(nil, day(3), 30))
	assert.Empty(t, service.StreakCalendar(state, day(3), 0))
}

func TestLoginKindString(t *testing.T) {
	assert.Equal(t, "first", service.LoginFirst.String())
	assert.Equal(t, "same_day", service.LoginSameDay.String())
	assert.Equal(t, "consecutive", service.LoginConsecutive.String())
	assert.Equal(t, "reset", service.LoginReset.String())
}
