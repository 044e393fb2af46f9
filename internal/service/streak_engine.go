package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/healthtracker/pkg/entity"
)

// MaxLoginDates bounds the login history kept per user.
const MaxLoginDates = 365

type LoginKind int

const (
	// LoginFirst is the first login ever recorded for the user.
	LoginFirst LoginKind = iota
	LoginSameDay
	LoginConsecutive
	// LoginReset covers every other gap, including a last login dated after today.
	LoginReset
)

func (k LoginKind) String() string {
	switch k {
	case LoginFirst:
		return "first"
	case LoginSameDay:
		return "same_day"
	case LoginConsecutive:
		return "consecutive"
	case LoginReset:
		return "reset"
	}
	return "unknown"
}

// StreakOutcome is the result of one login transition. State is the state to
// persist when Changed is set.
type StreakOutcome struct {
	Kind          LoginKind
	State         entity.StreakState
	CurrentStreak int
	AlreadyLogged bool
	NewRecord     bool
	Changed       bool
}

func classifyLogin(prev *entity.StreakState, today time.Time) LoginKind {
	if prev == nil {
		return LoginFirst
	}
	last := entity.DayStart(prev.LastLogin)
	switch {
	case last.Equal(today):
		return LoginSameDay
	case last.Equal(today.AddDate(0, 0, -1)):
		return LoginConsecutive
	default:
		return LoginReset
	}
}

// AdvanceStreak applies a login at now to prev, which is nil for a user that
// never logged in. prev is not modified.
func AdvanceStreak(prev *entity.StreakState, userID uuid.UUID, now time.Time) StreakOutcome {
	now = now.UTC()
	today := entity.DayStart(now)
	kind := classifyLogin(prev, today)

	if kind == LoginSameDay {
		state := *prev
		state.LoginDates = append([]time.Time(nil), prev.LoginDates...)
		return StreakOutcome{
			Kind:          kind,
			State:         state,
			CurrentStreak: prev.CurrentStreak,
			AlreadyLogged: true,
		}
	}

	var next entity.StreakState
	switch kind {
	case LoginFirst:
		next = entity.StreakState{
			UserID:        userID,
			CurrentStreak: 1,
			LongestStreak: 1,
		}
	case LoginConsecutive:
		next = entity.StreakState{
			UserID:        prev.UserID,
			CurrentStreak: prev.CurrentStreak + 1,
			LongestStreak: max(prev.LongestStreak, prev.CurrentStreak+1),
			LoginDates:    prev.LoginDates,
		}
	case LoginReset:
		next = entity.StreakState{
			UserID:        prev.UserID,
			CurrentStreak: 1,
			LongestStreak: max(prev.LongestStreak, 1),
			LoginDates:    prev.LoginDates,
		}
	}
	next.LastLogin = now
	next.LoginDates = appendLoginDay(next.LoginDates, today)

	return StreakOutcome{
		Kind:          kind,
		State:         next,
		CurrentStreak: next.CurrentStreak,
		NewRecord:     next.CurrentStreak == next.LongestStreak && next.CurrentStreak > 1,
		Changed:       true,
	}
}

// appendLoginDay returns a fresh slice with day appended unless already
// present, keeping only the most recent MaxLoginDates days.
func appendLoginDay(dates []time.Time, day time.Time) []time.Time {
	out := make([]time.Time, 0, min(len(dates)+1, MaxLoginDates))
	seen := false
	for _, d := range dates {
		if entity.DayStart(d).Equal(day) {
			seen = true
		}
	}
	src := dates
	if !seen {
		src = append(append([]time.Time(nil), dates...), day)
	}
	if len(src) > MaxLoginDates {
		src = src[len(src)-MaxLoginDates:]
	}
	for _, d := range src {
		out = append(out, entity.DayStart(d))
	}
	return out
}

// StreakCalendar marks each of the last days days, oldest first, with
// whether the user logged in. A user without streak gets an empty calendar.
func StreakCalendar(state *entity.StreakState, now time.Time, days int) []entity.CalendarDay {
	calendar := make([]entity.CalendarDay, 0, max(days, 0))
	if state == nil || days < 1 {
		return calendar
	}
	logged := make(map[string]bool, len(state.LoginDates))
	for _, d := range state.LoginDates {
		logged[d.UTC().Format(time.DateOnly)] = true
	}
	today := entity.DayStart(now)
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(time.DateOnly)
		calendar = append(calendar, entity.CalendarDay{
			Date:     date,
			LoggedIn: logged[date],
		})
	}
	return calendar
}
