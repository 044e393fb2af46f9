package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/healthtracker/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Phone    string `validate:"omitempty,phone_e164"`
	Password string `validate:"required,min=8,max=72"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	// Sets or clears (empty string) the number used for sms notifications
	UpdatePhone(ctx context.Context, id uuid.UUID, phone string) error
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type EntriesServiceI interface {
	// Validates the form and stores it as the user's entry for the UTC day of date
	SubmitEntry(ctx context.Context, uid uuid.UUID, date time.Time, form MetricsForm) (*UpsertResult, error)
	// Entries of the last days days, newest first
	GetEntries(ctx context.Context, uid uuid.UUID, days int) ([]entity.DailyEntry, error)
	// Today's entry with its score. Entry is nil if nothing was logged today
	GetToday(ctx context.Context, uid uuid.UUID) (*TodayEntry, error)
	GetStats(ctx context.Context, uid uuid.UUID, days int) (entity.AggregatedStats, error)
	GetWeeklyTrends(ctx context.Context, uid uuid.UUID) (entity.WeeklyTrends, error)
}

type StreakServiceI interface {
	// Applies a login event to the user's streak
	RecordLogin(ctx context.Context, uid uuid.UUID) (*StreakOutcome, error)
	GetStreak(ctx context.Context, uid uuid.UUID) (*entity.StreakState, error)
	GetCalendar(ctx context.Context, uid uuid.UUID, days int) ([]entity.CalendarDay, error)
}

type TipsServiceI interface {
	// Returns today's tip, generating and caching it on first request
	GetDailyTip(ctx context.Context, uid uuid.UUID) (*TipResult, error)
	GetRecentTips(ctx context.Context, uid uuid.UUID, limit int) ([]entity.HealthTip, error)
}

type NotificationServiceI interface {
	SendDailyReminder(ctx context.Context, uid uuid.UUID) (string, error)
	SendWeeklySummary(ctx context.Context, uid uuid.UUID, stats entity.AggregatedStats) (string, error)
	SendStreakReminder(ctx context.Context, uid uuid.UUID, streak int) (string, error)
}

// TipProvider turns a prompt into a short health tip.
type TipProvider interface {
	GenerateTip(ctx context.Context, prompt string) (string, error)
}

// Notifier delivers a text message and returns the provider's message id.
type Notifier interface {
	SendSMS(ctx context.Context, phone, message string) (string, error)
}

// HabitTracker mirrors logins to an external habit-tracking graph.
type HabitTracker interface {
	RecordPixel(ctx context.Context, userID uuid.UUID, day time.Time) error
}

// MilestoneNotifier is told about new streak records.
type MilestoneNotifier interface {
	SendMilestone(ctx context.Context, uid uuid.UUID, milestone string) error
}
