package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
}

// DayStart truncates t to 00:00 UTC of its calendar day.
func DayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Metrics is the mutable part of a daily entry, one value per tracked metric.
type Metrics struct {
	Steps       int     `json:"steps" validate:"min=0,max=100000"`
	Calories    int     `json:"calories" validate:"min=0,max=10000"`
	HeartRate   int     `json:"heart_rate" validate:"min=30,max=220"`
	SleepHours  float64 `json:"sleep_hours" validate:"min=0,max=24"`
	WaterIntake int     `json:"water_intake" validate:"min=0,max=50"`
	Notes       string  `json:"notes,omitempty" validate:"max=500"`
}

// DailyEntry holds a user's metrics for one UTC calendar day.
type DailyEntry struct {
	ID     uuid.UUID `json:"id" bson:"_id"`
	UserID uuid.UUID `json:"uid" bson:"user_id"`
	// Date is always truncated to 00:00 UTC.
	Date        time.Time `json:"date" bson:"date"`
	Steps       int       `json:"steps" bson:"steps"`
	Calories    int       `json:"calories" bson:"calories"`
	HeartRate   int       `json:"heart_rate" bson:"heart_rate"`
	SleepHours  float64   `json:"sleep_hours" bson:"sleep_hours"`
	WaterIntake int       `json:"water_intake" bson:"water_intake"`
	Notes       string    `json:"notes,omitempty" bson:"notes"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

func (e *DailyEntry) Metrics() Metrics {
	return Metrics{
		Steps:       e.Steps,
		Calories:    e.Calories,
		HeartRate:   e.HeartRate,
		SleepHours:  e.SleepHours,
		WaterIntake: e.WaterIntake,
		Notes:       e.Notes,
	}
}

// ApplyMetrics overwrites every mutable field of the entry.
func (e *DailyEntry) ApplyMetrics(m Metrics) {
	e.Steps = m.Steps
	e.Calories = m.Calories
	e.HeartRate = m.HeartRate
	e.SleepHours = m.SleepHours
	e.WaterIntake = m.WaterIntake
	e.Notes = m.Notes
}

type StreakState struct {
	UserID        uuid.UUID `json:"uid" bson:"user_id"`
	CurrentStreak int       `json:"current_streak" bson:"current_streak"`
	LongestStreak int       `json:"longest_streak" bson:"longest_streak"`
	LastLogin     time.Time `json:"last_login" bson:"last_login"`
	// LoginDates are UTC days, oldest first, without duplicates.
	LoginDates []time.Time `json:"login_dates" bson:"login_dates"`
}

type ScoreBreakdown struct {
	Steps     float64 `json:"steps"`
	Sleep     float64 `json:"sleep"`
	Water     float64 `json:"water"`
	HeartRate float64 `json:"heart_rate"`
	Calories  float64 `json:"calories"`
	Total     int     `json:"total"`
}

type AggregatedStats struct {
	AvgSteps     int     `json:"avg_steps"`
	AvgCalories  int     `json:"avg_calories"`
	AvgHeartRate int     `json:"avg_heart_rate"`
	AvgSleep     float64 `json:"avg_sleep"`
	AvgWater     float64 `json:"avg_water"`
	TotalEntries int     `json:"total_entries"`
}

type WeeklyTrends struct {
	Dates     []string  `json:"dates"`
	Steps     []int     `json:"steps"`
	Calories  []int     `json:"calories"`
	Sleep     []float64 `json:"sleep"`
	Water     []int     `json:"water"`
	HeartRate []int     `json:"heart_rate"`
}

type CalendarDay struct {
	Date     string `json:"date"`
	LoggedIn bool   `json:"logged_in"`
}

type HealthTip struct {
	ID        uuid.UUID `json:"id" bson:"_id"`
	UserID    uuid.UUID `json:"uid" bson:"user_id"`
	Text      string    `json:"tip" bson:"tip_text"`
	Category  string    `json:"category" bson:"category"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
