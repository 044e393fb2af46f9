package service

import (
	"math"

	"github.com/limbo/healthtracker/pkg/entity"
)

const (
	stepsGoal       = 10000.0
	sleepGoal       = 7.0
	waterGoal       = 8.0
	maxHealthScore  = 100
	oversleepPoints = 15.0
)

// ScoreBreakdownFor returns the points of every component and their total.
func ScoreBreakdownFor(m entity.Metrics) entity.ScoreBreakdown {
	b := entity.ScoreBreakdown{
		Steps: math.Min(float64(m.Steps)/stepsGoal, 1) * 30,
		Water: math.Min(float64(m.WaterIntake)/waterGoal, 1) * 20,
	}

	switch {
	case m.SleepHours >= 7 && m.SleepHours <= 9:
		b.Sleep = 25
	case m.SleepHours < 7:
		b.Sleep = m.SleepHours / sleepGoal * 25
	default:
		b.Sleep = oversleepPoints
	}

	switch {
	case m.HeartRate >= 60 && m.HeartRate <= 100:
		b.HeartRate = 15
	case m.HeartRate < 60:
		b.HeartRate = 10
	default:
		b.HeartRate = 5
	}

	if m.Calories >= 1500 && m.Calories <= 2500 {
		b.Calories = 10
	} else {
		b.Calories = 5
	}

	total := int(math.RoundToEven(b.Steps + b.Sleep + b.Water + b.HeartRate + b.Calories))
	b.Total = max(0, min(total, maxHealthScore))
	return b
}

// CalculateHealthScore maps one day's metrics to a score in [0, 100].
func CalculateHealthScore(m entity.Metrics) int {
	return ScoreBreakdownFor(m).Total
}

// HealthStatus labels a score.
func HealthStatus(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Needs Attention"
	}
}
