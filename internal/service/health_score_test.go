package service_test

import (
	"testing"

	"github.com/limbo/healthtracker/internal/service"
	"github.com/limbo/healthtracker/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestCalculateHealthScore(t *testing.T) {
	testCases := []struct {
		Desc     string
		Metrics  entity.Metrics
		Expected int
	}{
		{
			Desc:     "perfect day",
			Metrics:  entity.Metrics{Steps: 10000, SleepHours: 8, WaterIntake: 8, HeartRate: 70, Calories: 2000},
			Expected: 100,
		},
		{
			Desc:     "idle day with high pulse",
			Metrics:  entity.Metrics{Steps: 0, SleepHours: 0, WaterIntake: 0, HeartRate: 150, Calories: 500},
			Expected: 10,
		},
		{
			Desc:     "goals exceeded are capped",
			Metrics:  entity.Metrics{Steps: 90000, SleepHours: 9, WaterIntake: 40, HeartRate: 100, Calories: 2500},
			Expected: 100,
		},
		{
			Desc:     "oversleep plateau",
			Metrics:  entity.Metrics{Steps: 10000, SleepHours: 9.5, WaterIntake: 8, HeartRate: 70, Calories: 2000},
			Expected: 90,
		},
		{
			Desc:     "oversleep does not scale",
			Metrics:  entity.Metrics{Steps: 10000, SleepHours: 24, WaterIntake: 8, HeartRate: 70, Calories: 2000},
			Expected: 90,
		},
		{
			Desc:     "low pulse tier",
			Metrics:  entity.Metrics{Steps: 10000, SleepHours: 8, WaterIntake: 8, HeartRate: 59, Calories: 2000},
			Expected: 95,
		},
		{
			Desc:     "half tie rounds to even down",
			Metrics:  entity.Metrics{Steps: 2500, SleepHours: 8, WaterIntake: 8, HeartRate: 70, Calories: 1000},
			Expected: 72,
		},
		{
			Desc:     "half tie rounds to even up",
			Metrics:  entity.Metrics{Steps: 7500, SleepHours: 8, WaterIntake: 8, HeartRate: 70, Calories: 1000},
			Expected: 88,
		},
		{
			Desc:     "short sleep ramps linearly",
			Metrics:  entity.Metrics{Steps: 0, SleepHours: 3.5, WaterIntake: 0, HeartRate: 70, Calories: 2000},
			Expected: 38,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, service.CalculateHealthScore(tc.Metrics))
		})
	}
}

func TestScoreBreakdown(t *testing.T) {
	b := service.ScoreBreakdownFor(entity.Metrics{Steps: 5000, SleepHours: 7, WaterIntake: 4, HeartRate: 101, Calories: 1499})
	assert.Equal(t, entity.ScoreBreakdown{
		Steps:     15,
		Sleep:     25,
		Water:     10,
		HeartRate: 5,
		Calories:  5,
		Total:     60,
	}, b)
}

func TestScoreMonotonicInStepsAndWater(t *testing.T) {
	base := entity.Metrics{SleepHours: 6, HeartRate: 80, Calories: 1800}
	prev := -1
	for steps := 0; steps <= 20000; steps += 250 {
		m := base
		m.Steps = steps
		score := service.CalculateHealthScore(m)
		assert.GreaterOrEqual(t, score, prev, "steps=%d", steps)
		prev = score
	}
	prev = -1
	for water := 0; water <= 50; water++ {
		m := base
		m.WaterIntake = water
		score := service.CalculateHealthScore(m)
		assert.GreaterOrEqual(t, score, prev, "water=%d", water)
		prev = score
	}
}

func TestHealthStatus(t *testing.T) {
	assert.Equal(t, "Excellent", service.HealthStatus(80))
	assert.Equal(t, "Good", service.HealthStatus(79))
	assert.Equal(t, "Good", service.HealthStatus(60))
	assert.Equal(t, "Fair", service.HealthStatus(40))
	assert.Equal(t, "Needs Attention", service.HealthStatus(39))
}
