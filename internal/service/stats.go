package service

import (
	"math"
	"sort"
	"time"

	"github.com/limbo/healthtracker/pkg/entity"
)

type Metric string

const (
	MetricSteps     Metric = "steps"
	MetricCalories  Metric = "calories"
	MetricHeartRate Metric = "heart_rate"
	MetricSleep     Metric = "sleep_hours"
	MetricWater     Metric = "water_intake"
)

var AllMetrics = []Metric{MetricSteps, MetricCalories, MetricHeartRate, MetricSleep, MetricWater}

func (m Metric) value(e *entity.DailyEntry) (float64, bool) {
	switch m {
	case MetricSteps:
		return float64(e.Steps), true
	case MetricCalories:
		return float64(e.Calories), true
	case MetricHeartRate:
		return float64(e.HeartRate), true
	case MetricSleep:
		return e.SleepHours, true
	case MetricWater:
		return float64(e.WaterIntake), true
	}
	return 0, false
}

// Sleep and water keep one decimal, the rest are whole numbers.
func (m Metric) round(v float64) float64 {
	if m == MetricSleep || m == MetricWater {
		return math.RoundToEven(v*10) / 10
	}
	return math.RoundToEven(v)
}

// AggregateMetrics averages the requested metrics (all when none given) over
// entries. An empty window yields an empty map. Unknown metrics are skipped.
func AggregateMetrics(entries []entity.DailyEntry, metrics ...Metric) map[Metric]float64 {
	result := make(map[Metric]float64, len(metrics))
	if len(entries) == 0 {
		return result
	}
	if len(metrics) == 0 {
		metrics = AllMetrics
	}
	for _, m := range metrics {
		var sum float64
		known := true
		for i := range entries {
			v, ok := m.value(&entries[i])
			if !ok {
				known = false
				break
			}
			sum += v
		}
		if known {
			result[m] = m.round(sum / float64(len(entries)))
		}
	}
	return result
}

func SummarizeEntries(entries []entity.DailyEntry) entity.AggregatedStats {
	avg := AggregateMetrics(entries)
	return entity.AggregatedStats{
		AvgSteps:     int(avg[MetricSteps]),
		AvgCalories:  int(avg[MetricCalories]),
		AvgHeartRate: int(avg[MetricHeartRate]),
		AvgSleep:     avg[MetricSleep],
		AvgWater:     avg[MetricWater],
		TotalEntries: len(entries),
	}
}

// BuildWeeklyTrends lays entries out as parallel series sorted by date.
func BuildWeeklyTrends(entries []entity.DailyEntry) entity.WeeklyTrends {
	sorted := append([]entity.DailyEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	t := entity.WeeklyTrends{
		Dates:     make([]string, 0, len(sorted)),
		Steps:     make([]int, 0, len(sorted)),
		Calories:  make([]int, 0, len(sorted)),
		Sleep:     make([]float64, 0, len(sorted)),
		Water:     make([]int, 0, len(sorted)),
		HeartRate: make([]int, 0, len(sorted)),
	}
	for _, e := range sorted {
		t.Dates = append(t.Dates, e.Date.UTC().Format(time.DateOnly))
		t.Steps = append(t.Steps, e.Steps)
		t.Calories = append(t.Calories, e.Calories)
		t.Sleep = append(t.Sleep, e.SleepHours)
		t.Water = append(t.Water, e.WaterIntake)
		t.HeartRate = append(t.HeartRate, e.HeartRate)
	}
	return t
}

// windowStart is the first UTC day of a window of days days ending today.
func windowStart(now time.Time, days int) time.Time {
	return entity.DayStart(now).AddDate(0, 0, 1-max(days, 1))
}
