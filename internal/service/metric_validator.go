package service

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/healthtracker/internal/error_values"
	"github.com/limbo/healthtracker/pkg/entity"
)

// MetricsForm is a raw submission. Each metric may hold a JSON number, a
// numeric string or nothing at all; a missing metric counts as 0.
type MetricsForm struct {
	Steps       any    `json:"steps"`
	Calories    any    `json:"calories"`
	HeartRate   any    `json:"heart_rate"`
	SleepHours  any    `json:"sleep_hours"`
	WaterIntake any    `json:"water_intake"`
	Notes       string `json:"notes"`
}

type ValidationResult struct {
	OK     bool     `json:"ok"`
	Errors []string `json:"errors"`
}

// ValidationError carries every message of a failed validation.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return errorvalues.ErrValidation.Error() + ": " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return errorvalues.ErrValidation
}

// Fields in the order their messages are reported.
var metricRules = []struct {
	field   string
	message string
}{
	{"Steps", "Steps must be between 0 and 100,000"},
	{"Calories", "Calories must be between 0 and 10,000"},
	{"HeartRate", "Heart rate must be between 30 and 220 bpm"},
	{"SleepHours", "Sleep hours must be between 0 and 24"},
	{"WaterIntake", "Water intake must be between 0 and 50 glasses"},
	{"Notes", "Notes must be at most 500 characters"},
}

// ValidateMetrics parses the form and checks every metric against its range.
// All failures are reported, never just the first. The returned metrics are
// only meaningful when the result is OK.
func ValidateMetrics(form MetricsForm) (entity.Metrics, ValidationResult) {
	failed := make(map[string]bool)
	intField := func(name string, raw any) int {
		v, ok := parseWhole(raw)
		if !ok {
			failed[name] = true
		}
		return v
	}
	m := entity.Metrics{
		Steps:       intField("Steps", form.Steps),
		Calories:    intField("Calories", form.Calories),
		HeartRate:   intField("HeartRate", form.HeartRate),
		WaterIntake: intField("WaterIntake", form.WaterIntake),
		Notes:       strings.TrimSpace(form.Notes),
	}
	sleep, ok := parseNumber(form.SleepHours)
	if !ok {
		failed["SleepHours"] = true
	}
	m.SleepHours = sleep

	if err := validatorInstance().Struct(m); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				failed[fe.StructField()] = true
			}
		}
	}

	res := ValidationResult{OK: true, Errors: []string{}}
	for _, rule := range metricRules {
		if failed[rule.field] {
			res.Errors = append(res.Errors, rule.message)
		}
	}
	res.OK = len(res.Errors) == 0
	return m, res
}

func parseNumber(raw any) (float64, bool) {
	var f float64
	switch v := raw.(type) {
	case nil:
		return 0, true
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case int32:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseWhole(raw any) (int, bool) {
	f, ok := parseNumber(raw)
	if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
