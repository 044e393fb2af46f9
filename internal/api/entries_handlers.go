package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/healthtracker/internal/error_values"
	"github.com/limbo/healthtracker/internal/service"
	"github.com/limbo/healthtracker/pkg/entity"
	"github.com/limbo/healthtracker/pkg/httputil"
)

const dashboardStatsDays = 7

type SubmitEntryRequest struct {
	// Date is YYYY-MM-DD, today when empty. Future days are rejected.
	Date string `json:"date,omitempty"`
	service.MetricsForm
}

type SubmitEntryResponse struct {
	EntryID string `json:"entry_id"`
	Created bool   `json:"created"`
	Date    string `json:"date"`
}

type TodayResponse struct {
	Entry  *entity.DailyEntry     `json:"entry"`
	Score  *entity.ScoreBreakdown `json:"score,omitempty"`
	Status string                 `json:"status,omitempty"`
}

type EntriesResponse struct {
	Days    int                 `json:"days"`
	Entries []entity.DailyEntry `json:"entries"`
}

type StatsResponse struct {
	Days  int                    `json:"days"`
	Stats entity.AggregatedStats `json:"stats"`
}

type DashboardResponse struct {
	Today  TodayResponse          `json:"today"`
	Week   entity.AggregatedStats `json:"week"`
	Streak *entity.StreakState    `json:"streak"`
}

func (s *Server) SubmitEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("submit entry error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SubmitEntryRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("submit entry error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	now := time.Now().UTC()
	date := now
	if req.Date != "" {
		date, err = time.Parse(time.DateOnly, req.Date)
		if err != nil || date.After(now) {
			logger.Error("submit entry error: invalid date", slog.String("date", req.Date))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD and not in the future", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	res, err := s.entriesService.SubmitEntry(ctx, uid, date, req.MetricsForm)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			logger.Info("submit entry rejected: validation failed", slog.Int("errors", len(vErr.Messages)))
			httputil.WriteValidationErrorResponse(w, vErr.Messages)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("submit entry error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
		default:
			logger.Error("submit entry error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "failed to save entry", nil)
		}
		return
	}
	code := http.StatusOK
	if res.Created {
		code = http.StatusCreated
	}
	httputil.WriteJSONResponse(w, code, SubmitEntryResponse{
		EntryID: res.EntryID.String(),
		Created: res.Created,
		Date:    entity.DayStart(date).Format(time.DateOnly),
	})
	logger.Info("entry saved", slog.Bool("created", res.Created))
}

func (s *Server) GetEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get entries error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	days := daysParam(r, defaultDays)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	entries, err := s.entriesService.GetEntries(ctx, uid, days)
	if err != nil {
		logger.Error("getting entries error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting entries", nil)
		return
	}
	if entries == nil {
		entries = []entity.DailyEntry{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, EntriesResponse{Days: days, Entries: entries})
}

func (s *Server) GetTodayEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get today entry error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	today, err := s.entriesService.GetToday(ctx, uid)
	if err != nil {
		logger.Error("getting today entry error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting today's entry", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, todayResponse(today))
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	days := daysParam(r, defaultDays)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	stats, err := s.entriesService.GetStats(ctx, uid, days)
	if err != nil {
		logger.Error("getting stats error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while computing stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, StatsResponse{Days: days, Stats: stats})
}

func (s *Server) GetWeeklyTrends(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get trends error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	trends, err := s.entriesService.GetWeeklyTrends(ctx, uid)
	if err != nil {
		logger.Error("getting trends error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while computing trends", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, trends)
}

func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get dashboard error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	today, err := s.entriesService.GetToday(ctx, uid)
	if err != nil {
		logger.Error("dashboard error: today entry", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while building dashboard", nil)
		return
	}
	week, err := s.entriesService.GetStats(ctx, uid, dashboardStatsDays)
	if err != nil {
		logger.Error("dashboard error: stats", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while building dashboard", nil)
		return
	}
	streak, err := s.streakService.GetStreak(ctx, uid)
	if err != nil && !errors.Is(err, errorvalues.ErrStreakNotFound) {
		logger.Error("dashboard error: streak", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while building dashboard", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, DashboardResponse{
		Today:  todayResponse(today),
		Week:   week,
		Streak: streak,
	})
}

func todayResponse(t *service.TodayEntry) TodayResponse {
	return TodayResponse{
		Entry:  t.Entry,
		Score:  t.Score,
		Status: t.Status,
	}
}
