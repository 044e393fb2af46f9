package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/limbo/healthtracker/internal/error_values"
	"github.com/limbo/healthtracker/pkg/entity"
	"github.com/limbo/healthtracker/pkg/httputil"
)

type CheckInResponse struct {
	Kind          string `json:"kind"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
	AlreadyLogged bool   `json:"already_logged"`
	NewRecord     bool   `json:"new_record"`
}

type CalendarResponse struct {
	Days     int                  `json:"days"`
	Calendar []entity.CalendarDay `json:"calendar"`
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get streak error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	state, err := s.streakService.GetStreak(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStreakNotFound) {
			logger.Info("get streak: user has no streak yet")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "streak not found", nil)
			return
		}
		logger.Error("getting streak error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting streak", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, state)
}

func (s *Server) CheckIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("check-in error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	outcome, err := s.streakService.RecordLogin(ctx, uid)
	if err != nil {
		logger.Error("check-in error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "failed to update streak", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, CheckInResponse{
		Kind:          outcome.Kind.String(),
		CurrentStreak: outcome.CurrentStreak,
		LongestStreak: outcome.State.LongestStreak,
		AlreadyLogged: outcome.AlreadyLogged,
		NewRecord:     outcome.NewRecord,
	})
	logger.Info("checked in", slog.String("kind", outcome.Kind.String()))
}

func (s *Server) GetStreakCalendar(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get calendar error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	days := daysParam(r, defaultDays)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	calendar, err := s.streakService.GetCalendar(ctx, uid, days)
	if err != nil {
		logger.Error("getting calendar error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting calendar", nil)
		return
	}
	if calendar == nil {
		calendar = []entity.CalendarDay{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, CalendarResponse{Days: days, Calendar: calendar})
}
