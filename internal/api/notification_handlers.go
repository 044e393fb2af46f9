package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/limbo/healthtracker/internal/error_values"
	"github.com/limbo/healthtracker/pkg/httputil"
)

const summaryDays = 7

type NotificationResponse struct {
	MessageID string `json:"message_id"`
}

func (s *Server) SendReminder(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("reminder error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*20)
	defer cancel()
	sid, err := s.notificationService.SendDailyReminder(ctx, uid)
	s.writeNotificationResult(w, logger, sid, err)
}

func (s *Server) SendWeeklySummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("summary error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*20)
	defer cancel()
	stats, err := s.entriesService.GetStats(ctx, uid, summaryDays)
	if err != nil {
		logger.Error("summary error: computing stats", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while computing stats", nil)
		return
	}
	sid, err := s.notificationService.SendWeeklySummary(ctx, uid, stats)
	s.writeNotificationResult(w, logger, sid, err)
}

func (s *Server) SendStreakReminder(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("streak reminder error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*20)
	defer cancel()
	state, err := s.streakService.GetStreak(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStreakNotFound) {
			httputil.WriteErrorResponse(w, http.StatusNotFound, "streak not found", nil)
			return
		}
		logger.Error("streak reminder error: getting streak", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting streak", nil)
		return
	}
	sid, err := s.notificationService.SendStreakReminder(ctx, uid, state.CurrentStreak)
	s.writeNotificationResult(w, logger, sid, err)
}

func (s *Server) writeNotificationResult(w http.ResponseWriter, logger *slog.Logger, sid string, err error) {
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrFeatureDisabled):
			logger.Info("notification skipped: sms disabled")
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "sms notifications are not configured", nil)
		case errors.Is(err, errorvalues.ErrNoPhone):
			logger.Info("notification skipped: no phone")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "no phone number on account", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
		default:
			logger.Error("notification error: provider failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadGateway, "failed to send notification", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, NotificationResponse{MessageID: sid})
	logger.Info("notification sent")
}
