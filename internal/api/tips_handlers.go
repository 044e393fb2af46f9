package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	errorvalues "github.com/limbo/healthtracker/internal/error_values"
	"github.com/limbo/healthtracker/internal/service"
	"github.com/limbo/healthtracker/pkg/entity"
	"github.com/limbo/healthtracker/pkg/httputil"
)

type TipsResponse struct {
	Tips []entity.HealthTip `json:"tips"`
}

func (s *Server) GetDailyTip(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("daily tip error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	// generation goes to an external model, allow it more time
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*40)
	defer cancel()
	res, err := s.tipsService.GetDailyTip(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTipGeneration) {
			logger.Error("daily tip error: provider failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadGateway, "failed to generate tip", nil)
			return
		}
		logger.Error("daily tip error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting tip", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
}

func (s *Server) GetRecentTips(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("recent tips error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > service.MaxRecentTips {
		limit = service.DefaultRecentTips
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	tips, err := s.tipsService.GetRecentTips(ctx, uid, limit)
	if err != nil {
		logger.Error("getting tips list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting tips", nil)
		return
	}
	if tips == nil {
		tips = []entity.HealthTip{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TipsResponse{Tips: tips})
}
