package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/limbo/healthtracker/internal/service"
)

type Server struct {
	mx                  *chi.Mux
	userService         service.UserServiceI
	entriesService      service.EntriesServiceI
	streakService       service.StreakServiceI
	tipsService         service.TipsServiceI
	notificationService service.NotificationServiceI
	jwtService          JWTServiceI
}

type ServicesList struct {
	UserService         service.UserServiceI
	EntriesService      service.EntriesServiceI
	StreakService       service.StreakServiceI
	TipsService         service.TipsServiceI
	NotificationService service.NotificationServiceI
	JwtService          JWTServiceI
	// AllowedOrigins for CORS, every origin when empty
	AllowedOrigins []string
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                  chi.NewMux(),
		userService:         servicesOptions.UserService,
		entriesService:      servicesOptions.EntriesService,
		streakService:       servicesOptions.StreakService,
		tipsService:         servicesOptions.TipsService,
		notificationService: servicesOptions.NotificationService,
		jwtService:          servicesOptions.JwtService,
	}
	s.mountRoutes(servicesOptions.AllowedOrigins)
	return s
}

func (s *Server) mountRoutes(origins []string) {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.mx.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)

	s.mx.Get("/health", s.Health)
	s.mx.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)
	})
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

		r.Post("/entries", s.SubmitEntry)
		r.Get("/entries", s.GetEntries)
		r.Get("/entries/today", s.GetTodayEntry)
		r.Get("/stats", s.GetStats)
		r.Get("/trends", s.GetWeeklyTrends)
		r.Get("/dashboard", s.GetDashboard)

		r.Get("/streak", s.GetStreak)
		r.Post("/streak/checkin", s.CheckIn)
		r.Get("/streak/calendar", s.GetStreakCalendar)

		r.Get("/tips/today", s.GetDailyTip)
		r.Get("/tips", s.GetRecentTips)

		r.Post("/notifications/reminder", s.SendReminder)
		r.Post("/notifications/summary", s.SendWeeklySummary)
		r.Post("/notifications/streak", s.SendStreakReminder)

		r.Patch("/account/phone", s.UpdatePhone)
		r.Delete("/account", s.DeleteAccount)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("api server stopped")
	return nil
}
