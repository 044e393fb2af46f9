package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/limbo/healthtracker/internal/api"
	"github.com/limbo/healthtracker/internal/repository"
	"github.com/limbo/healthtracker/internal/repository/mongostore"
	"github.com/limbo/healthtracker/internal/service"
	"github.com/limbo/healthtracker/pkg/cleanup"
	"github.com/limbo/healthtracker/pkg/clients/openai"
	"github.com/limbo/healthtracker/pkg/clients/pixela"
	"github.com/limbo/healthtracker/pkg/clients/twilio"
	"github.com/limbo/healthtracker/pkg/config"
	jwtservice "github.com/limbo/healthtracker/pkg/jwt_service"
	"github.com/limbo/healthtracker/pkg/keylock"
)

func init() {
	service.InitValidator()
}

func setupLogger(cfg *config.Config) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.GetStringOr("LOG_LEVEL", "info"))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if strings.EqualFold(cfg.GetString("LOG_FORMAT"), "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

type stores struct {
	entries repository.EntriesRepositoryI
	streaks repository.StreaksRepositoryI
	tips    repository.TipsRepositoryI
}

// openStores picks where health documents live. Users are always in postgres.
func openStores(ctx context.Context, cfg *config.Config, pool repository.PgConnection) stores {
	if strings.EqualFold(cfg.GetString("HEALTH_STORE"), "mongo") {
		db, err := mongostore.Connect(ctx, cfg.GetString("MONGODB_URI"), cfg.GetStringOr("MONGODB_DB_NAME", "health_tracker"))
		if err != nil {
			log.Fatal(err.Error())
		}
		if err = mongostore.EnsureIndexes(ctx, db); err != nil {
			log.Fatal(err.Error())
		}
		return stores{
			entries: mongostore.NewEntriesStore(db),
			streaks: mongostore.NewStreaksStore(db),
			tips:    mongostore.NewTipsStore(db),
		}
	}
	return stores{
		entries: repository.NewEntriesRepoWithConn(pool),
		streaks: repository.NewStreaksRepoWithConn(pool),
		tips:    repository.NewTipsRepoWithConn(pool),
	}
}

func newLocker(ctx context.Context, cfg *config.Config) keylock.Locker {
	uri := cfg.GetString("REDIS_URI")
	if uri == "" {
		return keylock.NewMemory()
	}
	client, err := keylock.NewRedisClient(ctx, uri)
	if err != nil {
		log.Fatal(err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	slog.Info("using redis locks")
	return keylock.NewRedis(client, keylock.WithTTL(cfg.GetDuration("LOCK_TTL", keylock.DefaultLockTTL)))
}

func main() {
	cfg := config.New()
	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	startCtx, cancel := context.WithTimeout(ctx, time.Minute)
	pool, err := repository.NewPool(startCtx, &dbCfg)
	if err != nil {
		log.Fatal(err.Error())
	}
	st := openStores(startCtx, cfg, pool)
	locker := newLocker(startCtx, cfg)
	cancel()

	usersRepo := repository.NewUsersRepoWithConn(pool)

	// Optional collaborators stay nil interfaces unless configured.
	var notifier service.Notifier
	if cfg.SMSEnabled() {
		notifier = twilio.New(cfg.GetString("TWILIO_ACCOUNT_SID"), cfg.GetString("TWILIO_AUTH_TOKEN"), cfg.GetString("TWILIO_PHONE_NUMBER"))
	}
	var provider service.TipProvider
	if cfg.AITipsEnabled() {
		c := openai.New(cfg.GetString("OPENAI_API_KEY"), cfg.GetString("OPENAI_MODEL"))
		c.SetBaseURL(cfg.GetString("OPENAI_BASE_URL"))
		provider = c
	}
	notificationService := service.NewNotificationService(usersRepo, notifier)

	var streakOpts []service.StreakOption
	if cfg.SMSEnabled() {
		streakOpts = append(streakOpts, service.WithMilestones(notificationService))
	}
	if cfg.PixelaEnabled() {
		streakOpts = append(streakOpts, service.WithHabitTracker(pixela.New(cfg.GetString("PIXELA_USERNAME"), cfg.GetString("PIXELA_TOKEN"))))
	}
	slog.Info("features",
		slog.Bool("ai_tips", cfg.AITipsEnabled()),
		slog.Bool("sms", cfg.SMSEnabled()),
		slog.Bool("pixela", cfg.PixelaEnabled()),
	)

	serv := api.New(&api.ServicesList{
		UserService:         service.NewUserService(usersRepo),
		EntriesService:      service.NewEntriesService(st.entries, locker),
		StreakService:       service.NewStreakService(st.streaks, locker, streakOpts...),
		TipsService:         service.NewTipsService(st.tips, st.entries, provider),
		NotificationService: notificationService,
		JwtService:          jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", 24*time.Hour)),
		AllowedOrigins:      cfg.GetList("CORS_ALLOWED_ORIGINS"),
	})
	err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	if failed := cleanup.CleanUp(); failed > 0 {
		os.Exit(1)
	}
}
