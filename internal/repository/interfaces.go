package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/healthtracker/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/limbo/healthtracker/internal/repository UsersRepositoryI,EntriesRepositoryI,StreaksRepositoryI,TipsRepositoryI

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type EntriesRepositoryI interface {
	// Returns user's entry for the UTC day of date, nil if there is none
	GetForDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DailyEntry, error)
	// Inserts new entry and returns its id
	Create(ctx context.Context, entry *entity.DailyEntry) (uuid.UUID, error)
	// Overwrites all metrics of the entry with id, keeping its identity
	Replace(ctx context.Context, id uuid.UUID, entry *entity.DailyEntry) error
	// Lists user's entries dated since (inclusive), newest first
	GetSince(ctx context.Context, uid uuid.UUID, since time.Time) ([]entity.DailyEntry, error)
}

type StreaksRepositoryI interface {
	// Returns user's streak state, nil if user never logged in
	Get(ctx context.Context, uid uuid.UUID) (*entity.StreakState, error)
	// Creates or updates streak. The user key is only written on insert
	Upsert(ctx context.Context, state *entity.StreakState) error
}

type TipsRepositoryI interface {
	// Saves generated tip
	Save(ctx context.Context, tip *entity.HealthTip) error
	// Lists the most recent tips, newest first
	GetRecent(ctx context.Context, uid uuid.UUID, limit int) ([]entity.HealthTip, error)
	// Returns tip created on the UTC day of date, nil if there is none
	GetForDay(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.HealthTip, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

