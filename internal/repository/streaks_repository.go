package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/healthtracker/internal/error_values"
	"github.com/limbo/healthtracker/pkg/entity"
)

type StreaksRepository struct {
	conn PgConnection
}

func NewStreaksRepo(cfg DBConfig) *StreaksRepository {
	pool, err := NewPool(context.Background(), cfg)
	if err != nil {
		log.Fatal("creating connection for streaksRepo error: " + err.Error())
	}
	return &StreaksRepository{
		conn: pool,
	}
}

func NewStreaksRepoWithConn(conn PgConnection) *StreaksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for streaksRepo: " + err.Error())
	}
	return &StreaksRepository{
		conn: conn,
	}
}

func (sr *StreaksRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.StreakState, error) {
	var state entity.StreakState
	row := sr.conn.QueryRow(
		ctx,
		`SELECT user_id, current_streak, longest_streak, last_login, login_dates FROM streaks WHERE user_id = $1;`,
		uid,
	)
	err := row.Scan(&state.UserID, &state.CurrentStreak, &state.LongestStreak, &state.LastLogin, &state.LoginDates)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting streak error: " + err.Error())
	}
	return &state, nil
}

// Upsert never touches user_id on conflict, the key stays as inserted.
func (sr *StreaksRepository) Upsert(ctx context.Context, state *entity.StreakState) error {
	_, err := sr.conn.Exec(
		ctx,
		`INSERT INTO streaks (user_id, current_streak, longest_streak, last_login, login_dates) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET current_streak = EXCLUDED.current_streak, longest_streak = EXCLUDED.longest_streak,
		last_login = EXCLUDED.last_login, login_dates = EXCLUDED.login_dates, updated_at = NOW();`,
		state.UserID,
		state.CurrentStreak,
		state.LongestStreak,
		state.LastLogin,
		state.LoginDates,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgForeignKeyViolation:
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("upserting streak error: " + err.Error())
	}
	return nil
}
