package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/healthtracker/internal/error_values"
	"github.com/limbo/healthtracker/pkg/entity"
)

type TipsRepository struct {
	conn PgConnection
}

func NewTipsRepo(cfg DBConfig) *TipsRepository {
	pool, err := NewPool(context.Background(), cfg)
	if err != nil {
		log.Fatal("creating connection for tipsRepo error: " + err.Error())
	}
	return &TipsRepository{
		conn: pool,
	}
}

func NewTipsRepoWithConn(conn PgConnection) *TipsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for tipsRepo: " + err.Error())
	}
	return &TipsRepository{
		conn: conn,
	}
}

func (tr *TipsRepository) Save(ctx context.Context, tip *entity.HealthTip) error {
	row := tr.conn.QueryRow(
		ctx,
		`INSERT INTO health_tips (user_id, tip_text, category) VALUES ($1, $2, $3) RETURNING id, created_at;`,
		tip.UserID,
		tip.Text,
		tip.Category,
	)
	if err := row.Scan(&tip.ID, &tip.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgForeignKeyViolation:
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("saving tip error: " + err.Error())
	}
	return nil
}

func (tr *TipsRepository) GetRecent(ctx context.Context, uid uuid.UUID, limit int) ([]entity.HealthTip, error) {
	rows, err := tr.conn.Query(
		ctx,
		`SELECT id, user_id, tip_text, category, created_at FROM health_tips WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2;`,
		uid,
		limit,
	)
	if err != nil {
		return nil, errors.New("getting recent tips error: " + err.Error())
	}
	defer rows.Close()
	tips := make([]entity.HealthTip, 0, max(limit, 0))
	for rows.Next() {
		var tip entity.HealthTip
		if err = rows.Scan(&tip.ID, &tip.UserID, &tip.Text, &tip.Category, &tip.CreatedAt); err != nil {
			return nil, errors.New("tip row parsing error: " + err.Error())
		}
		tips = append(tips, tip)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected tip rows error: " + err.Error())
	}
	return tips, nil
}

func (tr *TipsRepository) GetForDay(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.HealthTip, error) {
	from := entity.DayStart(date)
	row := tr.conn.QueryRow(
		ctx,
		`SELECT id, user_id, tip_text, category, created_at FROM health_tips WHERE user_id = $1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at DESC LIMIT 1;`,
		uid,
		from,
		from.AddDate(0, 0, 1),
	)
	var tip entity.HealthTip
	if err := row.Scan(&tip.ID, &tip.UserID, &tip.Text, &tip.Category, &tip.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting tip for day error: " + err.Error())
	}
	return &tip, nil
}
