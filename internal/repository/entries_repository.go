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

const entryColumns = `id, user_id, entry_date, steps, calories, heart_rate, sleep_hours, water_intake, notes, created_at, updated_at`

type EntriesRepository struct {
	conn PgConnection
}

func NewEntriesRepo(cfg DBConfig) *EntriesRepository {
	pool, err := NewPool(context.Background(), cfg)
	if err != nil {
		log.Fatal("creating connection for entriesRepo error: " + err.Error())
	}
	return &EntriesRepository{
		conn: pool,
	}
}

func NewEntriesRepoWithConn(conn PgConnection) *EntriesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for entriesRepo: " + err.Error())
	}
	return &EntriesRepository{
		conn: conn,
	}
}

func scanEntry(row pgx.Row, e *entity.DailyEntry) error {
	return row.Scan(
		&e.ID, &e.UserID, &e.Date,
		&e.Steps, &e.Calories, &e.HeartRate, &e.SleepHours, &e.WaterIntake, &e.Notes,
		&e.CreatedAt, &e.UpdatedAt,
	)
}

func (er *EntriesRepository) GetForDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DailyEntry, error) {
	row := er.conn.QueryRow(
		ctx,
		`SELECT `+entryColumns+` FROM daily_entries WHERE user_id = $1 AND entry_date = $2 LIMIT 1;`,
		uid,
		entity.DayStart(date),
	)
	var entry entity.DailyEntry
	if err := scanEntry(row, &entry); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting entry for date error: " + err.Error())
	}
	return &entry, nil
}

func (er *EntriesRepository) Create(ctx context.Context, entry *entity.DailyEntry) (uuid.UUID, error) {
	var id uuid.UUID
	row := er.conn.QueryRow(
		ctx,
		`INSERT INTO daily_entries (user_id, entry_date, steps, calories, heart_rate, sleep_hours, water_intake, notes) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`,
		entry.UserID,
		entity.DayStart(entry.Date),
		entry.Steps,
		entry.Calories,
		entry.HeartRate,
		entry.SleepHours,
		entry.WaterIntake,
		entry.Notes,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgForeignKeyViolation:
				return uuid.Nil, errorvalues.ErrUserNotFound
			}
		}
		return uuid.Nil, errors.New("creating entry error: " + err.Error())
	}
	return id, nil
}

func (er *EntriesRepository) Replace(ctx context.Context, id uuid.UUID, entry *entity.DailyEntry) error {
	ct, err := er.conn.Exec(
		ctx,
		`UPDATE daily_entries SET steps = $1, calories = $2, heart_rate = $3, sleep_hours = $4, water_intake = $5, notes = $6, updated_at = NOW() WHERE id = $7;`,
		entry.Steps,
		entry.Calories,
		entry.HeartRate,
		entry.SleepHours,
		entry.WaterIntake,
		entry.Notes,
		id,
	)
	if err != nil {
		return errors.New("replacing entry error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEntryNotFound
	}
	return nil
}

func (er *EntriesRepository) GetSince(ctx context.Context, uid uuid.UUID, since time.Time) ([]entity.DailyEntry, error) {
	rows, err := er.conn.Query(
		ctx,
		`SELECT `+entryColumns+` FROM daily_entries WHERE user_id = $1 AND entry_date >= $2 ORDER BY entry_date DESC;`,
		uid,
		entity.DayStart(since),
	)
	if err != nil {
		return nil, errors.New("getting entries for window error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.DailyEntry, 0, 8)
	for rows.Next() {
		var entry entity.DailyEntry
		if err = scanEntry(rows, &entry); err != nil {
			return nil, errors.New("entry row parsing error: " + err.Error())
		}
		result = append(result, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected entry rows error: " + err.Error())
	}
	return result, nil
}
