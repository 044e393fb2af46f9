package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/healthtracker/internal/repository"
	"github.com/limbo/healthtracker/pkg/entity"
	"github.com/limbo/healthtracker/pkg/keylock"
)

const entryLockPrefix = "entry:"

type UpsertResult struct {
	EntryID uuid.UUID
	Created bool
}

type TodayEntry struct {
	Entry  *entity.DailyEntry
	Score  *entity.ScoreBreakdown
	Status string
}

type EntriesService struct {
	repo   repository.EntriesRepositoryI
	locker keylock.Locker
	now    func() time.Time
	logger *slog.Logger
}

func NewEntriesService(entriesRepo repository.EntriesRepositoryI, locker keylock.Locker) *EntriesService {
	return &EntriesService{
		repo:   entriesRepo,
		locker: locker,
		now:    time.Now,
		logger: slog.Default(),
	}
}

func (es *EntriesService) SubmitEntry(ctx context.Context, uid uuid.UUID, date time.Time, form MetricsForm) (*UpsertResult, error) {
	metrics, res := ValidateMetrics(form)
	if !res.OK {
		return nil, &ValidationError{Messages: res.Errors}
	}
	return es.UpsertEntry(ctx, uid, date, metrics)
}

// UpsertEntry creates the user's entry for the UTC day of date or overwrites
// every metric of the existing one, keeping its id and creation time. The
// lookup and the write run under the user's lock.
func (es *EntriesService) UpsertEntry(ctx context.Context, uid uuid.UUID, date time.Time, metrics entity.Metrics) (*UpsertResult, error) {
	unlock, err := es.locker.Lock(ctx, entryLockPrefix+uid.String())
	if err != nil {
		return nil, fmt.Errorf("locking user entries error: %w", err)
	}
	defer unlock()

	day := entity.DayStart(date)
	existing, err := es.repo.GetForDate(ctx, uid, day)
	if err != nil {
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	if existing != nil {
		existing.ApplyMetrics(metrics)
		if err = es.repo.Replace(ctx, existing.ID, existing); err != nil {
			return nil, fmt.Errorf("repository replacing error: %w", err)
		}
		es.logger.Debug("entry replaced", slog.String("uid", uid.String()), slog.String("entry_id", existing.ID.String()))
		return &UpsertResult{EntryID: existing.ID}, nil
	}

	entry := &entity.DailyEntry{UserID: uid, Date: day}
	entry.ApplyMetrics(metrics)
	id, err := es.repo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("repository creating error: %w", err)
	}
	es.logger.Debug("entry created", slog.String("uid", uid.String()), slog.String("entry_id", id.String()))
	return &UpsertResult{EntryID: id, Created: true}, nil
}

func (es *EntriesService) GetEntries(ctx context.Context, uid uuid.UUID, days int) ([]entity.DailyEntry, error) {
	entries, err := es.repo.GetSince(ctx, uid, windowStart(es.now(), days))
	if err != nil {
		return nil, fmt.Errorf("repository listing error: %w", err)
	}
	return entries, nil
}

func (es *EntriesService) GetToday(ctx context.Context, uid uuid.UUID) (*TodayEntry, error) {
	entry, err := es.repo.GetForDate(ctx, uid, es.now())
	if err != nil {
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	if entry == nil {
		return &TodayEntry{}, nil
	}
	score := ScoreBreakdownFor(entry.Metrics())
	return &TodayEntry{
		Entry:  entry,
		Score:  &score,
		Status: HealthStatus(score.Total),
	}, nil
}

func (es *EntriesService) GetStats(ctx context.Context, uid uuid.UUID, days int) (entity.AggregatedStats, error) {
	entries, err := es.GetEntries(ctx, uid, days)
	if err != nil {
		return entity.AggregatedStats{}, err
	}
	return SummarizeEntries(entries), nil
}

func (es *EntriesService) GetWeeklyTrends(ctx context.Context, uid uuid.UUID) (entity.WeeklyTrends, error) {
	entries, err := es.GetEntries(ctx, uid, 7)
	if err != nil {
		return entity.WeeklyTrends{}, err
	}
	return BuildWeeklyTrends(entries), nil
}
