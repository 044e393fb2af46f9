package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/healthtracker/internal/error_values"
	"github.com/limbo/healthtracker/internal/repository"
	"github.com/limbo/healthtracker/pkg/entity"
	"github.com/limbo/healthtracker/pkg/keylock"
)

const streakLockPrefix = "streak:"

type StreakService struct {
	repo       repository.StreaksRepositoryI
	locker     keylock.Locker
	tracker    HabitTracker
	milestones MilestoneNotifier
	now        func() time.Time
	logger     *slog.Logger
}

type StreakOption func(*StreakService)

// WithHabitTracker mirrors every counted login to tracker.
func WithHabitTracker(tracker HabitTracker) StreakOption {
	return func(s *StreakService) {
		s.tracker = tracker
	}
}

// WithMilestones reports new longest streaks to n.
func WithMilestones(n MilestoneNotifier) StreakOption {
	return func(s *StreakService) {
		s.milestones = n
	}
}

func NewStreakService(streaksRepo repository.StreaksRepositoryI, locker keylock.Locker, opts ...StreakOption) *StreakService {
	s := &StreakService{
		repo:   streaksRepo,
		locker: locker,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (ss *StreakService) RecordLogin(ctx context.Context, uid uuid.UUID) (*StreakOutcome, error) {
	outcome, err := ss.advance(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !outcome.Changed {
		return outcome, nil
	}
	logger := ss.logger.With(slog.String("uid", uid.String()))
	if ss.tracker != nil {
		if err := ss.tracker.RecordPixel(ctx, uid, outcome.State.LastLogin); err != nil {
			logger.Warn("recording login pixel failed", slog.String("error", err.Error()))
		}
	}
	if outcome.NewRecord && ss.milestones != nil {
		milestone := fmt.Sprintf("New longest streak: %d days in a row!", outcome.CurrentStreak)
		err := ss.milestones.SendMilestone(ctx, uid, milestone)
		switch {
		case errors.Is(err, errorvalues.ErrNoPhone):
			logger.Debug("milestone alert skipped: no phone")
		case errors.Is(err, errorvalues.ErrFeatureDisabled):
			logger.Debug("milestone alert skipped: sms disabled")
		case err != nil:
			logger.Warn("sending milestone alert failed", slog.String("error", err.Error()))
		}
	}
	return outcome, nil
}

func (ss *StreakService) advance(ctx context.Context, uid uuid.UUID) (*StreakOutcome, error) {
	unlock, err := ss.locker.Lock(ctx, streakLockPrefix+uid.String())
	if err != nil {
		return nil, fmt.Errorf("locking user streak error: %w", err)
	}
	defer unlock()

	prev, err := ss.repo.Get(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	outcome := AdvanceStreak(prev, uid, ss.now())
	if outcome.Changed {
		if err = ss.repo.Upsert(ctx, &outcome.State); err != nil {
			return nil, fmt.Errorf("repository upserting error: %w", err)
		}
	}
	return &outcome, nil
}

func (ss *StreakService) GetStreak(ctx context.Context, uid uuid.UUID) (*entity.StreakState, error) {
	state, err := ss.repo.Get(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	if state == nil {
		return nil, errorvalues.ErrStreakNotFound
	}
	return state, nil
}

func (ss *StreakService) GetCalendar(ctx context.Context, uid uuid.UUID, days int) ([]entity.CalendarDay, error) {
	state, err := ss.repo.Get(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	return StreakCalendar(state, ss.now(), days), nil
}
