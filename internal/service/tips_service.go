package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/healthtracker/internal/error_values"
	"github.com/limbo/healthtracker/internal/repository"
	"github.com/limbo/healthtracker/pkg/entity"
)

const (
	tipsDisabledMessage = "AI tips feature is not configured"
	defaultTipPrompt    = "Give a short, motivational health tip (2-3 sentences) for someone trying to maintain a healthy lifestyle."
	tipStatsDays        = 7
)

const (
	DefaultRecentTips = 10
	MaxRecentTips     = 50
)

type TipResult struct {
	Available bool   `json:"available"`
	Tip       string `json:"tip,omitempty"`
	Category  string `json:"category,omitempty"`
	FromCache bool   `json:"from_cache"`
	Message   string `json:"message,omitempty"`
}

type TipsService struct {
	repo     repository.TipsRepositoryI
	entries  repository.EntriesRepositoryI
	provider TipProvider
	now      func() time.Time
	logger   *slog.Logger
}

// NewTipsService builds the service. A nil provider disables generation.
func NewTipsService(tipsRepo repository.TipsRepositoryI, entriesRepo repository.EntriesRepositoryI, provider TipProvider) *TipsService {
	return &TipsService{
		repo:     tipsRepo,
		entries:  entriesRepo,
		provider: provider,
		now:      time.Now,
		logger:   slog.Default(),
	}
}

// GetDailyTip returns at most one generated tip per user per UTC day.
func (ts *TipsService) GetDailyTip(ctx context.Context, uid uuid.UUID) (*TipResult, error) {
	if ts.provider == nil {
		return &TipResult{Available: false, Message: tipsDisabledMessage}, nil
	}
	now := ts.now()
	cached, err := ts.repo.GetForDay(ctx, uid, now)
	if err != nil {
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	if cached != nil {
		category := cached.Category
		if category == "" {
			category = "general"
		}
		return &TipResult{Available: true, Tip: cached.Text, Category: category, FromCache: true}, nil
	}

	prompt := defaultTipPrompt
	entries, err := ts.entries.GetSince(ctx, uid, windowStart(now, tipStatsDays))
	if err != nil {
		return nil, fmt.Errorf("repository listing error: %w", err)
	}
	if len(entries) > 0 {
		prompt = personalizedPrompt(SummarizeEntries(entries))
	}

	text, err := ts.provider.GenerateTip(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errorvalues.ErrTipGeneration, err)
	}
	text = strings.TrimSpace(text)
	tip := &entity.HealthTip{
		UserID:   uid,
		Text:     text,
		Category: CategorizeTip(text),
	}
	if err = ts.repo.Save(ctx, tip); err != nil {
		ts.logger.Warn("tip not cached", slog.String("uid", uid.String()), slog.String("error", err.Error()))
	}
	return &TipResult{Available: true, Tip: tip.Text, Category: tip.Category}, nil
}

// GetRecentTips lists the newest tips. limit below 1 falls back to
// DefaultRecentTips and is capped at MaxRecentTips.
func (ts *TipsService) GetRecentTips(ctx context.Context, uid uuid.UUID, limit int) ([]entity.HealthTip, error) {
	if limit < 1 {
		limit = DefaultRecentTips
	}
	limit = min(limit, MaxRecentTips)
	tips, err := ts.repo.GetRecent(ctx, uid, limit)
	if err != nil {
		return nil, fmt.Errorf("repository listing error: %w", err)
	}
	return tips, nil
}

func personalizedPrompt(stats entity.AggregatedStats) string {
	return fmt.Sprintf(`Based on the following health metrics, give a short motivational tip (2-3 sentences):
- Average daily steps: %d
- Average sleep hours: %.1f
- Average water intake: %.1f glasses

Focus on the area that needs the most improvement and provide actionable advice.`,
		stats.AvgSteps, stats.AvgSleep, stats.AvgWater)
}

var tipCategories = []struct {
	name     string
	keywords []string
}{
	{"sleep", []string{"sleep", "rest", "bed"}},
	{"hydration", []string{"water", "hydrat", "drink"}},
	{"activity", []string{"step", "walk", "exercise", "active"}},
	{"nutrition", []string{"food", "eat", "nutrition", "diet"}},
}

// CategorizeTip picks the first category whose keyword occurs in the text.
func CategorizeTip(text string) string {
	lower := strings.ToLower(text)
	for _, c := range tipCategories {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.name
			}
		}
	}
	return "general"
}
