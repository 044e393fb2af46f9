package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	repomocks "github.com/limbo/healthtracker/internal/repository/mocks"
	"github.com/limbo/healthtracker/internal/service"
	"github.com/limbo/healthtracker/internal/service/mocks"
	"github.com/limbo/healthtracker/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDailyTipDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := service.NewTipsService(repomocks.NewMockTipsRepositoryI(ctrl), repomocks.NewMockEntriesRepositoryI(ctrl), nil)

	res, err := ts.GetDailyTip(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, &service.TipResult{Available: false, Message: "AI tips feature is not configured"}, res)
}

func TestGetDailyTip(t *testing.T) {
	ctrl := gomock.NewController(t)
	tips := repomocks.NewMockTipsRepositoryI(ctrl)
	entries := repomocks.NewMockEntriesRepositoryI(ctrl)
	provider := mocks.NewMockTipProvider(ctrl)
	ts := service.NewTipsService(tips, entries, provider)
	uid := uuid.New()

	testCases := []struct {
		Desc         string
		MockPrepFunc func()
		Expected     *service.TipResult
		Error        string
	}{
		{
			Desc: "cached tip is reused",
			MockPrepFunc: func() {
				tips.EXPECT().GetForDay(gomock.Any(), uid, gomock.Any()).Return(&entity.HealthTip{
					UserID: uid, Text: "Drink more water.", Category: "hydration",
				}, nil)
			},
			Expected: &service.TipResult{Available: true, Tip: "Drink more water.", Category: "hydration", FromCache: true},
		},
		{
			Desc: "cached tip without category",
			MockPrepFunc: func() {
				tips.EXPECT().GetForDay(gomock.Any(), uid, gomock.Any()).Return(&entity.HealthTip{UserID: uid, Text: "Smile."}, nil)
			},
			Expected: &service.TipResult{Available: true, Tip: "Smile.", Category: "general", FromCache: true},
		},
		{
			Desc: "no history uses the default prompt",
			MockPrepFunc: func() {
				tips.EXPECT().GetForDay(gomock.Any(), uid, gomock.Any()).Return(nil, nil)
				entries.EXPECT().GetSince(gomock.Any(), uid, gomock.Any()).Return([]entity.DailyEntry{}, nil)
				provider.EXPECT().GenerateTip(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, prompt string) (string, error) {
						assert.True(t, strings.HasPrefix(prompt, "Give a short, motivational health tip"))
						return "  Take a brisk walk after lunch.  ", nil
					})
				tips.EXPECT().Save(gomock.Any(), &entity.HealthTip{
					UserID: uid, Text: "Take a brisk walk after lunch.", Category: "activity",
				}).Return(nil)
			},
			Expected: &service.TipResult{Available: true, Tip: "Take a brisk walk after lunch.", Category: "activity"},
		},
		{
			Desc: "history personalizes the prompt",
			MockPrepFunc: func() {
				tips.EXPECT().GetForDay(gomock.Any(), uid, gomock.Any()).Return(nil, nil)
				entries.EXPECT().GetSince(gomock.Any(), uid, gomock.Any()).Return([]entity.DailyEntry{
					{Steps: 4000, SleepHours: 6, WaterIntake: 3, HeartRate: 70},
					{Steps: 6000, SleepHours: 7, WaterIntake: 4, HeartRate: 70},
				}, nil)
				provider.EXPECT().GenerateTip(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, prompt string) (string, error) {
						assert.Contains(t, prompt, "- Average daily steps: 5000")
						assert.Contains(t, prompt, "- Average sleep hours: 6.5")
						assert.Contains(t, prompt, "- Average water intake: 3.5 glasses")
						return "Go to bed 30 minutes earlier.", nil
					})
				tips.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			Expected: &service.TipResult{Available: true, Tip: "Go to bed 30 minutes earlier.", Category: "sleep"},
		},
		{
			Desc: "save failure still returns the tip",
			MockPrepFunc: func() {
				tips.EXPECT().GetForDay(gomock.Any(), uid, gomock.Any()).Return(nil, nil)
				entries.EXPECT().GetSince(gomock.Any(), uid, gomock.Any()).Return(nil, nil)
				provider.EXPECT().GenerateTip(gomock.Any(), gomock.Any()).Return("Eat a colorful salad.", nil)
				tips.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			Expected: &service.TipResult{Available: true, Tip: "Eat a colorful salad.", Category: "nutrition"},
		},
		{
			Desc: "provider error",
			MockPrepFunc: func() {
				tips.EXPECT().GetForDay(gomock.Any(), uid, gomock.Any()).Return(nil, nil)
				entries.EXPECT().GetSince(gomock.Any(), uid, gomock.Any()).Return(nil, nil)
				provider.EXPECT().GenerateTip(gomock.Any(), gomock.Any()).Return("", errors.New("rate limited"))
			},
			Error: "generating tip error: rate limited",
		},
		{
			Desc: "cache lookup error",
			MockPrepFunc: func() {
				tips.EXPECT().GetForDay(gomock.Any(), uid, gomock.Any()).Return(nil, errors.New("db error"))
			},
			Error: "repository searching error: db error",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			res, err := ts.GetDailyTip(context.Background(), uid)
			if tc.Error != "" {
				assert.EqualError(t, err, tc.Error)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, res)
		})
	}
}

func TestGetRecentTips(t *testing.T) {
	ctrl := gomock.NewController(t)
	tips := repomocks.NewMockTipsRepositoryI(ctrl)
	ts := service.NewTipsService(tips, repomocks.NewMockEntriesRepositoryI(ctrl), nil)
	uid := uuid.New()
	recent := []entity.HealthTip{{UserID: uid, Text: "a"}, {UserID: uid, Text: "b"}}

	tips.EXPECT().GetRecent(gomock.Any(), uid, 5).Return(recent, nil)
	got, err := ts.GetRecentTips(context.Background(), uid, 5)
	require.NoError(t, err)
	assert.Equal(t, recent, got)

	testCases := []struct {
		Desc     string
		Limit    int
		Expected int
	}{
		{"zero falls back to default", 0, service.DefaultRecentTips},
		{"negative falls back to default", -3, service.DefaultRecentTips},
		{"capped", 1000, service.MaxRecentTips},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tips.EXPECT().GetRecent(gomock.Any(), uid, tc.Expected).Return(nil, nil)
			_, err := ts.GetRecentTips(context.Background(), uid, tc.Limit)
			require.NoError(t, err)
		})
	}
}

func TestCategorizeTip(t *testing.T) {
	testCases := []struct {
		Text     string
		Expected string
	}{
		{"Get 8 hours of SLEEP tonight.", "sleep"},
		{"Rest days matter.", "sleep"},
		{"Keep a bottle of water nearby.", "hydration"},
		{"Stay hydrated.", "hydration"},
		{"Take the stairs and walk more.", "activity"},
		{"Exercise for 20 minutes.", "activity"},
		{"Eat more vegetables.", "nutrition"},
		{"Watch your diet.", "nutrition"},
		{"Drink water before bed.", "sleep"},
		{"Smile more often.", "general"},
		{"", "general"},
	}
	for _, tc := range testCases {
		t.Run(tc.Text, func(t *testing.T) {
			assert.Equal(t, tc.Expected, service.CategorizeTip(tc.Text))
		})
	}
}
