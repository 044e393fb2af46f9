package mongostore_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/healthtracker/internal/error_values"
	"github.com/limbo/healthtracker/internal/repository/mongostore"
	"github.com/limbo/healthtracker/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func toDoc(t *testing.T, v any) bson.D {
	t.Helper()
	raw, err := bson.Marshal(v)
	require.NoError(t, err)
	var d bson.D
	require.NoError(t, bson.Unmarshal(raw, &d))
	return d
}

func ns(coll string) string {
	return "health." + coll
}

func TestEntriesStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	uid := uuid.New()
	day := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	entry := entity.DailyEntry{
		ID:          uuid.New(),
		UserID:      uid,
		Date:        day,
		Steps:       9000,
		Calories:    2100,
		HeartRate:   64,
		SleepHours:  7.5,
		WaterIntake: 8,
		Notes:       "long walk",
		CreatedAt:   day.Add(9 * time.Hour),
		UpdatedAt:   day.Add(9 * time.Hour),
	}

	mt.Run("get for date found", func(mt *mtest.T) {
		store := mongostore.NewEntriesStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mongostore.EntriesCollection), mtest.FirstBatch, toDoc(t, entry)))
		result, err := store.GetForDate(context.Background(), uid, day.Add(15*time.Hour))
		require.NoError(mt, err)
		assert.Equal(mt, &entry, result)
	})
	mt.Run("get for date absent", func(mt *mtest.T) {
		store := mongostore.NewEntriesStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mongostore.EntriesCollection), mtest.FirstBatch))
		result, err := store.GetForDate(context.Background(), uid, day)
		assert.NoError(mt, err)
		assert.Nil(mt, result)
	})
	mt.Run("get for date error", func(mt *mtest.T) {
		store := mongostore.NewEntriesStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad query", Name: "BadValue"}))
		_, err := store.GetForDate(context.Background(), uid, day)
		assert.ErrorContains(mt, err, "getting entry for date error: ")
	})
	mt.Run("create", func(mt *mtest.T) {
		store := mongostore.NewEntriesStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		fresh := entity.DailyEntry{UserID: uid, Date: day.Add(13 * time.Hour), Steps: 100}
		id, err := store.Create(context.Background(), &fresh)
		require.NoError(mt, err)
		assert.NotEqual(mt, uuid.Nil, id)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "insert", evt.CommandName)
	})
	mt.Run("create duplicate id", func(mt *mtest.T) {
		store := mongostore.NewEntriesStore(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}))
		_, err := store.Create(context.Background(), &entity.DailyEntry{UserID: uid, Date: day})
		assert.ErrorContains(mt, err, "creating entry error: ")
	})
	mt.Run("replace", func(mt *mtest.T) {
		store := mongostore.NewEntriesStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))
		err := store.Replace(context.Background(), entry.ID, &entry)
		assert.NoError(mt, err)
	})
	mt.Run("replace missing", func(mt *mtest.T) {
		store := mongostore.NewEntriesStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))
		err := store.Replace(context.Background(), entry.ID, &entry)
		assert.ErrorIs(mt, err, errorvalues.ErrEntryNotFound)
	})
	mt.Run("get since", func(mt *mtest.T) {
		store := mongostore.NewEntriesStore(mt.DB)
		older := entry
		older.ID = uuid.New()
		older.Date = day.AddDate(0, 0, -1)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mongostore.EntriesCollection), mtest.FirstBatch,
			toDoc(t, entry), toDoc(t, older)))
		result, err := store.GetSince(context.Background(), uid, day.AddDate(0, 0, -7))
		require.NoError(mt, err)
		assert.Equal(mt, []entity.DailyEntry{entry, older}, result)
	})
}

func TestStreaksStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	uid := uuid.New()
	day := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	state := entity.StreakState{
		UserID:        uid,
		CurrentStreak: 2,
		LongestStreak: 4,
		LastLogin:     day.Add(8 * time.Hour),
		LoginDates:    []time.Time{day.AddDate(0, 0, -1), day},
	}

	mt.Run("get", func(mt *mtest.T) {
		store := mongostore.NewStreaksStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mongostore.StreaksCollection), mtest.FirstBatch, toDoc(t, state)))
		result, err := store.Get(context.Background(), uid)
		require.NoError(mt, err)
		assert.Equal(mt, &state, result)
	})
	mt.Run("get absent", func(mt *mtest.T) {
		store := mongostore.NewStreaksStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mongostore.StreaksCollection), mtest.FirstBatch))
		result, err := store.Get(context.Background(), uid)
		assert.NoError(mt, err)
		assert.Nil(mt, result)
	})
	mt.Run("upsert", func(mt *mtest.T) {
		store := mongostore.NewStreaksStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))
		require.NoError(mt, store.Upsert(context.Background(), &state))

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "update", evt.CommandName)
		assert.True(mt, evt.Command.Lookup("updates", "0", "upsert").Boolean())
		_, err := evt.Command.LookupErr("updates", "0", "u", "$setOnInsert", "user_id")
		assert.NoError(mt, err)
		_, err = evt.Command.LookupErr("updates", "0", "u", "$set", "user_id")
		assert.Error(mt, err)
	})
	mt.Run("upsert error", func(mt *mtest.T) {
		store := mongostore.NewStreaksStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 11000, Message: "duplicate key error"}))
		err := store.Upsert(context.Background(), &state)
		assert.ErrorContains(mt, err, "upserting streak error: ")
	})
}

func TestTipsStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	uid := uuid.New()
	at := time.Date(2024, 5, 2, 10, 30, 0, 0, time.UTC)
	tip := entity.HealthTip{ID: uuid.New(), UserID: uid, Text: "Stretch after your walk", Category: "activity", CreatedAt: at}

	mt.Run("save", func(mt *mtest.T) {
		store := mongostore.NewTipsStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		fresh := entity.HealthTip{UserID: uid, Text: "Sleep more", Category: "sleep"}
		require.NoError(mt, store.Save(context.Background(), &fresh))
		assert.NotEqual(mt, uuid.Nil, fresh.ID)
		assert.False(mt, fresh.CreatedAt.IsZero())
	})
	mt.Run("recent", func(mt *mtest.T) {
		store := mongostore.NewTipsStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mongostore.TipsCollection), mtest.FirstBatch, toDoc(t, tip)))
		result, err := store.GetRecent(context.Background(), uid, 5)
		require.NoError(mt, err)
		assert.Equal(mt, []entity.HealthTip{tip}, result)
	})
	mt.Run("for day", func(mt *mtest.T) {
		store := mongostore.NewTipsStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mongostore.TipsCollection), mtest.FirstBatch, toDoc(t, tip)))
		result, err := store.GetForDay(context.Background(), uid, at)
		require.NoError(mt, err)
		assert.Equal(mt, &tip, result)
	})
	mt.Run("for day absent", func(mt *mtest.T) {
		store := mongostore.NewTipsStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mongostore.TipsCollection), mtest.FirstBatch))
		result, err := store.GetForDay(context.Background(), uid, at)
		assert.NoError(mt, err)
		assert.Nil(mt, result)
	})
}
