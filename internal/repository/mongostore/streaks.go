package mongostore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/healthtracker/pkg/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StreaksStore struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewStreaksStore(db *mongo.Database) *StreaksStore {
	return &StreaksStore{
		coll: db.Collection(StreaksCollection),
		now:  time.Now,
	}
}

func (s *StreaksStore) Get(ctx context.Context, uid uuid.UUID) (*entity.StreakState, error) {
	var state entity.StreakState
	err := s.coll.FindOne(ctx, bson.M{"user_id": uid}).Decode(&state)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.New("getting streak error: " + err.Error())
	}
	return &state, nil
}

// Upsert sets user_id only on insert so the unique key is never rewritten.
func (s *StreaksStore) Upsert(ctx context.Context, state *entity.StreakState) error {
	update := bson.M{
		"$set": bson.M{
			"current_streak": state.CurrentStreak,
			"longest_streak": state.LongestStreak,
			"last_login":     state.LastLogin,
			"login_dates":    state.LoginDates,
			"updated_at":     s.now().UTC(),
		},
		"$setOnInsert": bson.M{"user_id": state.UserID},
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"user_id": state.UserID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return errors.New("upserting streak error: " + err.Error())
	}
	if !res.Acknowledged {
		return errors.New("upserting streak error: write not acknowledged")
	}
	return nil
}
