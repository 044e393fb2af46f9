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

type TipsStore struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewTipsStore(db *mongo.Database) *TipsStore {
	return &TipsStore{
		coll: db.Collection(TipsCollection),
		now:  time.Now,
	}
}

func (s *TipsStore) Save(ctx context.Context, tip *entity.HealthTip) error {
	doc := *tip
	doc.ID = uuid.New()
	doc.CreatedAt = s.now().UTC()
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return errors.New("saving tip error: " + err.Error())
	}
	tip.ID = doc.ID
	tip.CreatedAt = doc.CreatedAt
	return nil
}

func (s *TipsStore) GetRecent(ctx context.Context, uid uuid.UUID, limit int) ([]entity.HealthTip, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := s.coll.Find(ctx, bson.M{"user_id": uid}, opts)
	if err != nil {
		return nil, errors.New("getting recent tips error: " + err.Error())
	}
	tips := make([]entity.HealthTip, 0, max(limit, 0))
	if err = cur.All(ctx, &tips); err != nil {
		return nil, errors.New("tip documents decoding error: " + err.Error())
	}
	return tips, nil
}

func (s *TipsStore) GetForDay(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.HealthTip, error) {
	start := entity.DayStart(date)
	filter := bson.M{
		"user_id":    uid,
		"created_at": bson.M{"$gte": start, "$lt": start.AddDate(0, 0, 1)},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	var tip entity.HealthTip
	if err := s.coll.FindOne(ctx, filter, opts).Decode(&tip); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.New("getting tip for day error: " + err.Error())
	}
	return &tip, nil
}
