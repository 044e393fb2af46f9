package mongostore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/healthtracker/internal/error_values"
	"github.com/limbo/healthtracker/pkg/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EntriesStore struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewEntriesStore(db *mongo.Database) *EntriesStore {
	return &EntriesStore{
		coll: db.Collection(EntriesCollection),
		now:  time.Now,
	}
}

func (s *EntriesStore) GetForDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DailyEntry, error) {
	start := entity.DayStart(date)
	filter := bson.M{
		"user_id": uid,
		"date":    bson.M{"$gte": start, "$lt": start.AddDate(0, 0, 1)},
	}
	var entry entity.DailyEntry
	err := s.coll.FindOne(ctx, filter).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.New("getting entry for date error: " + err.Error())
	}
	return &entry, nil
}

func (s *EntriesStore) Create(ctx context.Context, entry *entity.DailyEntry) (uuid.UUID, error) {
	now := s.now().UTC()
	doc := *entry
	doc.ID = uuid.New()
	doc.Date = entity.DayStart(entry.Date)
	doc.CreatedAt = now
	doc.UpdatedAt = now
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return uuid.Nil, errors.New("creating entry error: " + err.Error())
	}
	return doc.ID, nil
}

func (s *EntriesStore) Replace(ctx context.Context, id uuid.UUID, entry *entity.DailyEntry) error {
	update := bson.M{"$set": bson.M{
		"steps":        entry.Steps,
		"calories":     entry.Calories,
		"heart_rate":   entry.HeartRate,
		"sleep_hours":  entry.SleepHours,
		"water_intake": entry.WaterIntake,
		"notes":        entry.Notes,
		"updated_at":   s.now().UTC(),
	}}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return errors.New("replacing entry error: " + err.Error())
	}
	if res.MatchedCount == 0 {
		return errorvalues.ErrEntryNotFound
	}
	return nil
}

func (s *EntriesStore) GetSince(ctx context.Context, uid uuid.UUID, since time.Time) ([]entity.DailyEntry, error) {
	filter := bson.M{
		"user_id": uid,
		"date":    bson.M{"$gte": entity.DayStart(since)},
	}
	cur, err := s.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, errors.New("getting entries for window error: " + err.Error())
	}
	entries := make([]entity.DailyEntry, 0, 8)
	if err = cur.All(ctx, &entries); err != nil {
		return nil, errors.New("entry documents decoding error: " + err.Error())
	}
	return entries, nil
}
