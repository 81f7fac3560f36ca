package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sbilibin2017/fittracker/internal/logger"
	"github.com/sbilibin2017/fittracker/internal/models"
	"github.com/sbilibin2017/fittracker/internal/mongodb"
)

// FoodEntryReadRepository queries a user's logged foods.
type FoodEntryReadRepository struct {
	coll *mongo.Collection
}

func NewFoodEntryReadRepository(db *mongo.Database) *FoodEntryReadRepository {
	return &FoodEntryReadRepository{coll: db.Collection(mongodb.FoodEntriesCollection)}
}

// ListByUserAndDate returns the user's entries for date in insertion-time order.
func (r *FoodEntryReadRepository) ListByUserAndDate(ctx context.Context, userID, date string) ([]models.FoodEntryDB, error) {
	filter := bson.D{
		{Key: "user_id", Value: userID},
		{Key: "date", Value: date},
	}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	entries := []models.FoodEntryDB{}
	cur, err := r.coll.Find(ctx, filter, opts)
	if err == nil {
		err = cur.All(ctx, &entries)
	}

	logger.Log.Infow("find",
		"collection", r.coll.Name(),
		"filter", filter,
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

// FoodEntryWriteRepository inserts and deletes logged foods.
type FoodEntryWriteRepository struct {
	coll *mongo.Collection
}

func NewFoodEntryWriteRepository(db *mongo.Database) *FoodEntryWriteRepository {
	return &FoodEntryWriteRepository{coll: db.Collection(mongodb.FoodEntriesCollection)}
}

func (r *FoodEntryWriteRepository) Save(ctx context.Context, entry *models.FoodEntryDB) error {
	_, err := r.coll.InsertOne(ctx, entry)

	logger.Log.Infow("insert_one",
		"collection", r.coll.Name(),
		"entry_id", entry.EntryID,
		"user_id", entry.UserID,
		"error", err,
	)

	return err
}

// Delete removes the entry only if it belongs to userID and reports whether
// anything was deleted.
func (r *FoodEntryWriteRepository) Delete(ctx context.Context, userID, entryID string) (bool, error) {
	filter := bson.D{
		{Key: "entry_id", Value: entryID},
		{Key: "user_id", Value: userID},
	}
	res, err := r.coll.DeleteOne(ctx, filter)

	var deleted int64
	if res != nil {
		deleted = res.DeletedCount
	}
	logger.Log.Infow("delete_one",
		"collection", r.coll.Name(),
		"filter", filter,
		"result", deleted,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}
