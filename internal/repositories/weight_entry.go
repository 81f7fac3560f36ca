package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sbilibin2017/fittracker/internal/logger"
	"github.com/sbilibin2017/fittracker/internal/models"
	"github.com/sbilibin2017/fittracker/internal/mongodb"
)

var newestFirst = bson.D{{Key: "timestamp", Value: -1}}

// WeightEntryReadRepository queries a user's weight history.
type WeightEntryReadRepository struct {
	coll *mongo.Collection
}

func NewWeightEntryReadRepository(db *mongo.Database) *WeightEntryReadRepository {
	return &WeightEntryReadRepository{coll: db.Collection(mongodb.WeightEntriesCollection)}
}

// ListRecent returns at most limit entries, newest first.
func (r *WeightEntryReadRepository) ListRecent(ctx context.Context, userID string, limit int64) ([]models.WeightEntryDB, error) {
	filter := bson.D{{Key: "user_id", Value: userID}}
	opts := options.Find().SetSort(newestFirst).SetLimit(limit)

	entries := []models.WeightEntryDB{}
	cur, err := r.coll.Find(ctx, filter, opts)
	if err == nil {
		err = cur.All(ctx, &entries)
	}

	logger.Log.Infow("find",
		"collection", r.coll.Name(),
		"filter", filter,
		"limit", limit,
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetLatest returns the newest entry, or nil, nil when the user has none.
func (r *WeightEntryReadRepository) GetLatest(ctx context.Context, userID string) (*models.WeightEntryDB, error) {
	filter := bson.D{{Key: "user_id", Value: userID}}
	opts := options.FindOne().SetSort(newestFirst)

	var entry models.WeightEntryDB
	err := r.coll.FindOne(ctx, filter, opts).Decode(&entry)

	logger.Log.Infow("find_one",
		"collection", r.coll.Name(),
		"filter", filter,
		"found", err == nil,
		"error", ignoreNoDocuments(err),
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// WeightEntryWriteRepository inserts weight measurements.
type WeightEntryWriteRepository struct {
	coll *mongo.Collection
}

func NewWeightEntryWriteRepository(db *mongo.Database) *WeightEntryWriteRepository {
	return &WeightEntryWriteRepository{coll: db.Collection(mongodb.WeightEntriesCollection)}
}

func (r *WeightEntryWriteRepository) Save(ctx context.Context, entry *models.WeightEntryDB) error {
	_, err := r.coll.InsertOne(ctx, entry)

	logger.Log.Infow("insert_one",
		"collection", r.coll.Name(),
		"entry_id", entry.EntryID,
		"user_id", entry.UserID,
		"error", err,
	)

	return err
}
