package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sbilibin2017/fittracker/internal/logger"
	"github.com/sbilibin2017/fittracker/internal/models"
	"github.com/sbilibin2017/fittracker/internal/mongodb"
)

// UserReadRepository looks up user documents.
type UserReadRepository struct {
	coll *mongo.Collection
}

func NewUserReadRepository(db *mongo.Database) *UserReadRepository {
	return &UserReadRepository{coll: db.Collection(mongodb.UsersCollection)}
}

// GetByUsername returns nil, nil when no user has that username.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	return r.findOne(ctx, bson.D{{Key: "username", Value: username}})
}

// GetByEmail returns nil, nil when no user has that email.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *UserReadRepository) findOne(ctx context.Context, filter bson.D) (*models.UserDB, error) {
	var user models.UserDB
	err := r.coll.FindOne(ctx, filter).Decode(&user)

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
	return &user, nil
}

// UserWriteRepository inserts and updates user documents.
type UserWriteRepository struct {
	coll *mongo.Collection
}

func NewUserWriteRepository(db *mongo.Database) *UserWriteRepository {
	return &UserWriteRepository{coll: db.Collection(mongodb.UsersCollection)}
}

// Save inserts a new user. A unique index violation yields models.ErrDuplicateKey.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	_, err := r.coll.InsertOne(ctx, user)

	logger.Log.Infow("insert_one",
		"collection", r.coll.Name(),
		"user_id", user.UserID,
		"username", user.Username,
		"error", err,
	)

	if mongo.IsDuplicateKeyError(err) {
		return models.ErrDuplicateKey
	}
	return err
}

// Update sets the non-nil fields of upd on the user. An empty update is a no-op.
func (r *UserWriteRepository) Update(ctx context.Context, userID string, upd models.UserUpdate) error {
	if upd.IsEmpty() {
		return nil
	}

	filter := bson.D{{Key: "user_id", Value: userID}}
	res, err := r.coll.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: upd}})

	var matched int64
	if res != nil {
		matched = res.MatchedCount
	}
	logger.Log.Infow("update_one",
		"collection", r.coll.Name(),
		"filter", filter,
		"matched", matched,
		"error", err,
	)

	return err
}

func ignoreNoDocuments(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	return err
}
