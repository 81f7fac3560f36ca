package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbilibin2017/fittracker/internal/logger"
	"github.com/sbilibin2017/fittracker/internal/models"
)

//go:generate mockgen -source=weight.go -destination=weight_mock.go -package=services

// WeightHistoryLimit caps the weight history listing.
const WeightHistoryLimit = 30

// WeightEntryReader queries weight history.
type WeightEntryReader interface {
	ListRecent(ctx context.Context, userID string, limit int64) ([]models.WeightEntryDB, error)
	GetLatest(ctx context.Context, userID string) (*models.WeightEntryDB, error)
}

// WeightService records weights and lists history.
type WeightService struct {
	reader WeightEntryReader
	writer WeightEntryWriter
	users  UserWriter
}

func NewWeightService(reader WeightEntryReader, writer WeightEntryWriter, users UserWriter) *WeightService {
	return &WeightService{reader: reader, writer: writer, users: users}
}

// Log mirrors the weight onto the user and stores a history entry.
// The two writes are independent; a failure of the second leaves the user's
// weight ahead of the history.
func (svc *WeightService) Log(ctx context.Context, userID string, req models.WeightEntryRequest) (string, error) {
	weight := req.Weight
	if err := svc.users.Update(ctx, userID, models.UserUpdate{Weight: &weight}); err != nil {
		logger.Log.Errorw("failed to update user weight", "user_id", userID, "err", err)
		return "", err
	}

	entry := &models.WeightEntryDB{
		EntryID:   uuid.NewString(),
		UserID:    userID,
		Weight:    req.Weight,
		Date:      req.Date,
		Timestamp: timestampOrNow(req.Timestamp),
	}
	if err := svc.writer.Save(ctx, entry); err != nil {
		logger.Log.Errorw("failed to save weight entry", "user_id", userID, "err", err)
		return "", err
	}
	return entry.EntryID, nil
}

// ListRecent returns the newest WeightHistoryLimit entries, newest first.
func (svc *WeightService) ListRecent(ctx context.Context, userID string) ([]models.WeightEntryDB, error) {
	entries, err := svc.reader.ListRecent(ctx, userID, WeightHistoryLimit)
	if err != nil {
		logger.Log.Errorw("failed to list weight entries", "user_id", userID, "err", err)
		return nil, err
	}
	return entries, nil
}
