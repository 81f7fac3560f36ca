package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/fittracker/internal/logger"
	"github.com/sbilibin2017/fittracker/internal/models"
)

//go:generate mockgen -source=food_entry.go -destination=food_entry_mock.go -package=services

// ErrFoodEntryNotFound is returned when the entry does not exist or belongs to another user.
var ErrFoodEntryNotFound = errors.New("food entry not found")

// FoodEntryReader lists logged foods.
type FoodEntryReader interface {
	ListByUserAndDate(ctx context.Context, userID, date string) ([]models.FoodEntryDB, error)
}

// FoodEntryWriter stores and removes logged foods.
type FoodEntryWriter interface {
	Save(ctx context.Context, entry *models.FoodEntryDB) error
	Delete(ctx context.Context, userID, entryID string) (bool, error)
}

// FoodEntryService logs, lists and deletes food entries.
type FoodEntryService struct {
	reader FoodEntryReader
	writer FoodEntryWriter
}

func NewFoodEntryService(reader FoodEntryReader, writer FoodEntryWriter) *FoodEntryService {
	return &FoodEntryService{reader: reader, writer: writer}
}

// Log stores a food entry for userID and returns its id.
func (svc *FoodEntryService) Log(ctx context.Context, userID string, req models.FoodEntryRequest) (string, error) {
	entry := &models.FoodEntryDB{
		EntryID:   uuid.NewString(),
		UserID:    userID,
		FoodID:    req.FoodID,
		FoodName:  req.FoodName,
		MealType:  req.MealType,
		Servings:  req.Servings,
		Calories:  req.Calories,
		Protein:   req.Protein,
		Carbs:     req.Carbs,
		Fat:       req.Fat,
		Date:      req.Date,
		Timestamp: timestampOrNow(req.Timestamp),
	}

	if err := svc.writer.Save(ctx, entry); err != nil {
		logger.Log.Errorw("failed to save food entry", "user_id", userID, "err", err)
		return "", err
	}
	return entry.EntryID, nil
}

// ListByDate groups the day's entries by meal. Entries with an unknown meal
// type are left out of both the groups and the totals.
func (svc *FoodEntryService) ListByDate(ctx context.Context, userID, date string) (*models.DailyFoodLog, error) {
	entries, err := svc.reader.ListByUserAndDate(ctx, userID, date)
	if err != nil {
		logger.Log.Errorw("failed to list food entries", "user_id", userID, "date", date, "err", err)
		return nil, err
	}

	log := &models.DailyFoodLog{Entries: models.NewMealEntries()}
	for _, e := range entries {
		if log.Entries.Append(e) {
			log.TotalNutrition.Add(e)
		}
	}
	return log, nil
}

// Delete removes one of the user's entries.
func (svc *FoodEntryService) Delete(ctx context.Context, userID, entryID string) error {
	deleted, err := svc.writer.Delete(ctx, userID, entryID)
	if err != nil {
		logger.Log.Errorw("failed to delete food entry", "user_id", userID, "entry_id", entryID, "err", err)
		return err
	}
	if !deleted {
		return ErrFoodEntryNotFound
	}
	return nil
}

func timestampOrNow(ts *time.Time) time.Time {
	if ts == nil || ts.IsZero() {
		return time.Now()
	}
	return *ts
}
