package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/fittracker/internal/models"
	"github.com/sbilibin2017/fittracker/internal/services"
)

//go:generate mockgen -source=food_entry.go -destination=food_entry_mock.go -package=handlers

// FoodEntryLogger stores a food entry for a user.
type FoodEntryLogger interface {
	Log(ctx context.Context, userID string, req models.FoodEntryRequest) (string, error)
}

// FoodEntryLister returns a user's food log for a day.
type FoodEntryLister interface {
	ListByDate(ctx context.Context, userID, date string) (*models.DailyFoodLog, error)
}

// FoodEntryDeleter removes a user's food entry.
type FoodEntryDeleter interface {
	Delete(ctx context.Context, userID, entryID string) error
}

// NewLogFoodHandler returns an HTTP handler for logging a food.
// @Summary Log food
// @Description Stores a food entry for the authenticated user. Nutrient values are totals for the logged servings.
// @Tags food-entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.FoodEntryRequest true "Food entry"
// @Success 200 {object} handlers.EntryCreatedResponse
// @Failure 400 {object} handlers.ErrorResponse "Malformed body"
// @Failure 401 {object} handlers.ErrorResponse "Could not validate credentials"
// @Failure 422 {object} handlers.ErrorResponse "Validation failed"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /food-entries [post]
func NewLogFoodHandler(svc FoodEntryLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req models.FoodEntryRequest
		if !decodeBody(w, r, &req) {
			return
		}

		entryID, err := svc.Log(r.Context(), user.UserID, req)
		if err != nil {
			internalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, EntryCreatedResponse{Message: "Food logged successfully", EntryID: entryID})
	}
}

// NewListFoodEntriesHandler returns an HTTP handler listing a day's food log by meal.
// @Summary List food entries
// @Description Returns the day's entries grouped by meal type with nutrition totals
// @Tags food-entries
// @Produce json
// @Security BearerAuth
// @Param date query string true "Day in YYYY-MM-DD format"
// @Success 200 {object} models.DailyFoodLog
// @Failure 401 {object} handlers.ErrorResponse "Could not validate credentials"
// @Failure 422 {object} handlers.ErrorResponse "Missing date"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /food-entries [get]
func NewListFoodEntriesHandler(svc FoodEntryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		date, ok := requireQuery(w, r, "date")
		if !ok {
			return
		}

		log, err := svc.ListByDate(r.Context(), user.UserID, date)
		if err != nil {
			internalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, log)
	}
}

// NewDeleteFoodEntryHandler returns an HTTP handler deleting one of the user's food entries.
// @Summary Delete food entry
// @Tags food-entries
// @Produce json
// @Security BearerAuth
// @Param entry_id path string true "Entry id"
// @Success 200 {object} handlers.MessageResponse
// @Failure 401 {object} handlers.ErrorResponse "Could not validate credentials"
// @Failure 404 {object} handlers.ErrorResponse "Food entry not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /food-entries/{entry_id} [delete]
func NewDeleteFoodEntryHandler(svc FoodEntryDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		entryID := chi.URLParam(r, "entry_id")

		if err := svc.Delete(r.Context(), user.UserID, entryID); err != nil {
			if errors.Is(err, services.ErrFoodEntryNotFound) {
				writeError(w, http.StatusNotFound, "Food entry not found")
				return
			}
			internalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Food entry deleted successfully"})
	}
}
