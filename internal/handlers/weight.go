package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/fittracker/internal/models"
)

//go:generate mockgen -source=weight.go -destination=weight_mock.go -package=handlers

// WeightLogger stores a weight measurement for a user.
type WeightLogger interface {
	Log(ctx context.Context, userID string, req models.WeightEntryRequest) (string, error)
}

// WeightLister returns a user's recent weights.
type WeightLister interface {
	ListRecent(ctx context.Context, userID string) ([]models.WeightEntryDB, error)
}

// WeightHistoryResponse wraps the weight history
// swagger:model WeightHistoryResponse
type WeightHistoryResponse struct {
	Entries []models.WeightEntryDB `json:"entries"`
}

// NewLogWeightHandler returns an HTTP handler for logging a weight.
// @Summary Log weight
// @Description Stores a weight entry and updates the user's current weight
// @Tags weight-entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.WeightEntryRequest true "Weight entry"
// @Success 200 {object} handlers.EntryCreatedResponse
// @Failure 400 {object} handlers.ErrorResponse "Malformed body"
// @Failure 401 {object} handlers.ErrorResponse "Could not validate credentials"
// @Failure 422 {object} handlers.ErrorResponse "Validation failed"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /weight-entries [post]
func NewLogWeightHandler(svc WeightLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req models.WeightEntryRequest
		if !decodeBody(w, r, &req) {
			return
		}

		entryID, err := svc.Log(r.Context(), user.UserID, req)
		if err != nil {
			internalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, EntryCreatedResponse{Message: "Weight logged successfully", EntryID: entryID})
	}
}

// NewListWeightEntriesHandler returns an HTTP handler listing recent weights.
// @Summary Weight history
// @Description Returns up to 30 most recent weight entries, newest first
// @Tags weight-entries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.WeightHistoryResponse
// @Failure 401 {object} handlers.ErrorResponse "Could not validate credentials"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /weight-entries [get]
func NewListWeightEntriesHandler(svc WeightLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		entries, err := svc.ListRecent(r.Context(), user.UserID)
		if err != nil {
			internalError(w, r, err)
			return
		}
		if entries == nil {
			entries = []models.WeightEntryDB{}
		}

		writeJSON(w, http.StatusOK, WeightHistoryResponse{Entries: entries})
	}
}
