package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/fittracker/internal/models"
	"github.com/sbilibin2017/fittracker/internal/services"
)

//go:generate mockgen -source=food_search.go -destination=food_search_mock.go -package=handlers

// FoodSearcher defines the interface that the food search service must implement.
type FoodSearcher interface {
	Search(ctx context.Context, query string) ([]models.FoodItem, error)
}

// FoodSearchResponse wraps the search results
// swagger:model FoodSearchResponse
type FoodSearchResponse struct {
	Foods []models.FoodItem `json:"foods"`
}

// NewFoodSearchHandler returns an HTTP handler for food search.
// @Summary Search foods
// @Description Searches the USDA FoodData Central database. Returns a fixed sample list when no API key is configured.
// @Tags foods
// @Produce json
// @Security BearerAuth
// @Param query query string true "Search text"
// @Success 200 {object} handlers.FoodSearchResponse
// @Failure 401 {object} handlers.ErrorResponse "Could not validate credentials"
// @Failure 422 {object} handlers.ErrorResponse "Missing query"
// @Failure 500 {object} handlers.ErrorResponse "Food database failure"
// @Router /foods/search [get]
func NewFoodSearchHandler(svc FoodSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(w, r); !ok {
			return
		}

		query, ok := requireQuery(w, r, "query")
		if !ok {
			return
		}

		foods, err := svc.Search(r.Context(), query)
		if err != nil {
			var upstream *services.UpstreamError
			switch {
			case errors.As(err, &upstream) && services.IsUpstreamStatus(err):
				writeError(w, http.StatusInternalServerError, "Failed to fetch food data")
			case errors.As(err, &upstream):
				writeError(w, http.StatusInternalServerError, "Error searching foods: "+upstream.Cause.Error())
			default:
				internalError(w, r, err)
			}
			return
		}
		if foods == nil {
			foods = []models.FoodItem{}
		}

		writeJSON(w, http.StatusOK, FoodSearchResponse{Foods: foods})
	}
}
