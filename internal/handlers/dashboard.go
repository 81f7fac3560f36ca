package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/fittracker/internal/models"
)

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=handlers

// DashboardGetter defines the interface that the dashboard service must implement.
type DashboardGetter interface {
	Get(ctx context.Context, user *models.UserDB, date string) (*models.Dashboard, error)
}

// NewDashboardHandler returns an HTTP handler for the daily dashboard.
// @Summary Daily dashboard
// @Description Nutrition totals for the day, goals, percent progress, latest weight and entry count
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param date query string true "Day in YYYY-MM-DD format"
// @Success 200 {object} models.Dashboard
// @Failure 401 {object} handlers.ErrorResponse "Could not validate credentials"
// @Failure 422 {object} handlers.ErrorResponse "Missing date"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /dashboard [get]
func NewDashboardHandler(svc DashboardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		date, ok := requireQuery(w, r, "date")
		if !ok {
			return
		}

		dashboard, err := svc.Get(r.Context(), user, date)
		if err != nil {
			internalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, dashboard)
	}
}
