package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/fittracker/internal/models"
)

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

// ProfileUpdater defines the interface that the profile service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, user *models.UserDB, req models.ProfileUpdateRequest) error
}

// NewGetProfileHandler returns the authenticated user's profile.
// @Summary Get profile
// @Description Returns the user's profile including daily goals
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Failure 401 {object} handlers.ErrorResponse "Could not validate credentials"
// @Router /profile [get]
func NewGetProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, user.ToProfile())
	}
}

// NewUpdateProfileHandler returns an HTTP handler for partial profile updates.
// @Summary Update profile
// @Description Updates the supplied fields. Changing age, gender, height, weight, activity level or goal recomputes the daily goals.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ProfileUpdateRequest true "Profile fields"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Malformed body"
// @Failure 401 {object} handlers.ErrorResponse "Could not validate credentials"
// @Failure 422 {object} handlers.ErrorResponse "Validation failed"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profile [put]
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req models.ProfileUpdateRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := svc.UpdateProfile(r.Context(), user, req); err != nil {
			internalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Profile updated successfully"})
	}
}
