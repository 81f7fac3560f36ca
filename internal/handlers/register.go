package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/fittracker/internal/models"
	"github.com/sbilibin2017/fittracker/internal/services"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, req models.RegisterRequest) (string, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user account with computed daily goals and returns an access token. Username and email must be unique.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 200 {object} models.TokenResponse "User registered"
// @Failure 400 {object} handlers.ErrorResponse "Malformed body"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already registered"
// @Failure 422 {object} handlers.ErrorResponse "Validation failed"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if !decodeBody(w, r, &req) {
			return
		}

		token, err := svc.Register(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameTaken):
				writeError(w, http.StatusConflict, "Username already registered")
			case errors.Is(err, services.ErrEmailTaken):
				writeError(w, http.StatusConflict, "Email already registered")
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "Username or email already registered")
			default:
				internalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}
