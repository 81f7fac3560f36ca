package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/fittracker/internal/logger"
	"github.com/sbilibin2017/fittracker/internal/middlewares"
	"github.com/sbilibin2017/fittracker/internal/models"
)

// ErrorResponse is the body of every error reply
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: Internal server error
	Detail string `json:"detail"`
}

// MessageResponse is returned by endpoints that only confirm an action
// swagger:model MessageResponse
type MessageResponse struct {
	// example: Profile updated successfully
	Message string `json:"message"`
}

// EntryCreatedResponse is returned after logging a food or weight entry
// swagger:model EntryCreatedResponse
type EntryCreatedResponse struct {
	// example: Food logged successfully
	Message string `json:"message"`

	// example: 3f2b6a52-5f39-4d2e-9f4a-0d5c1c1b7e21
	EntryID string `json:"entry_id"`
}

const (
	detailInternal     = "Internal server error"
	detailInvalidBody  = "Invalid request body"
	detailUnauthorized = "Could not validate credentials"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}

// internalError logs err with the request id and replies 500.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Log.Errorw("internal server error",
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"err", err,
	)
	writeError(w, http.StatusInternalServerError, detailInternal)
}

// decodeBody decodes and validates a JSON body. It writes the error reply and
// returns false on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Log.Infow("malformed request body", "err", err)
		writeError(w, http.StatusBadRequest, detailInvalidBody)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusUnprocessableEntity, validationDetail(err))
		return false
	}
	return true
}

// requireQuery returns the named query parameter, replying 422 when it is missing.
func requireQuery(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		writeError(w, http.StatusUnprocessableEntity, name+": field required")
		return "", false
	}
	return v, true
}

// currentUser returns the user stored by the auth middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (*models.UserDB, bool) {
	user, ok := middlewares.UserFromContext(r.Context())
	if !ok {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, detailUnauthorized)
		return nil, false
	}
	return user, true
}

func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+": field required")
		case "datetime":
			msgs = append(msgs, fmt.Sprintf("%s: must be a date in %s format", fe.Field(), "YYYY-MM-DD"))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		}
	}
	return strings.Join(msgs, "; ")
}
