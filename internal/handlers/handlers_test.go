package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sbilibin2017/fittracker/internal/logger"
	"github.com/sbilibin2017/fittracker/internal/middlewares"
	"github.com/sbilibin2017/fittracker/internal/models"
)

var testUser = &models.UserDB{UserID: "u1", Username: "alice", Email: "alice@example.com"}

func ptr[T any](v T) *T { return &v }

// authedRequest builds a request as it looks after the auth middleware.
func authedRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(middlewares.WithUser(req.Context(), testUser))
}

func decodeDetail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Detail
}

func TestCurrentUser_Missing(t *testing.T) {
	rr := httptest.NewRecorder()
	NewGetProfileHandler()(rr, httptest.NewRequest(http.MethodGet, "/api/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
	assert.Equal(t, "Could not validate credentials", decodeDetail(t, rr))
}

func TestInternalError_LogsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	original := logger.Log
	logger.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Log = original })

	handler := middlewares.LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		internalError(w, r, errors.New("db down"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Internal server error", decodeDetail(t, rr))

	entries := logs.FilterMessage("internal server error").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	assert.Equal(t, rr.Header().Get("X-Request-ID"), fields["request_id"])
	assert.Equal(t, "/api/dashboard", fields["path"])
	assert.Equal(t, "db down", fields["err"])
}

func TestDecodeBody_Validation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantCode   int
		wantDetail string
	}{
		{name: "malformed", body: "{", wantCode: http.StatusBadRequest, wantDetail: "Invalid request body"},
		{name: "missing fields", body: `{"weight": 80}`, wantCode: http.StatusUnprocessableEntity, wantDetail: "date: field required"},
		{name: "bad date", body: `{"weight": 80, "date": "01/05/2024"}`, wantCode: http.StatusUnprocessableEntity, wantDetail: "date: must be a date in YYYY-MM-DD format"},
		{name: "non positive weight", body: `{"weight": 0, "date": "2024-05-01"}`, wantCode: http.StatusUnprocessableEntity, wantDetail: "weight: must satisfy gt=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			var dst models.WeightEntryRequest
			ok := decodeBody(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body)), &dst)

			assert.False(t, ok)
			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, tt.wantDetail, decodeDetail(t, rr))
		})
	}
}

func TestHealthHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHealthHandler()(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.False(t, resp.Timestamp.IsZero())
}
