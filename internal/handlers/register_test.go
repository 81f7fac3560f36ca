package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/fittracker/internal/models"
	"github.com/sbilibin2017/fittracker/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	valid := models.RegisterRequest{Username: "john", Email: "john@example.com", Password: "secret", Weight: ptr(80.0)}

	tests := []struct {
		name         string
		rawBody      string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), valid).Return("token", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"access_token": "token", "token_type": "bearer"},
		},
		{
			name: "username taken",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), valid).Return("", services.ErrUsernameTaken)
			},
			expectedCode: http.StatusConflict,
			expectedBody: map[string]string{"detail": "Username already registered"},
		},
		{
			name: "email taken",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), valid).Return("", services.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
			expectedBody: map[string]string{"detail": "Email already registered"},
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), valid).Return("", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"detail": "Internal server error"},
		},
		{
			name:         "invalid json",
			rawBody:      "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"detail": "Invalid request body"},
		},
		{
			name:         "missing email",
			rawBody:      `{"username":"john","password":"secret"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: map[string]string{"detail": "email: field required"},
		},
		{
			name:    "email and username are stored as given",
			rawBody: `{"username":"` + strings.Repeat("j", 80) + `","email":"not-an-email","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), models.RegisterRequest{
					Username: strings.Repeat("j", 80),
					Email:    "not-an-email",
					Password: "secret",
				}).Return("token", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"access_token": "token", "token_type": "bearer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			var body []byte
			if tt.rawBody != "" {
				body = []byte(tt.rawBody)
			} else {
				body, _ = json.Marshal(valid)
			}
			req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewBuffer(body))
			rr := httptest.NewRecorder()

			NewRegisterHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			var resp map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
