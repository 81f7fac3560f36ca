package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/fittracker/internal/jwt"
	"github.com/sbilibin2017/fittracker/internal/models"
)

func claimsFor(sub string) *jwt.Claims {
	return &jwt.Claims{RegisteredClaims: gojwt.RegisteredClaims{Subject: sub}}
}

func TestAuthMiddleware(t *testing.T) {
	alice := &models.UserDB{UserID: "u1", Username: "alice"}

	tests := []struct {
		name             string
		mockSetup        func(tk *MockTokener, ug *MockUserGetter)
		expectedStatus   int
		expectedBody     string
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(tk *MockTokener, ug *MockUserGetter) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", jwt.ErrMissingAuthHeader)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "InvalidToken",
			mockSetup: func(tk *MockTokener, ug *MockUserGetter) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				tk.EXPECT().GetClaims(gomock.Any(), "sometoken").
					Return(nil, jwt.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "UnknownSubject",
			mockSetup: func(tk *MockTokener, ug *MockUserGetter) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tk.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(claimsFor("ghost"), nil)
				ug.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "UserLookupError",
			mockSetup: func(tk *MockTokener, ug *MockUserGetter) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tk.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(claimsFor("alice"), nil)
				ug.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"detail":"Internal server error"}`,
		},
		{
			name: "ValidToken",
			mockSetup: func(tk *MockTokener, ug *MockUserGetter) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tk.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(claimsFor("alice"), nil)
				ug.EXPECT().GetByUsername(gomock.Any(), "alice").Return(alice, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tk := NewMockTokener(ctrl)
			ug := NewMockUserGetter(ctrl)
			tt.mockSetup(tk, ug)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				user, ok := UserFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, alice, user)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(tk, ug)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			switch {
			case tt.expectedBody != "":
				assert.Empty(t, rr.Header().Get("WWW-Authenticate"))
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			case !tt.expectNextCalled:
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
				assert.JSONEq(t, `{"detail":"Could not validate credentials"}`, rr.Body.String())
			}
		})
	}
}
