package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(30*time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWT_DefaultExpiration(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	assert.Equal(t, 15*time.Minute, j.Exp)

	token, err := j.Generate(context.Background(), "bob")
	require.NoError(t, err)

	claims, err := j.GetClaims(context.Background(), token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, "alice")
	require.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	claims, err := j.GetClaims(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_WrongSecret(t *testing.T) {
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))
	ctx := context.Background()

	token, err := j1.Generate(ctx, "alice")
	require.NoError(t, err)

	claims, err := j2.GetClaims(ctx, token)
	assert.ErrorIs(t, err, gojwt.ErrTokenSignatureInvalid)
	assert.Nil(t, claims)
}

func TestJWT_Algorithms(t *testing.T) {
	ctx := context.Background()

	t.Run("HS512 round trip", func(t *testing.T) {
		j := New(WithSecretKey("s"), WithAlgorithm("HS512"))
		token, err := j.Generate(ctx, "carol")
		require.NoError(t, err)

		claims, err := j.GetClaims(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "carol", claims.Subject)
	})

	t.Run("algorithm mismatch is rejected", func(t *testing.T) {
		signer := New(WithSecretKey("s"), WithAlgorithm("HS384"))
		verifier := New(WithSecretKey("s"), WithAlgorithm("HS256"))

		token, err := signer.Generate(ctx, "carol")
		require.NoError(t, err)
		_, err = verifier.GetClaims(ctx, token)
		assert.ErrorIs(t, err, gojwt.ErrTokenSignatureInvalid)
	})

	t.Run("non HMAC algorithm is unsupported", func(t *testing.T) {
		j := New(WithSecretKey("s"), WithAlgorithm("RS256"))
		_, err := j.Generate(ctx, "carol")
		assert.ErrorIs(t, err, ErrUnsupportedMethod)
	})
}

func TestJWT_MissingSubject(t *testing.T) {
	j := New(WithSecretKey("s"))
	token, err := j.Generate(context.Background(), "")
	require.NoError(t, err)

	_, err = j.GetClaims(context.Background(), token)
	assert.ErrorIs(t, err, ErrMissingSubject)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"TooManyParts", "Bearer a b c", "", true},
		{"SchemeOnly", "Bearer", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
