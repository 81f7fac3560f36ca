package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultExpiration applies when no expiration option is given.
const DefaultExpiration = 15 * time.Minute

var (
	ErrMissingAuthHeader = errors.New("authorization header missing")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrUnsupportedMethod = errors.New("unsupported signing method")
	ErrInvalidToken      = errors.New("invalid token")
	ErrMissingSubject    = errors.New("subject not found in token")
)

// Claims are the claims carried by an access token. Subject holds the username.
type Claims struct {
	jwt.RegisteredClaims
}

// JWT issues and validates HMAC-signed access tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
	Algorithm string        // HS256, HS384 or HS512
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the signing secret.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) { j.SecretKey = secret }
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.Exp = exp }
}

// WithAlgorithm sets the signing algorithm name.
func WithAlgorithm(alg string) Opt {
	return func(j *JWT) { j.Algorithm = alg }
}

// New creates a JWT with HS256 and DefaultExpiration unless overridden.
func New(opts ...Opt) *JWT {
	j := &JWT{
		Exp:       DefaultExpiration,
		Algorithm: jwt.SigningMethodHS256.Alg(),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

func (j *JWT) method() (*jwt.SigningMethodHMAC, error) {
	m, ok := jwt.GetSigningMethod(j.Algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, j.Algorithm)
	}
	return m, nil
}

// Generate creates a token whose subject is username.
func (j *JWT) Generate(ctx context.Context, username string) (string, error) {
	method, err := j.method()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(j.Exp)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(method, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims parses and verifies tokenString. Expired tokens and tokens signed
// with another algorithm are rejected.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	method, err := j.method()
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(j.SecretKey), nil
	}, jwt.WithValidMethods([]string{method.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	return claims, nil
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrInvalidAuthHeader
	}

	return parts[1], nil
}
