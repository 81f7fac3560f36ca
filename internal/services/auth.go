package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/fittracker/internal/goals"
	"github.com/sbilibin2017/fittracker/internal/logger"
	"github.com/sbilibin2017/fittracker/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// DateLayout is the calendar day format used for entry dates.
const DateLayout = "2006-01-02"

// Error variables
var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserAlreadyExists  = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
	Update(ctx context.Context, userID string, upd models.UserUpdate) error
}

// WeightEntryWriter stores weight measurements.
type WeightEntryWriter interface {
	Save(ctx context.Context, entry *models.WeightEntryDB) error
}

// JWTGenerator issues access tokens for a username.
type JWTGenerator interface {
	Generate(ctx context.Context, username string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	weights WeightEntryWriter
	jwt     JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, weights WeightEntryWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		weights: weights,
		jwt:     jwt,
	}
}

// Register creates the user with computed daily goals, records the initial
// weight if one was given and returns an access token.
func (svc *AuthService) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	existing, err := svc.reader.GetByUsername(ctx, req.Username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return "", err
	}
	if existing != nil {
		logger.Log.Infow("username already registered", "username", req.Username)
		return "", ErrUsernameTaken
	}

	existing, err = svc.reader.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return "", err
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "email", req.Email)
		return "", ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	now := time.Now()
	user := &models.UserDB{
		UserID:        uuid.NewString(),
		Username:      req.Username,
		Email:         req.Email,
		Password:      string(hashedPassword),
		Age:           req.Age,
		Gender:        req.Gender,
		Height:        req.Height,
		Weight:        req.Weight,
		ActivityLevel: valueOr(req.ActivityLevel, goals.Sedentary),
		Goal:          valueOr(req.Goal, goals.Maintain),
		CreatedAt:     now,
	}
	user.SetGoals(goals.Daily(user.GoalProfile()))

	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, models.ErrDuplicateKey) {
			logger.Log.Infow("concurrent registration", "username", req.Username)
			return "", ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return "", err
	}

	if req.Weight != nil && *req.Weight > 0 {
		entry := &models.WeightEntryDB{
			EntryID:   uuid.NewString(),
			UserID:    user.UserID,
			Weight:    *req.Weight,
			Date:      now.Format(DateLayout),
			Timestamp: now,
		}
		if err := svc.weights.Save(ctx, entry); err != nil {
			logger.Log.Errorw("failed to save initial weight", "user_id", user.UserID, "err", err)
			return "", err
		}
	}

	return svc.issueToken(ctx, user.Username)
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	return svc.issueToken(ctx, user.Username)
}

func (svc *AuthService) issueToken(ctx context.Context, username string) (string, error) {
	token, err := svc.jwt.Generate(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}
	return token, nil
}

func valueOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}
