package usecase

import (
	"context"
	"errors"
	"time"

	"smartbuddy/model"
	"smartbuddy/repository"
	"smartbuddy/services"
	"smartbuddy/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UsersService struct {
	repo *repository.UserRepo
}

func NewUsersService(repo *repository.UserRepo) *UsersService {
	return &UsersService{repo: repo}
}

// Register hashes the password, assigns a user ID and stores the user.
func (s *UsersService) Register(ctx context.Context, user *model.User) (*model.User, error) {
	existing, err := s.repo.FindUserByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		utils.TrackAuthAttempt("failure", "register")
		return nil, ErrUsernameTaken
	}

	hashed, err := services.HashPassword(user.Password)
	if err != nil {
		utils.TrackAuthAttempt("failure", "register")
		return nil, err
	}

	user.UserID = uuid.New().String()
	user.Password = hashed
	user.CreatedAt = time.Now()

	if err := s.repo.AddUser(ctx, user); err != nil {
		utils.TrackAuthAttempt("failure", "register")
		// The unique indexes catch what the pre-check cannot: a taken
		// email, or a username raced in between check and insert.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	utils.TrackAuthAttempt("success", "register")
	return user, nil
}

// Authenticate verifies credentials and returns a signed token on success.
func (s *UsersService) Authenticate(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.repo.FindUserByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		utils.TrackAuthAttempt("failure", "login")
		return "", nil, ErrInvalidCredentials
	}

	ok, err := services.VerifyPassword(user.Password, password)
	if err != nil || !ok {
		utils.TrackAuthAttempt("failure", "login")
		return "", nil, ErrInvalidCredentials
	}

	token, err := services.GenerateJWT(user.UserID)
	if err != nil {
		return "", nil, err
	}
	utils.TrackAuthAttempt("success", "login")
	return token, user, nil
}

func (s *UsersService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	return s.repo.FindUser(ctx, userID)
}
