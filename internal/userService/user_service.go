package users

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gigboard/internal/auth"
	"gigboard/internal/marketerrors"
	model "gigboard/internal/models"
	"gigboard/internal/repository"
	"gigboard/utils"
)

// UserService handles account registration, login and lookup
type UserService struct {
	repo   repository.MarketDB
	tokens *auth.TokenManager
}

// NewUserService creates a new UserService instance
func NewUserService(repo repository.MarketDB, tokens *auth.TokenManager) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
	}
}

// Register creates an account and returns it with a signed bearer token
func (s *UserService) Register(name, email, password string) (model.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return model.User{}, "", fmt.Errorf("service: %w - missing name, email or password", marketerrors.ErrInvalidInput)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return model.User{}, "", fmt.Errorf("service: register %s: %w", email, err)
	}

	user := model.User{
		UserID:       utils.GenerateID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateUser(user); err != nil {
		return model.User{}, "", fmt.Errorf("service: register %s: %w", email, err)
	}

	token, err := s.tokens.Generate(user.UserID, user.Email)
	if err != nil {
		return model.User{}, "", fmt.Errorf("service: issue token for %s: %w", user.UserID, err)
	}
	return user, token, nil
}

// Login authenticates by email and password and returns a fresh token
func (s *UserService) Login(email, password string) (model.User, string, error) {
	if email == "" || password == "" {
		return model.User{}, "", fmt.Errorf("service: %w - missing email or password", marketerrors.ErrInvalidInput)
	}

	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, marketerrors.ErrUserNotFound) {
			// Do not reveal whether the account exists
			return model.User{}, "", fmt.Errorf("service: login %s: %w", email, marketerrors.ErrInvalidCredentials)
		}
		return model.User{}, "", fmt.Errorf("service: login %s: %w", email, err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return model.User{}, "", fmt.Errorf("service: login %s: %w", email, marketerrors.ErrInvalidCredentials)
	}

	token, err := s.tokens.Generate(user.UserID, user.Email)
	if err != nil {
		return model.User{}, "", fmt.Errorf("service: issue token for %s: %w", user.UserID, err)
	}
	return user, token, nil
}

// GetByID returns the user with the given id
func (s *UserService) GetByID(userID string) (model.User, error) {
	if userID == "" {
		return model.User{}, fmt.Errorf("service: %w - empty user ID", marketerrors.ErrInvalidInput)
	}

	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		return model.User{}, fmt.Errorf("service: get user %s: %w", userID, err)
	}
	return user, nil
}
