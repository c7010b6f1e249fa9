package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shashiranjanraj/gokart/app/models"
	"github.com/shashiranjanraj/gokart/app/repositories"
	"github.com/shashiranjanraj/gokart/pkg/auth"
)

// RegisterInput carries the already format-validated registration fields.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
	Answer   string
}

// AuthService implements registration, login and password reset.
type AuthService struct {
	users repositories.UserRepository
}

func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a user with the ordinary role. ErrEmailTaken is returned
// both from the friendly pre-check and from a duplicate-key insert, so two
// racing registrations resolve to the same outcome.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Phone:    in.Phone,
		Address:  in.Address,
		Answer:   in.Answer,
		Role:     models.RoleUser,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("register: %w", err)
	}
	return user, nil
}

// Login verifies credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}
	if user == nil {
		return nil, "", ErrEmailNotFound
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID.Hex(), int(user.Role))
	if err != nil {
		return nil, "", fmt.Errorf("login: sign token: %w", err)
	}
	return user, token, nil
}

// ResetPassword replaces the credential of the user matching BOTH email and
// security answer. The caller never learns which of the two was wrong.
func (s *AuthService) ResetPassword(ctx context.Context, email, answer, newPassword string) error {
	user, err := s.users.FindByEmailAndAnswer(ctx, email, answer)
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	if user == nil {
		return ErrWrongEmailOrAnswer
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("reset password: hash: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID.Hex(), hash); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	return nil
}
