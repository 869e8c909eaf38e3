package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "cinelog/internal/errors"
	"cinelog/internal/repository"
)

// UserSummary is the public projection of an account.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// UserService exposes account management operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]UserSummary, error)
	DeleteUser(ctx context.Context, requesterID, targetID uint) error
	UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// ListUsers returns id and username for every account. Hashes stay out of
// the projection entirely.
func (s *userService) ListUsers(ctx context.Context) ([]UserSummary, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	summaries := make([]UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, UserSummary{ID: u.ID, Username: u.Username})
	}
	return summaries, nil
}

// DeleteUser removes an account. The requester may not delete themselves.
func (s *userService) DeleteUser(ctx context.Context, requesterID, targetID uint) error {
	if requesterID == targetID {
		return apperrors.ErrSelfDelete
	}

	if _, err := s.repo.FindByID(ctx, targetID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if err := s.repo.Delete(ctx, targetID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// UpdatePassword replaces the stored hash after verifying the current password.
func (s *userService) UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return apperrors.ErrMissingFields
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return apperrors.ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.UpdatePasswordHash(ctx, userID, string(hashed)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
