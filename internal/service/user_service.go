// internal/service/user_service.go
package service

import (
	"context"
	"strings"

	"github.com/unclebandit/influencer-portal/internal/model"
	"github.com/unclebandit/influencer-portal/internal/repository"
)

type UserService struct {
	UserRepo repository.UserRepositoryInterface
}

type CreateUserInput struct {
	Email     string  `json:"email" validate:"required,email,max=255"`
	Username  string  `json:"username" validate:"required,min=3,max=50"`
	FullName  string  `json:"full_name" validate:"required,max=100"`
	Bio       *string `json:"bio" validate:"omitempty,max=500"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
}

type UserIDInput struct {
	UserID int64 `json:"user_id" validate:"gt=0"`
}

type IDInput struct {
	ID int64 `json:"id" validate:"gt=0"`
}

// NoInput is accepted by procedures that take no parameters.
type NoInput struct{}

func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.TrimSpace(in.Username)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	u := &model.User{
		Email:     in.Email,
		Username:  in.Username,
		FullName:  in.FullName,
		Bio:       in.Bio,
		AvatarURL: in.AvatarURL,
	}
	if err := s.UserRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) GetUser(ctx context.Context, in IDInput) (*model.User, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.UserRepo.GetByID(ctx, in.ID)
}

func (s *UserService) GetUsers(ctx context.Context, _ NoInput) ([]model.User, error) {
	return s.UserRepo.List(ctx)
}
