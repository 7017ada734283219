// internal/service/platform_account_service.go
package service

import (
	"context"

	"github.com/unclebandit/influencer-portal/internal/model"
	"github.com/unclebandit/influencer-portal/internal/repository"
)

type PlatformAccountService struct {
	UserRepo    repository.UserRepositoryInterface
	AccountRepo repository.PlatformAccountRepositoryInterface
}

type CreatePlatformAccountInput struct {
	UserID         int64   `json:"user_id" validate:"gt=0"`
	Platform       string  `json:"platform" validate:"required,oneof=instagram tiktok youtube twitter facebook linkedin"`
	AccountHandle  string  `json:"account_handle" validate:"required,max=100"`
	AccountID      *string `json:"account_id" validate:"omitempty,max=255"`
	AccessToken    *string `json:"access_token"`
	RefreshToken   *string `json:"refresh_token"`
	FollowersCount *int64  `json:"followers_count" validate:"omitempty,gte=0"`
	IsActive       *bool   `json:"is_active"`
}

func (s *PlatformAccountService) CreatePlatformAccount(ctx context.Context, in CreatePlatformAccountInput) (*model.PlatformAccount, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := s.UserRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	a := &model.PlatformAccount{
		UserID:        in.UserID,
		Platform:      in.Platform,
		AccountHandle: in.AccountHandle,
		AccountID:     in.AccountID,
		AccessToken:   in.AccessToken,
		RefreshToken:  in.RefreshToken,
		IsActive:      true,
	}
	if in.FollowersCount != nil {
		a.FollowersCount = *in.FollowersCount
	}
	if in.IsActive != nil {
		a.IsActive = *in.IsActive
	}

	if err := s.AccountRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *PlatformAccountService) GetPlatformAccounts(ctx context.Context, in UserIDInput) ([]model.PlatformAccount, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.AccountRepo.ListByUser(ctx, in.UserID)
}
