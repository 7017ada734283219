// internal/service/scheduled_post_service.go
package service

import (
	"context"
	"time"

	appErrors "github.com/unclebandit/influencer-portal/internal/errors"
	"github.com/unclebandit/influencer-portal/internal/model"
	"github.com/unclebandit/influencer-portal/internal/queue"
	"github.com/unclebandit/influencer-portal/internal/repository"
)

type ScheduledPostService struct {
	UserRepo    repository.UserRepositoryInterface
	ContentRepo repository.ContentRepositoryInterface
	AccountRepo repository.PlatformAccountRepositoryInterface
	PostRepo    repository.ScheduledPostRepositoryInterface
	Events      EventPublisher

	// Now defaults to time.Now.
	Now func() time.Time
}

type CreateScheduledPostInput struct {
	UserID            int64     `json:"user_id" validate:"gt=0"`
	ContentID         int64     `json:"content_id" validate:"gt=0"`
	PlatformAccountID int64     `json:"platform_account_id" validate:"gt=0"`
	ScheduledAt       time.Time `json:"scheduled_at" validate:"required"`
	Status            string    `json:"status" validate:"omitempty,oneof=draft scheduled"`
}

type GetScheduledPostsInput struct {
	UserID int64  `json:"user_id" validate:"gt=0"`
	Status string `json:"status" validate:"omitempty,oneof=draft scheduled publishing published failed cancelled"`
}

type UpdateScheduledPostStatusInput struct {
	ID           int64   `json:"id" validate:"gt=0"`
	Status       string  `json:"status" validate:"required,oneof=draft scheduled publishing published failed cancelled"`
	ErrorMessage *string `json:"error_message" validate:"omitempty,max=2000"`
}

func (s *ScheduledPostService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *ScheduledPostService) CreateScheduledPost(ctx context.Context, in CreateScheduledPostInput) (*model.ScheduledPost, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if !in.ScheduledAt.After(s.now()) {
		return nil, appErrors.NewValidation("scheduled_at", "must be in the future")
	}

	if _, err := s.UserRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}
	content, err := s.ContentRepo.GetByID(ctx, in.ContentID)
	if err != nil {
		return nil, err
	}
	if content.UserID != in.UserID {
		return nil, appErrors.NewConstraint("Content %d does not belong to user %d", in.ContentID, in.UserID)
	}
	account, err := s.AccountRepo.GetByID(ctx, in.PlatformAccountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != in.UserID {
		return nil, appErrors.NewConstraint("Platform account %d does not belong to user %d", in.PlatformAccountID, in.UserID)
	}

	status := in.Status
	if status == "" {
		status = model.PostStatusScheduled
	}
	p := &model.ScheduledPost{
		UserID:            in.UserID,
		ContentID:         in.ContentID,
		PlatformAccountID: in.PlatformAccountID,
		ScheduledAt:       in.ScheduledAt.UTC(),
		Status:            status,
	}
	if err := s.PostRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	publish(s.Events, queue.TopicScheduledPostCreated, p)
	return p, nil
}

func (s *ScheduledPostService) GetScheduledPosts(ctx context.Context, in GetScheduledPostsInput) ([]model.ScheduledPostDetails, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.PostRepo.ListByUser(ctx, in.UserID, in.Status)
}

func (s *ScheduledPostService) UpdateScheduledPostStatus(ctx context.Context, in UpdateScheduledPostStatusInput) (*model.ScheduledPost, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	current, err := s.PostRepo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	// a repeated status leaves published_at alone; failed may carry a new error message
	if current.Status == in.Status && in.Status != model.PostStatusFailed {
		return current, nil
	}

	p, err := s.PostRepo.UpdateStatus(ctx, in.ID, in.Status, in.ErrorMessage)
	if err != nil {
		return nil, err
	}

	publish(s.Events, queue.TopicScheduledPostStatusChanged, p)
	return p, nil
}
