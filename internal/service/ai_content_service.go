// internal/service/ai_content_service.go
package service

import (
	"context"

	"github.com/unclebandit/influencer-portal/internal/model"
	"github.com/unclebandit/influencer-portal/internal/queue"
	"github.com/unclebandit/influencer-portal/internal/repository"
)

// AIContentService records generation requests. Nothing here generates content;
// the request is stored as pending and announced on the event queue.
type AIContentService struct {
	UserRepo    repository.UserRepositoryInterface
	RequestRepo repository.AIContentRequestRepositoryInterface
	Events      EventPublisher
}

type CreateAIContentRequestInput struct {
	UserID      int64   `json:"user_id" validate:"gt=0"`
	Prompt      string  `json:"prompt" validate:"required,max=4000"`
	ContentType string  `json:"content_type" validate:"required,oneof=post story reel video short tweet article carousel"`
	Platform    *string `json:"platform" validate:"omitempty,oneof=instagram tiktok youtube twitter facebook linkedin"`
	Tone        *string `json:"tone" validate:"omitempty,max=50"`
}

func (s *AIContentService) CreateAIContentRequest(ctx context.Context, in CreateAIContentRequestInput) (*model.AIContentRequest, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := s.UserRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	req := &model.AIContentRequest{
		UserID:      in.UserID,
		Prompt:      in.Prompt,
		ContentType: in.ContentType,
		Platform:    in.Platform,
		Tone:        in.Tone,
		Status:      model.AIRequestPending,
	}
	if err := s.RequestRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	publish(s.Events, queue.TopicAIContentRequestCreated, req)
	return req, nil
}

func (s *AIContentService) GetAIContentRequests(ctx context.Context, in UserIDInput) ([]model.AIContentRequest, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.RequestRepo.ListByUser(ctx, in.UserID)
}
