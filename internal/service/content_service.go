// internal/service/content_service.go
package service

import (
	"context"

	"github.com/lib/pq"

	"github.com/unclebandit/influencer-portal/internal/model"
	"github.com/unclebandit/influencer-portal/internal/repository"
)

type ContentService struct {
	UserRepo    repository.UserRepositoryInterface
	ContentRepo repository.ContentRepositoryInterface
}

type CreateContentInput struct {
	UserID        int64    `json:"user_id" validate:"gt=0"`
	Title         string   `json:"title" validate:"required,max=200"`
	Description   *string  `json:"description" validate:"omitempty,max=5000"`
	ContentType   string   `json:"content_type" validate:"required,oneof=post story reel video short tweet article carousel"`
	Caption       *string  `json:"caption" validate:"omitempty,max=2200"`
	MediaURLs     []string `json:"media_urls" validate:"omitempty,dive,url"`
	Hashtags      []string `json:"hashtags" validate:"omitempty,dive,min=1,max=100"`
	IsAIGenerated *bool    `json:"is_ai_generated"`
}

func (s *ContentService) CreateContent(ctx context.Context, in CreateContentInput) (*model.Content, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := s.UserRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	c := &model.Content{
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		ContentType: in.ContentType,
		Caption:     in.Caption,
		MediaURLs:   pq.StringArray{},
		Hashtags:    pq.StringArray{},
	}
	if in.MediaURLs != nil {
		c.MediaURLs = pq.StringArray(in.MediaURLs)
	}
	if in.Hashtags != nil {
		c.Hashtags = pq.StringArray(in.Hashtags)
	}
	if in.IsAIGenerated != nil {
		c.IsAIGenerated = *in.IsAIGenerated
	}

	if err := s.ContentRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContentService) GetContent(ctx context.Context, in UserIDInput) ([]model.Content, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.ContentRepo.ListByUser(ctx, in.UserID)
}
