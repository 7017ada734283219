// internal/service/trend_service.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/unclebandit/influencer-portal/internal/model"
	"github.com/unclebandit/influencer-portal/internal/repository"
)

const (
	defaultTrendLimit = 20
	maxTrendLimit     = 100
)

type TrendService struct {
	TrendRepo repository.TrendRepositoryInterface
}

type CreateTrendInput struct {
	Platform        string     `json:"platform" validate:"required,oneof=instagram tiktok youtube twitter facebook linkedin"`
	Keyword         string     `json:"keyword" validate:"required,max=200"`
	Hashtag         *string    `json:"hashtag" validate:"omitempty,max=200"`
	Category        *string    `json:"category" validate:"omitempty,max=100"`
	PopularityScore float64    `json:"popularity_score" validate:"gte=0,lte=99999999.99"`
	Volume          *int64     `json:"volume" validate:"omitempty,gte=0"`
	GrowthRate      *float64   `json:"growth_rate" validate:"omitempty,gte=-99999.99,lte=99999.99"`
	Region          *string    `json:"region" validate:"omitempty,max=100"`
	RecordedAt      *time.Time `json:"recorded_at"`
}

type GetTrendsInput struct {
	Platform string `json:"platform" validate:"omitempty,oneof=instagram tiktok youtube twitter facebook linkedin"`
	Category string `json:"category" validate:"omitempty,max=100"`
	Limit    int    `json:"limit" validate:"gte=0"`
}

func (s *TrendService) CreateTrend(ctx context.Context, in CreateTrendInput) (*model.Trend, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	t := &model.Trend{
		Platform:        in.Platform,
		Keyword:         strings.TrimSpace(in.Keyword),
		Hashtag:         in.Hashtag,
		Category:        in.Category,
		PopularityScore: in.PopularityScore,
		Volume:          in.Volume,
		GrowthRate:      in.GrowthRate,
		Region:          in.Region,
		RecordedAt:      time.Now().UTC(),
	}
	if in.RecordedAt != nil {
		t.RecordedAt = in.RecordedAt.UTC()
	}

	if err := s.TrendRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetTrends lists trends, most popular first. Limit defaults to 20 and is capped at 100.
func (s *TrendService) GetTrends(ctx context.Context, in GetTrendsInput) ([]model.Trend, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	limit := in.Limit
	if limit < 1 {
		limit = defaultTrendLimit
	}
	if limit > maxTrendLimit {
		limit = maxTrendLimit
	}

	return s.TrendRepo.List(ctx, repository.TrendFilter{
		Platform: in.Platform,
		Category: in.Category,
		Limit:    limit,
	})
}
