// internal/service/campaign_service.go
package service

import (
	"context"
	"fmt"
	"math"
	"time"

	appErrors "github.com/unclebandit/influencer-portal/internal/errors"
	"github.com/unclebandit/influencer-portal/internal/model"
	"github.com/unclebandit/influencer-portal/internal/queue"
	"github.com/unclebandit/influencer-portal/internal/repository"
)

// engagement_rate is NUMERIC(7,4)
const maxEngagementRate = 999.9999

type CampaignService struct {
	UserRepo     repository.UserRepositoryInterface
	CampaignRepo repository.CampaignRepositoryInterface
	MetricsRepo  repository.CampaignMetricsRepositoryInterface
	Events       EventPublisher
}

type CreateCampaignInput struct {
	UserID         int64     `json:"user_id" validate:"gt=0"`
	Name           string    `json:"name" validate:"required,max=200"`
	Description    *string   `json:"description" validate:"omitempty,max=5000"`
	Status         string    `json:"status" validate:"omitempty,oneof=draft active paused completed cancelled"`
	Budget         *float64  `json:"budget" validate:"omitempty,gte=0,lte=9999999999.99"`
	StartDate      time.Time `json:"start_date" validate:"required"`
	EndDate        time.Time `json:"end_date" validate:"required"`
	TargetAudience *string   `json:"target_audience" validate:"omitempty,max=2000"`
	Goals          *string   `json:"goals" validate:"omitempty,max=2000"`
}

type GetCampaignsInput struct {
	UserID int64  `json:"user_id" validate:"gt=0"`
	Status string `json:"status" validate:"omitempty,oneof=draft active paused completed cancelled"`
}

type UpdateCampaignStatusInput struct {
	ID     int64  `json:"id" validate:"gt=0"`
	Status string `json:"status" validate:"required,oneof=draft active paused completed cancelled"`
}

type CreateCampaignMetricsInput struct {
	CampaignID     int64      `json:"campaign_id" validate:"gt=0"`
	Platform       string     `json:"platform" validate:"required,oneof=instagram tiktok youtube twitter facebook linkedin"`
	Impressions    int64      `json:"impressions" validate:"gte=0"`
	Reach          int64      `json:"reach" validate:"gte=0"`
	Engagements    int64      `json:"engagements" validate:"gte=0"`
	Clicks         int64      `json:"clicks" validate:"gte=0"`
	Conversions    int64      `json:"conversions" validate:"gte=0"`
	Spend          *float64   `json:"spend" validate:"omitempty,gte=0,lte=9999999999.99"`
	Revenue        *float64   `json:"revenue" validate:"omitempty,gte=0,lte=9999999999.99"`
	EngagementRate *float64   `json:"engagement_rate" validate:"omitempty,gte=0,lte=999.9999"`
	RecordedAt     *time.Time `json:"recorded_at"`
}

type CampaignIDInput struct {
	CampaignID int64 `json:"campaign_id" validate:"gt=0"`
}

func (s *CampaignService) CreateCampaign(ctx context.Context, in CreateCampaignInput) (*model.Campaign, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if !in.StartDate.Before(in.EndDate) {
		return nil, appErrors.NewConstraint("Start date must be before end date")
	}
	if _, err := s.UserRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.CampaignStatusDraft
	}
	c := &model.Campaign{
		UserID:         in.UserID,
		Name:           in.Name,
		Description:    in.Description,
		Status:         status,
		Budget:         in.Budget,
		StartDate:      in.StartDate.UTC(),
		EndDate:        in.EndDate.UTC(),
		TargetAudience: in.TargetAudience,
		Goals:          in.Goals,
	}
	if err := s.CampaignRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CampaignService) GetCampaigns(ctx context.Context, in GetCampaignsInput) ([]model.Campaign, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.CampaignRepo.ListByUser(ctx, in.UserID, in.Status)
}

func (s *CampaignService) UpdateCampaignStatus(ctx context.Context, in UpdateCampaignStatusInput) (*model.Campaign, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	c, err := s.CampaignRepo.UpdateStatus(ctx, in.ID, in.Status)
	if err != nil {
		return nil, err
	}

	publish(s.Events, queue.TopicCampaignStatusChanged, c)
	return c, nil
}

func (s *CampaignService) CreateCampaignMetrics(ctx context.Context, in CreateCampaignMetricsInput) (*model.CampaignMetrics, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := s.CampaignRepo.GetByID(ctx, in.CampaignID); err != nil {
		return nil, err
	}

	m := &model.CampaignMetrics{
		CampaignID:     in.CampaignID,
		Platform:       in.Platform,
		Impressions:    in.Impressions,
		Reach:          in.Reach,
		Engagements:    in.Engagements,
		Clicks:         in.Clicks,
		Conversions:    in.Conversions,
		Revenue:        in.Revenue,
		EngagementRate: in.EngagementRate,
	}
	if in.Spend != nil {
		m.Spend = *in.Spend
	}
	if m.EngagementRate == nil && in.Impressions > 0 {
		rate := engagementRate(in.Engagements, in.Impressions)
		if rate > maxEngagementRate {
			return nil, appErrors.NewValidation("engagement_rate",
				fmt.Sprintf("must be less than or equal to %g", maxEngagementRate))
		}
		m.EngagementRate = &rate
	}
	m.RecordedAt = time.Now().UTC()
	if in.RecordedAt != nil {
		m.RecordedAt = in.RecordedAt.UTC()
	}

	if err := s.MetricsRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// engagementRate is engagements/impressions rounded to the column's 4 decimals.
func engagementRate(engagements, impressions int64) float64 {
	return math.Round(float64(engagements)/float64(impressions)*10000) / 10000
}

func (s *CampaignService) GetCampaignMetrics(ctx context.Context, in CampaignIDInput) ([]model.CampaignMetrics, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.MetricsRepo.ListByCampaign(ctx, in.CampaignID)
}

func (s *CampaignService) GetCampaignMetricsSummary(ctx context.Context, in CampaignIDInput) (*model.CampaignMetricsSummary, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := s.CampaignRepo.GetByID(ctx, in.CampaignID); err != nil {
		return nil, err
	}
	return s.MetricsRepo.Summary(ctx, in.CampaignID)
}
