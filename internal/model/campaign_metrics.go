// internal/model/campaign_metrics.go
package model

import "time"

type CampaignMetrics struct {
	ID             int64     `json:"id"`
	CampaignID     int64     `json:"campaign_id"`
	Platform       string    `json:"platform"`
	Impressions    int64     `json:"impressions"`
	Reach          int64     `json:"reach"`
	Engagements    int64     `json:"engagements"`
	Clicks         int64     `json:"clicks"`
	Conversions    int64     `json:"conversions"`
	Spend          float64   `json:"spend"`
	Revenue        *float64  `json:"revenue"`
	EngagementRate *float64  `json:"engagement_rate"`
	RecordedAt     time.Time `json:"recorded_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// CampaignMetricsSummary aggregates every metrics row of one campaign.
type CampaignMetricsSummary struct {
	CampaignID  int64   `json:"campaign_id"`
	Snapshots   int64   `json:"snapshots"`
	Impressions int64   `json:"impressions"`
	Reach       int64   `json:"reach"`
	Engagements int64   `json:"engagements"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
}
