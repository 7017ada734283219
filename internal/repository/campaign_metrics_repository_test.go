package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/influencer-portal/internal/model"
	"github.com/unclebandit/influencer-portal/internal/repository"
)

var metricsCols = []string{"id", "campaign_id", "platform", "impressions", "reach", "engagements", "clicks", "conversions",
	"spend", "revenue", "engagement_rate", "recorded_at", "created_at"}

func TestCampaignMetricsRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewCampaignMetricsRepository(db, time.Second)

	mock.ExpectQuery("INSERT INTO campaign_metrics").
		WithArgs(int64(4), "tiktok", int64(1000), int64(800), int64(50), int64(20), int64(2), "120.75", nil, "0.05", fixedTime).
		WillReturnRows(sqlmock.NewRows(metricsCols).
			AddRow(1, 4, "tiktok", 1000, 800, 50, 20, 2, "120.75", nil, "0.0500", fixedTime, fixedTime))

	m := &model.CampaignMetrics{
		CampaignID: 4, Platform: "tiktok", Impressions: 1000, Reach: 800, Engagements: 50,
		Clicks: 20, Conversions: 2, Spend: 120.75, EngagementRate: floatPtr(0.05), RecordedAt: fixedTime,
	}
	require.NoError(t, repo.Create(context.Background(), m))

	assert.Equal(t, int64(1), m.ID)
	assert.Equal(t, 120.75, m.Spend)
	assert.Nil(t, m.Revenue)
	assert.Equal(t, 0.05, *m.EngagementRate)
}

func TestCampaignMetricsRepository_Summary(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewCampaignMetricsRepository(db, time.Second)

	mock.ExpectQuery("SUM\\(impressions\\)").WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"snapshots", "impressions", "reach", "engagements", "clicks", "conversions", "spend", "revenue"}).
			AddRow(3, 3000, 2500, 150, 60, 6, "362.25", "900.00"))

	s, err := repo.Summary(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(3), s.Snapshots)
	assert.Equal(t, int64(3000), s.Impressions)
	assert.Equal(t, 362.25, s.Spend)
	assert.Equal(t, 900.0, s.Revenue)
}
