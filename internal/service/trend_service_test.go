package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/influencer-portal/internal/model"
)

func TestCreateTrend(t *testing.T) {
	repo := &mockTrendRepo{}
	svc := &TrendService{TrendRepo: repo}

	tr, err := svc.CreateTrend(context.Background(), CreateTrendInput{
		Platform: model.PlatformInstagram, Keyword: " #ootd ", PopularityScore: 87.25,
	})
	require.NoError(t, err)
	assert.Equal(t, "#ootd", tr.Keyword)
	assert.WithinDuration(t, time.Now(), tr.RecordedAt, time.Minute)
}

func TestCreateTrendRejectsNegativeScore(t *testing.T) {
	svc := &TrendService{TrendRepo: &mockTrendRepo{}}

	_, err := svc.CreateTrend(context.Background(), CreateTrendInput{
		Platform: model.PlatformInstagram, Keyword: "x", PopularityScore: -1,
	})
	assert.EqualError(t, err, "popularity_score: must be greater than or equal to 0")
}

func TestCreateTrendRejectsValuesBeyondColumns(t *testing.T) {
	repo := &mockTrendRepo{}
	svc := &TrendService{TrendRepo: repo}
	fast := 100000.0
	crash := -100000.0

	_, err := svc.CreateTrend(context.Background(), CreateTrendInput{
		Platform: model.PlatformInstagram, Keyword: "x", PopularityScore: 1e8,
	})
	assert.EqualError(t, err, "popularity_score: must be less than or equal to 99999999.99")

	_, err = svc.CreateTrend(context.Background(), CreateTrendInput{
		Platform: model.PlatformInstagram, Keyword: "x", GrowthRate: &fast,
	})
	assert.EqualError(t, err, "growth_rate: must be less than or equal to 99999.99")

	_, err = svc.CreateTrend(context.Background(), CreateTrendInput{
		Platform: model.PlatformInstagram, Keyword: "x", GrowthRate: &crash,
	})
	assert.EqualError(t, err, "growth_rate: must be greater than or equal to -99999.99")
	assert.Empty(t, repo.created)

	shrink := -12.5
	tr, err := svc.CreateTrend(context.Background(), CreateTrendInput{
		Platform: model.PlatformInstagram, Keyword: "x", GrowthRate: &shrink,
	})
	require.NoError(t, err)
	assert.Equal(t, -12.5, *tr.GrowthRate)
}

func TestGetTrendsLimit(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 20},
		{5, 5},
		{100, 100},
		{500, 100},
	}
	for _, tc := range cases {
		repo := &mockTrendRepo{}
		svc := &TrendService{TrendRepo: repo}

		_, err := svc.GetTrends(context.Background(), GetTrendsInput{Limit: tc.in})
		require.NoError(t, err)
		assert.Equal(t, tc.want, repo.lastFilter.Limit, "limit %d", tc.in)
	}
}

func TestGetTrendsPassesFilters(t *testing.T) {
	repo := &mockTrendRepo{}
	svc := &TrendService{TrendRepo: repo}

	_, err := svc.GetTrends(context.Background(), GetTrendsInput{Platform: model.PlatformTikTok, Category: "beauty"})
	require.NoError(t, err)
	assert.Equal(t, model.PlatformTikTok, repo.lastFilter.Platform)
	assert.Equal(t, "beauty", repo.lastFilter.Category)
}
