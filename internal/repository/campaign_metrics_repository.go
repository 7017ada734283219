package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/unclebandit/influencer-portal/internal/model"
)

type CampaignMetricsRepositoryInterface interface {
	Create(ctx context.Context, m *model.CampaignMetrics) error
	ListByCampaign(ctx context.Context, campaignID int64) ([]model.CampaignMetrics, error)
	Summary(ctx context.Context, campaignID int64) (*model.CampaignMetricsSummary, error)
}

type CampaignMetricsRepository struct {
	base
}

func NewCampaignMetricsRepository(db *sqlx.DB, timeout time.Duration) *CampaignMetricsRepository {
	return &CampaignMetricsRepository{base: newBase(db, timeout)}
}

type campaignMetricsRow struct {
	ID             int64               `db:"id"`
	CampaignID     int64               `db:"campaign_id"`
	Platform       string              `db:"platform"`
	Impressions    int64               `db:"impressions"`
	Reach          int64               `db:"reach"`
	Engagements    int64               `db:"engagements"`
	Clicks         int64               `db:"clicks"`
	Conversions    int64               `db:"conversions"`
	Spend          decimal.Decimal     `db:"spend"`
	Revenue        decimal.NullDecimal `db:"revenue"`
	EngagementRate decimal.NullDecimal `db:"engagement_rate"`
	RecordedAt     time.Time           `db:"recorded_at"`
	CreatedAt      time.Time           `db:"created_at"`
}

func (row campaignMetricsRow) toModel() model.CampaignMetrics {
	return model.CampaignMetrics{
		ID:             row.ID,
		CampaignID:     row.CampaignID,
		Platform:       row.Platform,
		Impressions:    row.Impressions,
		Reach:          row.Reach,
		Engagements:    row.Engagements,
		Clicks:         row.Clicks,
		Conversions:    row.Conversions,
		Spend:          row.Spend.InexactFloat64(),
		Revenue:        floatOrNil(row.Revenue),
		EngagementRate: floatOrNil(row.EngagementRate),
		RecordedAt:     row.RecordedAt,
		CreatedAt:      row.CreatedAt,
	}
}

const campaignMetricsColumns = `id, campaign_id, platform, impressions, reach, engagements, clicks, conversions,
        spend, revenue, engagement_rate, recorded_at, created_at`

func (r *CampaignMetricsRepository) Create(ctx context.Context, m *model.CampaignMetrics) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
        INSERT INTO campaign_metrics
        (campaign_id, platform, impressions, reach, engagements, clicks, conversions, spend, revenue, engagement_rate, recorded_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING ` + campaignMetricsColumns
	var row campaignMetricsRow
	err := r.db.QueryRowxContext(ctx, query,
		m.CampaignID, m.Platform, m.Impressions, m.Reach, m.Engagements, m.Clicks, m.Conversions,
		decimal.NewFromFloat(m.Spend), decimalArg(m.Revenue), decimalArg(m.EngagementRate), m.RecordedAt,
	).StructScan(&row)
	if err != nil {
		return fmt.Errorf("failed to insert campaign metrics: %w", err)
	}

	*m = row.toModel()
	return nil
}

// ListByCampaign returns snapshots newest first.
func (r *CampaignMetricsRepository) ListByCampaign(ctx context.Context, campaignID int64) ([]model.CampaignMetrics, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows := []campaignMetricsRow{}
	query := `SELECT ` + campaignMetricsColumns + ` FROM campaign_metrics WHERE campaign_id=$1 ORDER BY recorded_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, campaignID); err != nil {
		return nil, fmt.Errorf("failed to list campaign metrics: %w", err)
	}

	metrics := make([]model.CampaignMetrics, 0, len(rows))
	for _, row := range rows {
		metrics = append(metrics, row.toModel())
	}
	return metrics, nil
}

func (r *CampaignMetricsRepository) Summary(ctx context.Context, campaignID int64) (*model.CampaignMetricsSummary, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
        SELECT COUNT(*) AS snapshots,
               COALESCE(SUM(impressions), 0) AS impressions,
               COALESCE(SUM(reach), 0) AS reach,
               COALESCE(SUM(engagements), 0) AS engagements,
               COALESCE(SUM(clicks), 0) AS clicks,
               COALESCE(SUM(conversions), 0) AS conversions,
               COALESCE(SUM(spend), 0) AS spend,
               COALESCE(SUM(revenue), 0) AS revenue
        FROM campaign_metrics
        WHERE campaign_id=$1`
	var row struct {
		Snapshots   int64           `db:"snapshots"`
		Impressions int64           `db:"impressions"`
		Reach       int64           `db:"reach"`
		Engagements int64           `db:"engagements"`
		Clicks      int64           `db:"clicks"`
		Conversions int64           `db:"conversions"`
		Spend       decimal.Decimal `db:"spend"`
		Revenue     decimal.Decimal `db:"revenue"`
	}
	if err := r.db.GetContext(ctx, &row, query, campaignID); err != nil {
		return nil, fmt.Errorf("failed to summarise campaign metrics: %w", err)
	}

	return &model.CampaignMetricsSummary{
		CampaignID:  campaignID,
		Snapshots:   row.Snapshots,
		Impressions: row.Impressions,
		Reach:       row.Reach,
		Engagements: row.Engagements,
		Clicks:      row.Clicks,
		Conversions: row.Conversions,
		Spend:       row.Spend.InexactFloat64(),
		Revenue:     row.Revenue.InexactFloat64(),
	}, nil
}

var _ CampaignMetricsRepositoryInterface = (*CampaignMetricsRepository)(nil)
