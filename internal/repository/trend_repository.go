package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/unclebandit/influencer-portal/internal/model"
)

type TrendFilter struct {
	Platform string
	Category string
	Limit    int
}

type TrendRepositoryInterface interface {
	Create(ctx context.Context, t *model.Trend) error
	List(ctx context.Context, filter TrendFilter) ([]model.Trend, error)
}

type TrendRepository struct {
	base
}

func NewTrendRepository(db *sqlx.DB, timeout time.Duration) *TrendRepository {
	return &TrendRepository{base: newBase(db, timeout)}
}

type trendRow struct {
	ID              int64               `db:"id"`
	Platform        string              `db:"platform"`
	Keyword         string              `db:"keyword"`
	Hashtag         *string             `db:"hashtag"`
	Category        *string             `db:"category"`
	PopularityScore decimal.Decimal     `db:"popularity_score"`
	Volume          *int64              `db:"volume"`
	GrowthRate      decimal.NullDecimal `db:"growth_rate"`
	Region          *string             `db:"region"`
	RecordedAt      time.Time           `db:"recorded_at"`
	CreatedAt       time.Time           `db:"created_at"`
}

func (row trendRow) toModel() model.Trend {
	return model.Trend{
		ID:              row.ID,
		Platform:        row.Platform,
		Keyword:         row.Keyword,
		Hashtag:         row.Hashtag,
		Category:        row.Category,
		PopularityScore: row.PopularityScore.InexactFloat64(),
		Volume:          row.Volume,
		GrowthRate:      floatOrNil(row.GrowthRate),
		Region:          row.Region,
		RecordedAt:      row.RecordedAt,
		CreatedAt:       row.CreatedAt,
	}
}

const trendColumns = `id, platform, keyword, hashtag, category, popularity_score, volume,
        growth_rate, region, recorded_at, created_at`

func (r *TrendRepository) Create(ctx context.Context, t *model.Trend) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
        INSERT INTO trends (platform, keyword, hashtag, category, popularity_score, volume, growth_rate, region, recorded_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + trendColumns
	var row trendRow
	err := r.db.QueryRowxContext(ctx, query,
		t.Platform, t.Keyword, t.Hashtag, t.Category, decimal.NewFromFloat(t.PopularityScore),
		t.Volume, decimalArg(t.GrowthRate), t.Region, t.RecordedAt,
	).StructScan(&row)
	if err != nil {
		return fmt.Errorf("failed to insert trend: %w", err)
	}

	*t = row.toModel()
	return nil
}

// List returns the most popular trends first.
func (r *TrendRepository) List(ctx context.Context, filter TrendFilter) ([]model.Trend, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + trendColumns + ` FROM trends WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.Platform != "" {
		query += fmt.Sprintf(" AND platform=$%d", argPos)
		args = append(args, filter.Platform)
		argPos++
	}
	if filter.Category != "" {
		query += fmt.Sprintf(" AND category=$%d", argPos)
		args = append(args, filter.Category)
		argPos++
	}
	query += fmt.Sprintf(" ORDER BY popularity_score DESC, recorded_at DESC LIMIT $%d", argPos)
	args = append(args, filter.Limit)

	rows := []trendRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list trends: %w", err)
	}

	trends := make([]model.Trend, 0, len(rows))
	for _, row := range rows {
		trends = append(trends, row.toModel())
	}
	return trends, nil
}

var _ TrendRepositoryInterface = (*TrendRepository)(nil)
