package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	appErrors "github.com/unclebandit/influencer-portal/internal/errors"
	"github.com/unclebandit/influencer-portal/internal/model"
)

type CampaignRepositoryInterface interface {
	Create(ctx context.Context, c *model.Campaign) error
	GetByID(ctx context.Context, id int64) (*model.Campaign, error)
	ListByUser(ctx context.Context, userID int64, status string) ([]model.Campaign, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Campaign, error)
}

type CampaignRepository struct {
	base
}

func NewCampaignRepository(db *sqlx.DB, timeout time.Duration) *CampaignRepository {
	return &CampaignRepository{base: newBase(db, timeout)}
}

// campaignRow mirrors the table; budget is NUMERIC(12,2).
type campaignRow struct {
	ID             int64               `db:"id"`
	UserID         int64               `db:"user_id"`
	Name           string              `db:"name"`
	Description    *string             `db:"description"`
	Status         string              `db:"status"`
	Budget         decimal.NullDecimal `db:"budget"`
	StartDate      time.Time           `db:"start_date"`
	EndDate        time.Time           `db:"end_date"`
	TargetAudience *string             `db:"target_audience"`
	Goals          *string             `db:"goals"`
	CreatedAt      time.Time           `db:"created_at"`
	UpdatedAt      time.Time           `db:"updated_at"`
}

func (row campaignRow) toModel() model.Campaign {
	return model.Campaign{
		ID:             row.ID,
		UserID:         row.UserID,
		Name:           row.Name,
		Description:    row.Description,
		Status:         row.Status,
		Budget:         floatOrNil(row.Budget),
		StartDate:      row.StartDate,
		EndDate:        row.EndDate,
		TargetAudience: row.TargetAudience,
		Goals:          row.Goals,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

const campaignColumns = `id, user_id, name, description, status, budget, start_date, end_date,
        target_audience, goals, created_at, updated_at`

func (r *CampaignRepository) Create(ctx context.Context, c *model.Campaign) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
        INSERT INTO campaigns (user_id, name, description, status, budget, start_date, end_date, target_audience, goals)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + campaignColumns
	var row campaignRow
	err := r.db.QueryRowxContext(ctx, query,
		c.UserID, c.Name, c.Description, c.Status, decimalArg(c.Budget),
		c.StartDate, c.EndDate, c.TargetAudience, c.Goals,
	).StructScan(&row)
	if err != nil {
		return fmt.Errorf("failed to insert campaign: %w", err)
	}

	*c = row.toModel()
	return nil
}

func (r *CampaignRepository) GetByID(ctx context.Context, id int64) (*model.Campaign, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var row campaignRow
	err := r.db.GetContext(ctx, &row, `SELECT `+campaignColumns+` FROM campaigns WHERE id=$1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewNotFound("Campaign", id)
		}
		return nil, fmt.Errorf("failed to fetch campaign %d: %w", id, err)
	}
	c := row.toModel()
	return &c, nil
}

func (r *CampaignRepository) ListByUser(ctx context.Context, userID int64, status string) ([]model.Campaign, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE user_id=$1`
	args := []interface{}{userID}
	if status != "" {
		query += ` AND status=$2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows := []campaignRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	campaigns := make([]model.Campaign, 0, len(rows))
	for _, row := range rows {
		campaigns = append(campaigns, row.toModel())
	}
	return campaigns, nil
}

func (r *CampaignRepository) UpdateStatus(ctx context.Context, id int64, status string) (*model.Campaign, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `UPDATE campaigns SET status=$1, updated_at=NOW() WHERE id=$2 RETURNING ` + campaignColumns
	var row campaignRow
	if err := r.db.QueryRowxContext(ctx, query, status, id).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewNotFound("Campaign", id)
		}
		return nil, fmt.Errorf("failed to update campaign %d: %w", id, err)
	}
	c := row.toModel()
	return &c, nil
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
