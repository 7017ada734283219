package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/unclebandit/influencer-portal/internal/model"
)

type AIContentRequestRepositoryInterface interface {
	Create(ctx context.Context, req *model.AIContentRequest) error
	ListByUser(ctx context.Context, userID int64) ([]model.AIContentRequest, error)
}

type AIContentRequestRepository struct {
	base
}

func NewAIContentRequestRepository(db *sqlx.DB, timeout time.Duration) *AIContentRequestRepository {
	return &AIContentRequestRepository{base: newBase(db, timeout)}
}

const aiContentRequestColumns = `id, user_id, prompt, content_type, platform, tone, status, generated_content,
        error_message, created_at, completed_at`

func (r *AIContentRequestRepository) Create(ctx context.Context, req *model.AIContentRequest) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
        INSERT INTO ai_content_requests (user_id, prompt, content_type, platform, tone, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + aiContentRequestColumns
	err := r.db.QueryRowxContext(ctx, query,
		req.UserID, req.Prompt, req.ContentType, req.Platform, req.Tone, req.Status,
	).StructScan(req)
	if err != nil {
		return fmt.Errorf("failed to insert ai content request: %w", err)
	}
	return nil
}

func (r *AIContentRequestRepository) ListByUser(ctx context.Context, userID int64) ([]model.AIContentRequest, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	requests := []model.AIContentRequest{}
	query := `SELECT ` + aiContentRequestColumns + ` FROM ai_content_requests WHERE user_id=$1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &requests, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list ai content requests: %w", err)
	}
	return requests, nil
}

var _ AIContentRequestRepositoryInterface = (*AIContentRequestRepository)(nil)
