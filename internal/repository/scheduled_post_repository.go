package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	appErrors "github.com/unclebandit/influencer-portal/internal/errors"
	"github.com/unclebandit/influencer-portal/internal/model"
)

type ScheduledPostRepositoryInterface interface {
	Create(ctx context.Context, p *model.ScheduledPost) error
	GetByID(ctx context.Context, id int64) (*model.ScheduledPost, error)
	ListByUser(ctx context.Context, userID int64, status string) ([]model.ScheduledPostDetails, error)
	UpdateStatus(ctx context.Context, id int64, status string, errorMessage *string) (*model.ScheduledPost, error)
}

type ScheduledPostRepository struct {
	base
}

func NewScheduledPostRepository(db *sqlx.DB, timeout time.Duration) *ScheduledPostRepository {
	return &ScheduledPostRepository{base: newBase(db, timeout)}
}

const scheduledPostColumns = `id, user_id, content_id, platform_account_id, scheduled_at, status,
        published_at, platform_post_id, error_message, created_at, updated_at`

func (r *ScheduledPostRepository) Create(ctx context.Context, p *model.ScheduledPost) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
        INSERT INTO scheduled_posts (user_id, content_id, platform_account_id, scheduled_at, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + scheduledPostColumns
	err := r.db.QueryRowxContext(ctx, query, p.UserID, p.ContentID, p.PlatformAccountID, p.ScheduledAt, p.Status).StructScan(p)
	if err != nil {
		return fmt.Errorf("failed to insert scheduled post: %w", err)
	}
	return nil
}

func (r *ScheduledPostRepository) GetByID(ctx context.Context, id int64) (*model.ScheduledPost, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var p model.ScheduledPost
	err := r.db.GetContext(ctx, &p, `SELECT `+scheduledPostColumns+` FROM scheduled_posts WHERE id=$1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewNotFound("Scheduled post", id)
		}
		return nil, fmt.Errorf("failed to fetch scheduled post %d: %w", id, err)
	}
	return &p, nil
}

// ListByUser returns the user's posts soonest first, joined with account and content.
func (r *ScheduledPostRepository) ListByUser(ctx context.Context, userID int64, status string) ([]model.ScheduledPostDetails, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
        SELECT sp.id, sp.user_id, sp.content_id, sp.platform_account_id, sp.scheduled_at, sp.status,
               sp.published_at, sp.platform_post_id, sp.error_message, sp.created_at, sp.updated_at,
               pa.platform, pa.account_handle, c.title AS content_title
        FROM scheduled_posts sp
        JOIN platform_accounts pa ON pa.id = sp.platform_account_id
        JOIN content c ON c.id = sp.content_id
        WHERE sp.user_id=$1`
	args := []interface{}{userID}
	if status != "" {
		query += ` AND sp.status=$2`
		args = append(args, status)
	}
	query += ` ORDER BY sp.scheduled_at ASC`

	posts := []model.ScheduledPostDetails{}
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list scheduled posts: %w", err)
	}
	return posts, nil
}

// UpdateStatus sets the status; published_at is stamped only for "published"
// and error_message is kept only for "failed".
func (r *ScheduledPostRepository) UpdateStatus(ctx context.Context, id int64, status string, errorMessage *string) (*model.ScheduledPost, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
        UPDATE scheduled_posts
        SET status=$1,
            published_at = CASE WHEN $1 = 'published' THEN NOW() ELSE NULL END,
            error_message = CASE WHEN $1 = 'failed' THEN $2 ELSE NULL END,
            updated_at=NOW()
        WHERE id=$3
        RETURNING ` + scheduledPostColumns
	var p model.ScheduledPost
	err := r.db.QueryRowxContext(ctx, query, status, errorMessage, id).StructScan(&p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewNotFound("Scheduled post", id)
		}
		return nil, fmt.Errorf("failed to update scheduled post %d: %w", id, err)
	}
	return &p, nil
}

var _ ScheduledPostRepositoryInterface = (*ScheduledPostRepository)(nil)
