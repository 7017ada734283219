package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	appErrors "github.com/unclebandit/influencer-portal/internal/errors"
	"github.com/unclebandit/influencer-portal/internal/model"
)

type ContentRepositoryInterface interface {
	Create(ctx context.Context, c *model.Content) error
	GetByID(ctx context.Context, id int64) (*model.Content, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Content, error)
}

type ContentRepository struct {
	base
}

func NewContentRepository(db *sqlx.DB, timeout time.Duration) *ContentRepository {
	return &ContentRepository{base: newBase(db, timeout)}
}

const contentColumns = `id, user_id, title, description, content_type, caption, media_urls, hashtags,
        is_ai_generated, created_at, updated_at`

func (r *ContentRepository) Create(ctx context.Context, c *model.Content) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	// a nil pq.StringArray encodes as NULL, the columns are NOT NULL
	if c.MediaURLs == nil {
		c.MediaURLs = pq.StringArray{}
	}
	if c.Hashtags == nil {
		c.Hashtags = pq.StringArray{}
	}

	query := `
        INSERT INTO content (user_id, title, description, content_type, caption, media_urls, hashtags, is_ai_generated)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + contentColumns
	err := r.db.QueryRowxContext(ctx, query,
		c.UserID, c.Title, c.Description, c.ContentType, c.Caption,
		c.MediaURLs, c.Hashtags, c.IsAIGenerated,
	).StructScan(c)
	if err != nil {
		return fmt.Errorf("failed to insert content: %w", err)
	}
	return nil
}

func (r *ContentRepository) GetByID(ctx context.Context, id int64) (*model.Content, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var c model.Content
	err := r.db.GetContext(ctx, &c, `SELECT `+contentColumns+` FROM content WHERE id=$1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewNotFound("Content", id)
		}
		return nil, fmt.Errorf("failed to fetch content %d: %w", id, err)
	}
	return &c, nil
}

func (r *ContentRepository) ListByUser(ctx context.Context, userID int64) ([]model.Content, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	items := []model.Content{}
	query := `SELECT ` + contentColumns + ` FROM content WHERE user_id=$1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &items, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	return items, nil
}

var _ ContentRepositoryInterface = (*ContentRepository)(nil)
