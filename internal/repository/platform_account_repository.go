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

type PlatformAccountRepositoryInterface interface {
	Create(ctx context.Context, a *model.PlatformAccount) error
	GetByID(ctx context.Context, id int64) (*model.PlatformAccount, error)
	ListByUser(ctx context.Context, userID int64) ([]model.PlatformAccount, error)
}

type PlatformAccountRepository struct {
	base
}

func NewPlatformAccountRepository(db *sqlx.DB, timeout time.Duration) *PlatformAccountRepository {
	return &PlatformAccountRepository{base: newBase(db, timeout)}
}

const platformAccountColumns = `id, user_id, platform, account_handle, account_id, access_token, refresh_token,
        followers_count, is_active, connected_at, updated_at`

func (r *PlatformAccountRepository) Create(ctx context.Context, a *model.PlatformAccount) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
        INSERT INTO platform_accounts
        (user_id, platform, account_handle, account_id, access_token, refresh_token, followers_count, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + platformAccountColumns
	err := r.db.QueryRowxContext(ctx, query,
		a.UserID, a.Platform, a.AccountHandle, a.AccountID,
		a.AccessToken, a.RefreshToken, a.FollowersCount, a.IsActive,
	).StructScan(a)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return appErrors.NewConflict("%s account %s is already linked for user %d", a.Platform, a.AccountHandle, a.UserID)
		}
		return fmt.Errorf("failed to insert platform account: %w", err)
	}
	return nil
}

func (r *PlatformAccountRepository) GetByID(ctx context.Context, id int64) (*model.PlatformAccount, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var a model.PlatformAccount
	err := r.db.GetContext(ctx, &a, `SELECT `+platformAccountColumns+` FROM platform_accounts WHERE id=$1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewNotFound("Platform account", id)
		}
		return nil, fmt.Errorf("failed to fetch platform account %d: %w", id, err)
	}
	return &a, nil
}

func (r *PlatformAccountRepository) ListByUser(ctx context.Context, userID int64) ([]model.PlatformAccount, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	accounts := []model.PlatformAccount{}
	query := `SELECT ` + platformAccountColumns + ` FROM platform_accounts WHERE user_id=$1 ORDER BY connected_at DESC`
	if err := r.db.SelectContext(ctx, &accounts, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list platform accounts: %w", err)
	}
	return accounts, nil
}

var _ PlatformAccountRepositoryInterface = (*PlatformAccountRepository)(nil)
