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

type UserRepositoryInterface interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type UserRepository struct {
	base
}

func NewUserRepository(db *sqlx.DB, timeout time.Duration) *UserRepository {
	return &UserRepository{base: newBase(db, timeout)}
}

const userColumns = `id, email, username, full_name, bio, avatar_url, created_at, updated_at`

// Create inserts the user and fills in the generated columns.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
        INSERT INTO users (email, username, full_name, bio, avatar_url)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + userColumns
	err := r.db.QueryRowxContext(ctx, query, u.Email, u.Username, u.FullName, u.Bio, u.AvatarURL).StructScan(u)
	if err != nil {
		if pqErr, ok := uniqueViolation(err); ok {
			switch pqErr.Constraint {
			case "users_email_key":
				return appErrors.NewConflict("User with email %s already exists", u.Email)
			case "users_username_key":
				return appErrors.NewConflict("User with username %s already exists", u.Username)
			}
			return appErrors.NewConflict("User already exists")
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var u model.User
	err := r.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewNotFound("User", id)
		}
		return nil, fmt.Errorf("failed to fetch user %d: %w", id, err)
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	users := []model.User{}
	if err := r.db.SelectContext(ctx, &users, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

var _ UserRepositoryInterface = (*UserRepository)(nil)
