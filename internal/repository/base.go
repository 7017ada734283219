package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const defaultQueryTimeout = 5 * time.Second

// base carries the connection and the per-query timeout shared by every repository.
type base struct {
	db      *sqlx.DB
	timeout time.Duration
}

func newBase(db *sqlx.DB, timeout time.Duration) base {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return base{db: db, timeout: timeout}
}

func (b base) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, b.timeout)
}

// uniqueViolation returns the pq error when err is SQLSTATE 23505.
func uniqueViolation(err error) (*pq.Error, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return pqErr, true
	}
	return nil, false
}
