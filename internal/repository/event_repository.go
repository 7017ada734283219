package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/unclebandit/influencer-portal/internal/model"
)

type EventRepositoryInterface interface {
	Record(ctx context.Context, e model.Event) (bool, error)
}

// EventRepository appends domain events to event_log.
type EventRepository struct {
	base
}

func NewEventRepository(db *sqlx.DB, timeout time.Duration) *EventRepository {
	return &EventRepository{base: newBase(db, timeout)}
}

// Record is idempotent on event id; it reports whether a new row was written.
func (r *EventRepository) Record(ctx context.Context, e model.Event) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
        INSERT INTO event_log (event_id, topic, payload, occurred_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (event_id) DO NOTHING`
	res, err := r.db.ExecContext(ctx, query, e.ID, e.Topic, []byte(e.Payload), e.OccurredAt)
	if err != nil {
		return false, fmt.Errorf("failed to record event %s: %w", e.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

var _ EventRepositoryInterface = (*EventRepository)(nil)
