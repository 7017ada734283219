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

type WorkflowTaskRepositoryInterface interface {
	Create(ctx context.Context, t *model.WorkflowTask) error
	GetByID(ctx context.Context, id int64) (*model.WorkflowTask, error)
	ListByUser(ctx context.Context, userID int64, status string) ([]model.WorkflowTask, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*model.WorkflowTask, error)
}

type WorkflowTaskRepository struct {
	base
}

func NewWorkflowTaskRepository(db *sqlx.DB, timeout time.Duration) *WorkflowTaskRepository {
	return &WorkflowTaskRepository{base: newBase(db, timeout)}
}

const workflowTaskColumns = `id, user_id, campaign_id, content_id, title, description, status, priority,
        due_date, completed_at, created_at, updated_at`

func (r *WorkflowTaskRepository) Create(ctx context.Context, t *model.WorkflowTask) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
        INSERT INTO workflow_tasks (user_id, campaign_id, content_id, title, description, status, priority, due_date, completed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + workflowTaskColumns
	err := r.db.QueryRowxContext(ctx, query,
		t.UserID, t.CampaignID, t.ContentID, t.Title, t.Description, t.Status, t.Priority, t.DueDate, t.CompletedAt,
	).StructScan(t)
	if err != nil {
		return fmt.Errorf("failed to insert workflow task: %w", err)
	}
	return nil
}

func (r *WorkflowTaskRepository) GetByID(ctx context.Context, id int64) (*model.WorkflowTask, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var t model.WorkflowTask
	err := r.db.GetContext(ctx, &t, `SELECT `+workflowTaskColumns+` FROM workflow_tasks WHERE id=$1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewNotFound("Workflow task", id)
		}
		return nil, fmt.Errorf("failed to fetch workflow task %d: %w", id, err)
	}
	return &t, nil
}

// ListByUser orders by due date (undated last), then newest first.
func (r *WorkflowTaskRepository) ListByUser(ctx context.Context, userID int64, status string) ([]model.WorkflowTask, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + workflowTaskColumns + ` FROM workflow_tasks WHERE user_id=$1`
	args := []interface{}{userID}
	if status != "" {
		query += ` AND status=$2`
		args = append(args, status)
	}
	query += ` ORDER BY due_date ASC NULLS LAST, created_at DESC`

	tasks := []model.WorkflowTask{}
	if err := r.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list workflow tasks: %w", err)
	}
	return tasks, nil
}

// UpdateStatus stamps completed_at when moving to "completed" and clears it otherwise.
func (r *WorkflowTaskRepository) UpdateStatus(ctx context.Context, id int64, status string) (*model.WorkflowTask, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
        UPDATE workflow_tasks
        SET status=$1,
            completed_at = CASE WHEN $1 = 'completed' THEN NOW() ELSE NULL END,
            updated_at=NOW()
        WHERE id=$2
        RETURNING ` + workflowTaskColumns
	var t model.WorkflowTask
	if err := r.db.QueryRowxContext(ctx, query, status, id).StructScan(&t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewNotFound("Workflow task", id)
		}
		return nil, fmt.Errorf("failed to update workflow task %d: %w", id, err)
	}
	return &t, nil
}

var _ WorkflowTaskRepositoryInterface = (*WorkflowTaskRepository)(nil)
