// internal/service/workflow_task_service.go
package service

import (
	"context"
	"time"

	"github.com/unclebandit/influencer-portal/internal/model"
	"github.com/unclebandit/influencer-portal/internal/queue"
	"github.com/unclebandit/influencer-portal/internal/repository"
)

type WorkflowTaskService struct {
	UserRepo     repository.UserRepositoryInterface
	CampaignRepo repository.CampaignRepositoryInterface
	ContentRepo  repository.ContentRepositoryInterface
	TaskRepo     repository.WorkflowTaskRepositoryInterface
	Events       EventPublisher
}

type CreateWorkflowTaskInput struct {
	UserID      int64      `json:"user_id" validate:"gt=0"`
	CampaignID  *int64     `json:"campaign_id" validate:"omitempty,gt=0"`
	ContentID   *int64     `json:"content_id" validate:"omitempty,gt=0"`
	Title       string     `json:"title" validate:"required,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=5000"`
	Status      string     `json:"status" validate:"omitempty,oneof=todo in_progress review completed cancelled"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	DueDate     *time.Time `json:"due_date"`
}

type GetWorkflowTasksInput struct {
	UserID int64  `json:"user_id" validate:"gt=0"`
	Status string `json:"status" validate:"omitempty,oneof=todo in_progress review completed cancelled"`
}

type UpdateWorkflowTaskStatusInput struct {
	ID     int64  `json:"id" validate:"gt=0"`
	Status string `json:"status" validate:"required,oneof=todo in_progress review completed cancelled"`
}

func (s *WorkflowTaskService) CreateWorkflowTask(ctx context.Context, in CreateWorkflowTaskInput) (*model.WorkflowTask, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := s.UserRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}
	if in.CampaignID != nil {
		if _, err := s.CampaignRepo.GetByID(ctx, *in.CampaignID); err != nil {
			return nil, err
		}
	}
	if in.ContentID != nil {
		if _, err := s.ContentRepo.GetByID(ctx, *in.ContentID); err != nil {
			return nil, err
		}
	}

	t := &model.WorkflowTask{
		UserID:      in.UserID,
		CampaignID:  in.CampaignID,
		ContentID:   in.ContentID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
	}
	if t.Status == "" {
		t.Status = model.TaskStatusTodo
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if t.Status == model.TaskStatusCompleted {
		now := time.Now().UTC()
		t.CompletedAt = &now
	}

	if err := s.TaskRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *WorkflowTaskService) GetWorkflowTasks(ctx context.Context, in GetWorkflowTasksInput) ([]model.WorkflowTask, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.TaskRepo.ListByUser(ctx, in.UserID, in.Status)
}

func (s *WorkflowTaskService) UpdateWorkflowTaskStatus(ctx context.Context, in UpdateWorkflowTaskStatusInput) (*model.WorkflowTask, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	current, err := s.TaskRepo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	// same status: keep completed_at as it is and publish nothing
	if current.Status == in.Status {
		return current, nil
	}

	t, err := s.TaskRepo.UpdateStatus(ctx, in.ID, in.Status)
	if err != nil {
		return nil, err
	}

	publish(s.Events, queue.TopicWorkflowTaskStatusChanged, t)
	return t, nil
}
