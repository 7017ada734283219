package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/influencer-portal/internal/errors"
	"github.com/unclebandit/influencer-portal/internal/model"
	"github.com/unclebandit/influencer-portal/internal/queue"
)

func newTaskService() (*WorkflowTaskService, *recordingPublisher) {
	events := &recordingPublisher{}
	return &WorkflowTaskService{
		UserRepo:     newMockUserRepo(model.User{ID: 1}),
		CampaignRepo: newMockCampaignRepo(model.Campaign{ID: 3, UserID: 1}),
		ContentRepo:  newMockContentRepo(model.Content{ID: 4, UserID: 1}),
		TaskRepo:     newMockTaskRepo(),
		Events:       events,
	}, events
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreateWorkflowTaskDefaults(t *testing.T) {
	svc, _ := newTaskService()

	task, err := svc.CreateWorkflowTask(context.Background(), CreateWorkflowTaskInput{
		UserID: 1, CampaignID: int64Ptr(3), ContentID: int64Ptr(4), Title: "Film teaser",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusTodo, task.Status)
	assert.Equal(t, model.PriorityMedium, task.Priority)
	assert.Nil(t, task.CompletedAt)
}

func TestCreateWorkflowTaskChecksOptionalReferences(t *testing.T) {
	svc, _ := newTaskService()
	ctx := context.Background()

	_, err := svc.CreateWorkflowTask(ctx, CreateWorkflowTaskInput{UserID: 1, CampaignID: int64Ptr(30), Title: "x"})
	assert.EqualError(t, err, "Campaign with id 30 does not exist")

	_, err = svc.CreateWorkflowTask(ctx, CreateWorkflowTaskInput{UserID: 1, ContentID: int64Ptr(40), Title: "x"})
	assert.EqualError(t, err, "Content with id 40 does not exist")
}

func TestCreateWorkflowTaskRejectsPriority(t *testing.T) {
	svc, _ := newTaskService()

	_, err := svc.CreateWorkflowTask(context.Background(), CreateWorkflowTaskInput{UserID: 1, Title: "x", Priority: "asap"})
	assert.EqualError(t, err, "priority: must be one of [low, medium, high, urgent]")
}

func TestUpdateWorkflowTaskStatus(t *testing.T) {
	svc, events := newTaskService()
	ctx := context.Background()

	task, err := svc.CreateWorkflowTask(ctx, CreateWorkflowTaskInput{UserID: 1, Title: "Edit reel"})
	require.NoError(t, err)

	done, err := svc.UpdateWorkflowTaskStatus(ctx, UpdateWorkflowTaskStatusInput{ID: task.ID, Status: model.TaskStatusCompleted})
	require.NoError(t, err)
	assert.NotNil(t, done.CompletedAt)

	reopened, err := svc.UpdateWorkflowTaskStatus(ctx, UpdateWorkflowTaskStatusInput{ID: task.ID, Status: model.TaskStatusInProgress})
	require.NoError(t, err)
	assert.Nil(t, reopened.CompletedAt)

	assert.Equal(t, []string{queue.TopicWorkflowTaskStatusChanged, queue.TopicWorkflowTaskStatusChanged}, events.topics())
}

func TestCreateWorkflowTaskCompletedStampsCompletedAt(t *testing.T) {
	svc, _ := newTaskService()

	task, err := svc.CreateWorkflowTask(context.Background(), CreateWorkflowTaskInput{
		UserID: 1, Title: "Already shipped", Status: model.TaskStatusCompleted,
	})
	require.NoError(t, err)
	require.NotNil(t, task.CompletedAt)
	assert.WithinDuration(t, time.Now(), *task.CompletedAt, time.Minute)
}

func TestUpdateWorkflowTaskStatusSameStatusKeepsCompletedAt(t *testing.T) {
	svc, events := newTaskService()
	ctx := context.Background()

	task, err := svc.CreateWorkflowTask(ctx, CreateWorkflowTaskInput{UserID: 1, Title: "Edit reel"})
	require.NoError(t, err)
	done, err := svc.UpdateWorkflowTaskStatus(ctx, UpdateWorkflowTaskStatusInput{ID: task.ID, Status: model.TaskStatusCompleted})
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)
	first := *done.CompletedAt

	again, err := svc.UpdateWorkflowTaskStatus(ctx, UpdateWorkflowTaskStatusInput{ID: task.ID, Status: model.TaskStatusCompleted})
	require.NoError(t, err)
	require.NotNil(t, again.CompletedAt)
	assert.True(t, first.Equal(*again.CompletedAt))
	assert.Equal(t, []string{queue.TopicWorkflowTaskStatusChanged}, events.topics())
}

func TestUpdateWorkflowTaskStatusMissing(t *testing.T) {
	svc, events := newTaskService()

	_, err := svc.UpdateWorkflowTaskStatus(context.Background(), UpdateWorkflowTaskStatusInput{ID: 77, Status: model.TaskStatusReview})
	assert.True(t, appErrors.IsNotFound(err))
	assert.Empty(t, events.topics())
}
