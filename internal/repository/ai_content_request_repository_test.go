package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/influencer-portal/internal/model"
	"github.com/unclebandit/influencer-portal/internal/repository"
)

var aiRequestCols = []string{"id", "user_id", "prompt", "content_type", "platform", "tone", "status",
	"generated_content", "error_message", "created_at", "completed_at"}

func TestAIContentRequestRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewAIContentRequestRepository(db, time.Second)

	mock.ExpectQuery("INSERT INTO ai_content_requests").
		WithArgs(int64(1), "Caption for a beach reel", "reel", sqlmock.AnyArg(), sqlmock.AnyArg(), "pending").
		WillReturnRows(sqlmock.NewRows(aiRequestCols).
			AddRow(6, 1, "Caption for a beach reel", "reel", "instagram", nil, "pending", nil, nil, fixedTime, nil))

	req := &model.AIContentRequest{UserID: 1, Prompt: "Caption for a beach reel", ContentType: "reel", Platform: strPtr("instagram"), Status: "pending"}
	require.NoError(t, repo.Create(context.Background(), req))

	assert.Equal(t, int64(6), req.ID)
	assert.Nil(t, req.GeneratedContent)
	assert.Nil(t, req.CompletedAt)
}
