// internal/model/ai_content_request.go
package model

import "time"

const (
	AIRequestPending    = "pending"
	AIRequestProcessing = "processing"
	AIRequestCompleted  = "completed"
	AIRequestFailed     = "failed"
)

type AIContentRequest struct {
	ID               int64      `db:"id" json:"id"`
	UserID           int64      `db:"user_id" json:"user_id"`
	Prompt           string     `db:"prompt" json:"prompt"`
	ContentType      string     `db:"content_type" json:"content_type"`
	Platform         *string    `db:"platform" json:"platform"`
	Tone             *string    `db:"tone" json:"tone"`
	Status           string     `db:"status" json:"status"`
	GeneratedContent *string    `db:"generated_content" json:"generated_content"`
	ErrorMessage     *string    `db:"error_message" json:"error_message"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	CompletedAt      *time.Time `db:"completed_at" json:"completed_at"`
}
