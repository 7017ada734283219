// internal/model/scheduled_post.go
package model

import "time"

const (
	PostStatusDraft      = "draft"
	PostStatusScheduled  = "scheduled"
	PostStatusPublishing = "publishing"
	PostStatusPublished  = "published"
	PostStatusFailed     = "failed"
	PostStatusCancelled  = "cancelled"
)

type ScheduledPost struct {
	ID                int64      `db:"id" json:"id"`
	UserID            int64      `db:"user_id" json:"user_id"`
	ContentID         int64      `db:"content_id" json:"content_id"`
	PlatformAccountID int64      `db:"platform_account_id" json:"platform_account_id"`
	ScheduledAt       time.Time  `db:"scheduled_at" json:"scheduled_at"`
	Status            string     `db:"status" json:"status"`
	PublishedAt       *time.Time `db:"published_at" json:"published_at"`
	PlatformPostID    *string    `db:"platform_post_id" json:"platform_post_id"`
	ErrorMessage      *string    `db:"error_message" json:"error_message"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

// ScheduledPostDetails is a scheduled post joined with its account and content.
type ScheduledPostDetails struct {
	ScheduledPost
	Platform      string `db:"platform" json:"platform"`
	AccountHandle string `db:"account_handle" json:"account_handle"`
	ContentTitle  string `db:"content_title" json:"content_title"`
}
