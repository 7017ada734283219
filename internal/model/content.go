// internal/model/content.go
package model

import (
	"time"

	"github.com/lib/pq"
)

const (
	ContentTypePost     = "post"
	ContentTypeStory    = "story"
	ContentTypeReel     = "reel"
	ContentTypeVideo    = "video"
	ContentTypeShort    = "short"
	ContentTypeTweet    = "tweet"
	ContentTypeArticle  = "article"
	ContentTypeCarousel = "carousel"
)

type Content struct {
	ID            int64          `db:"id" json:"id"`
	UserID        int64          `db:"user_id" json:"user_id"`
	Title         string         `db:"title" json:"title"`
	Description   *string        `db:"description" json:"description"`
	ContentType   string         `db:"content_type" json:"content_type"`
	Caption       *string        `db:"caption" json:"caption"`
	MediaURLs     pq.StringArray `db:"media_urls" json:"media_urls"`
	Hashtags      pq.StringArray `db:"hashtags" json:"hashtags"`
	IsAIGenerated bool           `db:"is_ai_generated" json:"is_ai_generated"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}
