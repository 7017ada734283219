// internal/model/platform_account.go
package model

import "time"

const (
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
	PlatformTwitter   = "twitter"
	PlatformFacebook  = "facebook"
	PlatformLinkedIn  = "linkedin"
)

type PlatformAccount struct {
	ID             int64     `db:"id" json:"id"`
	UserID         int64     `db:"user_id" json:"user_id"`
	Platform       string    `db:"platform" json:"platform"`
	AccountHandle  string    `db:"account_handle" json:"account_handle"`
	AccountID      *string   `db:"account_id" json:"account_id"`
	AccessToken    *string   `db:"access_token" json:"-"`
	RefreshToken   *string   `db:"refresh_token" json:"-"`
	FollowersCount int64     `db:"followers_count" json:"followers_count"`
	IsActive       bool      `db:"is_active" json:"is_active"`
	ConnectedAt    time.Time `db:"connected_at" json:"connected_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
