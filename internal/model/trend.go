// internal/model/trend.go
package model

import "time"

type Trend struct {
	ID              int64     `json:"id"`
	Platform        string    `json:"platform"`
	Keyword         string    `json:"keyword"`
	Hashtag         *string   `json:"hashtag"`
	Category        *string   `json:"category"`
	PopularityScore float64   `json:"popularity_score"`
	Volume          *int64    `json:"volume"`
	GrowthRate      *float64  `json:"growth_rate"`
	Region          *string   `json:"region"`
	RecordedAt      time.Time `json:"recorded_at"`
	CreatedAt       time.Time `json:"created_at"`
}
