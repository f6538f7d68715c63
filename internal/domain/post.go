package domain

import (
	"time"
)

type PostStatus string

const (
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPublished PostStatus = "published"
	PostStatusFailed    PostStatus = "failed"
	PostStatusCancelled PostStatus = "cancelled"
)

// ScheduledPost é o registro persistido de um slot de conteúdo gerado.
// O conteúdo nasce vazio e é preenchido pelo serviço de geração de conteúdo
// antes da publicação, fora deste serviço.
type ScheduledPost struct {
	ID             string          `json:"id"`
	CampaignID     string          `json:"campaign_id"`
	Platform       Platform        `json:"platform"`
	Content        string          `json:"content"`
	ContentType    string          `json:"content_type"`
	Template       string          `json:"template"`
	ModuleID       string          `json:"module_id"`
	MediaURLs      []string        `json:"media_urls"`
	ScheduledFor   time.Time       `json:"scheduled_for"`
	PublishedAt    *time.Time      `json:"published_at"`
	Status         PostStatus      `json:"status"`
	ExternalPostID *string         `json:"external_post_id"`
	Engagement     *EngagementData `json:"engagement_data"`
	CreatedAt      time.Time       `json:"created_at"`
}

// EngagementData é o payload de engajamento anexado pelo publicador externo
type EngagementData struct {
	Likes       int `json:"likes"`
	Comments    int `json:"comments"`
	Shares      int `json:"shares"`
	Clicks      int `json:"clicks"`
	Impressions int `json:"impressions"`
	Reach       int `json:"reach"`
}

// CampaignStats agrega os posts de uma campanha em contadores de desempenho
type CampaignStats struct {
	PostsPublished   int     `json:"posts_published"`
	PostsScheduled   int     `json:"posts_scheduled"`
	PostsFailed      int     `json:"posts_failed"`
	TotalEngagement  int     `json:"total_engagement"`
	TotalImpressions int     `json:"total_impressions"`
	EngagementRate   float64 `json:"engagement_rate"`
}
