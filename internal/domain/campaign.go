package domain

import (
	"time"
)

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedin  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
	PlatformTiktok    Platform = "tiktok"
	PlatformGMB       Platform = "gmb"
)

// Campaign representa uma campanha de postagens em redes sociais
type Campaign struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Status          CampaignStatus  `json:"status"`
	Platforms       []Platform      `json:"platforms"`
	Modules         []string        `json:"modules"`
	BusinessContext BusinessContext `json:"business_context"`
	ScheduleConfig  ScheduleConfig  `json:"schedule_config"`
	PostsPublished  int             `json:"posts_published"`
	PostsRemaining  int             `json:"posts_remaining"`
	LeadsGenerated  int             `json:"leads_generated"`
	EngagementRate  float64         `json:"engagement_rate"`
	StartedAt       *time.Time      `json:"started_at"`
	EndsAt          *time.Time      `json:"ends_at"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BusinessContext descreve o negócio do cliente, usado na geração de conteúdo
type BusinessContext struct {
	BusinessName   string   `json:"business_name"`
	Industry       string   `json:"industry"`
	TargetAudience string   `json:"target_audience"`
	UniqueValue    string   `json:"unique_value"`
	Tone           string   `json:"tone"`
	Keywords       []string `json:"keywords"`
	Competitors    []string `json:"competitors"`
	Location       string   `json:"location,omitempty"`
}

// ScheduleConfig contém as preferências de agendamento informadas pelo usuário
type ScheduleConfig struct {
	Timezone       string    `json:"timezone"`
	PreferredTimes []string  `json:"preferred_times"`
	ExcludeDays    []int     `json:"exclude_days"` // 0-6 (domingo-sábado)
	StartDate      time.Time `json:"start_date"`
}

// ExcludesWeekday retorna verdadeiro se o dia da semana estiver excluído
func (c ScheduleConfig) ExcludesWeekday(weekday time.Weekday) bool {
	for _, d := range c.ExcludeDays {
		if d == int(weekday) {
			return true
		}
	}
	return false
}

// Location resolve o fuso horário configurado, com fallback para UTC
func (c ScheduleConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}
