package domain

import (
	"time"
)

// CampaignTypeDefinition é a definição imutável de um tipo de campanha
type CampaignTypeDefinition struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	DurationDays int        `json:"duration_days"`
	PostsPerWeek int        `json:"posts_per_week"`
	TotalPosts   int        `json:"total_posts"`
	Price        float64    `json:"price"`
	Platforms    []Platform `json:"platforms"`
	Modules      []string   `json:"modules"`
	Outcomes     []string   `json:"outcomes"`
}

// ContentModule é um conjunto nomeado de padrões de conteúdo.
// A ordem dos padrões é significativa: a seleção round-robin do gerador
// indexa diretamente sobre o slice.
type ContentModule struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Patterns    []ContentPattern `json:"content_patterns"`
}

// ContentPattern é um template reutilizável de post
type ContentPattern struct {
	Type      string     `json:"type"`
	Template  string     `json:"template"`
	Frequency string     `json:"frequency"`
	BestTime  string     `json:"best_time"`
	Platforms []Platform `json:"platforms"`
}

// PlatformPostingRule define os limites de postagem de uma plataforma.
// MinIntervalHours e AvoidTimes são declarados para o publicador externo;
// o gerador de agenda só aplica MaxPerDay.
type PlatformPostingRule struct {
	Platform         Platform        `json:"platform"`
	MaxPerDay        int             `json:"max_per_day"`
	MinIntervalHours int             `json:"min_interval_hours"`
	BestTimes        []string        `json:"best_times"`
	AvoidTimes       []string        `json:"avoid_times"`
	CharacterLimits  CharacterLimits `json:"character_limits"`
}

type CharacterLimits struct {
	Post     int `json:"post"`
	Hashtags int `json:"hashtags"`
}

// ContentSlot é a saída transitória do gerador de agenda: um post futuro
// antes de virar ScheduledPost
type ContentSlot struct {
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Platform    Platform  `json:"platform"`
	ModuleID    string    `json:"module_id"`
	ContentType string    `json:"content_type"`
	Template    string    `json:"template"`
}
