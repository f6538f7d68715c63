package domain

// CreateCampaignRequest é o payload de criação de campanha
type CreateCampaignRequest struct {
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Platforms       []Platform      `json:"platforms"`
	Modules         []string        `json:"modules,omitempty"`
	BusinessContext BusinessContext `json:"business_context"`
	ScheduleConfig  ScheduleConfig  `json:"schedule_config"`
}

// CampaignActionResponse é a resposta das transições de status de campanha
type CampaignActionResponse struct {
	ID      string         `json:"id"`
	Status  CampaignStatus `json:"status"`
	Message string         `json:"message"`
}
