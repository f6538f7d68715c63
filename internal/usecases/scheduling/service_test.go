package scheduling

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-manager-api/internal/catalog"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

// fixedRand é uma fonte determinística: Float64 devolve sempre o mesmo valor
// e Intn devolve sempre zero (primeira plataforma candidata)
type fixedRand struct {
	float float64
}

func (f fixedRand) Float64() float64 { return f.float }
func (f fixedRand) Intn(n int) int   { return 0 }

func newCampaign(campaignType string, modules []string) *domain.Campaign {
	return &domain.Campaign{
		ID:      "CMP001",
		UserID:  "USR001",
		Name:    "Campanha de teste",
		Type:    campaignType,
		Status:  domain.CampaignStatusDraft,
		Modules: modules,
	}
}

func TestService_Generate_DegenerateInputs(t *testing.T) {
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC) // segunda-feira

	tests := []struct {
		name     string
		campaign *domain.Campaign
	}{
		{
			name:     "Tipo de campanha desconhecido deve gerar agenda vazia",
			campaign: newCampaign("unknown_type", []string{catalog.ModuleLocalSEO}),
		},
		{
			name:     "Campanha sem módulos deve gerar agenda vazia",
			campaign: newCampaign(catalog.CampaignTypeLocalVisibility, nil),
		},
		{
			name:     "Campanha só com módulos desconhecidos deve gerar agenda vazia",
			campaign: newCampaign(catalog.CampaignTypeLocalVisibility, []string{"modulo_inexistente"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(fixedRand{float: 0.5})

			slots := service.Generate(tt.campaign, domain.BusinessContext{}, domain.ScheduleConfig{StartDate: start})

			assert.Empty(t, slots)
		})
	}
}

func TestService_Generate_RespectsCampaignWindow(t *testing.T) {
	service := NewService(rand.New(rand.NewSource(42)))

	campaignType := catalog.CampaignType(catalog.CampaignTypeContentToLead)
	campaign := newCampaign(catalog.CampaignTypeContentToLead, campaignType.Modules)

	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	scheduleConfig := domain.ScheduleConfig{StartDate: start}

	slots := service.Generate(campaign, domain.BusinessContext{}, scheduleConfig)

	assert.NotEmpty(t, slots)

	end := start.AddDate(0, 0, campaignType.DurationDays)
	for _, slot := range slots {
		assert.False(t, slot.Date.Before(start), "slot antes do início da campanha: %s", slot.Date)
		assert.True(t, slot.Date.Before(end), "slot depois do fim da campanha: %s", slot.Date)
		assert.NotEmpty(t, slot.Time)
		assert.NotEmpty(t, slot.Platform)
		assert.NotEmpty(t, slot.ModuleID)
	}
}

func TestService_Generate_SkipsExcludedWeekdays(t *testing.T) {
	service := NewService(rand.New(rand.NewSource(7)))

	campaignType := catalog.CampaignType(catalog.CampaignTypeLocalVisibility)
	campaign := newCampaign(catalog.CampaignTypeLocalVisibility, campaignType.Modules)

	// Exclui domingo (0) e sábado (6)
	scheduleConfig := domain.ScheduleConfig{
		StartDate:   time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		ExcludeDays: []int{0, 6},
	}

	slots := service.Generate(campaign, domain.BusinessContext{}, scheduleConfig)

	assert.NotEmpty(t, slots)

	counts := make(map[string]map[domain.Platform]int)
	for _, slot := range slots {
		weekday := slot.Date.Weekday()
		assert.NotEqual(t, time.Sunday, weekday, "slot gerado em domingo: %s", slot.Date)
		assert.NotEqual(t, time.Saturday, weekday, "slot gerado em sábado: %s", slot.Date)

		day := slot.Date.Format(time.DateOnly)
		if counts[day] == nil {
			counts[day] = make(map[domain.Platform]int)
		}
		counts[day][slot.Platform]++
	}

	// Limites diários do catálogo: gmb no máximo 1, facebook no máximo 2
	for day, platforms := range counts {
		assert.LessOrEqual(t, platforms[domain.PlatformGMB], 1, "gmb acima do limite em %s", day)
		assert.LessOrEqual(t, platforms[domain.PlatformFacebook], 2, "facebook acima do limite em %s", day)
	}
}

func TestService_Generate_RespectsPlatformDailyLimits(t *testing.T) {
	service := NewService(rand.New(rand.NewSource(99)))

	campaignType := catalog.CampaignType(catalog.CampaignTypeBrandMomentum)
	campaign := newCampaign(catalog.CampaignTypeBrandMomentum, campaignType.Modules)

	scheduleConfig := domain.ScheduleConfig{
		StartDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
	}

	slots := service.Generate(campaign, domain.BusinessContext{}, scheduleConfig)

	assert.NotEmpty(t, slots)

	// Contagem por dia e plataforma comparada ao limite do catálogo
	counts := make(map[string]map[domain.Platform]int)
	for _, slot := range slots {
		day := slot.Date.Format(time.DateOnly)
		if counts[day] == nil {
			counts[day] = make(map[domain.Platform]int)
		}
		counts[day][slot.Platform]++
	}

	for day, platforms := range counts {
		for platform, count := range platforms {
			rule := catalog.PlatformRule(platform)
			assert.NotNil(t, rule, "plataforma sem regra no catálogo: %s", platform)
			assert.LessOrEqual(t, count, rule.MaxPerDay,
				"limite diário excedido em %s para %s", day, platform)
		}
	}
}

func TestService_Generate_DailyCadenceForWholeRates(t *testing.T) {
	// brand_momentum tem 7 posts por semana: exatamente um por dia, sem
	// sorteio de fração. Nenhum dia excluído, nenhum slot descartado.
	service := NewService(fixedRand{float: 0.99})

	campaignType := catalog.CampaignType(catalog.CampaignTypeBrandMomentum)
	campaign := newCampaign(catalog.CampaignTypeBrandMomentum, campaignType.Modules)

	scheduleConfig := domain.ScheduleConfig{
		StartDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
	}

	slots := service.Generate(campaign, domain.BusinessContext{}, scheduleConfig)

	assert.Len(t, slots, campaignType.DurationDays)

	seen := make(map[string]bool)
	for _, slot := range slots {
		day := slot.Date.Format(time.DateOnly)
		assert.False(t, seen[day], "mais de um slot no dia %s", day)
		seen[day] = true
	}
}

func TestService_Generate_StochasticRoundingBounds(t *testing.T) {
	campaignType := catalog.CampaignType(catalog.CampaignTypeLocalVisibility)
	campaign := newCampaign(catalog.CampaignTypeLocalVisibility, campaignType.Modules)

	scheduleConfig := domain.ScheduleConfig{
		StartDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		rng      Rand
		expected int
	}{
		{
			// 5/7 por dia: fração sempre sorteada quando Float64 < 0.714...
			name:     "Sorteio sempre abaixo da fração gera um post por dia",
			rng:      fixedRand{float: 0.0},
			expected: campaignType.DurationDays,
		},
		{
			name:     "Sorteio sempre acima da fração não gera nenhum post",
			rng:      fixedRand{float: 0.99},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(tt.rng)

			slots := service.Generate(campaign, domain.BusinessContext{}, scheduleConfig)

			assert.Len(t, slots, tt.expected)
		})
	}
}

func TestService_Generate_DeterministicWithSameSeed(t *testing.T) {
	campaignType := catalog.CampaignType(catalog.CampaignTypeAuthorityBuilder)
	campaign := newCampaign(catalog.CampaignTypeAuthorityBuilder, campaignType.Modules)

	scheduleConfig := domain.ScheduleConfig{
		StartDate:      time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		PreferredTimes: []string{"08:30", "18:00"},
		ExcludeDays:    []int{0},
	}

	first := NewService(rand.New(rand.NewSource(1234))).
		Generate(campaign, domain.BusinessContext{}, scheduleConfig)
	second := NewService(rand.New(rand.NewSource(1234))).
		Generate(campaign, domain.BusinessContext{}, scheduleConfig)

	assert.Equal(t, first, second)
}

func TestService_Generate_PlatformsComeFromPatterns(t *testing.T) {
	// As plataformas dos slots vêm dos padrões de conteúdo do catálogo, não
	// da lista da campanha
	service := NewService(rand.New(rand.NewSource(5)))

	campaignType := catalog.CampaignType(catalog.CampaignTypeLocalVisibility)
	campaign := newCampaign(catalog.CampaignTypeLocalVisibility, campaignType.Modules)
	campaign.Platforms = []domain.Platform{domain.PlatformTwitter} // ignorado pelo gerador

	scheduleConfig := domain.ScheduleConfig{
		StartDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
	}

	slots := service.Generate(campaign, domain.BusinessContext{}, scheduleConfig)

	assert.NotEmpty(t, slots)

	allowed := make(map[domain.Platform]bool)
	for _, module := range catalog.ModulesFor(campaignType.Modules) {
		for _, pattern := range module.Patterns {
			for _, p := range pattern.Platforms {
				allowed[p] = true
			}
		}
	}

	for _, slot := range slots {
		assert.True(t, allowed[slot.Platform], "plataforma fora dos padrões: %s", slot.Platform)
	}
}
