package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

func TestCampaignType(t *testing.T) {
	t.Run("Tipo conhecido devolve a definição", func(t *testing.T) {
		definition := CampaignType(CampaignTypeLocalVisibility)

		assert.NotNil(t, definition)
		assert.Equal(t, "Local Visibility", definition.Name)
		assert.Equal(t, 30, definition.DurationDays)
		assert.Equal(t, 5, definition.PostsPerWeek)
		assert.Equal(t, 20, definition.TotalPosts)
	})

	t.Run("Tipo desconhecido devolve nil", func(t *testing.T) {
		assert.Nil(t, CampaignType("tipo_inexistente"))
	})
}

func TestCampaignTypes(t *testing.T) {
	types := CampaignTypes()

	assert.Len(t, types, 4)

	// A ordem do catálogo é a ordem de exibição da API
	assert.Equal(t, CampaignTypeLocalVisibility, types[0].ID)
	assert.Equal(t, CampaignTypeAuthorityBuilder, types[1].ID)
	assert.Equal(t, CampaignTypeContentToLead, types[2].ID)
	assert.Equal(t, CampaignTypeBrandMomentum, types[3].ID)

	// Todos os módulos referenciados pelos tipos existem no catálogo
	for _, campaignType := range types {
		modules := ModulesFor(campaignType.Modules)
		assert.Len(t, modules, len(campaignType.Modules),
			"tipo %s referencia módulo inexistente", campaignType.ID)

		for _, module := range modules {
			assert.NotEmpty(t, module.Patterns, "módulo %s sem padrões de conteúdo", module.ID)
		}
	}
}

func TestModulesFor(t *testing.T) {
	t.Run("Ordem solicitada é preservada", func(t *testing.T) {
		modules := ModulesFor([]string{ModuleReviewPrompts, ModuleLocalSEO})

		assert.Len(t, modules, 2)
		assert.Equal(t, ModuleReviewPrompts, modules[0].ID)
		assert.Equal(t, ModuleLocalSEO, modules[1].ID)
	})

	t.Run("Ids desconhecidos são descartados sem erro", func(t *testing.T) {
		modules := ModulesFor([]string{"modulo_inexistente", ModuleLocalSEO})

		assert.Len(t, modules, 1)
		assert.Equal(t, ModuleLocalSEO, modules[0].ID)
	})

	t.Run("Lista vazia devolve slice vazio", func(t *testing.T) {
		assert.Empty(t, ModulesFor(nil))
	})
}

func TestPlatformRule(t *testing.T) {
	tests := []struct {
		platform  domain.Platform
		maxPerDay int
	}{
		{domain.PlatformFacebook, 2},
		{domain.PlatformInstagram, 3},
		{domain.PlatformLinkedin, 2},
		{domain.PlatformTwitter, 5},
		{domain.PlatformTiktok, 3},
		{domain.PlatformGMB, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			rule := PlatformRule(tt.platform)

			assert.NotNil(t, rule)
			assert.Equal(t, tt.maxPerDay, rule.MaxPerDay)
			assert.NotEmpty(t, rule.BestTimes)
		})
	}

	t.Run("Plataforma desconhecida devolve nil", func(t *testing.T) {
		assert.Nil(t, PlatformRule(domain.Platform("orkut")))
	})
}

func TestRulesFor(t *testing.T) {
	rules := RulesFor([]domain.Platform{
		domain.PlatformFacebook,
		domain.Platform("orkut"),
		domain.PlatformGMB,
	})

	assert.Len(t, rules, 2)
}
