// Package catalog expõe os dados estáticos de referência de campanhas:
// tipos de campanha, módulos de conteúdo e regras de postagem por
// plataforma. É uma superfície de consulta pura — ids desconhecidos são
// simplesmente omitidos, nunca geram erro.
package catalog

import (
	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

// CampaignType retorna a definição de um tipo de campanha, ou nil se o id
// for desconhecido
func CampaignType(id string) *domain.CampaignTypeDefinition {
	return campaignTypesByID[id]
}

// CampaignTypes retorna todos os tipos de campanha na ordem do catálogo
func CampaignTypes() []*domain.CampaignTypeDefinition {
	return campaignTypes
}

// ModulesFor resolve uma lista de ids de módulos, preservando a ordem
// solicitada. Ids desconhecidos são descartados silenciosamente.
func ModulesFor(moduleIDs []string) []*domain.ContentModule {
	modules := make([]*domain.ContentModule, 0, len(moduleIDs))
	for _, id := range moduleIDs {
		if module, ok := contentModules[id]; ok {
			modules = append(modules, module)
		}
	}
	return modules
}

// PlatformRule retorna a regra de postagem de uma plataforma, ou nil se a
// plataforma for desconhecida
func PlatformRule(platform domain.Platform) *domain.PlatformPostingRule {
	return platformRules[platform]
}

// RulesFor resolve as regras de postagem de uma lista de plataformas,
// descartando plataformas desconhecidas
func RulesFor(platforms []domain.Platform) []*domain.PlatformPostingRule {
	rules := make([]*domain.PlatformPostingRule, 0, len(platforms))
	for _, p := range platforms {
		if rule, ok := platformRules[p]; ok {
			rules = append(rules, rule)
		}
	}
	return rules
}
