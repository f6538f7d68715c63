package catalog

import (
	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

// Identificadores dos tipos de campanha disponíveis
const (
	CampaignTypeLocalVisibility  = "local_visibility"
	CampaignTypeAuthorityBuilder = "authority_builder"
	CampaignTypeContentToLead    = "content_to_lead"
	CampaignTypeBrandMomentum    = "brand_momentum"
)

// campaignTypes é o catálogo estático de tipos de campanha. A ordem do slice
// define a ordem de exibição na API.
var campaignTypes = []*domain.CampaignTypeDefinition{
	{
		ID:           CampaignTypeLocalVisibility,
		Name:         "Local Visibility",
		Description:  "Dominate local search with Google Business and Facebook presence",
		DurationDays: 30,
		PostsPerWeek: 5,
		TotalPosts:   20,
		Price:        197,
		Platforms:    []domain.Platform{domain.PlatformFacebook, domain.PlatformInstagram, domain.PlatformGMB},
		Modules:      []string{ModuleLocalSEO, ModuleCommunityEngagement, ModuleReviewPrompts},
		Outcomes: []string{
			"Increased local search visibility",
			"More Google reviews",
			"Local community engagement",
			"Foot traffic driver posts",
		},
	},
	{
		ID:           CampaignTypeAuthorityBuilder,
		Name:         "Authority Builder",
		Description:  "Establish thought leadership with educational content series",
		DurationDays: 60,
		PostsPerWeek: 4,
		TotalPosts:   35,
		Price:        297,
		Platforms:    []domain.Platform{domain.PlatformLinkedin, domain.PlatformTwitter, domain.PlatformFacebook},
		Modules:      []string{ModuleThoughtLeadership, ModuleIndustryInsights, ModuleExpertPositioning},
		Outcomes: []string{
			"Industry expert positioning",
			"Professional network growth",
			"Inbound lead magnetism",
			"Media and speaking opportunities",
		},
	},
	{
		ID:           CampaignTypeContentToLead,
		Name:         "Content → Lead",
		Description:  "Turn social posts into qualified leads with strategic CTAs",
		DurationDays: 45,
		PostsPerWeek: 6,
		TotalPosts:   40,
		Price:        247,
		Platforms:    []domain.Platform{domain.PlatformFacebook, domain.PlatformInstagram, domain.PlatformLinkedin},
		Modules:      []string{ModuleLeadMagnets, ModuleCTAOptimization, ModuleFunnelPosts, ModuleRetargetingContent},
		Outcomes: []string{
			"Lead generation system",
			"Email list growth",
			"Qualified prospect pipeline",
			"Conversion-optimized content",
		},
	},
	{
		ID:           CampaignTypeBrandMomentum,
		Name:         "Brand Momentum",
		Description:  "Build consistent brand presence across all platforms",
		DurationDays: 90,
		PostsPerWeek: 7,
		TotalPosts:   90,
		Price:        497,
		Platforms: []domain.Platform{
			domain.PlatformFacebook,
			domain.PlatformInstagram,
			domain.PlatformLinkedin,
			domain.PlatformTwitter,
			domain.PlatformTiktok,
		},
		Modules:  []string{ModuleBrandConsistency, ModuleContentCalendar, ModuleEngagementLoops, ModuleViralHooks},
		Outcomes: []string{
			"Brand recognition growth",
			"Cross-platform consistency",
			"Engagement rate improvement",
			"Sustainable content system",
		},
	},
}

var campaignTypesByID = indexCampaignTypes(campaignTypes)

func indexCampaignTypes(types []*domain.CampaignTypeDefinition) map[string]*domain.CampaignTypeDefinition {
	byID := make(map[string]*domain.CampaignTypeDefinition, len(types))
	for _, t := range types {
		byID[t.ID] = t
	}
	return byID
}
