package catalog

import (
	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

// Identificadores dos módulos estratégicos de conteúdo
const (
	ModuleLocalSEO            = "local_seo"
	ModuleCommunityEngagement = "community_engagement"
	ModuleReviewPrompts       = "review_prompts"
	ModuleThoughtLeadership   = "thought_leadership"
	ModuleIndustryInsights    = "industry_insights"
	ModuleExpertPositioning   = "expert_positioning"
	ModuleLeadMagnets         = "lead_magnets"
	ModuleCTAOptimization     = "cta_optimization"
	ModuleFunnelPosts         = "funnel_posts"
	ModuleRetargetingContent  = "retargeting_content"
	ModuleBrandConsistency    = "brand_consistency"
	ModuleContentCalendar     = "content_calendar"
	ModuleEngagementLoops     = "engagement_loops"
	ModuleViralHooks          = "viral_hooks"
)

// contentModules é o catálogo estático de módulos de conteúdo.
// A ordem dos padrões dentro de cada módulo é significativa para a seleção
// round-robin do gerador — não reordenar.
var contentModules = map[string]*domain.ContentModule{
	ModuleLocalSEO: {
		ID:          ModuleLocalSEO,
		Name:        "Local SEO Booster",
		Description: "Optimize content for local search visibility",
		Patterns: []domain.ContentPattern{
			{
				Type:      "local_update",
				Template:  "Share local news/events related to {industry} in {location}",
				Frequency: "2x/week",
				BestTime:  "10:00",
				Platforms: []domain.Platform{domain.PlatformFacebook, domain.PlatformGMB},
			},
			{
				Type:      "behind_scenes",
				Template:  "Behind-the-scenes look at {businessName}",
				Frequency: "1x/week",
				BestTime:  "14:00",
				Platforms: []domain.Platform{domain.PlatformInstagram, domain.PlatformFacebook},
			},
			{
				Type:      "team_spotlight",
				Template:  "Meet our team member who specializes in {specialty}",
				Frequency: "1x/week",
				BestTime:  "12:00",
				Platforms: []domain.Platform{domain.PlatformFacebook, domain.PlatformLinkedin},
			},
		},
	},
	ModuleCommunityEngagement: {
		ID:          ModuleCommunityEngagement,
		Name:        "Community Engagement",
		Description: "Build relationships with local community",
		Patterns: []domain.ContentPattern{
			{
				Type:      "question",
				Template:  "Ask audience about their {topic} preferences/challenges",
				Frequency: "2x/week",
				BestTime:  "15:00",
				Platforms: []domain.Platform{domain.PlatformFacebook, domain.PlatformInstagram},
			},
			{
				Type:      "poll",
				Template:  "Create poll about {industry_topic}",
				Frequency: "1x/week",
				BestTime:  "12:00",
				Platforms: []domain.Platform{domain.PlatformFacebook, domain.PlatformTwitter},
			},
			{
				Type:      "user_generated",
				Template:  "Feature customer story or testimonial",
				Frequency: "1x/week",
				BestTime:  "10:00",
				Platforms: []domain.Platform{domain.PlatformInstagram, domain.PlatformFacebook},
			},
		},
	},
	ModuleReviewPrompts: {
		ID:          ModuleReviewPrompts,
		Name:        "Review Generation",
		Description: "Encourage and showcase customer reviews",
		Patterns: []domain.ContentPattern{
			{
				Type:      "review_request",
				Template:  "Soft CTA encouraging reviews with value-first content",
				Frequency: "1x/week",
				BestTime:  "11:00",
				Platforms: []domain.Platform{domain.PlatformFacebook, domain.PlatformGMB},
			},
			{
				Type:      "review_showcase",
				Template:  "Share and celebrate positive customer feedback",
				Frequency: "2x/week",
				BestTime:  "14:00",
				Platforms: []domain.Platform{domain.PlatformFacebook, domain.PlatformInstagram},
			},
		},
	},
	ModuleThoughtLeadership: {
		ID:          ModuleThoughtLeadership,
		Name:        "Thought Leadership",
		Description: "Position as industry expert",
		Patterns: []domain.ContentPattern{
			{
				Type:      "insight",
				Template:  "Share unique perspective on {industry_trend}",
				Frequency: "2x/week",
				BestTime:  "8:00",
				Platforms: []domain.Platform{domain.PlatformLinkedin, domain.PlatformTwitter},
			},
			{
				Type:      "prediction",
				Template:  "Make informed prediction about {industry_future}",
				Frequency: "1x/week",
				BestTime:  "9:00",
				Platforms: []domain.Platform{domain.PlatformLinkedin},
			},
			{
				Type:      "case_study",
				Template:  "Share success story with lessons learned",
				Frequency: "1x/week",
				BestTime:  "10:00",
				Platforms: []domain.Platform{domain.PlatformLinkedin, domain.PlatformFacebook},
			},
		},
	},
	ModuleIndustryInsights: {
		ID:          ModuleIndustryInsights,
		Name:        "Industry Insights",
		Description: "Share valuable industry knowledge",
		Patterns: []domain.ContentPattern{
			{
				Type:      "news_commentary",
				Template:  "Comment on recent {industry} news with expert take",
				Frequency: "2x/week",
				BestTime:  "9:00",
				Platforms: []domain.Platform{domain.PlatformLinkedin, domain.PlatformTwitter},
			},
			{
				Type:      "tips",
				Template:  "Share actionable tips for {target_audience}",
				Frequency: "2x/week",
				BestTime:  "12:00",
				Platforms: []domain.Platform{domain.PlatformLinkedin, domain.PlatformInstagram},
			},
			{
				Type:      "myth_busting",
				Template:  "Debunk common misconceptions in {industry}",
				Frequency: "1x/week",
				BestTime:  "14:00",
				Platforms: []domain.Platform{domain.PlatformLinkedin, domain.PlatformTwitter},
			},
		},
	},
	ModuleExpertPositioning: {
		ID:          ModuleExpertPositioning,
		Name:        "Expert Positioning",
		Description: "Establish credibility and authority",
		Patterns: []domain.ContentPattern{
			{
				Type:      "credentials",
				Template:  "Share certifications, awards, or achievements",
				Frequency: "1x/2weeks",
				BestTime:  "10:00",
				Platforms: []domain.Platform{domain.PlatformLinkedin},
			},
			{
				Type:      "speaking",
				Template:  "Share speaking engagements or media appearances",
				Frequency: "1x/week",
				BestTime:  "11:00",
				Platforms: []domain.Platform{domain.PlatformLinkedin, domain.PlatformTwitter},
			},
			{
				Type:      "methodology",
				Template:  "Explain your unique approach or methodology",
				Frequency: "1x/week",
				BestTime:  "9:00",
				Platforms: []domain.Platform{domain.PlatformLinkedin},
			},
		},
	},
	ModuleLeadMagnets: {
		ID:          ModuleLeadMagnets,
		Name:        "Lead Magnet Promotion",
		Description: "Drive leads with valuable content offers",
		Patterns: []domain.ContentPattern{
			{
				Type:      "freebie",
				Template:  "Promote free resource: {lead_magnet_name}",
				Frequency: "2x/week",
				BestTime:  "10:00",
				Platforms: []domain.Platform{domain.PlatformFacebook, domain.PlatformLinkedin, domain.PlatformInstagram},
			},
			{
				Type:      "teaser",
				Template:  "Share snippet from lead magnet with CTA",
				Frequency: "2x/week",
				BestTime:  "14:00",
				Platforms: []domain.Platform{domain.PlatformInstagram, domain.PlatformFacebook},
			},
			{
				Type:      "value_preview",
				Template:  "Show results/outcomes from using the resource",
				Frequency: "1x/week",
				BestTime:  "12:00",
				Platforms: []domain.Platform{domain.PlatformLinkedin, domain.PlatformFacebook},
			},
		},
	},
	ModuleCTAOptimization: {
		ID:          ModuleCTAOptimization,
		Name:        "CTA Optimization",
		Description: "Strategic calls-to-action that convert",
		Patterns: []domain.ContentPattern{
			{
				Type:      "soft_cta",
				Template:  "Value-first content with subtle next step",
				Frequency: "3x/week",
				BestTime:  "11:00",
				Platforms: []domain.Platform{domain.PlatformFacebook, domain.PlatformInstagram, domain.PlatformLinkedin},
			},
			{
				Type:      "direct_cta",
				Template:  "Clear offer with specific action",
				Frequency: "1x/week",
				BestTime:  "10:00",
				Platforms: []domain.Platform{domain.PlatformFacebook, domain.PlatformLinkedin},
			},
			{
				Type:      "urgency",
				Template:  "Limited-time offer or deadline-driven CTA",
				Frequency: "1x/2weeks",
				BestTime:  "9:00",
				Platforms: []domain.Platform{domain.PlatformFacebook, domain.PlatformInstagram},
			},
		},
	},
	ModuleFunnelPosts: {
		ID:          ModuleFunnelPosts,
		Name:        "Funnel Posts",
		Description: "Content mapped to buyer journey stages",
		Patterns: []domain.ContentPattern{
			{
				Type:      "awareness",
				Template:  "Educational content about problem/need",
				Frequency: "2x/week",
				BestTime:  "12:00",
				Platforms: []domain.Platform{domain.PlatformFacebook, domain.PlatformLinkedin},
			},
			{
				Type:      "consideration",
				Template:  "Compare solutions, show your approach",
				Frequency: "2x/week",
				BestTime:  "14:00",
				Platforms: []domain.Platform{domain.PlatformLinkedin, domain.PlatformFacebook},
			},
			{
				Type:      "decision",
				Template:  "Social proof, testimonials, case studies",
				Frequency: "1x/week",
				BestTime:  "10:00",
				Platforms: []domain.Platform{domain.PlatformFacebook, domain.PlatformInstagram},
			},
		},
	},
	ModuleRetargetingContent: {
		ID:          ModuleRetargetingContent,
		Name:        "Retargeting Content",
		Description: "Content for warm audience re-engagement",
		Patterns: []domain.ContentPattern{
			{
				Type:      "reminder",
				Template:  "Remind about unclaimed offer/resource",
				Frequency: "1x/week",
				BestTime:  "15:00",
				Platforms: []domain.Platform{domain.PlatformFacebook, domain.PlatformInstagram},
			},
			{
				Type:      "objection_handling",
				Template:  "Address common concerns or questions",
				Frequency: "1x/week",
				BestTime:  "11:00",
				Platforms: []domain.Platform{domain.PlatformFacebook, domain.PlatformLinkedin},
			},
		},
	},
	ModuleBrandConsistency: {
		ID:          ModuleBrandConsistency,
		Name:        "Brand Consistency",
		Description: "Unified brand presence across platforms",
		Patterns: []domain.ContentPattern{
			{
				Type:      "brand_story",
				Template:  "Share company mission, values, or origin",
				Frequency: "1x/week",
				BestTime:  "10:00",
				Platforms: []domain.Platform{domain.PlatformFacebook, domain.PlatformLinkedin, domain.PlatformInstagram},
			},
			{
				Type:      "brand_voice",
				Template:  "Personality-driven content that shows brand character",
				Frequency: "3x/week",
				BestTime:  "12:00",
				Platforms: []domain.Platform{domain.PlatformInstagram, domain.PlatformTwitter, domain.PlatformTiktok},
			},
			{
				Type:      "visual_identity",
				Template:  "Branded graphics with consistent style",
				Frequency: "4x/week",
				BestTime:  "14:00",
				Platforms: []domain.Platform{domain.PlatformInstagram, domain.PlatformFacebook},
			},
		},
	},
	ModuleContentCalendar: {
		ID:          ModuleContentCalendar,
		Name:        "Content Calendar",
		Description: "Strategic content planning and themes",
		Patterns: []domain.ContentPattern{
			{
				Type:      "themed_day",
				Template:  "Weekly themed content (e.g., Tip Tuesday)",
				Frequency: "1x/week",
				BestTime:  "9:00",
				Platforms: []domain.Platform{domain.PlatformInstagram, domain.PlatformTwitter, domain.PlatformFacebook},
			},
			{
				Type:      "series",
				Template:  "Multi-part content series on {topic}",
				Frequency: "2x/week",
				BestTime:  "12:00",
				Platforms: []domain.Platform{domain.PlatformLinkedin, domain.PlatformInstagram},
			},
			{
				Type:      "seasonal",
				Template:  "Holiday or seasonal themed content",
				Frequency: "as_needed",
				BestTime:  "10:00",
				Platforms: []domain.Platform{domain.PlatformFacebook, domain.PlatformInstagram},
			},
		},
	},
	ModuleEngagementLoops: {
		ID:          ModuleEngagementLoops,
		Name:        "Engagement Loops",
		Description: "Content that drives interaction and shares",
		Patterns: []domain.ContentPattern{
			{
				Type:      "question",
				Template:  "Open-ended question to spark discussion",
				Frequency: "2x/week",
				BestTime:  "15:00",
				Platforms: []domain.Platform{domain.PlatformFacebook, domain.PlatformLinkedin, domain.PlatformTwitter},
			},
			{
				Type:      "challenge",
				Template:  "User participation challenge or trend",
				Frequency: "1x/week",
				BestTime:  "12:00",
				Platforms: []domain.Platform{domain.PlatformInstagram, domain.PlatformTiktok},
			},
			{
				Type:      "this_or_that",
				Template:  "Binary choice that prompts engagement",
				Frequency: "1x/week",
				BestTime:  "14:00",
				Platforms: []domain.Platform{domain.PlatformInstagram, domain.PlatformTwitter},
			},
		},
	},
	ModuleViralHooks: {
		ID:          ModuleViralHooks,
		Name:        "Viral Hooks",
		Description: "High-shareability content formats",
		Patterns: []domain.ContentPattern{
			{
				Type:      "hot_take",
				Template:  "Controversial but defensible industry opinion",
				Frequency: "1x/week",
				BestTime:  "9:00",
				Platforms: []domain.Platform{domain.PlatformTwitter, domain.PlatformLinkedin},
			},
			{
				Type:      "relatable",
				Template:  "Meme or relatable content for {industry}",
				Frequency: "2x/week",
				BestTime:  "12:00",
				Platforms: []domain.Platform{domain.PlatformTwitter, domain.PlatformInstagram, domain.PlatformTiktok},
			},
			{
				Type:      "trending",
				Template:  "Capitalize on trending topics/hashtags",
				Frequency: "as_needed",
				BestTime:  "10:00",
				Platforms: []domain.Platform{domain.PlatformTwitter, domain.PlatformTiktok, domain.PlatformInstagram},
			},
		},
	},
}
