package catalog

import (
	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

// platformRules define os limites de postagem por plataforma.
// MaxPerDay é o único limite aplicado pelo gerador de agenda; os demais
// campos são consumidos pelo publicador externo no momento da postagem.
var platformRules = map[domain.Platform]*domain.PlatformPostingRule{
	domain.PlatformFacebook: {
		Platform:         domain.PlatformFacebook,
		MaxPerDay:        2,
		MinIntervalHours: 4,
		BestTimes:        []string{"9:00", "13:00", "16:00"},
		AvoidTimes:       []string{"23:00-06:00"},
		CharacterLimits:  domain.CharacterLimits{Post: 63206, Hashtags: 30},
	},
	domain.PlatformInstagram: {
		Platform:         domain.PlatformInstagram,
		MaxPerDay:        3,
		MinIntervalHours: 3,
		BestTimes:        []string{"11:00", "14:00", "19:00"},
		AvoidTimes:       []string{"00:00-07:00"},
		CharacterLimits:  domain.CharacterLimits{Post: 2200, Hashtags: 30},
	},
	domain.PlatformLinkedin: {
		Platform:         domain.PlatformLinkedin,
		MaxPerDay:        2,
		MinIntervalHours: 6,
		BestTimes:        []string{"8:00", "12:00", "17:00"},
		AvoidTimes:       []string{"20:00-07:00"},
		CharacterLimits:  domain.CharacterLimits{Post: 3000, Hashtags: 5},
	},
	domain.PlatformTwitter: {
		Platform:         domain.PlatformTwitter,
		MaxPerDay:        5,
		MinIntervalHours: 2,
		BestTimes:        []string{"9:00", "12:00", "15:00", "18:00"},
		AvoidTimes:       []string{"01:00-06:00"},
		CharacterLimits:  domain.CharacterLimits{Post: 280, Hashtags: 3},
	},
	domain.PlatformTiktok: {
		Platform:         domain.PlatformTiktok,
		MaxPerDay:        3,
		MinIntervalHours: 4,
		BestTimes:        []string{"12:00", "15:00", "21:00"},
		AvoidTimes:       []string{"02:00-08:00"},
		CharacterLimits:  domain.CharacterLimits{Post: 2200, Hashtags: 5},
	},
	domain.PlatformGMB: {
		Platform:         domain.PlatformGMB,
		MaxPerDay:        1,
		MinIntervalHours: 24,
		BestTimes:        []string{"10:00", "14:00"},
		AvoidTimes:       []string{"22:00-07:00"},
		CharacterLimits:  domain.CharacterLimits{Post: 1500, Hashtags: 0},
	},
}
