// Package scheduling implementa o gerador de agenda de campanhas: expande a
// configuração declarativa de uma campanha em slots de conteúdo dia a dia,
// plataforma a plataforma.
package scheduling

import (
	"math"
	"time"

	"github.com/vfg2006/campaign-manager-api/internal/catalog"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

// defaultPostTime é o horário usado quando nenhuma preferência está disponível
const defaultPostTime = "12:00"

// Rand é a fonte de aleatoriedade do gerador. *math/rand.Rand satisfaz a
// interface; testes injetam uma fonte com seed fixa para saída reprodutível.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type Generator interface {
	Generate(campaign *domain.Campaign, businessContext domain.BusinessContext, scheduleConfig domain.ScheduleConfig) []domain.ContentSlot
}

type Service struct {
	rng Rand
}

func NewService(rng Rand) Generator {
	return &Service{rng: rng}
}

// Generate expande a campanha em slots de conteúdo ordenados por dia.
//
// O laço externo é determinístico; os sorteios (arredondamento estocástico da
// quantidade diária e desempate de plataforma) vêm da fonte injetada. Slots
// cujo conjunto de plataformas elegíveis está saturado no dia são descartados
// permanentemente — não há realocação para outro dia, então o total gerado
// pode ficar abaixo do alvo nominal do tipo de campanha.
//
// businessContext não influencia a agenda; ele acompanha a campanha para o
// serviço de geração de conteúdo, que preenche os posts depois.
func (s *Service) Generate(
	campaign *domain.Campaign,
	businessContext domain.BusinessContext,
	scheduleConfig domain.ScheduleConfig,
) []domain.ContentSlot {
	slots := make([]domain.ContentSlot, 0)

	campaignType := catalog.CampaignType(campaign.Type)
	if campaignType == nil {
		return slots
	}

	modules := catalog.ModulesFor(campaign.Modules)
	if len(modules) == 0 {
		// Campanha sem módulos válidos: agenda vazia, não é erro
		return slots
	}

	postsPerDay := float64(campaignType.PostsPerWeek) / 7.0
	fraction := postsPerDay - math.Floor(postsPerDay)

	loc := scheduleConfig.Location()
	start := scheduleConfig.StartDate.In(loc)
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)

	for day := 0; day < campaignType.DurationDays; day++ {
		date := startDay.AddDate(0, 0, day)

		// Dias excluídos são pulados por inteiro, sem reagendamento
		if scheduleConfig.ExcludesWeekday(date.Weekday()) {
			continue
		}

		// Contador diário por plataforma — o único limite aplicado aqui
		platformPostCounts := make(map[domain.Platform]int)

		// Arredondamento estocástico: a fração vira um post extra com
		// probabilidade igual ao resto, para a cadência semanal fechar na média
		postsToday := int(math.Floor(postsPerDay))
		if fraction > 0 && s.rng.Float64() < fraction {
			postsToday++
		}

		for post := 0; post < postsToday; post++ {
			rotation := day*postsToday + post

			module := modules[rotation%len(modules)]
			if len(module.Patterns) == 0 {
				continue
			}

			pattern := module.Patterns[rotation%len(module.Patterns)]

			candidates := s.availablePlatforms(pattern, platformPostCounts)
			if len(candidates) == 0 {
				// Todas as plataformas do padrão saturadas: slot perdido
				continue
			}

			platform := candidates[s.rng.Intn(len(candidates))]
			platformPostCounts[platform]++

			slots = append(slots, domain.ContentSlot{
				Date:        date,
				Time:        pickTime(pattern, platform, scheduleConfig, post),
				Platform:    platform,
				ModuleID:    module.ID,
				ContentType: pattern.Type,
				Template:    pattern.Template,
			})
		}
	}

	return slots
}

// availablePlatforms filtra as plataformas do padrão para as que ainda têm
// capacidade no dia, segundo o MaxPerDay da regra da plataforma
func (s *Service) availablePlatforms(
	pattern domain.ContentPattern,
	counts map[domain.Platform]int,
) []domain.Platform {
	available := make([]domain.Platform, 0, len(pattern.Platforms))

	for _, p := range pattern.Platforms {
		rule := catalog.PlatformRule(p)
		if rule == nil {
			continue
		}

		if counts[p] < rule.MaxPerDay {
			available = append(available, p)
		}
	}

	return available
}

// pickTime monta o pool de horários em ordem de prioridade — horário do
// padrão, horários da plataforma, preferências do usuário — e indexa pelo
// número do post no dia
func pickTime(
	pattern domain.ContentPattern,
	platform domain.Platform,
	scheduleConfig domain.ScheduleConfig,
	post int,
) string {
	pool := make([]string, 0, 1+len(scheduleConfig.PreferredTimes))
	pool = append(pool, pattern.BestTime)

	if rule := catalog.PlatformRule(platform); rule != nil {
		pool = append(pool, rule.BestTimes...)
	}

	pool = append(pool, scheduleConfig.PreferredTimes...)

	times := make([]string, 0, len(pool))
	for _, t := range pool {
		if t != "" {
			times = append(times, t)
		}
	}

	if len(times) == 0 {
		return defaultPostTime
	}

	return times[post%len(times)]
}
