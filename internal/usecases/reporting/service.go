// Package reporting agrega os posts persistidos de uma campanha em
// contadores de desempenho. Leitura pura: os contadores da campanha em si
// são atualizados pelo publicador externo e pelo sync de conclusão.
package reporting

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-manager-api/infrastructure/repository"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/pkg/utils"
)

type StatsService interface {
	ComputeStats(campaignID string) (*domain.CampaignStats, error)
}

type Service struct {
	postRepo repository.PostRepository
}

func NewService(postRepo repository.PostRepository) StatsService {
	return &Service{
		postRepo: postRepo,
	}
}

// ComputeStats reduz os posts da campanha em contadores por status e, para
// os publicados, soma engajamento e impressões. Posts sem payload de
// engajamento contam como zero. Só erro de I/O do repositório propaga.
func (s *Service) ComputeStats(campaignID string) (*domain.CampaignStats, error) {
	posts, err := s.postRepo.ListPostsByCampaign(campaignID)
	if err != nil {
		return nil, errors.Wrap(err, "listing posts for campaign stats")
	}

	stats := &domain.CampaignStats{}

	for _, post := range posts {
		switch post.Status {
		case domain.PostStatusPublished:
			stats.PostsPublished++

			if post.Engagement != nil {
				stats.TotalEngagement += post.Engagement.Likes + post.Engagement.Comments + post.Engagement.Shares
				stats.TotalImpressions += post.Engagement.Impressions
			}
		case domain.PostStatusScheduled:
			stats.PostsScheduled++
		case domain.PostStatusFailed:
			stats.PostsFailed++
		}
	}

	// Sem impressões a taxa fica em zero — nunca divide por zero
	if stats.TotalImpressions > 0 {
		rate := float64(stats.TotalEngagement) / float64(stats.TotalImpressions) * 100
		stats.EngagementRate = utils.RoundWithOneDecimalPlace(rate)
	}

	return stats, nil
}
