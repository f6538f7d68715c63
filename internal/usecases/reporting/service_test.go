package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_ComputeStats(t *testing.T) {
	tests := []struct {
		name     string
		posts    []*domain.ScheduledPost
		repoErr  error
		expected *domain.CampaignStats
		wantErr  bool
	}{
		{
			name:     "Campanha sem posts devolve contadores zerados",
			posts:    []*domain.ScheduledPost{},
			expected: &domain.CampaignStats{},
		},
		{
			name: "Posts publicados somam engajamento e impressões",
			posts: []*domain.ScheduledPost{
				{
					Status: domain.PostStatusPublished,
					Engagement: &domain.EngagementData{
						Likes:       10,
						Comments:    5,
						Shares:      5,
						Impressions: 400,
					},
				},
				{
					Status: domain.PostStatusPublished,
					Engagement: &domain.EngagementData{
						Likes:       20,
						Comments:    5,
						Shares:      5,
						Impressions: 600,
					},
				},
				{Status: domain.PostStatusScheduled},
				{Status: domain.PostStatusFailed},
			},
			expected: &domain.CampaignStats{
				PostsPublished:   2,
				PostsScheduled:   1,
				PostsFailed:      1,
				TotalEngagement:  50,
				TotalImpressions: 1000,
				EngagementRate:   5.0,
			},
		},
		{
			name: "Post publicado sem payload de engajamento conta como zero",
			posts: []*domain.ScheduledPost{
				{Status: domain.PostStatusPublished},
			},
			expected: &domain.CampaignStats{
				PostsPublished: 1,
			},
		},
		{
			name: "Engajamento sem impressões mantém a taxa em zero",
			posts: []*domain.ScheduledPost{
				{
					Status: domain.PostStatusPublished,
					Engagement: &domain.EngagementData{
						Likes: 30,
					},
				},
			},
			expected: &domain.CampaignStats{
				PostsPublished:  1,
				TotalEngagement: 30,
			},
		},
		{
			name: "Taxa é arredondada para uma casa decimal",
			posts: []*domain.ScheduledPost{
				{
					Status: domain.PostStatusPublished,
					Engagement: &domain.EngagementData{
						Likes:       1,
						Impressions: 3,
					},
				},
			},
			expected: &domain.CampaignStats{
				PostsPublished:   1,
				TotalEngagement:  1,
				TotalImpressions: 3,
				EngagementRate:   33.3,
			},
		},
		{
			name:    "Falha no repositório propaga erro",
			repoErr: assert.AnError,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPostRepo := mocks.NewMockPostRepository(ctrl)
			mockPostRepo.EXPECT().
				ListPostsByCampaign("CMP001").
				Return(tt.posts, tt.repoErr)

			service := NewService(mockPostRepo)

			stats, err := service.ComputeStats("CMP001")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, stats)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, stats)
		})
	}
}
