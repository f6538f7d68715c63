package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/campaign-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	campaigningmocks "github.com/vfg2006/campaign-manager-api/internal/usecases/campaigning/mocks"
	reportingmocks "github.com/vfg2006/campaign-manager-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestCampaignCompletionSyncService_syncExpiredCampaigns(t *testing.T) {
	tests := []struct {
		name  string
		setup func(
			campaignRepo *repomocks.MockCampaignRepository,
			campaignService *campaigningmocks.MockCampaignService,
			statsService *reportingmocks.MockStatsService,
		)
	}{
		{
			name: "Nenhuma campanha vencida - não faz nada",
			setup: func(campaignRepo *repomocks.MockCampaignRepository, _ *campaigningmocks.MockCampaignService, _ *reportingmocks.MockStatsService) {
				campaignRepo.EXPECT().
					ListActiveCampaignsEndedBefore(gomock.Any()).
					Return([]*domain.Campaign{}, nil)
			},
		},
		{
			name: "Campanha vencida é concluída com taxa de engajamento final",
			setup: func(campaignRepo *repomocks.MockCampaignRepository, campaignService *campaigningmocks.MockCampaignService, statsService *reportingmocks.MockStatsService) {
				campaignRepo.EXPECT().
					ListActiveCampaignsEndedBefore(gomock.Any()).
					Return([]*domain.Campaign{{ID: "CMP001"}}, nil)

				statsService.EXPECT().
					ComputeStats("CMP001").
					Return(&domain.CampaignStats{EngagementRate: 4.2}, nil)

				campaignRepo.EXPECT().
					UpdateCampaignEngagementRate("CMP001", 4.2).
					Return(nil)

				campaignService.EXPECT().
					Complete("CMP001").
					Return(nil)
			},
		},
		{
			name: "Falha nas estatísticas não impede a conclusão",
			setup: func(campaignRepo *repomocks.MockCampaignRepository, campaignService *campaigningmocks.MockCampaignService, statsService *reportingmocks.MockStatsService) {
				campaignRepo.EXPECT().
					ListActiveCampaignsEndedBefore(gomock.Any()).
					Return([]*domain.Campaign{{ID: "CMP001"}}, nil)

				statsService.EXPECT().
					ComputeStats("CMP001").
					Return(nil, assert.AnError)

				campaignService.EXPECT().
					Complete("CMP001").
					Return(nil)
			},
		},
		{
			name: "Falha em uma campanha não interrompe as demais",
			setup: func(campaignRepo *repomocks.MockCampaignRepository, campaignService *campaigningmocks.MockCampaignService, statsService *reportingmocks.MockStatsService) {
				campaignRepo.EXPECT().
					ListActiveCampaignsEndedBefore(gomock.Any()).
					Return([]*domain.Campaign{{ID: "CMP001"}, {ID: "CMP002"}}, nil)

				statsService.EXPECT().
					ComputeStats("CMP001").
					Return(&domain.CampaignStats{EngagementRate: 1.0}, nil)
				campaignRepo.EXPECT().
					UpdateCampaignEngagementRate("CMP001", 1.0).
					Return(nil)
				campaignService.EXPECT().
					Complete("CMP001").
					Return(assert.AnError)

				statsService.EXPECT().
					ComputeStats("CMP002").
					Return(&domain.CampaignStats{EngagementRate: 2.5}, nil)
				campaignRepo.EXPECT().
					UpdateCampaignEngagementRate("CMP002", 2.5).
					Return(nil)
				campaignService.EXPECT().
					Complete("CMP002").
					Return(nil)
			},
		},
		{
			name: "Erro ao listar campanhas encerra a varredura",
			setup: func(campaignRepo *repomocks.MockCampaignRepository, _ *campaigningmocks.MockCampaignService, _ *reportingmocks.MockStatsService) {
				campaignRepo.EXPECT().
					ListActiveCampaignsEndedBefore(gomock.Any()).
					Return(nil, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCampaignRepo := repomocks.NewMockCampaignRepository(ctrl)
			mockCampaignService := campaigningmocks.NewMockCampaignService(ctrl)
			mockStatsService := reportingmocks.NewMockStatsService(ctrl)

			tt.setup(mockCampaignRepo, mockCampaignService, mockStatsService)

			service := &CampaignCompletionSyncService{
				campaignRepo:    mockCampaignRepo,
				campaignService: mockCampaignService,
				statsService:    mockStatsService,
			}

			service.syncExpiredCampaigns()

			assert.False(t, service.syncRunning)
		})
	}
}

func TestCampaignCompletionSyncService_GetStatus(t *testing.T) {
	service := &CampaignCompletionSyncService{
		config: CampaignCompletionSyncConfig{
			CronSchedule: "0 2 * * *",
			SyncEnabled:  true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 2 * * *", status["sync_cron"])
}
