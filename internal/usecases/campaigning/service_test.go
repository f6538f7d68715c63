package campaigning

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	queuemocks "github.com/vfg2006/campaign-manager-api/infrastructure/queue/mocks"
	"github.com/vfg2006/campaign-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-manager-api/internal/catalog"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// stubGenerator devolve uma agenda fixa, sem sorteio
type stubGenerator struct {
	slots []domain.ContentSlot
}

func (g stubGenerator) Generate(_ *domain.Campaign, _ domain.BusinessContext, _ domain.ScheduleConfig) []domain.ContentSlot {
	return g.slots
}

// stubTxRunner executa a função diretamente, sem banco
type stubTxRunner struct {
	err error
}

func (r stubTxRunner) RunInTransaction(_ context.Context, fn func(*sql.Tx) error) error {
	if r.err != nil {
		return r.err
	}
	return fn(nil)
}

func fixedClock() func() time.Time {
	moment := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	return func() time.Time { return moment }
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)

	service := &Service{
		campaignRepo: mockCampaignRepo,
		now:          fixedClock(),
	}

	tests := []struct {
		name     string
		request  *domain.CreateCampaignRequest
		setup    func()
		wantErr  error
		validate func(t *testing.T, campaign *domain.Campaign)
	}{
		{
			name: "Tipo de campanha desconhecido deve falhar",
			request: &domain.CreateCampaignRequest{
				Name: "Campanha inválida",
				Type: "tipo_inexistente",
			},
			setup:   func() {},
			wantErr: ErrInvalidCampaignType,
		},
		{
			name: "Campanha sem módulos deve herdar os módulos do tipo",
			request: &domain.CreateCampaignRequest{
				Name:      "Visibilidade local",
				Type:      catalog.CampaignTypeLocalVisibility,
				Platforms: []domain.Platform{domain.PlatformFacebook, domain.PlatformGMB},
			},
			setup: func() {
				mockCampaignRepo.EXPECT().CreateCampaign(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign) {
				campaignType := catalog.CampaignType(catalog.CampaignTypeLocalVisibility)
				assert.Equal(t, domain.CampaignStatusDraft, campaign.Status)
				assert.Equal(t, campaignType.Modules, campaign.Modules)
				assert.Equal(t, campaignType.TotalPosts, campaign.PostsRemaining)
				assert.Equal(t, "USR001", campaign.UserID)
				assert.NotEmpty(t, campaign.ID)
				assert.Nil(t, campaign.StartedAt)
			},
		},
		{
			name: "Módulos explícitos devem ser preservados",
			request: &domain.CreateCampaignRequest{
				Name:    "Autoridade",
				Type:    catalog.CampaignTypeAuthorityBuilder,
				Modules: []string{catalog.ModuleThoughtLeadership},
			},
			setup: func() {
				mockCampaignRepo.EXPECT().CreateCampaign(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign) {
				assert.Equal(t, []string{catalog.ModuleThoughtLeadership}, campaign.Modules)
			},
		},
		{
			name: "Falha no banco deve propagar erro de operação",
			request: &domain.CreateCampaignRequest{
				Name: "Campanha",
				Type: catalog.CampaignTypeLocalVisibility,
			},
			setup: func() {
				mockCampaignRepo.EXPECT().CreateCampaign(gomock.Any()).Return(assert.AnError)
			},
			wantErr: ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			campaign, err := service.Create("USR001", tt.request)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, campaign)
				return
			}

			assert.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, campaign)
			}
		})
	}
}

func TestService_Activate(t *testing.T) {
	startedAt := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	draftCampaign := func() *domain.Campaign {
		return &domain.Campaign{
			ID:     "CMP001",
			UserID: "USR001",
			Type:   catalog.CampaignTypeLocalVisibility,
			Status: domain.CampaignStatusDraft,
		}
	}

	slots := []domain.ContentSlot{
		{
			Date:        startedAt,
			Time:        "09:00",
			Platform:    domain.PlatformFacebook,
			ModuleID:    catalog.ModuleLocalSEO,
			ContentType: "educational",
		},
		{
			Date:        startedAt.AddDate(0, 0, 1),
			Time:        "17:00",
			Platform:    domain.PlatformGMB,
			ModuleID:    catalog.ModuleReviewPrompts,
			ContentType: "review_request",
		},
	}

	tests := []struct {
		name    string
		setup   func(campaignRepo *mocks.MockCampaignRepository, postRepo *mocks.MockPostRepository, publisher *queuemocks.MockPublisher)
		txErr   error
		wantErr error
	}{
		{
			name: "Campanha inexistente deve falhar",
			setup: func(campaignRepo *mocks.MockCampaignRepository, _ *mocks.MockPostRepository, _ *queuemocks.MockPublisher) {
				campaignRepo.EXPECT().GetCampaignByID("CMP001").Return(nil, nil)
			},
			wantErr: ErrCampaignNotFound,
		},
		{
			name: "Campanha já ativa não pode ser reativada",
			setup: func(campaignRepo *mocks.MockCampaignRepository, _ *mocks.MockPostRepository, _ *queuemocks.MockPublisher) {
				campaign := draftCampaign()
				campaign.Status = domain.CampaignStatusActive
				campaignRepo.EXPECT().GetCampaignByID("CMP001").Return(campaign, nil)
			},
			wantErr: ErrCampaignNotDraft,
		},
		{
			name: "Ativação persiste posts e status na mesma transação",
			setup: func(campaignRepo *mocks.MockCampaignRepository, postRepo *mocks.MockPostRepository, publisher *queuemocks.MockPublisher) {
				campaignRepo.EXPECT().GetCampaignByID("CMP001").Return(draftCampaign(), nil)

				postRepo.EXPECT().
					InsertPosts(gomock.Any(), gomock.Len(2)).
					Return(nil)

				endsAt := startedAt.AddDate(0, 0, 30)
				campaignRepo.EXPECT().
					MarkCampaignActivated(gomock.Any(), "CMP001", startedAt, endsAt, 2).
					Return(nil)

				publisher.EXPECT().
					PublishCampaignActivated(gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "Falha na transação não publica evento",
			setup: func(campaignRepo *mocks.MockCampaignRepository, _ *mocks.MockPostRepository, _ *queuemocks.MockPublisher) {
				campaignRepo.EXPECT().GetCampaignByID("CMP001").Return(draftCampaign(), nil)
			},
			txErr:   assert.AnError,
			wantErr: ErrActivationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
			mockPostRepo := mocks.NewMockPostRepository(ctrl)
			mockPublisher := queuemocks.NewMockPublisher(ctrl)

			tt.setup(mockCampaignRepo, mockPostRepo, mockPublisher)

			service := &Service{
				campaignRepo: mockCampaignRepo,
				postRepo:     mockPostRepo,
				generator:    stubGenerator{slots: slots},
				txRunner:     stubTxRunner{err: tt.txErr},
				publisher:    mockPublisher,
				now:          fixedClock(),
			}

			err := service.Activate(context.Background(), "CMP001")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_StatusTransitions(t *testing.T) {
	tests := []struct {
		name     string
		action   func(service *Service) error
		status   domain.CampaignStatus
		affected int64
		repoErr  error
		wantErr  error
	}{
		{
			name:     "Pause atualiza o status para paused",
			action:   func(service *Service) error { return service.Pause("CMP001") },
			status:   domain.CampaignStatusPaused,
			affected: 1,
		},
		{
			name:     "Resume atualiza o status para active",
			action:   func(service *Service) error { return service.Resume("CMP001") },
			status:   domain.CampaignStatusActive,
			affected: 1,
		},
		{
			name:     "Complete atualiza o status para completed",
			action:   func(service *Service) error { return service.Complete("CMP001") },
			status:   domain.CampaignStatusCompleted,
			affected: 1,
		},
		{
			name:     "Campanha inexistente deve falhar",
			action:   func(service *Service) error { return service.Pause("CMP001") },
			status:   domain.CampaignStatusPaused,
			affected: 0,
			wantErr:  ErrCampaignNotFound,
		},
		{
			name:     "Falha no banco deve propagar erro de operação",
			action:   func(service *Service) error { return service.Complete("CMP001") },
			status:   domain.CampaignStatusCompleted,
			repoErr:  assert.AnError,
			wantErr:  ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
			mockCampaignRepo.EXPECT().
				UpdateCampaignStatus("CMP001", tt.status).
				Return(tt.affected, tt.repoErr)

			service := &Service{
				campaignRepo: mockCampaignRepo,
				now:          fixedClock(),
			}

			err := tt.action(service)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	service := &Service{campaignRepo: mockCampaignRepo, now: fixedClock()}

	t.Run("Campanha existente é retornada", func(t *testing.T) {
		expected := &domain.Campaign{ID: "CMP001"}
		mockCampaignRepo.EXPECT().GetCampaignByID("CMP001").Return(expected, nil)

		campaign, err := service.Get("CMP001")

		assert.NoError(t, err)
		assert.Equal(t, expected, campaign)
	})

	t.Run("Campanha inexistente devolve not found", func(t *testing.T) {
		mockCampaignRepo.EXPECT().GetCampaignByID("CMP404").Return(nil, nil)

		campaign, err := service.Get("CMP404")

		assert.ErrorIs(t, err, ErrCampaignNotFound)
		assert.Nil(t, campaign)
	})
}

func TestCombineDateTime(t *testing.T) {
	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		time     string
		expected time.Time
	}{
		{
			name:     "Horário válido é combinado com a data",
			time:     "09:30",
			expected: time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC),
		},
		{
			name:     "Horário malformado cai no meio-dia",
			time:     "abc",
			expected: time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "Horário vazio cai no meio-dia",
			time:     "",
			expected: time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := combineDateTime(date, tt.time, time.UTC)
			assert.Equal(t, tt.expected, result)
		})
	}
}
