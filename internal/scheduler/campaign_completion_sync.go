package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/infrastructure/repository"
	"github.com/vfg2006/campaign-manager-api/internal/config"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/reporting"
)

// CampaignCompletionSyncConfig representa a configuração do agendador de
// conclusão automática de campanhas
type CampaignCompletionSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CampaignCompletionSyncService encerra campanhas ativas cujo prazo venceu e
// congela a taxa de engajamento final de cada uma
type CampaignCompletionSyncService struct {
	scheduler           *gocron.Scheduler
	config              CampaignCompletionSyncConfig
	campaignRepo        repository.CampaignRepository
	campaignService     campaigning.CampaignService
	statsService        reporting.StatsService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewCampaignCompletionSyncService(
	campaignRepo repository.CampaignRepository,
	campaignService campaigning.CampaignService,
	statsService reporting.StatsService,
	appConfig *config.Config,
) *CampaignCompletionSyncService {
	syncConfig := CampaignCompletionSyncConfig{
		CronSchedule: appConfig.CampaignCompletionSync.CronSchedule,
		SyncEnabled:  appConfig.CampaignCompletionSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de conclusão de campanhas carregada")

	return &CampaignCompletionSyncService{
		scheduler:       scheduler,
		config:          syncConfig,
		campaignRepo:    campaignRepo,
		campaignService: campaignService,
		statsService:    statsService,
		syncRunning:     false,
	}
}

// Start inicia o agendador
func (s *CampaignCompletionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Conclusão automática de campanhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de conclusão de campanhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncExpiredCampaigns()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar conclusão de campanhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de conclusão de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncExpiredCampaigns varre as campanhas ativas com prazo vencido e marca
// cada uma como concluída, gravando antes a taxa de engajamento final
func (s *CampaignCompletionSyncService) syncExpiredCampaigns() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Conclusão de campanhas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando varredura de campanhas com prazo vencido")

	expired, err := s.campaignRepo.ListActiveCampaignsEndedBefore(startTime)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar campanhas com prazo vencido")
		return
	}

	if len(expired) == 0 {
		logrus.Info("Nenhuma campanha com prazo vencido encontrada")
		return
	}

	completed := 0
	for _, campaign := range expired {
		if s.completeCampaign(campaign.ID) {
			completed++
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"expired":   len(expired),
		"completed": completed,
	}).Info("Varredura de conclusão de campanhas finalizada")

	s.lastSyncCompletedAt = time.Now()
}

// completeCampaign grava a taxa de engajamento final e conclui a campanha.
// Falha no cálculo de estatísticas não impede a conclusão.
func (s *CampaignCompletionSyncService) completeCampaign(campaignID string) bool {
	stats, err := s.statsService.ComputeStats(campaignID)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Error("Erro ao calcular estatísticas finais da campanha")
	} else if err := s.campaignRepo.UpdateCampaignEngagementRate(campaignID, stats.EngagementRate); err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Error("Erro ao gravar taxa de engajamento final da campanha")
	}

	if err := s.campaignService.Complete(campaignID); err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Error("Erro ao concluir campanha com prazo vencido")
		return false
	}

	logrus.WithField("campaign_id", campaignID).Info("Campanha concluída automaticamente")
	return true
}

// TriggerManualSync inicia manualmente uma varredura de conclusão
func (s *CampaignCompletionSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Conclusão de campanhas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando varredura manual de conclusão de campanhas")
	go s.syncExpiredCampaigns()
}

// GetStatus retorna o status atual do agendador
func (s *CampaignCompletionSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
