// Package campaigning controla o ciclo de vida das campanhas:
// draft -> active -> paused/resumed -> completed. A ativação é a única
// transição com efeito colateral — ela invoca o gerador de agenda e persiste
// os posts resultantes.
package campaigning

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/infrastructure/queue"
	"github.com/vfg2006/campaign-manager-api/infrastructure/repository"
	"github.com/vfg2006/campaign-manager-api/internal/catalog"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/scheduling"
	"github.com/vfg2006/campaign-manager-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-manager-api/pkg/utils"
)

// TransactionRunner executa uma função dentro de uma transação do banco.
// *postgres.Connection satisfaz a interface.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

type CampaignService interface {
	Create(userID string, request *domain.CreateCampaignRequest) (*domain.Campaign, error)
	Get(campaignID string) (*domain.Campaign, error)
	ListByUser(userID string) ([]*domain.Campaign, error)
	Activate(ctx context.Context, campaignID string) error
	Pause(campaignID string) error
	Resume(campaignID string) error
	Complete(campaignID string) error
}

type Service struct {
	campaignRepo repository.CampaignRepository
	postRepo     repository.PostRepository
	generator    scheduling.Generator
	txRunner     TransactionRunner
	publisher    queue.Publisher
	now          func() time.Time
}

func NewService(
	campaignRepo repository.CampaignRepository,
	postRepo repository.PostRepository,
	generator scheduling.Generator,
	txRunner TransactionRunner,
	publisher queue.Publisher,
) CampaignService {
	return &Service{
		campaignRepo: campaignRepo,
		postRepo:     postRepo,
		generator:    generator,
		txRunner:     txRunner,
		publisher:    publisher,
		now:          time.Now,
	}
}

// WithClock troca a fonte de tempo do serviço. Usado em testes.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create valida o tipo contra o catálogo e persiste a campanha em draft.
// PostsRemaining nasce com o alvo nominal do tipo; o valor real só é
// conhecido na ativação, quando a agenda é gerada.
func (s *Service) Create(userID string, request *domain.CreateCampaignRequest) (*domain.Campaign, error) {
	campaignType := catalog.CampaignType(request.Type)
	if campaignType == nil {
		return nil, NewCampaignError(ErrInvalidCampaignType, apiErrors.ErrInvalidCampaignType, "Tipo de campanha desconhecido: "+request.Type)
	}

	campaignID, err := utils.GenerateID()
	if err != nil {
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador da campanha")
	}

	// Módulos são opcionais; o padrão é o conjunto do tipo de campanha.
	// Ids desconhecidos são descartados depois, pelo catálogo.
	modules := request.Modules
	if len(modules) == 0 {
		modules = campaignType.Modules
	}

	now := s.now()
	campaign := &domain.Campaign{
		ID:              campaignID,
		UserID:          userID,
		Name:            request.Name,
		Type:            request.Type,
		Status:          domain.CampaignStatusDraft,
		Platforms:       request.Platforms,
		Modules:         modules,
		BusinessContext: request.BusinessContext,
		ScheduleConfig:  request.ScheduleConfig,
		PostsPublished:  0,
		PostsRemaining:  campaignType.TotalPosts,
		LeadsGenerated:  0,
		EngagementRate:  0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.campaignRepo.CreateCampaign(campaign); err != nil {
		logrus.WithError(err).Error("campaigns: failed to persist new campaign")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar campanha no banco de dados")
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id":   campaign.ID,
		"campaign_type": campaign.Type,
		"user_id":       userID,
	}).Info("campaigns: campaign created in draft")

	return campaign, nil
}

func (s *Service) Get(campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetCampaignByID(campaignID)
	if err != nil {
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao buscar campanha no banco de dados")
	}

	if campaign == nil {
		return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "Campanha não encontrada")
	}

	return campaign, nil
}

func (s *Service) ListByUser(userID string) ([]*domain.Campaign, error) {
	campaigns, err := s.campaignRepo.ListCampaignsByUser(userID)
	if err != nil {
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar campanhas no banco de dados")
	}

	return campaigns, nil
}

// Activate gera a agenda da campanha e grava posts + status em uma única
// transação, evitando o estado intermediário "posts agendados em campanha
// draft". Só campanhas em draft podem ser ativadas; a agenda nunca é
// regenerada depois disso.
func (s *Service) Activate(ctx context.Context, campaignID string) error {
	campaign, err := s.campaignRepo.GetCampaignByID(campaignID)
	if err != nil {
		return NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao buscar campanha no banco de dados")
	}

	if campaign == nil {
		return NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "Campanha não encontrada")
	}

	if campaign.Status != domain.CampaignStatusDraft {
		return NewCampaignErrorWithID(ErrCampaignNotDraft, apiErrors.ErrInvalidCampaignState, campaignID, "Campanha já foi ativada")
	}

	campaignType := catalog.CampaignType(campaign.Type)
	if campaignType == nil {
		return NewCampaignErrorWithID(ErrInvalidCampaignType, apiErrors.ErrInvalidCampaignType, campaignID, "Tipo de campanha desconhecido: "+campaign.Type)
	}

	startedAt := s.now()
	endsAt := startedAt.AddDate(0, 0, campaignType.DurationDays)

	// A data de início configurada na criação é substituída pelo momento da
	// ativação
	scheduleConfig := campaign.ScheduleConfig
	scheduleConfig.StartDate = startedAt

	slots := s.generator.Generate(campaign, campaign.BusinessContext, scheduleConfig)
	if len(slots) == 0 {
		// Agenda vazia é válida (ex.: todos os dias excluídos), mas vale o
		// aviso — o chamador pode sinalizar a campanha ao usuário
		logrus.WithField("campaign_id", campaignID).Warn("campaigns: activation produced an empty schedule")
	}

	posts, err := s.buildPosts(campaign, slots, scheduleConfig, startedAt)
	if err != nil {
		return err
	}

	err = s.txRunner.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.postRepo.InsertPosts(tx, posts); err != nil {
			return errors.Wrap(err, "inserting scheduled posts")
		}

		// PostsRemaining passa a refletir o total realmente gerado, que pode
		// ficar abaixo do alvo nominal por causa de slots descartados
		if err := s.campaignRepo.MarkCampaignActivated(tx, campaignID, startedAt, endsAt, len(posts)); err != nil {
			return errors.Wrap(err, "marking campaign as active")
		}

		return nil
	})
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Error("campaigns: activation transaction failed")
		return NewCampaignErrorWithID(ErrActivationFailed, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao persistir ativação da campanha")
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id":  campaignID,
		"posts":        len(posts),
		"nominal_goal": campaignType.TotalPosts,
		"ends_at":      endsAt.Format(time.DateOnly),
	}).Info("campaigns: campaign activated")

	s.notifyActivation(campaign, posts, startedAt, endsAt)

	return nil
}

// Pause suspende a campanha. Os posts agendados não são tocados — pausa e
// retomada nunca recalculam a agenda.
func (s *Service) Pause(campaignID string) error {
	return s.updateStatus(campaignID, domain.CampaignStatusPaused)
}

func (s *Service) Resume(campaignID string) error {
	return s.updateStatus(campaignID, domain.CampaignStatusActive)
}

func (s *Service) Complete(campaignID string) error {
	return s.updateStatus(campaignID, domain.CampaignStatusCompleted)
}

func (s *Service) updateStatus(campaignID string, status domain.CampaignStatus) error {
	affected, err := s.campaignRepo.UpdateCampaignStatus(campaignID, status)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"status":      status,
		}).Error("campaigns: failed to update campaign status")
		return NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao atualizar status da campanha")
	}

	if affected == 0 {
		return NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "Campanha não encontrada")
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"status":      status,
	}).Info("campaigns: campaign status updated")

	return nil
}

// buildPosts converte os slots gerados em registros de post agendado. O
// conteúdo nasce vazio e é preenchido depois pelo serviço de geração de
// conteúdo.
func (s *Service) buildPosts(
	campaign *domain.Campaign,
	slots []domain.ContentSlot,
	scheduleConfig domain.ScheduleConfig,
	createdAt time.Time,
) ([]*domain.ScheduledPost, error) {
	loc := scheduleConfig.Location()

	posts := make([]*domain.ScheduledPost, 0, len(slots))
	for _, slot := range slots {
		postID, err := utils.GenerateID()
		if err != nil {
			return nil, NewCampaignErrorWithID(ErrGenerateID, apiErrors.ErrInternalServer, campaign.ID, "Falha ao gerar identificador de post")
		}

		posts = append(posts, &domain.ScheduledPost{
			ID:           postID,
			CampaignID:   campaign.ID,
			Platform:     slot.Platform,
			Content:      "",
			ContentType:  slot.ContentType,
			Template:     slot.Template,
			ModuleID:     slot.ModuleID,
			MediaURLs:    []string{},
			ScheduledFor: combineDateTime(slot.Date, slot.Time, loc),
			Status:       domain.PostStatusScheduled,
			CreatedAt:    createdAt,
		})
	}

	return posts, nil
}

func (s *Service) notifyActivation(
	campaign *domain.Campaign,
	posts []*domain.ScheduledPost,
	startedAt, endsAt time.Time,
) {
	postIDs := make([]string, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}

	// Best-effort: a ativação já está persistida; falha na fila não desfaz
	// nada, o publicador também varre a tabela de posts
	err := s.publisher.PublishCampaignActivated(queue.CampaignActivatedEvent{
		CampaignID: campaign.ID,
		UserID:     campaign.UserID,
		PostIDs:    postIDs,
		StartedAt:  startedAt,
		EndsAt:     endsAt,
	})
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaign.ID).Error("campaigns: failed to publish activation event")
	}
}

// combineDateTime junta a data do slot com o horário "HH:MM" no fuso da
// campanha. Horário malformado cai no meio-dia.
func combineDateTime(date time.Time, timeOfDay string, loc *time.Location) time.Time {
	hour, minute := 12, 0

	parts := strings.SplitN(timeOfDay, ":", 2)
	if len(parts) == 2 {
		if h, err := strconv.Atoi(parts[0]); err == nil {
			if m, err := strconv.Atoi(parts[1]); err == nil {
				hour, minute = h, m
			}
		}
	}

	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc)
}
