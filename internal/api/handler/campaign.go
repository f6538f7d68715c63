package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-manager-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-manager-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CreateCampaign cria uma campanha em rascunho para o usuário autenticado
func CreateCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var request domain.CreateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if request.Name == "" || request.Type == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome e tipo da campanha são obrigatórios", nil)
			return
		}

		campaign, err := service.Create(userClaims.UserID, &request)
		if err != nil {
			writeCampaignError(w, err, "Erro ao criar campanha")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			logrus.Error("Erro ao enviar resposta da campanha criada:", err)
		}
	}
}

// ListCampaigns lista as campanhas do usuário autenticado
func ListCampaigns(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		campaigns, err := service.ListByUser(userClaims.UserID)
		if err != nil {
			writeCampaignError(w, err, "Erro ao listar campanhas")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			logrus.Error("Erro ao enviar resposta da listagem de campanhas:", err)
		}
	}
}

// GetCampaign retorna uma campanha pelo ID
func GetCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não especificado", nil)
			return
		}

		campaign, err := service.Get(campaignID)
		if err != nil {
			writeCampaignError(w, err, "Erro ao buscar campanha")
			return
		}

		if !canAccessCampaign(r, campaign) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar esta campanha", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			logrus.Error("Erro ao enviar resposta da campanha:", err)
		}
	}
}

// ActivateCampaign gera a agenda de posts e ativa a campanha
func ActivateCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não especificado", nil)
			return
		}

		if !ownsCampaign(r, service, campaignID, w) {
			return
		}

		if err := service.Activate(r.Context(), campaignID); err != nil {
			writeCampaignError(w, err, "Erro ao ativar campanha")
			return
		}

		writeActionResponse(w, campaignID, domain.CampaignStatusActive, "Campanha ativada com sucesso")
	}
}

// PauseCampaign suspende a campanha sem tocar nos posts agendados
func PauseCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return campaignStatusAction(service, service.Pause, domain.CampaignStatusPaused, "Campanha pausada com sucesso")
}

// ResumeCampaign retoma uma campanha pausada
func ResumeCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return campaignStatusAction(service, service.Resume, domain.CampaignStatusActive, "Campanha retomada com sucesso")
}

// CompleteCampaign encerra a campanha manualmente
func CompleteCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return campaignStatusAction(service, service.Complete, domain.CampaignStatusCompleted, "Campanha concluída com sucesso")
}

// GetCampaignStats calcula as estatísticas agregadas da campanha
func GetCampaignStats(campaignService campaigning.CampaignService, statsService reporting.StatsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não especificado", nil)
			return
		}

		if !ownsCampaign(r, campaignService, campaignID, w) {
			return
		}

		stats, err := statsService.ComputeStats(campaignID)
		if err != nil {
			logrus.Error("Erro ao calcular estatísticas da campanha:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular estatísticas da campanha", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logrus.Error("Erro ao enviar resposta das estatísticas:", err)
		}
	}
}

// campaignStatusAction fatora o padrão comum das transições de status simples
func campaignStatusAction(
	service campaigning.CampaignService,
	action func(campaignID string) error,
	status domain.CampaignStatus,
	message string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não especificado", nil)
			return
		}

		if !ownsCampaign(r, service, campaignID, w) {
			return
		}

		if err := action(campaignID); err != nil {
			writeCampaignError(w, err, "Erro ao atualizar status da campanha")
			return
		}

		writeActionResponse(w, campaignID, status, message)
	}
}

// ownsCampaign garante que a campanha pertence ao usuário autenticado.
// Administradores e supervisores acessam qualquer campanha.
func ownsCampaign(r *http.Request, service campaigning.CampaignService, campaignID string, w http.ResponseWriter) bool {
	campaign, err := service.Get(campaignID)
	if err != nil {
		writeCampaignError(w, err, "Erro ao buscar campanha")
		return false
	}

	if !canAccessCampaign(r, campaign) {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar esta campanha", nil)
		return false
	}

	return true
}

func canAccessCampaign(r *http.Request, campaign *domain.Campaign) bool {
	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		return false
	}

	if userClaims.UserRoleID == middleware.RoleAdmin || userClaims.UserRoleID == middleware.RoleSupervisor {
		return true
	}

	return campaign.UserID == userClaims.UserID
}

func writeActionResponse(w http.ResponseWriter, campaignID string, status domain.CampaignStatus, message string) {
	response := domain.CampaignActionResponse{
		ID:      campaignID,
		Status:  status,
		Message: message,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logrus.Error("Erro ao enviar resposta da ação de campanha:", err)
	}
}

// writeCampaignError traduz erros do caso de uso para a resposta padronizada
func writeCampaignError(w http.ResponseWriter, err error, fallbackMessage string) {
	if campaignErr, ok := err.(*campaigning.CampaignError); ok {
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Details, nil)
		return
	}

	logrus.Error(fallbackMessage+":", err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
}
