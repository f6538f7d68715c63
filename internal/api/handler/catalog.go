package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/internal/catalog"
	"github.com/vfg2006/campaign-manager-api/pkg/apiErrors"
)

// ListCampaignTypes retorna o catálogo de tipos de campanha disponíveis
func ListCampaignTypes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(catalog.CampaignTypes()); err != nil {
			logrus.Error("Erro ao enviar resposta do catálogo de tipos de campanha:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
