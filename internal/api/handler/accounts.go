package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-scaler-api/infrastructure/repository"
	"github.com/vfg2006/ad-scaler-api/internal/domain"
	"github.com/vfg2006/ad-scaler-api/pkg/apiErrors"
)

// ListAdAccounts lista as contas de anúncios gerenciadas, com filtro opcional
// de status (?status=ACTIVE)
func ListAdAccounts(accountRepo repository.AccountRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var statusFilter []domain.AdAccountStatus
		if rawStatus := r.URL.Query().Get("status"); rawStatus != "" {
			statusFilter = append(statusFilter, domain.AdAccountStatus(rawStatus))
		}

		accounts, err := accountRepo.ListAccounts(statusFilter)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar contas", nil)
			return
		}

		if accounts == nil {
			accounts = []*domain.AdAccount{}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
