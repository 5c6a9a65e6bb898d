package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-scaler-api/internal/domain"
	"github.com/vfg2006/ad-scaler-api/internal/usecases/suggesting"
	"github.com/vfg2006/ad-scaler-api/pkg/apiErrors"
)

// ListSuggestions lista as sugestões de uma conta, com filtro opcional de status
func ListSuggestions(service suggesting.Lifecycle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := r.URL.Query().Get("account_id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro account_id é obrigatório", nil)
			return
		}

		var status *domain.SuggestionStatus
		if rawStatus := r.URL.Query().Get("status"); rawStatus != "" {
			parsed := domain.SuggestionStatus(rawStatus)
			if parsed != domain.SuggestionStatusPending && !parsed.IsTerminal() {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status inválido. Valores aceitos: pending, applied, rejected", nil)
				return
			}
			status = &parsed
		}

		suggestions, err := service.ListByAccount(accountID, status)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar sugestões", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(suggestions); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetSuggestion retorna uma sugestão pelo ID
func GetSuggestion(service suggesting.Lifecycle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da sugestão não fornecido", nil)
			return
		}

		suggestion, err := service.Get(id)
		if err != nil {
			handleSuggestionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(suggestion); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ApproveSuggestion aplica a transição pending -> applied
func ApproveSuggestion(service suggesting.Lifecycle) http.HandlerFunc {
	return resolveSuggestion(service.Approve)
}

// RejectSuggestion aplica a transição pending -> rejected
func RejectSuggestion(service suggesting.Lifecycle) http.HandlerFunc {
	return resolveSuggestion(service.Reject)
}

func resolveSuggestion(resolve func(id string) (*domain.Suggestion, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da sugestão não fornecido", nil)
			return
		}

		suggestion, err := resolve(id)
		if err != nil {
			handleSuggestionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(suggestion); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

func handleSuggestionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, suggesting.ErrSuggestionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSuggestionNotFound, "Sugestão não encontrada", nil)

	case errors.Is(err, suggesting.ErrSuggestionNotPending):
		apiErrors.WriteError(w, apiErrors.ErrSuggestionNotPending, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar sugestão", nil)
	}
}
