package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-scaler-api/infrastructure/repository"
	"github.com/vfg2006/ad-scaler-api/internal/domain"
	"github.com/vfg2006/ad-scaler-api/pkg/apiErrors"
)

type UpdateSettingsRequest struct {
	Thresholds         map[domain.MetricName]float64 `json:"thresholds"`
	ScalePercent       *float64                      `json:"scale_percent"`
	InitScaleDay       *int                          `json:"init_scale_day"`
	RecurScaleDay      *int                          `json:"recur_scale_day"`
	MinMetricsExceeded int                           `json:"min_metrics_exceeded"`
	Note               *string                       `json:"note"`
}

// GetAccountSettings retorna a configuração de análise da conta; sem
// configuração salva, devolve os defaults
func GetAccountSettings(settingsRepo repository.AccountSettingsRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		settings, err := settingsRepo.GetByAccountID(accountID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar configuração da conta", nil)
			return
		}

		if settings == nil {
			settings = domain.DefaultAccountSettings(accountID)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(settings); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateAccountSettings grava a configuração de análise da conta
func UpdateAccountSettings(
	accountRepo repository.AccountRepository,
	settingsRepo repository.AccountSettingsRepository,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		account, err := accountRepo.GetAccountByID(accountID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta", nil)
			return
		}
		if account == nil {
			apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", nil)
			return
		}

		var req UpdateSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := validateSettings(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		settings := &domain.AccountSettings{
			AccountID:          accountID,
			Thresholds:         req.Thresholds,
			ScalePercent:       req.ScalePercent,
			InitScaleDay:       req.InitScaleDay,
			RecurScaleDay:      req.RecurScaleDay,
			MinMetricsExceeded: req.MinMetricsExceeded,
			Note:               req.Note,
		}
		if settings.Thresholds == nil {
			settings.Thresholds = map[domain.MetricName]float64{}
		}

		if err := settingsRepo.SaveOrUpdate(settings); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar configuração da conta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(settings); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

func validateSettings(req *UpdateSettingsRequest) error {
	for metric := range req.Thresholds {
		if _, ok := domain.MetricDirections[metric]; !ok {
			return &settingsValidationError{field: "thresholds", reason: "métrica desconhecida: " + string(metric)}
		}
	}

	if req.ScalePercent != nil && *req.ScalePercent <= 0 {
		return &settingsValidationError{field: "scale_percent", reason: "deve ser maior que zero"}
	}

	if req.InitScaleDay != nil && *req.InitScaleDay < 0 {
		return &settingsValidationError{field: "init_scale_day", reason: "não pode ser negativo"}
	}

	if req.RecurScaleDay != nil && *req.RecurScaleDay < 0 {
		return &settingsValidationError{field: "recur_scale_day", reason: "não pode ser negativo"}
	}

	if req.MinMetricsExceeded < 0 {
		return &settingsValidationError{field: "min_metrics_exceeded", reason: "não pode ser negativo"}
	}

	return nil
}

type settingsValidationError struct {
	field  string
	reason string
}

func (e *settingsValidationError) Error() string {
	return e.field + ": " + e.reason
}
