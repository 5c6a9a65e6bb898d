package notifier

import (
	"bytes"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-scaler-api/internal/config"
	"github.com/vfg2006/ad-scaler-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Notifier avisa um canal externo sobre uma nova sugestão. A entrega é melhor
// esforço: implementações nunca devem propagar erro para o chamador — falha de
// notificação não pode desfazer nem falhar a criação da sugestão.
type Notifier interface {
	NotifySuggestionCreated(suggestion *domain.Suggestion)
}

// WebhookNotifier envia a sugestão como JSON para um webhook configurado.
// Sem URL configurada, vira um no-op silencioso.
type WebhookNotifier struct {
	webhookURL string
	httpClient *http.Client
}

func NewWebhookNotifier(cfg *config.Config) *WebhookNotifier {
	return &WebhookNotifier{
		webhookURL: cfg.Notifier.WebhookURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Notifier.TimeoutSeconds) * time.Second,
		},
	}
}

func (n *WebhookNotifier) NotifySuggestionCreated(suggestion *domain.Suggestion) {
	if n.webhookURL == "" {
		return
	}

	payload, err := json.Marshal(suggestion)
	if err != nil {
		logrus.WithError(err).Error("Erro ao serializar sugestão para notificação")
		return
	}

	resp, err := n.httpClient.Post(n.webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"suggestion_id": suggestion.ID,
			"error":         err.Error(),
		}).Warn("Falha ao notificar criação de sugestão")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		logrus.WithFields(logrus.Fields{
			"suggestion_id": suggestion.ID,
			"status_code":   resp.StatusCode,
		}).Warn("Webhook de notificação respondeu com erro")
		return
	}

	logrus.WithField("suggestion_id", suggestion.ID).Debug("Notificação de sugestão enviada")
}
