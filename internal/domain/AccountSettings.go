package domain

import (
	"time"
)

const defaultMinMetricsExceeded = 1

// AccountSettings é a configuração de análise por conta de anúncios.
// Limiar ausente no mapa significa "métrica ignorada".
type AccountSettings struct {
	AccountID string `json:"account_id"`

	// Thresholds mapeia métrica -> limite configurado. A direção da
	// comparação é fixa por métrica (ver MetricDirections).
	Thresholds map[MetricName]float64 `json:"thresholds"`

	// ScalePercent é o percentual de aumento de orçamento proposto nas
	// sugestões. Sem valor configurado a análise não produz sugestões.
	ScalePercent *float64 `json:"scale_percent"`

	// InitScaleDay: dias após o início do ad set antes da primeira sugestão.
	// RecurScaleDay: dias após a última aprovação antes da próxima sugestão.
	// Valores ausentes deixam a janela sempre aberta.
	InitScaleDay  *int `json:"init_scale_day"`
	RecurScaleDay *int `json:"recur_scale_day"`

	// MinMetricsExceeded é o número mínimo de métricas violadas para criar
	// uma sugestão. Zero ou ausente equivale a 1.
	MinMetricsExceeded int `json:"min_metrics_exceeded"`

	// Note é texto livre propagado para as sugestões criadas.
	Note *string `json:"note"`

	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultAccountSettings é usada quando a conta não tem configuração salva:
// nenhum limiar e nenhum percentual de escala, portanto nenhuma sugestão.
func DefaultAccountSettings(accountID string) *AccountSettings {
	return &AccountSettings{
		AccountID:          accountID,
		Thresholds:         map[MetricName]float64{},
		MinMetricsExceeded: defaultMinMetricsExceeded,
	}
}

// MinExceeded retorna o gatilho mínimo efetivo de métricas violadas.
func (s *AccountSettings) MinExceeded() int {
	if s.MinMetricsExceeded < defaultMinMetricsExceeded {
		return defaultMinMetricsExceeded
	}
	return s.MinMetricsExceeded
}

// Threshold retorna o limite configurado para a métrica, se houver.
func (s *AccountSettings) Threshold(metric MetricName) (float64, bool) {
	if s.Thresholds == nil {
		return 0, false
	}
	value, ok := s.Thresholds[metric]
	return value, ok
}
