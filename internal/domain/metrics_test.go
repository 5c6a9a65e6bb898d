package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A direção de comparação de cada métrica é contrato de produto: mudar a
// direção muda o que a análise sugere. Este teste fixa a tabela inteira.
func TestMetricDirections(t *testing.T) {
	expected := map[MetricName]ThresholdDirection{
		MetricImpressions:      TriggerBelow,
		MetricClicks:           TriggerBelow,
		MetricSpend:            TriggerBelow,
		MetricCPM:              TriggerAbove,
		MetricCPC:              TriggerAbove,
		MetricCTR:              TriggerBelow,
		MetricReach:            TriggerBelow,
		MetricFrequency:        TriggerAbove,
		MetricLinkCTR:          TriggerBelow,
		MetricCostPerLinkClick: TriggerAbove,
		MetricCostPerResult:    TriggerAbove,
		MetricROAS:             TriggerBelow,
	}

	assert.Equal(t, expected, MetricDirections)

	// Toda métrica acompanhada precisa ter direção definida
	for _, metric := range AllMetrics {
		_, ok := MetricDirections[metric]
		assert.True(t, ok, "métrica sem direção de comparação: %s", metric)
	}
}

func TestMetricExceedsThreshold(t *testing.T) {
	tests := []struct {
		name      string
		metric    MetricName
		observed  float64
		threshold float64
		expected  bool
	}{
		{"Custo acima do limite dispara", MetricCPM, 60, 50, true},
		{"Custo no limite dispara (inclusivo)", MetricCPM, 50, 50, true},
		{"Custo abaixo do limite não dispara", MetricCPM, 40, 50, false},
		{"Eficiência abaixo do limite dispara", MetricCTR, 0.5, 1.0, true},
		{"Eficiência no limite dispara (inclusivo)", MetricCTR, 1.0, 1.0, true},
		{"Eficiência acima do limite não dispara", MetricCTR, 1.5, 1.0, false},
		{"Métrica desconhecida nunca dispara", MetricName("unknown"), 100, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MetricExceedsThreshold(tt.metric, tt.observed, tt.threshold))
		})
	}
}
