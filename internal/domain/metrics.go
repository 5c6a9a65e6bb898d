package domain

// MetricName identifica uma métrica de performance acompanhada por ad set.
type MetricName string

const (
	MetricImpressions      MetricName = "impressions"
	MetricClicks           MetricName = "clicks"
	MetricSpend            MetricName = "spend"
	MetricCPM              MetricName = "cpm"
	MetricCPC              MetricName = "cpc"
	MetricCTR              MetricName = "ctr"
	MetricReach            MetricName = "reach"
	MetricFrequency        MetricName = "frequency"
	MetricLinkCTR          MetricName = "link_ctr"
	MetricCostPerLinkClick MetricName = "cost_per_link_click"
	MetricCostPerResult    MetricName = "cost_per_result"
	MetricROAS             MetricName = "roas"
)

// AllMetrics define a ordem estável de avaliação das métricas pela análise.
var AllMetrics = []MetricName{
	MetricImpressions,
	MetricClicks,
	MetricSpend,
	MetricCPM,
	MetricCPC,
	MetricCTR,
	MetricReach,
	MetricFrequency,
	MetricLinkCTR,
	MetricCostPerLinkClick,
	MetricCostPerResult,
	MetricROAS,
}

// ThresholdDirection indica em qual direção o valor observado viola o limite
// configurado para a métrica.
type ThresholdDirection string

const (
	// TriggerAbove dispara quando o valor observado é maior ou igual ao limite
	// (métricas de custo/saturação: estamos pagando caro demais)
	TriggerAbove ThresholdDirection = "above"
	// TriggerBelow dispara quando o valor observado é menor ou igual ao limite
	// (métricas de eficiência/entrega: estamos performando de menos)
	TriggerBelow ThresholdDirection = "below"
)

// MetricDirections é a tabela canônica de direção de comparação por métrica.
// Métricas de custo e fadiga de audiência disparam acima do limite; métricas
// de eficiência e de volume de entrega disparam abaixo.
var MetricDirections = map[MetricName]ThresholdDirection{
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

// MetricExceedsThreshold aplica a direção de comparação da métrica.
// O limite é inclusivo nas duas direções.
func MetricExceedsThreshold(metric MetricName, observed, threshold float64) bool {
	direction, ok := MetricDirections[metric]
	if !ok {
		return false
	}

	if direction == TriggerAbove {
		return observed >= threshold
	}

	return observed <= threshold
}
