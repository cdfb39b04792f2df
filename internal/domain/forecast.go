package domain

// RevenueForecast é o resultado da classificação heurística de crescimento.
// Tabela de regras fixa — não há modelo estatístico por trás.
type RevenueForecast struct {
	GrowthRatePercent     float64 `json:"growth_rate_percent"`
	Message               string  `json:"message"`
	PredictedDeltaPercent float64 `json:"predicted_delta_percent"`
}
