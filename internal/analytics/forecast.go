package analytics

import "github.com/nexgestao/analytics-api/internal/domain"

// Mensagens fixas da tabela de previsão. Apesar do nome "previsão", isto é
// uma tabela de decisão determinística, não um modelo aprendido.
const (
	forecastMessagePositive = "Tendência de alta: a receita cresceu acima de 10% no período. Mantenha o ritmo de prospecção."
	forecastMessageStable   = "Tendência estável: crescimento moderado de receita no período."
	forecastMessageCaution  = "Atenção: a receita não cresceu no período. Revise pedidos pendentes e campanhas."
)

// ClassifyGrowth mapeia a taxa de crescimento percentual (calculada pelo
// chamador a partir da receita do período atual vs. anterior) para uma
// mensagem qualitativa e um delta previsto, via tabela fixa de regras:
//
//	crescimento > 10  → mensagem positiva, delta +15
//	0 < crescimento ≤ 10 → mensagem estável, delta +8
//	crescimento ≤ 0   → mensagem de cautela, delta −3
//
// Os três ramos são exaustivos e mutuamente exclusivos nos limites: 10 cai no
// ramo estável, 0 cai no ramo de cautela.
func ClassifyGrowth(growthRatePercent float64) domain.RevenueForecast {
	forecast := domain.RevenueForecast{GrowthRatePercent: growthRatePercent}

	switch {
	case growthRatePercent > 10:
		forecast.Message = forecastMessagePositive
		forecast.PredictedDeltaPercent = 15
	case growthRatePercent > 0:
		forecast.Message = forecastMessageStable
		forecast.PredictedDeltaPercent = 8
	default:
		forecast.Message = forecastMessageCaution
		forecast.PredictedDeltaPercent = -3
	}

	return forecast
}
