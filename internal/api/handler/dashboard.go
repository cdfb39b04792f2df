package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/nexgestao/analytics-api/internal/usecases/reporting"
	"github.com/nexgestao/analytics-api/pkg/apiErrors"
	"github.com/nexgestao/analytics-api/pkg/log"
	"github.com/nexgestao/analytics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// accountIDFromRequest extrai o account_id da query string. Escreve o erro na
// resposta quando ausente.
func accountIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	accountID := r.URL.Query().Get("account_id")
	if accountID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro account_id não fornecido", nil)
		return "", false
	}

	return accountID, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao enviar resposta")
	}
}

func GetDashboardKPIs(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID, ok := accountIDFromRequest(w, r)
		if !ok {
			return
		}

		kpis, err := service.GetDashboardKPIs(accountID)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("dashboard: erro ao calcular KPIs")

			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao calcular KPIs", nil)
			return
		}

		logger.WithField("account_id", accountID).Info("dashboard: KPIs calculados")
		writeJSON(w, r, kpis)
	})
}

func GetRevenueSeries(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID, ok := accountIDFromRequest(w, r)
		if !ok {
			return
		}

		series, err := service.GetRevenueSeries(accountID)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("dashboard: erro ao montar série de receita")

			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao montar série de receita", nil)
			return
		}

		writeJSON(w, r, series)
	})
}

func GetStatusDistribution(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID, ok := accountIDFromRequest(w, r)
		if !ok {
			return
		}

		distribution, err := service.GetStatusDistribution(accountID)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("dashboard: erro ao montar distribuição por status")

			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao montar distribuição por status", nil)
			return
		}

		writeJSON(w, r, distribution)
	})
}

func GetClientRanking(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID, ok := accountIDFromRequest(w, r)
		if !ok {
			return
		}

		ranking, err := service.GetClientRanking(accountID)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("dashboard: erro ao montar ranking de clientes")

			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao montar ranking de clientes", nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"entries":    len(ranking.Ranking),
		}).Info("dashboard: ranking de clientes montado")

		writeJSON(w, r, ranking)
	})
}

func GetRevenueForecast(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID, ok := accountIDFromRequest(w, r)
		if !ok {
			return
		}

		forecast, err := service.GetRevenueForecast(accountID)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("dashboard: erro ao classificar previsão de receita")

			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao classificar previsão de receita", nil)
			return
		}

		writeJSON(w, r, forecast)
	})
}

func GetInsights(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID, ok := accountIDFromRequest(w, r)
		if !ok {
			return
		}

		// Data de referência opcional para reproduzir uma avaliação passada
		now := time.Now()
		if raw := r.URL.Query().Get("date"); raw != "" {
			parsed, err := utils.ParseDate(raw)
			if err != nil {
				logger.WithFields(log.Fields{
					"account_id": accountID,
					"date":       raw,
					"error":      err.Error(),
				}).Warn("insights: parâmetro date inválido")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro date inválido, use AAAA-MM-DD", nil)
				return
			}
			now = *parsed
		}

		insights, err := service.GetInsights(accountID, now)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("insights: erro ao avaliar insights da conta")

			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao avaliar insights", nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"insights":   len(insights),
		}).Info("insights: avaliação concluída")

		writeJSON(w, r, insights)
	})
}
