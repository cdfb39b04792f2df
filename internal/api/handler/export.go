package handler

import (
	"fmt"
	"net/http"

	"github.com/nexgestao/analytics-api/internal/usecases/exporting"
	"github.com/nexgestao/analytics-api/pkg/apiErrors"
	"github.com/nexgestao/analytics-api/pkg/log"
)

// writeCSV envia o documento como download com o nome de arquivo informado.
func writeCSV(w http.ResponseWriter, r *http.Request, filename, document string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))

	if _, err := w.Write([]byte(document)); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("export: erro ao enviar documento CSV")
	}
}

func ExportOrders(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID, ok := accountIDFromRequest(w, r)
		if !ok {
			return
		}

		document, err := service.ExportOrders(accountID)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("export: erro ao exportar pedidos")

			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao exportar pedidos", nil)
			return
		}

		logger.WithField("account_id", accountID).Info("export: pedidos exportados")
		writeCSV(w, r, "orders.csv", document)
	})
}

func ExportKPIs(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID, ok := accountIDFromRequest(w, r)
		if !ok {
			return
		}

		document, err := service.ExportKPIs(accountID)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("export: erro ao exportar KPIs")

			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao exportar KPIs", nil)
			return
		}

		writeCSV(w, r, "kpis.csv", document)
	})
}

func ExportRanking(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID, ok := accountIDFromRequest(w, r)
		if !ok {
			return
		}

		document, err := service.ExportRanking(accountID)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("export: erro ao exportar ranking de clientes")

			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao exportar ranking de clientes", nil)
			return
		}

		writeCSV(w, r, "ranking.csv", document)
	})
}
