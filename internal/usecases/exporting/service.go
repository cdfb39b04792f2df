// Package exporting produz as exportações tabulares (CSV) dos artefatos do
// dashboard. O serviço apenas monta o texto; gravar em arquivo ou enviar na
// resposta HTTP é responsabilidade do chamador.
package exporting

import (
	"strconv"
	"time"

	"github.com/nexgestao/analytics-api/internal/usecases/reporting"
	"github.com/nexgestao/analytics-api/pkg/csvutil"
	"github.com/nexgestao/analytics-api/pkg/utils"
)

// Exporter define as exportações disponíveis para uma conta.
type Exporter interface {
	ExportOrders(accountID string) (string, error)
	ExportKPIs(accountID string) (string, error)
	ExportRanking(accountID string) (string, error)
}

type Service struct {
	reporter reporting.Reporter
}

func NewService(reporter reporting.Reporter) Exporter {
	return &Service{
		reporter: reporter,
	}
}

var orderColumns = []string{"id", "client_id", "amount", "status", "created_at", "due_at"}

// ExportOrders serializa todos os pedidos da conta. Campos nulos viram
// string vazia; valores monetários saem com ponto decimal, independentes de
// locale.
func (s *Service) ExportOrders(accountID string) (string, error) {
	snapshot, err := s.reporter.LoadSnapshot(accountID)
	if err != nil {
		return "", err
	}

	rows := make([]csvutil.Row, 0, len(snapshot.Orders))
	for _, order := range snapshot.Orders {
		row := csvutil.Row{
			"id":         order.ID,
			"status":     string(order.Status),
			"created_at": order.CreatedAt.Format(time.RFC3339),
		}

		if order.ClientID != nil {
			row["client_id"] = *order.ClientID
		}
		if order.Amount != nil {
			row["amount"] = utils.FormatAmount(*order.Amount)
		}
		if order.DueAt != nil {
			row["due_at"] = order.DueAt.Format(time.RFC3339)
		}

		rows = append(rows, row)
	}

	return csvutil.Encode(orderColumns, rows), nil
}

var kpiColumns = []string{"metric", "value"}

func (s *Service) ExportKPIs(accountID string) (string, error) {
	kpis, err := s.reporter.GetDashboardKPIs(accountID)
	if err != nil {
		return "", err
	}

	rows := []csvutil.Row{
		{"metric": "total_revenue", "value": utils.FormatAmount(kpis.TotalRevenue)},
		{"metric": "total_orders", "value": strconv.Itoa(kpis.TotalOrders)},
		{"metric": "total_clients", "value": strconv.Itoa(kpis.TotalClients)},
		{"metric": "avg_order_value", "value": utils.FormatAmount(kpis.AvgOrderValue)},
		{"metric": "conversion_rate_percent", "value": utils.FormatAmount(kpis.ConversionRatePercent)},
		{"metric": "active_clients", "value": strconv.Itoa(kpis.ActiveClients)},
		{"metric": "completed_orders", "value": strconv.Itoa(kpis.CompletedOrders)},
		{"metric": "pending_orders", "value": strconv.Itoa(kpis.PendingOrders)},
	}

	return csvutil.Encode(kpiColumns, rows), nil
}

var rankingColumns = []string{"position", "client_id", "name", "total_revenue", "order_count"}

func (s *Service) ExportRanking(accountID string) (string, error) {
	response, err := s.reporter.GetClientRanking(accountID)
	if err != nil {
		return "", err
	}

	rows := make([]csvutil.Row, 0, len(response.Ranking))
	for i, item := range response.Ranking {
		rows = append(rows, csvutil.Row{
			"position":      strconv.Itoa(i + 1),
			"client_id":     item.ClientID,
			"name":          item.Name,
			"total_revenue": utils.FormatAmount(item.TotalRevenue),
			"order_count":   strconv.Itoa(item.OrderCount),
		})
	}

	return csvutil.Encode(rankingColumns, rows), nil
}
