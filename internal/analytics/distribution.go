package analytics

import "github.com/nexgestao/analytics-api/internal/domain"

// statusSlice define quais status participam do gráfico de distribuição e em
// que ordem. Draft e confirmed ficam de fora desta visão por decisão de
// produto — são estados transitórios sem interesse no gráfico.
var statusSlice = []domain.OrderStatus{
	domain.OrderStatusPending,
	domain.OrderStatusInProgress,
	domain.OrderStatusCompleted,
	domain.OrderStatusCancelled,
}

var statusLabels = map[domain.OrderStatus]string{
	domain.OrderStatusPending:    "Pendentes",
	domain.OrderStatusInProgress: "Em andamento",
	domain.OrderStatusCompleted:  "Concluídos",
	domain.OrderStatusCancelled:  "Cancelados",
}

var statusColors = map[domain.OrderStatus]string{
	domain.OrderStatusPending:    "#FFC107",
	domain.OrderStatusInProgress: "#2196F3",
	domain.OrderStatusCompleted:  "#4CAF50",
	domain.OrderStatusCancelled:  "#F44336",
}

// StatusDistribution conta os pedidos por status para consumo em gráfico de
// pizza. Status com contagem zero são omitidos da saída, não zerados.
func StatusDistribution(orders []domain.Order) domain.ChartSeries {
	counts := make(map[domain.OrderStatus]int, len(statusSlice))
	for _, order := range orders {
		counts[order.Status]++
	}

	series := make(domain.ChartSeries, 0, len(statusSlice))
	for _, status := range statusSlice {
		if counts[status] == 0 {
			continue
		}
		series = append(series, domain.ChartPoint{
			Label: statusLabels[status],
			Value: float64(counts[status]),
			Color: statusColors[status],
		})
	}

	return series
}
