package analytics

import (
	"sort"
	"time"

	"github.com/nexgestao/analytics-api/internal/domain"
)

// MaxSeriesBuckets limita a série mensal aos meses mais recentes.
const MaxSeriesBuckets = 6

// MonthlyRevenueSeries agrupa a receita dos pedidos concluídos em baldes de
// mês-calendário (pela data de criação do pedido) e retorna a série em ordem
// cronológica crescente, limitada aos MaxSeriesBuckets meses mais recentes.
// A ordenação é feita pelo valor real da data, nunca pela ordem de chegada
// dos registros. Sem pedidos concluídos, a série é vazia — placeholder de
// gráfico vazio é política de UI, não deste pacote.
func MonthlyRevenueSeries(orders []domain.Order) domain.ChartSeries {
	type bucket struct {
		month   time.Time
		revenue float64
	}

	byMonth := make(map[time.Time]int)
	buckets := make([]bucket, 0)

	for _, order := range orders {
		if order.Status != domain.OrderStatusCompleted {
			continue
		}

		month := time.Date(order.CreatedAt.Year(), order.CreatedAt.Month(), 1, 0, 0, 0, 0, time.UTC)
		idx, exists := byMonth[month]
		if !exists {
			buckets = append(buckets, bucket{month: month})
			idx = len(buckets) - 1
			byMonth[month] = idx
		}
		buckets[idx].revenue += order.UsableAmount()
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].month.Before(buckets[j].month)
	})

	if len(buckets) > MaxSeriesBuckets {
		buckets = buckets[len(buckets)-MaxSeriesBuckets:]
	}

	series := make(domain.ChartSeries, 0, len(buckets))
	for _, b := range buckets {
		series = append(series, domain.ChartPoint{
			Label: b.month.Format("01-2006"),
			Value: b.revenue,
		})
	}

	return series
}
