package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nexgestao/analytics-api/internal/domain"
)

func completedOrder(amount float64, createdAt time.Time) domain.Order {
	return domain.Order{
		Amount:    &amount,
		Status:    domain.OrderStatusCompleted,
		CreatedAt: createdAt,
	}
}

func TestMonthlyRevenueSeries(t *testing.T) {
	tests := []struct {
		name     string
		orders   []domain.Order
		expected domain.ChartSeries
	}{
		{
			name:     "Sem pedidos concluídos a série é vazia",
			orders:   []domain.Order{{Status: domain.OrderStatusPending, CreatedAt: time.Now()}},
			expected: domain.ChartSeries{},
		},
		{
			name: "Pedidos do mesmo mês são acumulados no mesmo balde",
			orders: []domain.Order{
				completedOrder(100, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
				completedOrder(250, time.Date(2024, 2, 28, 23, 0, 0, 0, time.UTC)),
			},
			expected: domain.ChartSeries{
				{Label: "02-2024", Value: 350},
			},
		},
		{
			name: "Entrada fora de ordem cronológica é ordenada pela data real",
			orders: []domain.Order{
				completedOrder(300, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
				completedOrder(100, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
				completedOrder(200, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)),
			},
			expected: domain.ChartSeries{
				{Label: "01-2024", Value: 100},
				{Label: "02-2024", Value: 200},
				{Label: "03-2024", Value: 300},
			},
		},
		{
			name: "Histórico maior que o limite mantém apenas os meses mais recentes",
			orders: []domain.Order{
				completedOrder(10, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)),
				completedOrder(20, time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)),
				completedOrder(30, time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC)),
				completedOrder(40, time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)),
				completedOrder(50, time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)),
				completedOrder(60, time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)),
				completedOrder(70, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)),
				completedOrder(80, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
			},
			expected: domain.ChartSeries{
				{Label: "08-2023", Value: 30},
				{Label: "09-2023", Value: 40},
				{Label: "10-2023", Value: 50},
				{Label: "11-2023", Value: 60},
				{Label: "12-2023", Value: 70},
				{Label: "01-2024", Value: 80},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := MonthlyRevenueSeries(tt.orders)

			assert.Equal(t, tt.expected, series)
			assert.LessOrEqual(t, len(series), MaxSeriesBuckets)
		})
	}
}
