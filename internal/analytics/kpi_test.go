package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nexgestao/analytics-api/internal/domain"
)

func floatPtr(f float64) *float64 { return &f }

func stringPtr(s string) *string { return &s }

func makeOrder(id string, clientID *string, amount *float64, status domain.OrderStatus, createdAt time.Time) domain.Order {
	return domain.Order{
		ID:        id,
		ClientID:  clientID,
		Amount:    amount,
		Status:    status,
		CreatedAt: createdAt,
	}
}

func TestComputeKPIs(t *testing.T) {
	baseDate := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		orders   []domain.Order
		clients  []domain.Client
		expected domain.KPISet
	}{
		{
			name:     "Coleções vazias devem produzir KPISet zerado, sem erro",
			orders:   nil,
			clients:  nil,
			expected: domain.KPISet{},
		},
		{
			name: "Cenário base: receita apenas dos concluídos e taxa de conversão protegida",
			orders: []domain.Order{
				makeOrder("O1", stringPtr("C1"), floatPtr(1000), domain.OrderStatusCompleted, baseDate),
				makeOrder("O2", stringPtr("C2"), floatPtr(500), domain.OrderStatusPending, baseDate),
				makeOrder("O3", stringPtr("C1"), floatPtr(2000), domain.OrderStatusCompleted, baseDate),
			},
			clients: []domain.Client{
				{ID: "C1", Name: "Loja A"},
				{ID: "C2", Name: "Loja B"},
				{ID: "C3", Name: "Loja C"},
			},
			expected: domain.KPISet{
				TotalRevenue:          3000,
				TotalOrders:           3,
				TotalClients:          3,
				AvgOrderValue:         1000,
				ConversionRatePercent: 200.0 / 3.0,
				ActiveClients:         2,
				CompletedOrders:       2,
				PendingOrders:         1,
			},
		},
		{
			name: "Valor nulo ou negativo deve ser tratado como zero, nunca como erro",
			orders: []domain.Order{
				makeOrder("O1", stringPtr("C1"), nil, domain.OrderStatusCompleted, baseDate),
				makeOrder("O2", stringPtr("C1"), floatPtr(-300), domain.OrderStatusCompleted, baseDate),
				makeOrder("O3", stringPtr("C1"), floatPtr(150), domain.OrderStatusCompleted, baseDate),
			},
			clients: []domain.Client{{ID: "C1", Name: "Loja A"}},
			expected: domain.KPISet{
				TotalRevenue:          150,
				TotalOrders:           3,
				TotalClients:          1,
				AvgOrderValue:         50,
				ConversionRatePercent: 100,
				ActiveClients:         1,
				CompletedOrders:       3,
			},
		},
		{
			name: "Clientes ativos contam referências distintas em qualquer status",
			orders: []domain.Order{
				makeOrder("O1", stringPtr("C1"), floatPtr(100), domain.OrderStatusCancelled, baseDate),
				makeOrder("O2", stringPtr("C2"), nil, domain.OrderStatusDraft, baseDate),
				makeOrder("O3", nil, floatPtr(50), domain.OrderStatusPending, baseDate),
				makeOrder("O4", stringPtr("C1"), floatPtr(80), domain.OrderStatusInProgress, baseDate),
			},
			clients: []domain.Client{{ID: "C1"}, {ID: "C2"}},
			expected: domain.KPISet{
				TotalOrders:   4,
				TotalClients:  2,
				ActiveClients: 2,
				PendingOrders: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kpis := ComputeKPIs(tt.orders, tt.clients)
			assert.Equal(t, tt.expected, kpis)
		})
	}
}

func TestComputeKPIs_IndependenteDaOrdemDeEntrada(t *testing.T) {
	baseDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	orders := []domain.Order{
		makeOrder("O1", stringPtr("C1"), floatPtr(1000), domain.OrderStatusCompleted, baseDate),
		makeOrder("O2", stringPtr("C2"), floatPtr(500), domain.OrderStatusPending, baseDate),
		makeOrder("O3", stringPtr("C3"), floatPtr(2000), domain.OrderStatusCompleted, baseDate),
	}
	reversed := []domain.Order{orders[2], orders[1], orders[0]}

	assert.Equal(t, ComputeKPIs(orders, nil), ComputeKPIs(reversed, nil))
}
