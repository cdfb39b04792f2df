package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nexgestao/analytics-api/internal/domain"
)

func TestTopClientsByRevenue(t *testing.T) {
	baseDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		orders   []domain.Order
		clients  []domain.Client
		expected []domain.ClientRankingItem
	}{
		{
			name:     "Sem pedidos concluídos o ranking é vazio",
			orders:   []domain.Order{makeOrder("O1", stringPtr("C1"), floatPtr(100), domain.OrderStatusPending, baseDate)},
			clients:  []domain.Client{{ID: "C1", Name: "Loja A"}},
			expected: []domain.ClientRankingItem{},
		},
		{
			name: "Agrega receita e contagem por cliente, em ordem decrescente de receita",
			orders: []domain.Order{
				makeOrder("O1", stringPtr("C1"), floatPtr(100), domain.OrderStatusCompleted, baseDate),
				makeOrder("O2", stringPtr("C2"), floatPtr(900), domain.OrderStatusCompleted, baseDate),
				makeOrder("O3", stringPtr("C1"), floatPtr(400), domain.OrderStatusCompleted, baseDate),
				makeOrder("O4", nil, floatPtr(999), domain.OrderStatusCompleted, baseDate),
			},
			clients: []domain.Client{
				{ID: "C1", Name: "Loja A"},
				{ID: "C2", Name: "Loja B"},
			},
			expected: []domain.ClientRankingItem{
				{ClientID: "C2", Name: "Loja B", TotalRevenue: 900, OrderCount: 1},
				{ClientID: "C1", Name: "Loja A", TotalRevenue: 500, OrderCount: 2},
			},
		},
		{
			name: "Cliente fora do snapshot recebe o rótulo de cliente desconhecido",
			orders: []domain.Order{
				makeOrder("O1", stringPtr("C9"), floatPtr(100), domain.OrderStatusCompleted, baseDate),
			},
			clients: []domain.Client{{ID: "C1", Name: "Loja A"}},
			expected: []domain.ClientRankingItem{
				{ClientID: "C9", Name: domain.UnknownClientName, TotalRevenue: 100, OrderCount: 1},
			},
		},
		{
			name: "Empate de receita preserva a ordem do primeiro pedido na entrada",
			orders: []domain.Order{
				makeOrder("O1", stringPtr("C2"), floatPtr(500), domain.OrderStatusCompleted, baseDate),
				makeOrder("O2", stringPtr("C1"), floatPtr(500), domain.OrderStatusCompleted, baseDate),
			},
			clients: []domain.Client{
				{ID: "C1", Name: "Loja A"},
				{ID: "C2", Name: "Loja B"},
			},
			expected: []domain.ClientRankingItem{
				{ClientID: "C2", Name: "Loja B", TotalRevenue: 500, OrderCount: 1},
				{ClientID: "C1", Name: "Loja A", TotalRevenue: 500, OrderCount: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranking := TopClientsByRevenue(tt.orders, tt.clients)
			assert.Equal(t, tt.expected, ranking)
		})
	}
}

func TestTopClientsByRevenue_TruncaEmCincoPosicoes(t *testing.T) {
	baseDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	orders := make([]domain.Order, 0, 8)
	for i := 0; i < 8; i++ {
		clientID := fmt.Sprintf("C%d", i)
		orders = append(orders, makeOrder(
			fmt.Sprintf("O%d", i),
			&clientID,
			floatPtr(float64(100*(i+1))),
			domain.OrderStatusCompleted,
			baseDate,
		))
	}

	ranking := TopClientsByRevenue(orders, nil)

	assert.Len(t, ranking, MaxRankingEntries)
	for i := 1; i < len(ranking); i++ {
		assert.GreaterOrEqual(t, ranking[i-1].TotalRevenue, ranking[i].TotalRevenue)
	}
	// O maior pedido (800) encabeça o ranking.
	assert.Equal(t, 800.0, ranking[0].TotalRevenue)
}
